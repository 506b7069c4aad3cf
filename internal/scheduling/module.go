// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scheduling

import (
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/job"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/service"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/web"
)

type Module struct {
	Svc             Service
	AvailabilitySvc AvailabilityService
	Hdl             *Handler
	AdminHdl        *AdminHandler
	CleanJob        *CleanExpiredLinksJob
}

type Service = service.LinkService
type AvailabilityService = service.AvailabilityService
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type CleanExpiredLinksJob = job.CleanExpiredLinksJob
type SchedulingLink = domain.SchedulingLink
type Slot = domain.Slot
