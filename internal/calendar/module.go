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

package calendar

import (
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/service"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/web"
)

type Module struct {
	Svc Service
	Hdl *Handler
}

type Service = service.Service
type Port = service.Port
type Handler = web.Handler
type Profile = domain.Profile
type ProviderType = domain.ProviderType
type EventDetails = domain.EventDetails
type EventRef = domain.EventRef

const (
	ProviderGoogle  = domain.ProviderGoogle
	ProviderOutlook = domain.ProviderOutlook
)

// ErrProfileNotFound 用户尚未接入日历。
var ErrProfileNotFound = repository.ErrProfileNotFound
