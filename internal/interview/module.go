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

package interview

import (
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/service"
)

type Module struct {
	Svc Service
}

type Service = service.Service
type Interview = domain.Interview
type Status = domain.Status
type LocationType = domain.LocationType

const (
	StatusScheduled = domain.StatusScheduled
	StatusCancelled = domain.StatusCancelled
	StatusCompleted = domain.StatusCompleted

	LocationVideo  = domain.LocationVideo
	LocationPhone  = domain.LocationPhone
	LocationOnsite = domain.LocationOnsite
)

// ErrInterviewNotFound 没有找到对应的面试记录
var ErrInterviewNotFound = repository.ErrInterviewNotFound
