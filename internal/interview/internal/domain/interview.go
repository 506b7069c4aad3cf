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

package domain

import "time"

// Status 定义了面试的有效状态，使用自定义类型以获得类型安全。
type Status string

const (
	StatusScheduled Status = "SCHEDULED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// IsValid 检查给定的状态字符串是否为有效的 Status 枚举值。
func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	return string(s)
}

// LocationType 面试形式。
type LocationType string

const (
	LocationVideo  LocationType = "VIDEO"
	LocationPhone  LocationType = "PHONE"
	LocationOnsite LocationType = "ONSITE"
)

func (l LocationType) IsValid() bool {
	switch l {
	case LocationVideo, LocationPhone, LocationOnsite:
		return true
	default:
		return false
	}
}

func (l LocationType) String() string {
	return string(l)
}

// Interview 是一场已排期面试的领域模型。
type Interview struct {
	ID              int64
	ApplicationID   int64
	ScheduledAt     time.Time
	DurationMinutes int
	Status          Status
	LocationType    LocationType
	MeetingLink     string
}

// EndsAt 面试的结束时刻。
func (i Interview) EndsAt() time.Time {
	return i.ScheduledAt.Add(time.Duration(i.DurationMinutes) * time.Minute)
}

// IsPast 判断面试开始时间是否已经过去。
func (i Interview) IsPast(now time.Time) bool {
	return i.ScheduledAt.Before(now)
}

func (i Interview) IsValid() bool {
	if i.ApplicationID == 0 ||
		i.ScheduledAt.IsZero() ||
		i.DurationMinutes <= 0 ||
		!i.Status.IsValid() ||
		!i.LocationType.IsValid() {
		return false
	}
	return true
}
