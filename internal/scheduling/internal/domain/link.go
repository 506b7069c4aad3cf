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

import (
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
)

// SchedulingLink 是一条可分享的预约链接，是预约工作流的聚合根。
// token 是唯一的访问凭证，链接本身不做任何登录鉴权。
// 不变式：used == true 当且仅当 InterviewID != 0。
// 不变式：RescheduleToken 只在链接至少被预约过一次之后才会生成。
type SchedulingLink struct {
	ID               int64
	Token            string
	ApplicationID    int64
	InterviewStageID int64
	InterviewerIDs   []int64
	DurationMinutes  int
	BufferMinutes    int
	LocationType     interview.LocationType
	MeetingLink      string
	// 预约窗口 [StartDate, EndDate]
	StartDate time.Time
	EndDate   time.Time
	// 零值表示永不过期
	ExpiresAt       time.Time
	Used            bool
	InterviewID     int64
	AllowReschedule bool
	RescheduleToken string
	// 预约成功后在各面试官远端日历上创建的事件引用
	CalendarEvents []CalendarEvent
	CreatedBy      int64
}

// CalendarEvent 面试官远端日历上的事件引用，用于改期和取消时的同步。
type CalendarEvent struct {
	Uid      int64  `json:"uid"`
	Provider string `json:"provider"`
	EventID  string `json:"eventId"`
}

// IsExpired 过期不是存储状态，每次读取时计算。
func (l SchedulingLink) IsExpired(now time.Time) bool {
	return !l.ExpiresAt.IsZero() && now.After(l.ExpiresAt)
}

// Duration 单场面试的时长。
func (l SchedulingLink) Duration() time.Duration {
	return time.Duration(l.DurationMinutes) * time.Minute
}

// Stride 槽位步长：时长加上间隔，保证相邻槽位之间留足 buffer。
func (l SchedulingLink) Stride() time.Duration {
	return time.Duration(l.DurationMinutes+l.BufferMinutes) * time.Minute
}

// InWindow 判断以 start 开始的一场面试是否完全落在预约窗口内。
func (l SchedulingLink) InWindow(start time.Time) bool {
	return !start.Before(l.StartDate) && !start.Add(l.Duration()).After(l.EndDate)
}

// Slot 是一个可预约的槽位，边界始终是绝对时刻，展示时区只影响格式化。
type Slot struct {
	Start time.Time
	End   time.Time
}
