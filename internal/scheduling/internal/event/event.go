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

package event

const BookingEventName = "interview_booking_events"

const (
	TypeBooked      = "BOOKED"
	TypeRescheduled = "RESCHEDULED"
	TypeCancelled   = "CANCELLED"
)

// BookingEvent 预约工作流的领域事件，下游的通知系统消费该事件给
// 候选人和面试官发确认邮件。
type BookingEvent struct {
	Type           string  `json:"type"`
	LinkID         int64   `json:"linkId"`
	ApplicationID  int64   `json:"applicationId"`
	InterviewID    int64   `json:"interviewId"`
	InterviewerIDs []int64 `json:"interviewerIds"`
	// 面试开始时间，毫秒时间戳
	StartTime int64 `json:"startTime"`
}
