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

package web

import (
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/tzx"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
)

type TokenReq struct {
	Token string `json:"token"`
}

type SlotsReq struct {
	Token string `json:"token"`
	// 展示时区，IANA 名字，空表示 UTC
	Timezone string `json:"timezone"`
}

type BookReq struct {
	Token string `json:"token"`
	// 所选槽位的开始时间，毫秒时间戳
	StartTime int64 `json:"startTime"`
}

type RescheduleReq struct {
	Token     string `json:"token"`
	StartTime int64  `json:"startTime"`
}

// LinkInfo 公共端点只暴露候选人需要看到的字段，token 之外不泄露任何内部ID。
type LinkInfo struct {
	DurationMinutes int    `json:"durationMinutes"`
	BufferMinutes   int    `json:"bufferMinutes"`
	LocationType    string `json:"locationType"`
	StartDate       int64  `json:"startDate"`
	EndDate         int64  `json:"endDate"`
	Used            bool   `json:"used"`
	AllowReschedule bool   `json:"allowReschedule"`
}

func newLinkInfo(link domain.SchedulingLink) LinkInfo {
	return LinkInfo{
		DurationMinutes: link.DurationMinutes,
		BufferMinutes:   link.BufferMinutes,
		LocationType:    link.LocationType.String(),
		StartDate:       link.StartDate.UnixMilli(),
		EndDate:         link.EndDate.UnixMilli(),
		Used:            link.Used,
		AllowReschedule: link.AllowReschedule,
	}
}

// Slot 槽位边界始终是绝对时刻，本地时间字段只用于展示。
type Slot struct {
	Start      int64  `json:"start"`
	End        int64  `json:"end"`
	StartLocal string `json:"startLocal"`
	EndLocal   string `json:"endLocal"`
}

func newSlot(slot domain.Slot, timezone string) Slot {
	return Slot{
		Start:      slot.Start.UnixMilli(),
		End:        slot.End.UnixMilli(),
		StartLocal: tzx.FormatInZone(slot.Start, timezone),
		EndLocal:   tzx.FormatInZone(slot.End, timezone),
	}
}

type BookResp struct {
	InterviewID     int64  `json:"interviewId"`
	RescheduleToken string `json:"rescheduleToken"`
}

type RescheduleInfo struct {
	Link LinkInfo `json:"link"`
	// 当前已预约面试的开始时间，毫秒时间戳
	ScheduledAt int64  `json:"scheduledAt"`
	Status      string `json:"status"`
	MeetingLink string `json:"meetingLink"`
}

type CreateLinkReq struct {
	ApplicationID    int64   `json:"applicationId"`
	InterviewStageID int64   `json:"interviewStageId"`
	InterviewerIDs   []int64 `json:"interviewerIds"`
	DurationMinutes  int     `json:"durationMinutes"`
	BufferMinutes    int     `json:"bufferMinutes"`
	LocationType     string  `json:"locationType"`
	MeetingLink      string  `json:"meetingLink"`
	// 预约窗口，毫秒时间戳
	StartDate int64 `json:"startDate"`
	EndDate   int64 `json:"endDate"`
	// 0 表示永不过期
	ExpiresAt       int64 `json:"expiresAt"`
	AllowReschedule bool  `json:"allowReschedule"`
}

type ListLinkReq struct {
	ApplicationID int64 `json:"applicationId"`
}

type IDReq struct {
	ID int64 `json:"id"`
}

// SchedulingLink 管理端视图，含 token，仅对创建者可见。
type SchedulingLink struct {
	ID               int64   `json:"id"`
	Token            string  `json:"token"`
	ApplicationID    int64   `json:"applicationId"`
	InterviewStageID int64   `json:"interviewStageId,omitempty"`
	InterviewerIDs   []int64 `json:"interviewerIds"`
	DurationMinutes  int     `json:"durationMinutes"`
	BufferMinutes    int     `json:"bufferMinutes"`
	LocationType     string  `json:"locationType"`
	MeetingLink      string  `json:"meetingLink,omitempty"`
	StartDate        int64   `json:"startDate"`
	EndDate          int64   `json:"endDate"`
	ExpiresAt        int64   `json:"expiresAt,omitempty"`
	Used             bool    `json:"used"`
	InterviewID      int64   `json:"interviewId,omitempty"`
	AllowReschedule  bool    `json:"allowReschedule"`
	CreatedBy        int64   `json:"createdBy"`
}

func newSchedulingLink(link domain.SchedulingLink) SchedulingLink {
	var expiresAt int64
	if !link.ExpiresAt.IsZero() {
		expiresAt = link.ExpiresAt.UnixMilli()
	}
	return SchedulingLink{
		ID:               link.ID,
		Token:            link.Token,
		ApplicationID:    link.ApplicationID,
		InterviewStageID: link.InterviewStageID,
		InterviewerIDs:   link.InterviewerIDs,
		DurationMinutes:  link.DurationMinutes,
		BufferMinutes:    link.BufferMinutes,
		LocationType:     link.LocationType.String(),
		MeetingLink:      link.MeetingLink,
		StartDate:        link.StartDate.UnixMilli(),
		EndDate:          link.EndDate.UnixMilli(),
		ExpiresAt:        expiresAt,
		Used:             link.Used,
		InterviewID:      link.InterviewID,
		AllowReschedule:  link.AllowReschedule,
		CreatedBy:        link.CreatedBy,
	}
}
