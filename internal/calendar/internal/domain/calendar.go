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

	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
)

// ProviderType 标识日历提供商，存储在用户档案上，
// 适配器按这个枚举选择，聚合侧不允许出现按提供商分支的代码。
type ProviderType string

const (
	ProviderGoogle  ProviderType = "google"
	ProviderOutlook ProviderType = "outlook"
)

// IsValid 检查是否为受支持的提供商。
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderGoogle, ProviderOutlook:
		return true
	default:
		return false
	}
}

func (p ProviderType) String() string {
	return string(p)
}

// Profile 是用户的日历档案。
// Credential 是提供商侧的不透明凭证（OAuth token 的序列化结果），
// 核心代码只负责透传，绝不解析其中的字段。
type Profile struct {
	Uid          int64
	Provider     ProviderType
	Credential   string
	Timezone     string
	WorkingHours []interval.WorkingHour
}

// Loc 返回档案的时区，未配置时回退 UTC。
func (p Profile) Loc() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(p.Timezone)
}

// EffectiveWorkingHours 返回档案的工作时间，没有配置任何窗口时
// 回退到默认的周一至周五 09:00–17:00。
func (p Profile) EffectiveWorkingHours() []interval.WorkingHour {
	if len(p.WorkingHours) == 0 {
		return interval.DefaultWorkingHours()
	}
	return p.WorkingHours
}

// EventDetails 是写远端日历事件所需的全部信息，时间一律为绝对时刻（UTC）。
type EventDetails struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Location    string
	MeetingLink string
	Attendees   []string
}

// EventRef 指向某个提供商里的一个远端事件。
type EventRef struct {
	Provider ProviderType
	EventID  string
}
