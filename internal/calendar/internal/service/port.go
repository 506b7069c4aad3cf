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

package service

import (
	"context"
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
)

//go:generate mockgen -source=./port.go -package=calendarmocks -destination=../../mocks/port.mock.go Port

// Port 是每个日历提供商适配器要实现的统一接口。
// credential 是该用户在提供商侧的不透明凭证，时间一律为 UTC 绝对时刻，
// 时区换算是适配器自己的事。
type Port interface {
	// FetchBusy 拉取 [start, end) 范围内的忙碌时段。
	FetchBusy(ctx context.Context, credential string, start, end time.Time) ([]interval.Interval, error)
	// HasConflict 判断 [start, end) 是否与已有日程冲突。
	HasConflict(ctx context.Context, credential string, start, end time.Time) (bool, error)
	// CreateEvent 在远端日历上创建事件。
	CreateEvent(ctx context.Context, credential string, details domain.EventDetails) (domain.EventRef, error)
	// UpdateEvent 更新远端事件（目前只有时间会变）。
	UpdateEvent(ctx context.Context, credential string, ref domain.EventRef, details domain.EventDetails) error
	// DeleteEvent 删除远端事件。
	DeleteEvent(ctx context.Context, credential string, ref domain.EventRef) error
}
