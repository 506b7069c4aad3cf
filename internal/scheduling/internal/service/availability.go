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
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=./availability.go -package=schedulingmocks -destination=../../mocks/availability.mock.go AvailabilityService

// AvailabilityService 跨多名面试官聚合日历可用性。
//
// 错误策略：任何一名面试官的日历拉取失败，整个请求失败。
// 部分结果会把"拉不到数据"伪装成"这段时间有空"，比失败更糟。
type AvailabilityService interface {
	// CommonAvailability 计算所有面试官在 [start, end) 内的共同空闲时段，
	// 并丢弃短于 duration 的时段。
	CommonAvailability(ctx context.Context, uids []int64, start, end time.Time, duration time.Duration) ([]interval.Interval, error)
	// HasConflictAnyOf 只要有一人在 [start, end) 有冲突就返回 true。
	HasConflictAnyOf(ctx context.Context, uids []int64, start, end time.Time) (bool, error)
}

type availabilityService struct {
	calendarSvc calendar.Service
	// 单次日历提供商调用的超时，慢的提供商不能拖死整个请求
	providerTimeout time.Duration
}

func NewAvailabilityService(calendarSvc calendar.Service, providerTimeout time.Duration) AvailabilityService {
	if providerTimeout <= 0 {
		providerTimeout = 10 * time.Second
	}
	return &availabilityService{
		calendarSvc:     calendarSvc,
		providerTimeout: providerTimeout,
	}
}

func (s *availabilityService) CommonAvailability(ctx context.Context,
	uids []int64, start, end time.Time, duration time.Duration) ([]interval.Interval, error) {
	if len(uids) == 0 || !start.Before(end) || duration <= 0 {
		return nil, ErrInvalidInput
	}
	sets := make([][]interval.Interval, len(uids))
	eg, gctx := errgroup.WithContext(ctx)
	for i := range uids {
		eg.Go(func() error {
			free, err := s.userAvailability(gctx, uids[i], start, end)
			if err != nil {
				return err
			}
			sets[i] = free
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	common := interval.IntersectAll(sets...)
	return interval.FilterMinDuration(common, duration), nil
}

// userAvailability 单个面试官的空闲时段：
// 拉忙碌时段 -> 求补集 -> 按其时区和工作时间裁剪。
func (s *availabilityService) userAvailability(ctx context.Context,
	uid int64, start, end time.Time) ([]interval.Interval, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.providerTimeout)
	defer cancel()
	busy, err := s.calendarSvc.FetchBusy(fetchCtx, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("拉取面试官 %d 的忙碌时段失败: %w", uid, err)
	}
	profile, err := s.calendarSvc.Profile(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("读取面试官 %d 的日历档案失败: %w", uid, err)
	}
	loc, err := profile.Loc()
	if err != nil {
		return nil, fmt.Errorf("解析面试官 %d 的时区失败: %w", uid, err)
	}
	free := interval.Free(busy, start, end)
	return interval.ClipToWorkingHours(free, profile.EffectiveWorkingHours(), loc), nil
}

func (s *availabilityService) HasConflictAnyOf(ctx context.Context,
	uids []int64, start, end time.Time) (bool, error) {
	if len(uids) == 0 || !start.Before(end) {
		return false, ErrInvalidInput
	}
	var conflict atomic.Bool
	eg, gctx := errgroup.WithContext(ctx)
	for i := range uids {
		eg.Go(func() error {
			checkCtx, cancel := context.WithTimeout(gctx, s.providerTimeout)
			defer cancel()
			has, err := s.calendarSvc.HasConflict(checkCtx, uids[i], start, end)
			if err != nil {
				return fmt.Errorf("核查面试官 %d 的日程冲突失败: %w", uids[i], err)
			}
			if has {
				conflict.Store(true)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return conflict.Load(), nil
}
