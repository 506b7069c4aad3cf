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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar"
	calendarmocks "github.com/rajmahato111/HyreHR-sub001/internal/calendar/mocks"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
)

func TestAvailabilityService_CommonAvailability(t *testing.T) {
	// 2025-03-04 是周二
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	start := day.Add(10 * time.Hour)
	end := day.Add(16 * time.Hour)
	profile := func(uid int64) calendar.Profile {
		return calendar.Profile{
			Uid:      uid,
			Provider: calendar.ProviderGoogle,
			Timezone: "UTC",
			WorkingHours: []interval.WorkingHour{
				{DayOfWeek: 2, StartTime: "09:00", EndTime: "17:00"},
			},
		}
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) calendar.Service
		uids     []int64
		duration time.Duration

		want    []interval.Interval
		wantErr error
	}{
		{
			name: "合并多名面试官的空闲时段",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().FetchBusy(gomock.Any(), int64(101), start, end).
					Return([]interval.Interval{
						{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
					}, nil)
				svc.EXPECT().Profile(gomock.Any(), int64(101)).Return(profile(101), nil)
				svc.EXPECT().FetchBusy(gomock.Any(), int64(102), start, end).
					Return([]interval.Interval{
						{Start: day.Add(13 * time.Hour), End: day.Add(14 * time.Hour)},
					}, nil)
				svc.EXPECT().Profile(gomock.Any(), int64(102)).Return(profile(102), nil)
				return svc
			},
			uids:     []int64{101, 102},
			duration: time.Hour,
			want: []interval.Interval{
				{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
				{Start: day.Add(12 * time.Hour), End: day.Add(13 * time.Hour)},
				{Start: day.Add(14 * time.Hour), End: day.Add(16 * time.Hour)},
			},
		},
		{
			name: "过短的空闲时段被过滤",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().FetchBusy(gomock.Any(), int64(101), start, end).
					Return([]interval.Interval{
						{Start: day.Add(11 * time.Hour), End: day.Add(15*time.Hour + 30*time.Minute)},
					}, nil)
				svc.EXPECT().Profile(gomock.Any(), int64(101)).Return(profile(101), nil)
				return svc
			},
			uids:     []int64{101},
			duration: time.Hour,
			want: []interval.Interval{
				{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
			},
		},
		{
			name: "任一面试官日历拉取失败则整体失败",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().FetchBusy(gomock.Any(), int64(101), start, end).
					Return([]interval.Interval{}, nil).AnyTimes()
				svc.EXPECT().Profile(gomock.Any(), int64(101)).
					Return(profile(101), nil).AnyTimes()
				svc.EXPECT().FetchBusy(gomock.Any(), int64(102), start, end).
					Return(nil, errors.New("provider 超时"))
				return svc
			},
			uids:     []int64{101, 102},
			duration: time.Hour,
			wantErr:  ErrUpstreamUnavailable,
		},
		{
			name: "面试官列表为空",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				return calendarmocks.NewMockService(ctrl)
			},
			uids:     []int64{},
			duration: time.Hour,
			wantErr:  ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewAvailabilityService(tc.mock(ctrl), 10*time.Second)
			got, err := svc.CommonAvailability(context.Background(), tc.uids, start, end, tc.duration)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// 组合场景：一周的预约窗口里有一段忙碌，切出来的槽位
// 既要避开忙碌时段，也不能落在工作时间和工作日之外。
func TestAvailabilityService_WeekScenarioSlots(t *testing.T) {
	// 2025-03-03 周一 ~ 2025-03-10 周一，覆盖一个完整的周末
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	busy := interval.Interval{
		Start: time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC),
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := calendarmocks.NewMockService(ctrl)
	svc.EXPECT().FetchBusy(gomock.Any(), int64(101), start, end).
		Return([]interval.Interval{busy}, nil)
	workdays := make([]interval.WorkingHour, 0, 5)
	for day := 1; day <= 5; day++ {
		workdays = append(workdays, interval.WorkingHour{
			DayOfWeek: day, StartTime: "09:00", EndTime: "17:00",
		})
	}
	svc.EXPECT().Profile(gomock.Any(), int64(101)).Return(calendar.Profile{
		Uid:          101,
		Provider:     calendar.ProviderGoogle,
		Timezone:     "UTC",
		WorkingHours: workdays,
	}, nil)

	common, err := NewAvailabilityService(svc, 10*time.Second).
		CommonAvailability(context.Background(), []int64{101}, start, end, time.Hour)
	require.NoError(t, err)

	slots := interval.Discretize(common, time.Hour, time.Hour)
	// 4 个完整工作日各 8 个槽位，周二因忙碌少 1 个，周末一个都没有
	assert.Len(t, slots, 39)
	for _, slot := range slots {
		assert.False(t, slot.Overlaps(busy), "槽位 %v 撞上了忙碌时段", slot)
		weekday := slot.Start.Weekday()
		assert.NotEqual(t, time.Saturday, weekday)
		assert.NotEqual(t, time.Sunday, weekday)
		assert.GreaterOrEqual(t, slot.Start.Hour(), 9)
		assert.LessOrEqual(t, slot.End.Hour(), 17)
	}
}

func TestAvailabilityService_HasConflictAnyOf(t *testing.T) {
	start := time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	testCases := []struct {
		name string
		mock func(ctrl *gomock.Controller) calendar.Service
		uids []int64

		want    bool
		wantErr error
	}{
		{
			name: "任一面试官有冲突即冲突",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().HasConflict(gomock.Any(), int64(101), start, end).Return(false, nil)
				svc.EXPECT().HasConflict(gomock.Any(), int64(102), start, end).Return(true, nil)
				return svc
			},
			uids: []int64{101, 102},
			want: true,
		},
		{
			name: "全部无冲突",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().HasConflict(gomock.Any(), int64(101), start, end).Return(false, nil)
				svc.EXPECT().HasConflict(gomock.Any(), int64(102), start, end).Return(false, nil)
				return svc
			},
			uids: []int64{101, 102},
			want: false,
		},
		{
			name: "核查失败不降级为无冲突",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				svc := calendarmocks.NewMockService(ctrl)
				svc.EXPECT().HasConflict(gomock.Any(), int64(101), start, end).
					Return(false, errors.New("provider 不可用"))
				svc.EXPECT().HasConflict(gomock.Any(), int64(102), start, end).
					Return(false, nil).AnyTimes()
				return svc
			},
			uids:    []int64{101, 102},
			wantErr: ErrUpstreamUnavailable,
		},
		{
			name: "面试官列表为空",
			mock: func(ctrl *gomock.Controller) calendar.Service {
				return calendarmocks.NewMockService(ctrl)
			},
			uids:    []int64{},
			wantErr: ErrInvalidInput,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewAvailabilityService(tc.mock(ctrl), 10*time.Second)
			got, err := svc.HasConflictAnyOf(context.Background(), tc.uids, start, end)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
