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
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	interviewmocks "github.com/rajmahato111/HyreHR-sub001/internal/interview/mocks"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/event"
	evtmocks "github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/event/mocks"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository"
	repomocks "github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/mocks"
	schedulingmocks "github.com/rajmahato111/HyreHR-sub001/internal/scheduling/mocks"
)

// linkSvcMocks 一次性创建 LinkService 的全部依赖，避免每个用例重复五次 NewMockXXX。
type linkSvcMocks struct {
	repo        *repomocks.MockLinkRepository
	interviewer *interviewmocks.MockService
	avail       *schedulingmocks.MockAvailabilityService
	calendarSvc *calendarmocks.MockService
	producer    *evtmocks.MockBookingEventProducer
}

func newLinkSvcMocks(ctrl *gomock.Controller) *linkSvcMocks {
	return &linkSvcMocks{
		repo:        repomocks.NewMockLinkRepository(ctrl),
		interviewer: interviewmocks.NewMockService(ctrl),
		avail:       schedulingmocks.NewMockAvailabilityService(ctrl),
		calendarSvc: calendarmocks.NewMockService(ctrl),
		producer:    evtmocks.NewMockBookingEventProducer(ctrl),
	}
}

func (m *linkSvcMocks) newService() LinkService {
	return NewLinkService(m.repo, m.interviewer, m.avail, m.calendarSvc, m.producer)
}

func testLink(now time.Time) domain.SchedulingLink {
	return domain.SchedulingLink{
		ID:              1,
		Token:           "tok-1",
		ApplicationID:   11,
		InterviewerIDs:  []int64{101, 102},
		DurationMinutes: 60,
		BufferMinutes:   15,
		LocationType:    interview.LocationVideo,
		MeetingLink:     "https://meet.example.com/abc",
		StartDate:       now.Add(time.Hour),
		EndDate:         now.Add(14 * 24 * time.Hour),
		AllowReschedule: true,
		CreatedBy:       9,
	}
}

func TestLinkService_Create(t *testing.T) {
	now := time.Now()
	valid := testLink(now)
	valid.ID = 0
	valid.Token = ""

	t.Run("创建成功", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mocks := newLinkSvcMocks(ctrl)
		mocks.repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, l domain.SchedulingLink) (int64, error) {
				assert.NotEmpty(t, l.Token)
				assert.False(t, l.Used)
				assert.Zero(t, l.InterviewID)
				assert.Empty(t, l.RescheduleToken)
				return int64(5), nil
			})

		created, err := mocks.newService().Create(context.Background(), valid)
		require.NoError(t, err)
		assert.Equal(t, int64(5), created.ID)
		assert.NotEmpty(t, created.Token)
	})

	invalidCases := []struct {
		name   string
		mutate func(l *domain.SchedulingLink)
	}{
		{
			name:   "没有面试官",
			mutate: func(l *domain.SchedulingLink) { l.InterviewerIDs = nil },
		},
		{
			name:   "时长非正数",
			mutate: func(l *domain.SchedulingLink) { l.DurationMinutes = 0 },
		},
		{
			name: "开始日期晚于结束日期",
			mutate: func(l *domain.SchedulingLink) {
				l.StartDate, l.EndDate = l.EndDate, l.StartDate
			},
		},
		{
			name: "预约窗口在过去",
			mutate: func(l *domain.SchedulingLink) {
				l.StartDate = now.Add(-48 * time.Hour)
			},
		},
		{
			name:   "非法的面试形式",
			mutate: func(l *domain.SchedulingLink) { l.LocationType = "HOLOGRAM" },
		},
	}
	for _, tc := range invalidCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			link := valid
			tc.mutate(&link)
			_, err := newLinkSvcMocks(ctrl).newService().Create(context.Background(), link)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLinkService_Book(t *testing.T) {
	now := time.Now()
	start := now.Add(2 * time.Hour).Truncate(time.Minute)

	testCases := []struct {
		name        string
		mock        func(mocks *linkSvcMocks)
		chosenStart time.Time

		wantID      int64
		wantToken   bool
		wantErr     error
	}{
		{
			name: "预约成功",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, start, start.Add(time.Hour)).Return(false, nil)
				mocks.repo.EXPECT().ClaimByToken(gomock.Any(), "tok-1").Return(nil)
				mocks.interviewer.EXPECT().Create(gomock.Any(), interview.Interview{
					ApplicationID:   11,
					ScheduledAt:     start,
					DurationMinutes: 60,
					LocationType:    interview.LocationVideo,
					MeetingLink:     "https://meet.example.com/abc",
				}).Return(int64(77), nil)
				mocks.repo.EXPECT().AttachInterview(gomock.Any(), link, int64(77)).Return(nil)
				mocks.repo.EXPECT().SetRescheduleToken(gomock.Any(), link, gomock.Any()).Return(nil)
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(bookedLink(now), nil)
				mocks.calendarSvc.EXPECT().CreateEvent(gomock.Any(), int64(101), gomock.Any()).
					Return(calendar.EventRef{Provider: calendar.ProviderGoogle, EventID: "evt-101"}, nil)
				mocks.calendarSvc.EXPECT().CreateEvent(gomock.Any(), int64(102), gomock.Any()).
					Return(calendar.EventRef{Provider: calendar.ProviderOutlook, EventID: "evt-102"}, nil)
				mocks.repo.EXPECT().UpdateCalendarEvents(gomock.Any(), link, []domain.CalendarEvent{
					{Uid: 101, Provider: "google", EventID: "evt-101"},
					{Uid: 102, Provider: "outlook", EventID: "evt-102"},
				}).Return(nil)
				mocks.producer.EXPECT().Produce(gomock.Any(), event.BookingEvent{
					Type:           event.TypeBooked,
					LinkID:         1,
					ApplicationID:  11,
					InterviewID:    77,
					InterviewerIDs: []int64{101, 102},
					StartTime:      start.UnixMilli(),
				}).Return(nil)
			},
			chosenStart: start,
			wantID:      77,
			wantToken:   true,
		},
		{
			name: "日历同步失败不影响预约",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, start, start.Add(time.Hour)).Return(false, nil)
				mocks.repo.EXPECT().ClaimByToken(gomock.Any(), "tok-1").Return(nil)
				mocks.interviewer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(77), nil)
				mocks.repo.EXPECT().AttachInterview(gomock.Any(), link, int64(77)).Return(nil)
				mocks.repo.EXPECT().SetRescheduleToken(gomock.Any(), link, gomock.Any()).Return(nil)
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(bookedLink(now), nil)
				mocks.calendarSvc.EXPECT().CreateEvent(gomock.Any(), int64(101), gomock.Any()).
					Return(calendar.EventRef{}, errors.New("provider 不可用"))
				mocks.calendarSvc.EXPECT().CreateEvent(gomock.Any(), int64(102), gomock.Any()).
					Return(calendar.EventRef{}, errors.New("provider 不可用"))
				mocks.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)
			},
			chosenStart: start,
			wantID:      77,
			wantToken:   true,
		},
		{
			name: "链接不存在",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").
					Return(domain.SchedulingLink{}, repository.ErrLinkNotFound)
			},
			chosenStart: start,
			wantErr:     ErrLinkNotFound,
		},
		{
			name: "链接已过期",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				link.ExpiresAt = now.Add(-time.Hour)
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
			},
			chosenStart: start,
			wantErr:     ErrLinkExpired,
		},
		{
			name: "链接已被使用",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				link.Used = true
				link.InterviewID = 77
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
			},
			chosenStart: start,
			wantErr:     ErrLinkAlreadyUsed,
		},
		{
			name: "所选时间在窗口外",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(testLink(now), nil)
			},
			chosenStart: now.Add(30 * 24 * time.Hour),
			wantErr:     ErrOutOfRange,
		},
		{
			name: "所选时间已经过去",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(testLink(now), nil)
			},
			chosenStart: now.Add(-time.Hour),
			wantErr:     ErrOutOfRange,
		},
		{
			name: "预约前核查发现日历冲突",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(testLink(now), nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, start, start.Add(time.Hour)).Return(true, nil)
			},
			chosenStart: start,
			wantErr:     ErrConflictDetected,
		},
		{
			name: "并发抢占落败",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(testLink(now), nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, start, start.Add(time.Hour)).Return(false, nil)
				mocks.repo.EXPECT().ClaimByToken(gomock.Any(), "tok-1").
					Return(repository.ErrLinkAlreadyUsed)
			},
			chosenStart: start,
			wantErr:     ErrBookingConflict,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			id, rescheduleToken, err := mocks.newService().Book(context.Background(), "tok-1", tc.chosenStart)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
			assert.Equal(t, tc.wantToken, rescheduleToken != "")
		})
	}
}

func TestLinkService_Book_ReleaseClaimOnInterviewFailure(t *testing.T) {
	now := time.Now()
	start := now.Add(2 * time.Hour).Truncate(time.Minute)
	link := testLink(now)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newLinkSvcMocks(ctrl)
	mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
	mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
		[]int64{101, 102}, start, start.Add(time.Hour)).Return(false, nil)
	mocks.repo.EXPECT().ClaimByToken(gomock.Any(), "tok-1").Return(nil)
	mocks.interviewer.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(int64(0), errors.New("数据库不可用"))
	// 面试没建出来，抢占必须被回滚
	mocks.repo.EXPECT().ReleaseClaim(gomock.Any(), link).Return(nil)

	_, _, err := mocks.newService().Book(context.Background(), "tok-1", start)
	assert.ErrorContains(t, err, "创建面试失败")
}

func TestLinkService_Book_CompensateOnAttachFailure(t *testing.T) {
	now := time.Now()
	start := now.Add(2 * time.Hour).Truncate(time.Minute)
	link := testLink(now)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newLinkSvcMocks(ctrl)
	mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
	mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
		[]int64{101, 102}, start, start.Add(time.Hour)).Return(false, nil)
	mocks.repo.EXPECT().ClaimByToken(gomock.Any(), "tok-1").Return(nil)
	mocks.interviewer.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(77), nil)
	mocks.repo.EXPECT().AttachInterview(gomock.Any(), link, int64(77)).
		Return(errors.New("数据库不可用"))
	// 面试挂不上链接：已建的面试要取消，抢占要回滚，不能留下孤儿状态
	mocks.interviewer.EXPECT().Cancel(gomock.Any(), int64(77)).Return(nil)
	mocks.repo.EXPECT().ReleaseClaim(gomock.Any(), link).Return(nil)

	_, _, err := mocks.newService().Book(context.Background(), "tok-1", start)
	assert.ErrorContains(t, err, "关联面试失败")
}

func bookedLink(now time.Time) domain.SchedulingLink {
	link := testLink(now)
	link.Used = true
	link.InterviewID = 77
	link.RescheduleToken = "r-tok"
	link.CalendarEvents = []domain.CalendarEvent{
		{Uid: 101, Provider: "google", EventID: "evt-101"},
	}
	return link
}

func TestLinkService_Reschedule(t *testing.T) {
	now := time.Now()
	newStart := now.Add(48 * time.Hour).Truncate(time.Minute)
	scheduled := interview.Interview{
		ID:              77,
		ApplicationID:   11,
		ScheduledAt:     now.Add(24 * time.Hour),
		DurationMinutes: 60,
		Status:          interview.StatusScheduled,
		LocationType:    interview.LocationVideo,
	}

	testCases := []struct {
		name     string
		mock     func(mocks *linkSvcMocks)
		newStart time.Time

		wantErr error
	}{
		{
			name: "改期成功",
			mock: func(mocks *linkSvcMocks) {
				link := bookedLink(now)
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(link, nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(scheduled, nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, newStart, newStart.Add(time.Hour)).Return(false, nil)
				mocks.interviewer.EXPECT().Reschedule(gomock.Any(), int64(77), newStart).Return(nil)
				mocks.calendarSvc.EXPECT().UpdateEvent(gomock.Any(), int64(101),
					calendar.EventRef{Provider: calendar.ProviderGoogle, EventID: "evt-101"},
					gomock.Any()).Return(nil)
				mocks.producer.EXPECT().Produce(gomock.Any(), event.BookingEvent{
					Type:           event.TypeRescheduled,
					LinkID:         1,
					ApplicationID:  11,
					InterviewID:    77,
					InterviewerIDs: []int64{101, 102},
					StartTime:      newStart.UnixMilli(),
				}).Return(nil)
			},
			newStart: newStart,
		},
		{
			name: "链接不允许改期",
			mock: func(mocks *linkSvcMocks) {
				link := bookedLink(now)
				link.AllowReschedule = false
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(link, nil)
			},
			newStart: newStart,
			wantErr:  ErrRescheduleDisabled,
		},
		{
			name: "面试已开始不能改期",
			mock: func(mocks *linkSvcMocks) {
				past := scheduled
				past.ScheduledAt = now.Add(-time.Hour)
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(bookedLink(now), nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(past, nil)
			},
			newStart: newStart,
			wantErr:  ErrInterviewInPast,
		},
		{
			name: "新时间在窗口外",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(bookedLink(now), nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(scheduled, nil)
			},
			newStart: now.Add(30 * 24 * time.Hour),
			wantErr:  ErrOutOfRange,
		},
		{
			name: "新时间有日历冲突",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(bookedLink(now), nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(scheduled, nil)
				mocks.avail.EXPECT().HasConflictAnyOf(gomock.Any(),
					[]int64{101, 102}, newStart, newStart.Add(time.Hour)).Return(true, nil)
			},
			newStart: newStart,
			wantErr:  ErrConflictDetected,
		},
		{
			name: "凭证不存在",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").
					Return(domain.SchedulingLink{}, repository.ErrLinkNotFound)
			},
			newStart: newStart,
			wantErr:  ErrLinkNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			err := mocks.newService().Reschedule(context.Background(), "r-tok", tc.newStart)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLinkService_Cancel(t *testing.T) {
	now := time.Now()
	scheduledAt := now.Add(24 * time.Hour)
	scheduled := interview.Interview{
		ID:              77,
		ApplicationID:   11,
		ScheduledAt:     scheduledAt,
		DurationMinutes: 60,
		Status:          interview.StatusScheduled,
		LocationType:    interview.LocationVideo,
	}

	testCases := []struct {
		name string
		mock func(mocks *linkSvcMocks)

		wantErr error
	}{
		{
			name: "取消成功后链接恢复可预约",
			mock: func(mocks *linkSvcMocks) {
				link := bookedLink(now)
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(link, nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(scheduled, nil)
				mocks.interviewer.EXPECT().Cancel(gomock.Any(), int64(77)).Return(nil)
				mocks.calendarSvc.EXPECT().DeleteEvent(gomock.Any(), int64(101),
					calendar.EventRef{Provider: calendar.ProviderGoogle, EventID: "evt-101"}).Return(nil)
				mocks.repo.EXPECT().Reset(gomock.Any(), link).Return(nil)
				mocks.producer.EXPECT().Produce(gomock.Any(), event.BookingEvent{
					Type:           event.TypeCancelled,
					LinkID:         1,
					ApplicationID:  11,
					InterviewID:    77,
					InterviewerIDs: []int64{101, 102},
					StartTime:      scheduledAt.UnixMilli(),
				}).Return(nil)
			},
		},
		{
			name: "面试已开始不能取消",
			mock: func(mocks *linkSvcMocks) {
				past := scheduled
				past.ScheduledAt = now.Add(-time.Hour)
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(bookedLink(now), nil)
				mocks.interviewer.EXPECT().FindByID(gomock.Any(), int64(77)).Return(past, nil)
			},
			wantErr: ErrInterviewInPast,
		},
		{
			name: "凭证对应的链接没有生效中的预约",
			mock: func(mocks *linkSvcMocks) {
				link := bookedLink(now)
				link.Used = false
				link.InterviewID = 0
				mocks.repo.EXPECT().FindByRescheduleToken(gomock.Any(), "r-tok").Return(link, nil)
			},
			wantErr: ErrLinkNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			err := mocks.newService().Cancel(context.Background(), "r-tok")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestLinkService_GetSlots(t *testing.T) {
	now := time.Now()
	link := testLink(now)
	windowStart := link.StartDate

	testCases := []struct {
		name string
		mock func(mocks *linkSvcMocks)

		want    []domain.Slot
		wantErr error
	}{
		{
			name: "按时长和间隔切分槽位",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
				mocks.avail.EXPECT().CommonAvailability(gomock.Any(),
					[]int64{101, 102}, windowStart, link.EndDate, time.Hour).
					Return([]interval.Interval{
						{Start: windowStart, End: windowStart.Add(3 * time.Hour)},
					}, nil)
			},
			// 时长 60 分钟，buffer 15 分钟，步长 75 分钟
			want: []domain.Slot{
				{Start: windowStart, End: windowStart.Add(time.Hour)},
				{Start: windowStart.Add(75 * time.Minute), End: windowStart.Add(135 * time.Minute)},
			},
		},
		{
			name: "没有共同空闲时返回空槽位",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
				mocks.avail.EXPECT().CommonAvailability(gomock.Any(),
					[]int64{101, 102}, windowStart, link.EndDate, time.Hour).
					Return([]interval.Interval{}, nil)
			},
			want: []domain.Slot{},
		},
		{
			name: "已使用的链接不再出槽位",
			mock: func(mocks *linkSvcMocks) {
				used := bookedLink(now)
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(used, nil)
			},
			wantErr: ErrLinkAlreadyUsed,
		},
		{
			name: "日历提供商不可用",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByToken(gomock.Any(), "tok-1").Return(link, nil)
				mocks.avail.EXPECT().CommonAvailability(gomock.Any(),
					[]int64{101, 102}, windowStart, link.EndDate, time.Hour).
					Return(nil, ErrUpstreamUnavailable)
			},
			wantErr: ErrUpstreamUnavailable,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			got, err := mocks.newService().GetSlots(context.Background(), "tok-1")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLinkService_GenerateRescheduleToken(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name string
		mock func(mocks *linkSvcMocks)

		wantToken string
		wantErr   error
	}{
		{
			name: "已有凭证直接返回",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(bookedLink(now), nil)
			},
			wantToken: "r-tok",
		},
		{
			name: "首次生成后以落库的凭证为准",
			mock: func(mocks *linkSvcMocks) {
				link := bookedLink(now)
				link.RescheduleToken = ""
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(link, nil)
				mocks.repo.EXPECT().SetRescheduleToken(gomock.Any(), link, gomock.Any()).Return(nil)
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(bookedLink(now), nil)
			},
			wantToken: "r-tok",
		},
		{
			name: "链接尚未被预约",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testLink(now), nil)
			},
			wantErr: ErrInvalidInput,
		},
		{
			name: "链接不存在",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.SchedulingLink{}, repository.ErrLinkNotFound)
			},
			wantErr: ErrLinkNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			token, err := mocks.newService().GenerateRescheduleToken(context.Background(), 1)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantToken, token)
		})
	}
}

// 两个并发的生成请求里，条件更新只有一个能写进去。
// 输家的写入零行命中，必须返回库里实际存在的凭证，而不是自己白生成的那个。
func TestLinkService_GenerateRescheduleToken_LostRaceReturnsPersisted(t *testing.T) {
	now := time.Now()
	link := bookedLink(now)
	link.RescheduleToken = ""

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mocks := newLinkSvcMocks(ctrl)
	mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(link, nil)
	var minted string
	mocks.repo.EXPECT().SetRescheduleToken(gomock.Any(), link, gomock.Any()).
		DoAndReturn(func(ctx context.Context, l domain.SchedulingLink, token string) error {
			minted = token
			return nil
		})
	won := bookedLink(now)
	won.RescheduleToken = "r-won"
	mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(won, nil)

	token, err := mocks.newService().GenerateRescheduleToken(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "r-won", token)
	assert.NotEqual(t, minted, token)
}

func TestLinkService_Delete(t *testing.T) {
	now := time.Now()

	testCases := []struct {
		name        string
		mock        func(mocks *linkSvcMocks)
		requesterID int64

		wantErr error
	}{
		{
			name: "删除成功",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(link, nil)
				mocks.repo.EXPECT().Delete(gomock.Any(), link, int64(9)).Return(int64(1), nil)
			},
			requesterID: 9,
		},
		{
			name: "非创建者不能删除",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(testLink(now), nil)
			},
			requesterID: 8,
			wantErr:     ErrForbidden,
		},
		{
			name: "已使用的链接不能删除",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(bookedLink(now), nil)
			},
			requesterID: 9,
			wantErr:     ErrLinkAlreadyUsed,
		},
		{
			name: "读取和删除之间被并发预约",
			mock: func(mocks *linkSvcMocks) {
				link := testLink(now)
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(link, nil)
				mocks.repo.EXPECT().Delete(gomock.Any(), link, int64(9)).Return(int64(0), nil)
			},
			requesterID: 9,
			wantErr:     ErrLinkAlreadyUsed,
		},
		{
			name: "链接不存在",
			mock: func(mocks *linkSvcMocks) {
				mocks.repo.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(domain.SchedulingLink{}, repository.ErrLinkNotFound)
			},
			requesterID: 9,
			wantErr:     ErrLinkNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mocks := newLinkSvcMocks(ctrl)
			tc.mock(mocks)
			err := mocks.newService().Delete(context.Background(), 1, tc.requesterID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
