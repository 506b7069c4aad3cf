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
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/event"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository"
)

//go:generate mockgen -source=./link.go -package=schedulingmocks -destination=../../mocks/link.mock.go LinkService

// LinkService 实现预约链接的完整生命周期：
// UNUSED -> BOOKED -> （改期不变）/（取消后回到 UNUSED，可复用）。
// EXPIRED 不落库，每次读取时按 expiresAt 判定。
type LinkService interface {
	// Create 创建一条 UNUSED 链接，token 由服务端生成。
	Create(ctx context.Context, link domain.SchedulingLink) (domain.SchedulingLink, error)
	// LinkInfo 公共端点的链接信息，missing/expired 会被拒绝。
	LinkInfo(ctx context.Context, token string) (domain.SchedulingLink, error)
	// GetSlots 计算链接当前可预约的槽位，槽位边界是绝对时刻。
	GetSlots(ctx context.Context, token string) ([]domain.Slot, error)
	// Book 预约一个槽位，返回面试ID和改期凭证。
	// 同一 token 上的并发预约至多一个成功。
	Book(ctx context.Context, token string, chosenStart time.Time) (int64, string, error)
	// GenerateRescheduleToken 幂等：已生成过则返回已有凭证。
	GenerateRescheduleToken(ctx context.Context, linkID int64) (string, error)
	// RescheduleInfo 返回改期凭证对应的链接和当前面试。
	RescheduleInfo(ctx context.Context, rescheduleToken string) (domain.SchedulingLink, interview.Interview, error)
	// RescheduleSlots 计算改期可选的槽位。
	RescheduleSlots(ctx context.Context, rescheduleToken string) ([]domain.Slot, error)
	// Reschedule 只改面试时间，链接状态不变。
	Reschedule(ctx context.Context, rescheduleToken string, newStart time.Time) error
	// Cancel 取消面试并把链接恢复为可预约状态。
	Cancel(ctx context.Context, rescheduleToken string) error
	// Delete 只有创建者能删除，且仅限未使用的链接。
	Delete(ctx context.Context, id int64, requesterID int64) error
	// ListByApplication 管理端按投递列出链接。
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.SchedulingLink, error)
}

type linkService struct {
	repo         repository.LinkRepository
	interviewSvc interview.Service
	availability AvailabilityService
	calendarSvc  calendar.Service
	producer     event.BookingEventProducer
	logger       *elog.Component
}

func NewLinkService(repo repository.LinkRepository,
	interviewSvc interview.Service,
	availability AvailabilityService,
	calendarSvc calendar.Service,
	producer event.BookingEventProducer) LinkService {
	return &linkService{
		repo:         repo,
		interviewSvc: interviewSvc,
		availability: availability,
		calendarSvc:  calendarSvc,
		producer:     producer,
		logger:       elog.DefaultLogger,
	}
}

func (s *linkService) Create(ctx context.Context, link domain.SchedulingLink) (domain.SchedulingLink, error) {
	now := time.Now()
	if link.ApplicationID == 0 ||
		len(link.InterviewerIDs) == 0 ||
		link.DurationMinutes <= 0 ||
		link.BufferMinutes < 0 ||
		!link.LocationType.IsValid() ||
		!link.StartDate.Before(link.EndDate) ||
		link.StartDate.Before(now.Truncate(time.Minute)) {
		return domain.SchedulingLink{}, ErrInvalidInput
	}
	token, err := newToken()
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	// 视频面试没填会议链接就生成一个
	if link.LocationType == interview.LocationVideo && link.MeetingLink == "" {
		link.MeetingLink = fmt.Sprintf("https://meet.hyrehr.com/%s", shortuuid.New())
	}
	link.Token = token
	link.Used = false
	link.InterviewID = 0
	link.RescheduleToken = ""
	id, err := s.repo.Create(ctx, link)
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	link.ID = id
	return link, nil
}

func (s *linkService) LinkInfo(ctx context.Context, token string) (domain.SchedulingLink, error) {
	return s.findUsable(ctx, token)
}

func (s *linkService) GetSlots(ctx context.Context, token string) ([]domain.Slot, error) {
	link, err := s.findUsable(ctx, token)
	if err != nil {
		return nil, err
	}
	if link.Used {
		return nil, ErrLinkAlreadyUsed
	}
	return s.slots(ctx, link)
}

func (s *linkService) Book(ctx context.Context, token string, chosenStart time.Time) (int64, string, error) {
	link, err := s.findUsable(ctx, token)
	if err != nil {
		return 0, "", err
	}
	if link.Used {
		return 0, "", ErrLinkAlreadyUsed
	}
	now := time.Now()
	if chosenStart.Before(now) || !link.InWindow(chosenStart) {
		return 0, "", ErrOutOfRange
	}
	// 候选人拿到的槽位列表可能已经过时，预约前以日历为准再核查一次
	conflict, err := s.availability.HasConflictAnyOf(ctx, link.InterviewerIDs, chosenStart, chosenStart.Add(link.Duration()))
	if err != nil {
		return 0, "", err
	}
	if conflict {
		return 0, "", ErrConflictDetected
	}

	// 并发控制的关键一步：条件更新抢占链接，输家拿到预约冲突
	err = s.repo.ClaimByToken(ctx, token)
	if errors.Is(err, repository.ErrLinkAlreadyUsed) {
		return 0, "", ErrBookingConflict
	}
	if err != nil {
		return 0, "", err
	}

	interviewID, err := s.interviewSvc.Create(ctx, interview.Interview{
		ApplicationID:   link.ApplicationID,
		ScheduledAt:     chosenStart,
		DurationMinutes: link.DurationMinutes,
		LocationType:    link.LocationType,
		MeetingLink:     link.MeetingLink,
	})
	if err != nil {
		// 面试没建出来，补偿掉这次抢占，链接回到可预约状态
		if e := s.repo.ReleaseClaim(ctx, link); e != nil {
			s.logger.Error("回滚预约链接抢占失败",
				elog.FieldErr(e),
				elog.Int64("linkID", link.ID),
			)
		}
		return 0, "", fmt.Errorf("创建面试失败: %w", err)
	}
	if err = s.repo.AttachInterview(ctx, link, interviewID); err != nil {
		// 面试没挂上链接，预约没有完成：已建的面试和抢占一起补偿掉
		if e := s.interviewSvc.Cancel(ctx, interviewID); e != nil {
			s.logger.Error("回滚已创建的面试失败",
				elog.FieldErr(e),
				elog.Int64("interviewID", interviewID),
			)
		}
		if e := s.repo.ReleaseClaim(ctx, link); e != nil {
			s.logger.Error("回滚预约链接抢占失败",
				elog.FieldErr(e),
				elog.Int64("linkID", link.ID),
			)
		}
		return 0, "", fmt.Errorf("关联面试失败: %w", err)
	}

	rescheduleToken := link.RescheduleToken
	if rescheduleToken == "" {
		rescheduleToken, err = s.mintRescheduleToken(ctx, link)
		if err != nil {
			s.logger.Error("生成改期凭证失败",
				elog.FieldErr(err),
				elog.Int64("linkID", link.ID),
			)
		}
	}

	// 预约已落库，日历同步是尽力而为，失败只记日志不回滚
	s.syncCalendarCreate(ctx, link, interviewID, chosenStart)
	s.produce(ctx, event.BookingEvent{
		Type:           event.TypeBooked,
		LinkID:         link.ID,
		ApplicationID:  link.ApplicationID,
		InterviewID:    interviewID,
		InterviewerIDs: link.InterviewerIDs,
		StartTime:      chosenStart.UnixMilli(),
	})
	return interviewID, rescheduleToken, nil
}

func (s *linkService) GenerateRescheduleToken(ctx context.Context, linkID int64) (string, error) {
	link, err := s.repo.FindByID(ctx, linkID)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return "", ErrLinkNotFound
	}
	if err != nil {
		return "", err
	}
	if !link.Used || link.InterviewID == 0 {
		return "", ErrInvalidInput
	}
	if link.RescheduleToken != "" {
		return link.RescheduleToken, nil
	}
	return s.mintRescheduleToken(ctx, link)
}

func (s *linkService) RescheduleInfo(ctx context.Context, rescheduleToken string) (domain.SchedulingLink, interview.Interview, error) {
	link, err := s.findBooked(ctx, rescheduleToken)
	if err != nil {
		return domain.SchedulingLink{}, interview.Interview{}, err
	}
	iv, err := s.interviewSvc.FindByID(ctx, link.InterviewID)
	if err != nil {
		return domain.SchedulingLink{}, interview.Interview{}, err
	}
	return link, iv, nil
}

func (s *linkService) RescheduleSlots(ctx context.Context, rescheduleToken string) ([]domain.Slot, error) {
	link, err := s.findBooked(ctx, rescheduleToken)
	if err != nil {
		return nil, err
	}
	if !link.AllowReschedule {
		return nil, ErrRescheduleDisabled
	}
	return s.slots(ctx, link)
}

func (s *linkService) Reschedule(ctx context.Context, rescheduleToken string, newStart time.Time) error {
	link, err := s.findBooked(ctx, rescheduleToken)
	if err != nil {
		return err
	}
	if !link.AllowReschedule {
		return ErrRescheduleDisabled
	}
	iv, err := s.interviewSvc.FindByID(ctx, link.InterviewID)
	if err != nil {
		return err
	}
	now := time.Now()
	if iv.IsPast(now) {
		return ErrInterviewInPast
	}
	if newStart.Before(now) || !link.InWindow(newStart) {
		return ErrOutOfRange
	}
	conflict, err := s.availability.HasConflictAnyOf(ctx, link.InterviewerIDs, newStart, newStart.Add(link.Duration()))
	if err != nil {
		return err
	}
	if conflict {
		return ErrConflictDetected
	}
	if err = s.interviewSvc.Reschedule(ctx, link.InterviewID, newStart); err != nil {
		return err
	}

	// 链接状态不变，远端日历尽力而为地改到新时间
	s.syncCalendarUpdate(ctx, link, newStart)
	s.produce(ctx, event.BookingEvent{
		Type:           event.TypeRescheduled,
		LinkID:         link.ID,
		ApplicationID:  link.ApplicationID,
		InterviewID:    link.InterviewID,
		InterviewerIDs: link.InterviewerIDs,
		StartTime:      newStart.UnixMilli(),
	})
	return nil
}

func (s *linkService) Cancel(ctx context.Context, rescheduleToken string) error {
	link, err := s.findBooked(ctx, rescheduleToken)
	if err != nil {
		return err
	}
	iv, err := s.interviewSvc.FindByID(ctx, link.InterviewID)
	if err != nil {
		return err
	}
	if iv.IsPast(time.Now()) {
		return ErrInterviewInPast
	}
	if err = s.interviewSvc.Cancel(ctx, link.InterviewID); err != nil {
		return err
	}
	s.syncCalendarDelete(ctx, link)
	// 链接恢复为 UNUSED，同一 token 可以再次预约
	if err = s.repo.Reset(ctx, link); err != nil {
		return err
	}
	s.produce(ctx, event.BookingEvent{
		Type:           event.TypeCancelled,
		LinkID:         link.ID,
		ApplicationID:  link.ApplicationID,
		InterviewID:    link.InterviewID,
		InterviewerIDs: link.InterviewerIDs,
		StartTime:      iv.ScheduledAt.UnixMilli(),
	})
	return nil
}

func (s *linkService) Delete(ctx context.Context, id int64, requesterID int64) error {
	link, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return ErrLinkNotFound
	}
	if err != nil {
		return err
	}
	if link.CreatedBy != requesterID {
		return ErrForbidden
	}
	if link.Used {
		return ErrLinkAlreadyUsed
	}
	rows, err := s.repo.Delete(ctx, link, requesterID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 读取和删除之间状态变了，按已使用处理
		return ErrLinkAlreadyUsed
	}
	return nil
}

func (s *linkService) ListByApplication(ctx context.Context, applicationID int64) ([]domain.SchedulingLink, error) {
	return s.repo.FindByApplicationID(ctx, applicationID)
}

// findUsable 查 token 并做过期判定，过期不落库，读取时计算。
func (s *linkService) findUsable(ctx context.Context, token string) (domain.SchedulingLink, error) {
	link, err := s.repo.FindByToken(ctx, token)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return domain.SchedulingLink{}, ErrLinkNotFound
	}
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	if link.IsExpired(time.Now()) {
		return domain.SchedulingLink{}, ErrLinkExpired
	}
	return link, nil
}

// findBooked 按改期凭证查链接，要求链接上有生效中的预约。
func (s *linkService) findBooked(ctx context.Context, rescheduleToken string) (domain.SchedulingLink, error) {
	link, err := s.repo.FindByRescheduleToken(ctx, rescheduleToken)
	if errors.Is(err, repository.ErrLinkNotFound) {
		return domain.SchedulingLink{}, ErrLinkNotFound
	}
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	if link.IsExpired(time.Now()) {
		return domain.SchedulingLink{}, ErrLinkExpired
	}
	if !link.Used || link.InterviewID == 0 {
		return domain.SchedulingLink{}, ErrLinkNotFound
	}
	return link, nil
}

func (s *linkService) slots(ctx context.Context, link domain.SchedulingLink) ([]domain.Slot, error) {
	start := link.StartDate
	if now := time.Now(); now.After(start) {
		start = now
	}
	if !start.Before(link.EndDate) {
		return []domain.Slot{}, nil
	}
	common, err := s.availability.CommonAvailability(ctx, link.InterviewerIDs, start, link.EndDate, link.Duration())
	if err != nil {
		return nil, err
	}
	// 步长 = 时长 + buffer，保证相邻槽位之间留足间隔
	discretized := interval.Discretize(common, link.Duration(), link.Stride())
	return slice.Map(discretized, func(_ int, src interval.Interval) domain.Slot {
		return domain.Slot{Start: src.Start, End: src.End}
	}), nil
}

// mintRescheduleToken 生成并写入改期凭证。写入是写一次语义，
// 并发生成时条件更新可能零行命中，所以写完必须回读，以库里实际落下的为准。
func (s *linkService) mintRescheduleToken(ctx context.Context, link domain.SchedulingLink) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err = s.repo.SetRescheduleToken(ctx, link, token); err != nil {
		return "", err
	}
	latest, err := s.repo.FindByID(ctx, link.ID)
	if err != nil {
		return "", err
	}
	if latest.RescheduleToken == "" {
		return "", fmt.Errorf("改期凭证写入失败: linkID=%d", link.ID)
	}
	return latest.RescheduleToken, nil
}

func (s *linkService) syncCalendarCreate(ctx context.Context, link domain.SchedulingLink, interviewID int64, start time.Time) {
	details := s.eventDetails(link, start)
	events := make([]domain.CalendarEvent, 0, len(link.InterviewerIDs))
	for _, uid := range link.InterviewerIDs {
		ref, err := s.calendarSvc.CreateEvent(ctx, uid, details)
		if err != nil {
			s.logger.Error("创建远端日历事件失败",
				elog.FieldErr(err),
				elog.Int64("linkID", link.ID),
				elog.Int64("interviewID", interviewID),
				elog.Int64("uid", uid),
			)
			continue
		}
		events = append(events, domain.CalendarEvent{
			Uid:      uid,
			Provider: ref.Provider.String(),
			EventID:  ref.EventID,
		})
	}
	if len(events) == 0 {
		return
	}
	if err := s.repo.UpdateCalendarEvents(ctx, link, events); err != nil {
		s.logger.Error("保存远端日历事件引用失败",
			elog.FieldErr(err),
			elog.Int64("linkID", link.ID),
		)
	}
}

func (s *linkService) syncCalendarUpdate(ctx context.Context, link domain.SchedulingLink, start time.Time) {
	details := s.eventDetails(link, start)
	for _, evt := range link.CalendarEvents {
		ref := calendar.EventRef{Provider: calendar.ProviderType(evt.Provider), EventID: evt.EventID}
		if err := s.calendarSvc.UpdateEvent(ctx, evt.Uid, ref, details); err != nil {
			s.logger.Error("更新远端日历事件失败",
				elog.FieldErr(err),
				elog.Int64("linkID", link.ID),
				elog.Int64("uid", evt.Uid),
			)
		}
	}
}

func (s *linkService) syncCalendarDelete(ctx context.Context, link domain.SchedulingLink) {
	for _, evt := range link.CalendarEvents {
		ref := calendar.EventRef{Provider: calendar.ProviderType(evt.Provider), EventID: evt.EventID}
		if err := s.calendarSvc.DeleteEvent(ctx, evt.Uid, ref); err != nil {
			s.logger.Error("删除远端日历事件失败",
				elog.FieldErr(err),
				elog.Int64("linkID", link.ID),
				elog.Int64("uid", evt.Uid),
			)
		}
	}
}

func (s *linkService) eventDetails(link domain.SchedulingLink, start time.Time) calendar.EventDetails {
	return calendar.EventDetails{
		Summary:     fmt.Sprintf("面试（投递 %d）", link.ApplicationID),
		Description: "通过预约链接安排的面试",
		Start:       start,
		End:         start.Add(link.Duration()),
		MeetingLink: link.MeetingLink,
	}
}

func (s *linkService) produce(ctx context.Context, evt event.BookingEvent) {
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送预约事件失败",
			elog.FieldErr(err),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
}

// newToken 生成 256 bit 熵的不透明凭证，token 是公共端点唯一的访问控制。
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("生成凭证失败: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
