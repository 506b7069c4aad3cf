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

package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/cache"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/dao"
)

var (
	// ErrLinkNotFound 链接不存在
	ErrLinkNotFound = dao.ErrLinkNotFound
	// ErrLinkAlreadyUsed 条件更新未命中，链接已被占用
	ErrLinkAlreadyUsed = dao.ErrLinkAlreadyUsed
)

//go:generate mockgen -source=./link.go -package=repomocks -destination=./mocks/link.mock.go LinkRepository

// LinkRepository 定义预约链接的仓储接口。
// 所有会改变链接状态的方法都要先让缓存失效。
type LinkRepository interface {
	Create(ctx context.Context, link domain.SchedulingLink) (int64, error)
	FindByToken(ctx context.Context, token string) (domain.SchedulingLink, error)
	FindByRescheduleToken(ctx context.Context, token string) (domain.SchedulingLink, error)
	FindByID(ctx context.Context, id int64) (domain.SchedulingLink, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.SchedulingLink, error)

	// ClaimByToken 抢占链接，并发场景下至多一个调用成功。
	ClaimByToken(ctx context.Context, token string) error
	// AttachInterview 把面试挂到已抢占的链接上。
	AttachInterview(ctx context.Context, link domain.SchedulingLink, interviewID int64) error
	// ReleaseClaim 回滚一次失败的抢占。
	ReleaseClaim(ctx context.Context, link domain.SchedulingLink) error
	// SetRescheduleToken 写入改期凭证，已存在时保持原值。
	SetRescheduleToken(ctx context.Context, link domain.SchedulingLink, token string) error
	// UpdateCalendarEvents 保存远端日历事件引用。
	UpdateCalendarEvents(ctx context.Context, link domain.SchedulingLink, events []domain.CalendarEvent) error
	// Reset 取消后把链接恢复为可预约状态。
	Reset(ctx context.Context, link domain.SchedulingLink) error
	// Delete 创建者删除未使用的链接，返回实际删除的行数。
	Delete(ctx context.Context, link domain.SchedulingLink, requesterID int64) (int64, error)
	// DeleteUnusedExpiredBefore 清理过期已久且从未使用的链接。
	DeleteUnusedExpiredBefore(ctx context.Context, before time.Time, limit int) (int64, error)
}

type linkRepository struct {
	dao    dao.SchedulingLinkDAO
	cache  cache.LinkCache
	logger *elog.Component
}

func NewLinkRepository(d dao.SchedulingLinkDAO, c cache.LinkCache) LinkRepository {
	return &linkRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *linkRepository) Create(ctx context.Context, link domain.SchedulingLink) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(link))
}

func (r *linkRepository) FindByToken(ctx context.Context, token string) (domain.SchedulingLink, error) {
	cached, err := r.cache.GetByToken(ctx, token)
	if err == nil {
		return cached, nil
	}
	found, err := r.dao.FindByToken(ctx, token)
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	link := r.toDomain(found)
	if e := r.cache.SetByToken(ctx, link); e != nil {
		r.logger.Error("缓存预约链接失败", elog.FieldErr(e))
	}
	return link, nil
}

func (r *linkRepository) FindByRescheduleToken(ctx context.Context, token string) (domain.SchedulingLink, error) {
	found, err := r.dao.FindByRescheduleToken(ctx, token)
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	return r.toDomain(found), nil
}

func (r *linkRepository) FindByID(ctx context.Context, id int64) (domain.SchedulingLink, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SchedulingLink{}, err
	}
	return r.toDomain(found), nil
}

func (r *linkRepository) FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.SchedulingLink, error) {
	found, err := r.dao.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.SchedulingLink) domain.SchedulingLink {
		return r.toDomain(src)
	}), nil
}

func (r *linkRepository) ClaimByToken(ctx context.Context, token string) error {
	r.invalidate(ctx, token)
	return r.dao.ClaimByToken(ctx, token)
}

func (r *linkRepository) AttachInterview(ctx context.Context, link domain.SchedulingLink, interviewID int64) error {
	r.invalidate(ctx, link.Token)
	return r.dao.AttachInterview(ctx, link.ID, interviewID)
}

func (r *linkRepository) ReleaseClaim(ctx context.Context, link domain.SchedulingLink) error {
	r.invalidate(ctx, link.Token)
	return r.dao.ReleaseClaim(ctx, link.ID)
}

func (r *linkRepository) SetRescheduleToken(ctx context.Context, link domain.SchedulingLink, token string) error {
	r.invalidate(ctx, link.Token)
	return r.dao.SetRescheduleToken(ctx, link.ID, token)
}

func (r *linkRepository) UpdateCalendarEvents(ctx context.Context, link domain.SchedulingLink, events []domain.CalendarEvent) error {
	r.invalidate(ctx, link.Token)
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return r.dao.UpdateCalendarEvents(ctx, link.ID, string(data))
}

func (r *linkRepository) Reset(ctx context.Context, link domain.SchedulingLink) error {
	r.invalidate(ctx, link.Token)
	return r.dao.ResetByID(ctx, link.ID)
}

func (r *linkRepository) Delete(ctx context.Context, link domain.SchedulingLink, requesterID int64) (int64, error) {
	r.invalidate(ctx, link.Token)
	return r.dao.DeleteByID(ctx, link.ID, requesterID)
}

func (r *linkRepository) DeleteUnusedExpiredBefore(ctx context.Context, before time.Time, limit int) (int64, error) {
	return r.dao.DeleteUnusedExpiredBefore(ctx, before.UnixMilli(), limit)
}

func (r *linkRepository) invalidate(ctx context.Context, token string) {
	if err := r.cache.DelByToken(ctx, token); err != nil {
		r.logger.Error("失效预约链接缓存失败", elog.FieldErr(err))
	}
}

func (r *linkRepository) toEntity(l domain.SchedulingLink) dao.SchedulingLink {
	interviewerIDs, _ := json.Marshal(l.InterviewerIDs)
	var events string
	if len(l.CalendarEvents) > 0 {
		data, _ := json.Marshal(l.CalendarEvents)
		events = string(data)
	}
	var expiresAt int64
	if !l.ExpiresAt.IsZero() {
		expiresAt = l.ExpiresAt.UnixMilli()
	}
	return dao.SchedulingLink{
		ID:               l.ID,
		Token:            l.Token,
		ApplicationID:    l.ApplicationID,
		InterviewStageID: sql.Null[int64]{V: l.InterviewStageID, Valid: l.InterviewStageID != 0},
		InterviewerIDs:   string(interviewerIDs),
		DurationMinutes:  l.DurationMinutes,
		BufferMinutes:    l.BufferMinutes,
		LocationType:     l.LocationType.String(),
		MeetingLink:      l.MeetingLink,
		StartDate:        l.StartDate.UnixMilli(),
		EndDate:          l.EndDate.UnixMilli(),
		ExpiresAt:        expiresAt,
		Used:             l.Used,
		InterviewID:      sql.Null[int64]{V: l.InterviewID, Valid: l.InterviewID != 0},
		AllowReschedule:  l.AllowReschedule,
		RescheduleToken:  sql.Null[string]{V: l.RescheduleToken, Valid: l.RescheduleToken != ""},
		CalendarEvents:   events,
		CreatedBy:        l.CreatedBy,
	}
}

func (r *linkRepository) toDomain(l dao.SchedulingLink) domain.SchedulingLink {
	var interviewerIDs []int64
	_ = json.Unmarshal([]byte(l.InterviewerIDs), &interviewerIDs)
	var events []domain.CalendarEvent
	if l.CalendarEvents != "" {
		_ = json.Unmarshal([]byte(l.CalendarEvents), &events)
	}
	var expiresAt time.Time
	if l.ExpiresAt > 0 {
		expiresAt = time.UnixMilli(l.ExpiresAt)
	}
	var interviewID int64
	if l.InterviewID.Valid {
		interviewID = l.InterviewID.V
	}
	var rescheduleToken string
	if l.RescheduleToken.Valid {
		rescheduleToken = l.RescheduleToken.V
	}
	var stageID int64
	if l.InterviewStageID.Valid {
		stageID = l.InterviewStageID.V
	}
	return domain.SchedulingLink{
		ID:               l.ID,
		Token:            l.Token,
		ApplicationID:    l.ApplicationID,
		InterviewStageID: stageID,
		InterviewerIDs:   interviewerIDs,
		DurationMinutes:  l.DurationMinutes,
		BufferMinutes:    l.BufferMinutes,
		LocationType:     interview.LocationType(l.LocationType),
		MeetingLink:      l.MeetingLink,
		StartDate:        time.UnixMilli(l.StartDate),
		EndDate:          time.UnixMilli(l.EndDate),
		ExpiresAt:        expiresAt,
		Used:             l.Used,
		InterviewID:      interviewID,
		AllowReschedule:  l.AllowReschedule,
		RescheduleToken:  rescheduleToken,
		CalendarEvents:   events,
		CreatedBy:        l.CreatedBy,
	}
}
