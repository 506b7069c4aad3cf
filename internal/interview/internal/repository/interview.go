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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/repository/dao"
)

// ErrInterviewNotFound 没有找到对应的面试记录
var ErrInterviewNotFound = dao.ErrInterviewNotFound

// InterviewRepository 定义了面试实体的仓储接口。
// 它的职责是解耦 Domain 层与 DAO 层，处理两者之间的数据转换。
type InterviewRepository interface {
	// Create 创建一场新面试。
	Create(ctx context.Context, iv domain.Interview) (int64, error)
	// FindByID 根据ID查找面试。
	FindByID(ctx context.Context, id int64) (domain.Interview, error)
	// FindByApplicationID 查找一次投递下的所有面试。
	FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error)
	// UpdateScheduledAt 更新面试开始时间。
	UpdateScheduledAt(ctx context.Context, id int64, scheduledAt time.Time) error
	// UpdateStatus 更新面试状态。
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
}

type interviewRepository struct {
	dao dao.InterviewDAO
}

func NewInterviewRepository(d dao.InterviewDAO) InterviewRepository {
	return &interviewRepository{dao: d}
}

func (r *interviewRepository) Create(ctx context.Context, iv domain.Interview) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(iv))
}

func (r *interviewRepository) FindByID(ctx context.Context, id int64) (domain.Interview, error) {
	found, err := r.dao.First(ctx, id)
	if err != nil {
		return domain.Interview{}, err
	}
	return r.toDomain(found), nil
}

func (r *interviewRepository) FindByApplicationID(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	found, err := r.dao.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	return slice.Map(found, func(_ int, src dao.Interview) domain.Interview {
		return r.toDomain(src)
	}), nil
}

func (r *interviewRepository) UpdateScheduledAt(ctx context.Context, id int64, scheduledAt time.Time) error {
	return r.dao.UpdateScheduledAt(ctx, id, scheduledAt.UnixMilli())
}

func (r *interviewRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, status.String())
}

func (r *interviewRepository) toEntity(iv domain.Interview) dao.Interview {
	return dao.Interview{
		ID:              iv.ID,
		ApplicationID:   iv.ApplicationID,
		ScheduledAt:     iv.ScheduledAt.UnixMilli(),
		DurationMinutes: iv.DurationMinutes,
		Status:          iv.Status.String(),
		LocationType:    iv.LocationType.String(),
		MeetingLink:     iv.MeetingLink,
	}
}

func (r *interviewRepository) toDomain(iv dao.Interview) domain.Interview {
	return domain.Interview{
		ID:              iv.ID,
		ApplicationID:   iv.ApplicationID,
		ScheduledAt:     time.UnixMilli(iv.ScheduledAt),
		DurationMinutes: iv.DurationMinutes,
		Status:          domain.Status(iv.Status),
		LocationType:    domain.LocationType(iv.LocationType),
		MeetingLink:     iv.MeetingLink,
	}
}
