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
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview/internal/repository"
)

//go:generate mockgen -source=./interview.go -package=interviewmocks -destination=../../mocks/interview.mock.go Service

// ErrInvalidInterview 面试数据不完整或不合法
var ErrInvalidInterview = errors.New("面试数据不合法")

// Service 定义了面试实体的业务服务接口。
// 预约、改期的业务规则由调用方负责，这里只维护实体本身。
type Service interface {
	// Create 创建一场状态为 SCHEDULED 的面试。
	Create(ctx context.Context, iv domain.Interview) (int64, error)
	// Reschedule 把面试改到新的开始时间。
	Reschedule(ctx context.Context, id int64, newStart time.Time) error
	// Cancel 取消面试。
	Cancel(ctx context.Context, id int64) error
	// FindByID 根据ID查找面试。
	FindByID(ctx context.Context, id int64) (domain.Interview, error)
	// ListByApplication 查找一次投递下的所有面试。
	ListByApplication(ctx context.Context, applicationID int64) ([]domain.Interview, error)
}

type interviewService struct {
	repo repository.InterviewRepository
}

func NewService(repo repository.InterviewRepository) Service {
	return &interviewService{repo: repo}
}

func (s *interviewService) Create(ctx context.Context, iv domain.Interview) (int64, error) {
	iv.Status = domain.StatusScheduled
	if !iv.IsValid() {
		return 0, ErrInvalidInterview
	}
	return s.repo.Create(ctx, iv)
}

func (s *interviewService) Reschedule(ctx context.Context, id int64, newStart time.Time) error {
	if newStart.IsZero() {
		return ErrInvalidInterview
	}
	return s.repo.UpdateScheduledAt(ctx, id, newStart)
}

func (s *interviewService) Cancel(ctx context.Context, id int64) error {
	return s.repo.UpdateStatus(ctx, id, domain.StatusCancelled)
}

func (s *interviewService) FindByID(ctx context.Context, id int64) (domain.Interview, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *interviewService) ListByApplication(ctx context.Context, applicationID int64) ([]domain.Interview, error) {
	return s.repo.FindByApplicationID(ctx, applicationID)
}
