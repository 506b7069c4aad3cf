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
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/tzx"
)

//go:generate mockgen -source=./service.go -package=calendarmocks -destination=../../mocks/calendar.mock.go Service

// Service 是日历模块对外的门面：管理用户的日历档案，
// 并把日历读写请求按档案上的提供商枚举分发到对应的 Port 适配器。
type Service interface {
	// Profile 返回用户的日历档案。
	Profile(ctx context.Context, uid int64) (domain.Profile, error)
	// SaveProfile 保存时区与工作时间设置。
	SaveProfile(ctx context.Context, profile domain.Profile) error
	// SaveCredential 保存 OAuth 授权得到的不透明凭证。
	SaveCredential(ctx context.Context, uid int64, provider domain.ProviderType, credential string) error

	// FetchBusy 拉取用户 [start, end) 内的忙碌时段。
	FetchBusy(ctx context.Context, uid int64, start, end time.Time) ([]interval.Interval, error)
	// HasConflict 判断 [start, end) 是否与用户的已有日程冲突。
	HasConflict(ctx context.Context, uid int64, start, end time.Time) (bool, error)
	// CreateEvent 在用户的远端日历上创建事件。
	CreateEvent(ctx context.Context, uid int64, details domain.EventDetails) (domain.EventRef, error)
	// UpdateEvent 更新远端事件。
	UpdateEvent(ctx context.Context, uid int64, ref domain.EventRef, details domain.EventDetails) error
	// DeleteEvent 删除远端事件。
	DeleteEvent(ctx context.Context, uid int64, ref domain.EventRef) error
}

type calendarService struct {
	repo  repository.ProfileRepository
	ports map[domain.ProviderType]Port
}

func NewService(repo repository.ProfileRepository, ports map[domain.ProviderType]Port) Service {
	return &calendarService{repo: repo, ports: ports}
}

func (s *calendarService) Profile(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *calendarService) SaveProfile(ctx context.Context, profile domain.Profile) error {
	if err := tzx.Validate(profile.Timezone); err != nil {
		return err
	}
	for _, wh := range profile.WorkingHours {
		if err := wh.Validate(); err != nil {
			return err
		}
	}
	return s.repo.Save(ctx, profile)
}

func (s *calendarService) SaveCredential(ctx context.Context, uid int64, provider domain.ProviderType, credential string) error {
	if !provider.IsValid() {
		return fmt.Errorf("不支持的日历提供商: %s", provider)
	}
	return s.repo.SaveCredential(ctx, uid, provider, credential)
}

func (s *calendarService) FetchBusy(ctx context.Context, uid int64, start, end time.Time) ([]interval.Interval, error) {
	profile, port, err := s.resolve(ctx, uid)
	if err != nil {
		return nil, err
	}
	return port.FetchBusy(ctx, profile.Credential, start, end)
}

func (s *calendarService) HasConflict(ctx context.Context, uid int64, start, end time.Time) (bool, error) {
	profile, port, err := s.resolve(ctx, uid)
	if err != nil {
		return false, err
	}
	return port.HasConflict(ctx, profile.Credential, start, end)
}

func (s *calendarService) CreateEvent(ctx context.Context, uid int64, details domain.EventDetails) (domain.EventRef, error) {
	profile, port, err := s.resolve(ctx, uid)
	if err != nil {
		return domain.EventRef{}, err
	}
	return port.CreateEvent(ctx, profile.Credential, details)
}

func (s *calendarService) UpdateEvent(ctx context.Context, uid int64, ref domain.EventRef, details domain.EventDetails) error {
	profile, port, err := s.resolve(ctx, uid)
	if err != nil {
		return err
	}
	return port.UpdateEvent(ctx, profile.Credential, ref, details)
}

func (s *calendarService) DeleteEvent(ctx context.Context, uid int64, ref domain.EventRef) error {
	profile, port, err := s.resolve(ctx, uid)
	if err != nil {
		return err
	}
	return port.DeleteEvent(ctx, profile.Credential, ref)
}

func (s *calendarService) resolve(ctx context.Context, uid int64) (domain.Profile, Port, error) {
	profile, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, nil, err
	}
	port, ok := s.ports[profile.Provider]
	if !ok {
		return domain.Profile{}, nil, fmt.Errorf("用户 %d 的日历提供商 %s 没有对应的适配器", uid, profile.Provider)
	}
	return profile, port, nil
}
