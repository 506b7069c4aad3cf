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
	"encoding/json"
	"fmt"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository/dao"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
)

// ErrProfileNotFound 透出给上层，语义与 dao 侧一致。
var ErrProfileNotFound = dao.ErrProfileNotFound

type ProfileRepository interface {
	FindByUid(ctx context.Context, uid int64) (domain.Profile, error)
	Save(ctx context.Context, profile domain.Profile) error
	SaveCredential(ctx context.Context, uid int64, provider domain.ProviderType, credential string) error
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(d dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: d}
}

func (r *profileRepository) FindByUid(ctx context.Context, uid int64) (domain.Profile, error) {
	entity, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	return r.toDomain(entity)
}

func (r *profileRepository) Save(ctx context.Context, profile domain.Profile) error {
	entity, err := r.toEntity(profile)
	if err != nil {
		return err
	}
	return r.dao.Upsert(ctx, entity)
}

func (r *profileRepository) SaveCredential(ctx context.Context, uid int64, provider domain.ProviderType, credential string) error {
	return r.dao.UpsertCredential(ctx, uid, provider.String(), credential)
}

func (r *profileRepository) toDomain(entity dao.CalendarProfile) (domain.Profile, error) {
	var hours []interval.WorkingHour
	if entity.WorkingHours != "" {
		if err := json.Unmarshal([]byte(entity.WorkingHours), &hours); err != nil {
			return domain.Profile{}, fmt.Errorf("解析工作时间失败: %w", err)
		}
	}
	return domain.Profile{
		Uid:          entity.Uid,
		Provider:     domain.ProviderType(entity.Provider),
		Credential:   entity.Credential,
		Timezone:     entity.Timezone,
		WorkingHours: hours,
	}, nil
}

func (r *profileRepository) toEntity(profile domain.Profile) (dao.CalendarProfile, error) {
	var hours string
	if len(profile.WorkingHours) > 0 {
		data, err := json.Marshal(profile.WorkingHours)
		if err != nil {
			return dao.CalendarProfile{}, fmt.Errorf("序列化工作时间失败: %w", err)
		}
		hours = string(data)
	}
	return dao.CalendarProfile{
		Uid:          profile.Uid,
		Provider:     profile.Provider.String(),
		Credential:   profile.Credential,
		Timezone:     profile.Timezone,
		WorkingHours: hours,
	}, nil
}
