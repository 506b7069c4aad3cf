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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrProfileNotFound 表示用户还没有接入任何日历。
var ErrProfileNotFound = errors.New("日历档案不存在")

// CalendarProfile 每个用户一条，记录提供商、凭证与可用性偏好。
type CalendarProfile struct {
	Id           int64  `gorm:"primaryKey;autoIncrement;comment:主键ID"`
	Uid          int64  `gorm:"not null;uniqueIndex:unq_uid;comment:用户ID"`
	Provider     string `gorm:"type:VARCHAR(32);not null;comment:日历提供商枚举 google/outlook"`
	Credential   string `gorm:"type:TEXT;comment:提供商侧的不透明凭证，JSON"`
	Timezone     string `gorm:"type:VARCHAR(64);comment:IANA 时区标识"`
	WorkingHours string `gorm:"type:TEXT;comment:每周工作时间窗口，JSON 数组"`

	Ctime int64
	Utime int64
}

func (CalendarProfile) TableName() string {
	return "calendar_profiles"
}

type ProfileDAO interface {
	FindByUid(ctx context.Context, uid int64) (CalendarProfile, error)
	Upsert(ctx context.Context, profile CalendarProfile) error
	UpsertCredential(ctx context.Context, uid int64, provider, credential string) error
}

type GORMProfileDAO struct {
	db *egorm.Component
}

func NewGORMProfileDAO(db *egorm.Component) ProfileDAO {
	return &GORMProfileDAO{db: db}
}

func (g *GORMProfileDAO) FindByUid(ctx context.Context, uid int64) (CalendarProfile, error) {
	var res CalendarProfile
	err := g.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CalendarProfile{}, ErrProfileNotFound
	}
	return res, err
}

func (g *GORMProfileDAO) Upsert(ctx context.Context, profile CalendarProfile) error {
	now := time.Now().UnixMilli()
	profile.Ctime, profile.Utime = now, now
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"timezone":      profile.Timezone,
			"working_hours": profile.WorkingHours,
			"utime":         now,
		}),
	}).Create(&profile).Error
}

func (g *GORMProfileDAO) UpsertCredential(ctx context.Context, uid int64, provider, credential string) error {
	now := time.Now().UnixMilli()
	profile := CalendarProfile{
		Uid:        uid,
		Provider:   provider,
		Credential: credential,
		Ctime:      now,
		Utime:      now,
	}
	return g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "uid"}},
		DoUpdates: clause.Assignments(map[string]any{
			"provider":   provider,
			"credential": credential,
			"utime":      now,
		}),
	}).Create(&profile).Error
}
