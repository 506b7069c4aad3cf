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
)

// ErrInterviewNotFound 没有找到对应的面试记录
var ErrInterviewNotFound = errors.New("面试记录不存在")

// Interview 代表一场已排期的面试
type Interview struct {
	ID              int64  `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	ApplicationID   int64  `gorm:"type:BIGINT;NOT NULL;index:idx_application_id;comment:'关联的投递/申请ID'"`
	ScheduledAt     int64  `gorm:"type:BIGINT;NOT NULL;comment:'面试开始时间，毫秒时间戳'"`
	DurationMinutes int    `gorm:"type:INT;NOT NULL;comment:'面试时长，分钟'"`
	Status          string `gorm:"type:ENUM('SCHEDULED','CANCELLED','COMPLETED');NOT NULL;default:'SCHEDULED';comment:'面试状态'"`
	LocationType    string `gorm:"type:VARCHAR(32);NOT NULL;comment:'面试形式：VIDEO、PHONE、ONSITE'"`
	MeetingLink     string `gorm:"type:VARCHAR(1024);comment:'会议链接，线上面试使用'"`

	Ctime int64
	Utime int64
}

func (Interview) TableName() string {
	return "interviews"
}

// InterviewDAO 定义面试的数据访问接口
type InterviewDAO interface {
	Create(ctx context.Context, iv Interview) (int64, error)
	First(ctx context.Context, id int64) (Interview, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]Interview, error)
	UpdateScheduledAt(ctx context.Context, id int64, scheduledAt int64) error
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMInterviewDAO struct {
	db *egorm.Component
}

func NewGORMInterviewDAO(db *egorm.Component) InterviewDAO {
	return &GORMInterviewDAO{db: db}
}

func (g *GORMInterviewDAO) Create(ctx context.Context, iv Interview) (int64, error) {
	now := time.Now().UnixMilli()
	iv.Ctime, iv.Utime = now, now
	err := g.db.WithContext(ctx).Create(&iv).Error
	return iv.ID, err
}

func (g *GORMInterviewDAO) First(ctx context.Context, id int64) (Interview, error) {
	var iv Interview
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&iv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Interview{}, ErrInterviewNotFound
	}
	return iv, err
}

func (g *GORMInterviewDAO) FindByApplicationID(ctx context.Context, applicationID int64) ([]Interview, error) {
	var ivs []Interview
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("scheduled_at ASC").
		Find(&ivs).Error
	return ivs, err
}

func (g *GORMInterviewDAO) UpdateScheduledAt(ctx context.Context, id int64, scheduledAt int64) error {
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"scheduled_at": scheduledAt,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (g *GORMInterviewDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	res := g.db.WithContext(ctx).Model(&Interview{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
