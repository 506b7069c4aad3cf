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
	"database/sql"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	// ErrLinkNotFound 链接不存在
	ErrLinkNotFound = errors.New("预约链接不存在")
	// ErrLinkAlreadyUsed 条件更新未命中，链接已被占用
	ErrLinkAlreadyUsed = errors.New("预约链接已被使用")
	// ErrDuplicatedToken 凭证撞上唯一索引
	ErrDuplicatedToken = errors.New("预约凭证已存在")
)

// SchedulingLink 预约链接。
// used 列是并发控制的关键：UNUSED -> BOOKED 的翻转只能通过
// ClaimByToken 的条件更新完成，绝不允许读-改-写。
type SchedulingLink struct {
	ID               int64             `gorm:"type:BIGINT;primaryKey;autoIncrement;comment:'主键ID'"`
	Token            string            `gorm:"type:VARCHAR(128);NOT NULL;uniqueIndex:unq_token;comment:'预约凭证，唯一'"`
	ApplicationID    int64             `gorm:"type:BIGINT;NOT NULL;index:idx_application_id;comment:'关联的投递/申请ID'"`
	InterviewStageID sql.Null[int64]   `gorm:"type:BIGINT;comment:'面试阶段ID，可为空'"`
	InterviewerIDs   string            `gorm:"type:TEXT;NOT NULL;comment:'面试官ID列表，JSON'"`
	DurationMinutes  int               `gorm:"type:INT;NOT NULL;comment:'面试时长，分钟'"`
	BufferMinutes    int               `gorm:"type:INT;NOT NULL;default:0;comment:'相邻槽位之间的间隔，分钟'"`
	LocationType     string            `gorm:"type:VARCHAR(32);NOT NULL;comment:'面试形式：VIDEO、PHONE、ONSITE'"`
	MeetingLink      string            `gorm:"type:VARCHAR(1024);comment:'会议链接'"`
	StartDate        int64             `gorm:"type:BIGINT;NOT NULL;comment:'预约窗口开始，毫秒时间戳'"`
	EndDate          int64             `gorm:"type:BIGINT;NOT NULL;comment:'预约窗口结束，毫秒时间戳'"`
	ExpiresAt        int64             `gorm:"type:BIGINT;NOT NULL;default:0;comment:'链接过期时间，0表示永不过期'"`
	Used             bool              `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'是否已有生效中的预约'"`
	InterviewID      sql.Null[int64]   `gorm:"type:BIGINT;comment:'预约产生的面试ID，未预约时为空'"`
	AllowReschedule  bool              `gorm:"type:BOOLEAN;NOT NULL;default:false;comment:'是否允许候选人改期'"`
	RescheduleToken  sql.Null[string]  `gorm:"type:VARCHAR(128);uniqueIndex:unq_reschedule_token;comment:'改期凭证，首次预约后才生成'"`
	CalendarEvents   string            `gorm:"type:TEXT;comment:'各面试官远端日历事件引用，JSON'"`
	CreatedBy        int64             `gorm:"type:BIGINT;NOT NULL;index:idx_created_by;comment:'创建者ID'"`

	Ctime int64
	Utime int64
}

func (SchedulingLink) TableName() string {
	return "scheduling_links"
}

// SchedulingLinkDAO 定义预约链接的数据访问接口
type SchedulingLinkDAO interface {
	Create(ctx context.Context, link SchedulingLink) (int64, error)
	FindByToken(ctx context.Context, token string) (SchedulingLink, error)
	FindByRescheduleToken(ctx context.Context, token string) (SchedulingLink, error)
	FindByID(ctx context.Context, id int64) (SchedulingLink, error)
	FindByApplicationID(ctx context.Context, applicationID int64) ([]SchedulingLink, error)

	// ClaimByToken 以条件更新抢占链接：used 从 false 翻转为 true。
	// 零行命中返回 ErrLinkAlreadyUsed，并发预约中只有一个调用能成功。
	ClaimByToken(ctx context.Context, token string) error
	// AttachInterview 把预约产生的面试挂到已抢占的链接上。
	AttachInterview(ctx context.Context, id int64, interviewID int64) error
	// ReleaseClaim 回滚一次未挂上面试的抢占（面试创建失败时的补偿）。
	ReleaseClaim(ctx context.Context, id int64) error
	// SetRescheduleToken 只在尚未生成时写入，零行命中说明已被并发生成。
	SetRescheduleToken(ctx context.Context, id int64, token string) error
	// UpdateCalendarEvents 保存远端日历事件引用。
	UpdateCalendarEvents(ctx context.Context, id int64, events string) error
	// ResetByID 取消后把链接恢复为可预约状态。
	ResetByID(ctx context.Context, id int64) error
	// DeleteByID 只有创建者能删除，且仅限未使用的链接。
	DeleteByID(ctx context.Context, id int64, createdBy int64) (int64, error)
	// DeleteUnusedExpiredBefore 清理过期已久且从未使用的链接。
	DeleteUnusedExpiredBefore(ctx context.Context, before int64, limit int) (int64, error)
}

type GORMSchedulingLinkDAO struct {
	db *egorm.Component
}

func NewGORMSchedulingLinkDAO(db *egorm.Component) SchedulingLinkDAO {
	return &GORMSchedulingLinkDAO{db: db}
}

func (g *GORMSchedulingLinkDAO) Create(ctx context.Context, link SchedulingLink) (int64, error) {
	now := time.Now().UnixMilli()
	link.Ctime, link.Utime = now, now
	err := g.db.WithContext(ctx).Create(&link).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			// token 和 reschedule_token 上都有唯一索引
			return 0, ErrDuplicatedToken
		}
	}
	return link.ID, err
}

func (g *GORMSchedulingLinkDAO) FindByToken(ctx context.Context, token string) (SchedulingLink, error) {
	var link SchedulingLink
	err := g.db.WithContext(ctx).Where("token = ?", token).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SchedulingLink{}, ErrLinkNotFound
	}
	return link, err
}

func (g *GORMSchedulingLinkDAO) FindByRescheduleToken(ctx context.Context, token string) (SchedulingLink, error) {
	var link SchedulingLink
	err := g.db.WithContext(ctx).Where("reschedule_token = ?", token).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SchedulingLink{}, ErrLinkNotFound
	}
	return link, err
}

func (g *GORMSchedulingLinkDAO) FindByID(ctx context.Context, id int64) (SchedulingLink, error) {
	var link SchedulingLink
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return SchedulingLink{}, ErrLinkNotFound
	}
	return link, err
}

func (g *GORMSchedulingLinkDAO) FindByApplicationID(ctx context.Context, applicationID int64) ([]SchedulingLink, error) {
	var links []SchedulingLink
	err := g.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id DESC").
		Find(&links).Error
	return links, err
}

func (g *GORMSchedulingLinkDAO) ClaimByToken(ctx context.Context, token string) error {
	res := g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("token = ? AND used = ?", token, false).
		Updates(map[string]any{
			"used":  true,
			"utime": time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkAlreadyUsed
	}
	return nil
}

func (g *GORMSchedulingLinkDAO) AttachInterview(ctx context.Context, id int64, interviewID int64) error {
	res := g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("id = ? AND used = ?", id, true).
		Updates(map[string]any{
			"interview_id": interviewID,
			"utime":        time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

func (g *GORMSchedulingLinkDAO) ReleaseClaim(ctx context.Context, id int64) error {
	// 只回滚没有挂上面试的抢占，避免误伤已完成的预约
	return g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("id = ? AND used = ? AND interview_id IS NULL", id, true).
		Updates(map[string]any{
			"used":  false,
			"utime": time.Now().UnixMilli(),
		}).Error
}

func (g *GORMSchedulingLinkDAO) SetRescheduleToken(ctx context.Context, id int64, token string) error {
	return g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("id = ? AND reschedule_token IS NULL", id).
		Updates(map[string]any{
			"reschedule_token": token,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (g *GORMSchedulingLinkDAO) UpdateCalendarEvents(ctx context.Context, id int64, events string) error {
	return g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"calendar_events": events,
			"utime":           time.Now().UnixMilli(),
		}).Error
}

func (g *GORMSchedulingLinkDAO) ResetByID(ctx context.Context, id int64) error {
	res := g.db.WithContext(ctx).Model(&SchedulingLink{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"used":            false,
			"interview_id":    nil,
			"calendar_events": "",
			"utime":           time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrLinkNotFound
	}
	return nil
}

func (g *GORMSchedulingLinkDAO) DeleteByID(ctx context.Context, id int64, createdBy int64) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("id = ? AND created_by = ? AND used = ?", id, createdBy, false).
		Delete(&SchedulingLink{})
	return res.RowsAffected, res.Error
}

func (g *GORMSchedulingLinkDAO) DeleteUnusedExpiredBefore(ctx context.Context, before int64, limit int) (int64, error) {
	res := g.db.WithContext(ctx).
		Where("used = ? AND expires_at > 0 AND expires_at < ?", false, before).
		Limit(limit).
		Delete(&SchedulingLink{})
	return res.RowsAffected, res.Error
}
