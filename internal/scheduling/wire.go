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

//go:build wireinject

package scheduling

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/event"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/job"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/cache"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/dao"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/service"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/web"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	calendarModule *calendar.Module,
	interviewModule *interview.Module) (*Module, error) {
	wire.Build(
		initDAO,
		cache.NewLinkCache,
		repository.NewLinkRepository,
		event.NewBookingEventProducer,
		initAvailabilityService,
		service.NewLinkService,
		web.NewHandler,
		web.NewAdminHandler,
		initCleanJob,
		wire.FieldsOf(new(*calendar.Module), "Svc"),
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.SchedulingLinkDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMSchedulingLinkDAO(db)
}

// initAvailabilityService 单次日历提供商调用的超时从配置读取，默认 10s。
func initAvailabilityService(calendarSvc calendar.Service) service.AvailabilityService {
	timeout := econf.GetDuration("scheduling.providerTimeout")
	return service.NewAvailabilityService(calendarSvc, timeout)
}

func initCleanJob(repo repository.LinkRepository) *CleanExpiredLinksJob {
	retention := econf.GetDuration("scheduling.linkRetention")
	if retention <= 0 {
		// 过期链接保留 30 天，之后清理
		retention = 30 * 24 * time.Hour
	}
	limit := econf.GetInt("scheduling.cleanBatchSize")
	if limit <= 0 {
		limit = 100
	}
	return job.NewCleanExpiredLinksJob(repo, retention, limit)
}
