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

package calendar

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository/dao"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/service"
	googleport "github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/service/google"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/service/outlook"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/web"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"golang.org/x/oauth2/microsoft"
	calendarv3 "google.golang.org/api/calendar/v3"
)

func InitModule(db *egorm.Component) (*Module, error) {
	wire.Build(
		initDAO,
		repository.NewProfileRepository,
		initOAuthConfigs,
		initPorts,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return nil, nil
}

var initOnce sync.Once

func initDAO(db *egorm.Component) dao.ProfileDAO {
	initOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMProfileDAO(db)
}

// initOAuthConfigs 从配置读取每个提供商的 OAuth 应用信息。
func initOAuthConfigs() map[domain.ProviderType]*oauth2.Config {
	type providerCfg struct {
		ClientID     string `yaml:"clientId"`
		ClientSecret string `yaml:"clientSecret"`
		RedirectURL  string `yaml:"redirectUrl"`
	}
	type cfg struct {
		Google  providerCfg `yaml:"google"`
		Outlook providerCfg `yaml:"outlook"`
	}
	var c cfg
	err := econf.UnmarshalKey("calendar", &c)
	if err != nil {
		panic(err)
	}
	return map[domain.ProviderType]*oauth2.Config{
		domain.ProviderGoogle: {
			ClientID:     c.Google.ClientID,
			ClientSecret: c.Google.ClientSecret,
			RedirectURL:  c.Google.RedirectURL,
			Scopes:       []string{calendarv3.CalendarScope},
			Endpoint:     googleoauth.Endpoint,
		},
		domain.ProviderOutlook: {
			ClientID:     c.Outlook.ClientID,
			ClientSecret: c.Outlook.ClientSecret,
			RedirectURL:  c.Outlook.RedirectURL,
			Scopes:       []string{"Calendars.ReadWrite", "offline_access"},
			Endpoint:     microsoft.AzureADEndpoint("common"),
		},
	}
}

func initPorts(cfgs map[domain.ProviderType]*oauth2.Config) map[domain.ProviderType]service.Port {
	return map[domain.ProviderType]service.Port{
		domain.ProviderGoogle:  googleport.NewCalendar(cfgs[domain.ProviderGoogle]),
		domain.ProviderOutlook: outlook.NewCalendar(cfgs[domain.ProviderOutlook]),
	}
}
