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

package web

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/repository"
	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/service"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"golang.org/x/oauth2"
)

var _ ginx.Handler = &Handler{}

// Handler 负责日历接入：OAuth 授权与日历档案（时区、工作时间）的维护。
type Handler struct {
	svc  service.Service
	cfgs map[domain.ProviderType]*oauth2.Config
}

func NewHandler(svc service.Service, cfgs map[domain.ProviderType]*oauth2.Config) *Handler {
	return &Handler{svc: svc, cfgs: cfgs}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/calendar")
	g.POST("/oauth2/url", ginx.BS[AuthURLReq](h.AuthURL))
	g.POST("/oauth2/callback", ginx.BS[CallbackReq](h.Callback))
	g.POST("/profile/save", ginx.BS[SaveProfileReq](h.SaveProfile))
	g.GET("/profile", ginx.S(h.Profile))
}

// AuthURL 返回发起 OAuth 授权的跳转地址。
func (h *Handler) AuthURL(ctx *ginx.Context, req AuthURLReq, sess session.Session) (ginx.Result, error) {
	cfg, ok := h.cfgs[domain.ProviderType(req.Provider)]
	if !ok {
		return invalidInputResult, fmt.Errorf("不支持的日历提供商: %s", req.Provider)
	}
	state := fmt.Sprintf("uid-%d-%d", sess.Claims().Uid, time.Now().Unix())
	return ginx.Result{
		Data: AuthURLResp{
			URL:   cfg.AuthCodeURL(state, oauth2.AccessTypeOffline),
			State: state,
		},
	}, nil
}

// Callback 用授权码换取 token 并作为不透明凭证保存。
func (h *Handler) Callback(ctx *ginx.Context, req CallbackReq, sess session.Session) (ginx.Result, error) {
	provider := domain.ProviderType(req.Provider)
	cfg, ok := h.cfgs[provider]
	if !ok {
		return invalidInputResult, fmt.Errorf("不支持的日历提供商: %s", req.Provider)
	}
	token, err := cfg.Exchange(ctx, req.Code)
	if err != nil {
		return systemErrorResult, fmt.Errorf("换取授权 token 失败: %w", err)
	}
	credential, err := marshalToken(token)
	if err != nil {
		return systemErrorResult, err
	}
	err = h.svc.SaveCredential(ctx, sess.Claims().Uid, provider, credential)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// SaveProfile 保存时区与每周工作时间。
func (h *Handler) SaveProfile(ctx *ginx.Context, req SaveProfileReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SaveProfile(ctx, domain.Profile{
		Uid:      sess.Claims().Uid,
		Timezone: req.Timezone,
		WorkingHours: slice.Map(req.WorkingHours, func(_ int, src WorkingHour) interval.WorkingHour {
			return interval.WorkingHour{
				DayOfWeek: src.DayOfWeek,
				StartTime: src.StartTime,
				EndTime:   src.EndTime,
			}
		}),
	})
	if err != nil {
		return invalidInputResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// Profile 返回当前用户的日历档案。
func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	profile, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err == repository.ErrProfileNotFound {
		return ginx.Result{Data: Profile{Connected: false}}, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Profile{
			Provider:  profile.Provider.String(),
			Connected: profile.Credential != "",
			Timezone:  profile.Timezone,
			WorkingHours: slice.Map(profile.WorkingHours, func(_ int, src interval.WorkingHour) WorkingHour {
				return WorkingHour{
					DayOfWeek: src.DayOfWeek,
					StartTime: src.StartTime,
					EndTime:   src.EndTime,
				}
			}),
		},
	}, nil
}

func marshalToken(token *oauth2.Token) (string, error) {
	data, err := json.Marshal(token)
	if err != nil {
		return "", fmt.Errorf("序列化凭证失败: %w", err)
	}
	return string(data), nil
}
