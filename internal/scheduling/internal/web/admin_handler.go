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
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/rajmahato111/HyreHR-sub001/internal/interview"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/service"
)

var _ ginx.Handler = &AdminHandler{}

// AdminHandler 招聘官侧的链接管理端点，走登录态。
type AdminHandler struct {
	svc service.LinkService
}

func NewAdminHandler(svc service.LinkService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PublicRoutes(_ *gin.Engine) {}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/scheduling/links")
	g.POST("/create", ginx.BS[CreateLinkReq](h.Create))
	g.POST("/list", ginx.B[ListLinkReq](h.List))
	g.POST("/delete", ginx.BS[IDReq](h.Delete))
	g.POST("/reschedule-token", ginx.BS[IDReq](h.GenerateRescheduleToken))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req CreateLinkReq, sess session.Session) (ginx.Result, error) {
	var expiresAt time.Time
	if req.ExpiresAt > 0 {
		expiresAt = time.UnixMilli(req.ExpiresAt)
	}
	link, err := h.svc.Create(ctx, domain.SchedulingLink{
		ApplicationID:    req.ApplicationID,
		InterviewStageID: req.InterviewStageID,
		InterviewerIDs:   req.InterviewerIDs,
		DurationMinutes:  req.DurationMinutes,
		BufferMinutes:    req.BufferMinutes,
		LocationType:     interview.LocationType(req.LocationType),
		MeetingLink:      req.MeetingLink,
		StartDate:        time.UnixMilli(req.StartDate),
		EndDate:          time.UnixMilli(req.EndDate),
		ExpiresAt:        expiresAt,
		AllowReschedule:  req.AllowReschedule,
		CreatedBy:        sess.Claims().Uid,
	})
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newSchedulingLink(link)}, nil
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListLinkReq) (ginx.Result, error) {
	links, err := h.svc.ListByApplication(ctx, req.ApplicationID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: slice.Map(links, func(_ int, src domain.SchedulingLink) SchedulingLink {
		return newSchedulingLink(src)
	})}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IDReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID, sess.Claims().Uid)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) GenerateRescheduleToken(ctx *ginx.Context, req IDReq, _ session.Session) (ginx.Result, error) {
	token, err := h.svc.GenerateRescheduleToken(ctx, req.ID)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: token}, nil
}
