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
	"github.com/gin-gonic/gin"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/tzx"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/service"
)

var _ ginx.Handler = &Handler{}

// Handler 是候选人侧的公共预约端点。
// 不要求登录，持有 token 即可操作，token 的熵就是全部的访问控制。
type Handler struct {
	svc service.LinkService
}

func NewHandler(svc service.LinkService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/scheduling")
	g.POST("/link/info", ginx.B[TokenReq](h.LinkInfo))
	g.POST("/link/slots", ginx.B[SlotsReq](h.Slots))
	g.POST("/link/book", ginx.B[BookReq](h.Book))
	g.POST("/reschedule/info", ginx.B[TokenReq](h.RescheduleInfo))
	g.POST("/reschedule/slots", ginx.B[SlotsReq](h.RescheduleSlots))
	g.POST("/reschedule/confirm", ginx.B[RescheduleReq](h.Reschedule))
	g.POST("/reschedule/cancel", ginx.B[TokenReq](h.Cancel))
}

func (h *Handler) PrivateRoutes(_ *gin.Engine) {}

func (h *Handler) LinkInfo(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	link, err := h.svc.LinkInfo(ctx, req.Token)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: newLinkInfo(link)}, nil
}

func (h *Handler) Slots(ctx *ginx.Context, req SlotsReq) (ginx.Result, error) {
	if err := tzx.Validate(req.Timezone); err != nil {
		return invalidInputResult, err
	}
	slots, err := h.svc.GetSlots(ctx, req.Token)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: slice.Map(slots, func(_ int, src domain.Slot) Slot {
		return newSlot(src, req.Timezone)
	})}, nil
}

func (h *Handler) Book(ctx *ginx.Context, req BookReq) (ginx.Result, error) {
	if req.StartTime <= 0 {
		return invalidInputResult, service.ErrInvalidInput
	}
	interviewID, rescheduleToken, err := h.svc.Book(ctx, req.Token, time.UnixMilli(req.StartTime))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: BookResp{
		InterviewID:     interviewID,
		RescheduleToken: rescheduleToken,
	}}, nil
}

func (h *Handler) RescheduleInfo(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	link, iv, err := h.svc.RescheduleInfo(ctx, req.Token)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: RescheduleInfo{
		Link:        newLinkInfo(link),
		ScheduledAt: iv.ScheduledAt.UnixMilli(),
		Status:      iv.Status.String(),
		MeetingLink: iv.MeetingLink,
	}}, nil
}

func (h *Handler) RescheduleSlots(ctx *ginx.Context, req SlotsReq) (ginx.Result, error) {
	if err := tzx.Validate(req.Timezone); err != nil {
		return invalidInputResult, err
	}
	slots, err := h.svc.RescheduleSlots(ctx, req.Token)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Data: slice.Map(slots, func(_ int, src domain.Slot) Slot {
		return newSlot(src, req.Timezone)
	})}, nil
}

func (h *Handler) Reschedule(ctx *ginx.Context, req RescheduleReq) (ginx.Result, error) {
	if req.StartTime <= 0 {
		return invalidInputResult, service.ErrInvalidInput
	}
	err := h.svc.Reschedule(ctx, req.Token, time.UnixMilli(req.StartTime))
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Cancel(ctx *ginx.Context, req TokenReq) (ginx.Result, error) {
	err := h.svc.Cancel(ctx, req.Token)
	if err != nil {
		return errorResult(err), err
	}
	return ginx.Result{Msg: "OK"}, nil
}
