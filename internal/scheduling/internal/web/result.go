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
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/errs"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)

// errorResult 把 service 层的哨兵错误翻译成对外错误码，
// 没对上的一律按系统错误处理。
func errorResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return result(errs.LinkNotFound)
	case errors.Is(err, service.ErrLinkExpired):
		return result(errs.LinkExpired)
	case errors.Is(err, service.ErrLinkAlreadyUsed):
		return result(errs.LinkAlreadyUsed)
	case errors.Is(err, service.ErrBookingConflict):
		return result(errs.BookingConflict)
	case errors.Is(err, service.ErrOutOfRange),
		errors.Is(err, service.ErrInterviewInPast):
		return result(errs.OutOfRange)
	case errors.Is(err, service.ErrConflictDetected):
		return result(errs.ConflictDetected)
	case errors.Is(err, service.ErrUpstreamUnavailable):
		return result(errs.UpstreamUnavailable)
	case errors.Is(err, service.ErrForbidden),
		errors.Is(err, service.ErrRescheduleDisabled):
		return result(errs.Forbidden)
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult
	default:
		return systemErrorResult
	}
}

func result(code errs.ErrorCode) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	}
}
