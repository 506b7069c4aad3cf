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

package service

import "errors"

var (
	// ErrLinkNotFound token 或 ID 对应的链接不存在
	ErrLinkNotFound = errors.New("预约链接不存在")
	// ErrLinkExpired 链接已过 expiresAt，过期在读取时判定
	ErrLinkExpired = errors.New("预约链接已过期")
	// ErrLinkAlreadyUsed 链接已有生效中的预约
	ErrLinkAlreadyUsed = errors.New("预约链接已被使用")
	// ErrBookingConflict 并发预约时条件更新未命中，本次预约落败
	ErrBookingConflict = errors.New("该时段已被他人预约")
	// ErrOutOfRange 所选时间在预约窗口之外或已经过去
	ErrOutOfRange = errors.New("所选时间不在可预约范围内")
	// ErrConflictDetected 预约前的最终日历核查发现冲突
	ErrConflictDetected = errors.New("面试官在该时段已有安排")
	// ErrInvalidInput 入参不合法：日期区间颠倒、面试官为空、时长非正数等
	ErrInvalidInput = errors.New("非法输入")
	// ErrUpstreamUnavailable 日历提供商调用失败或超时，可用性计算整体失败
	ErrUpstreamUnavailable = errors.New("暂时无法获取日历数据")
	// ErrForbidden 非创建者删除链接等越权操作
	ErrForbidden = errors.New("无权进行此操作")
	// ErrRescheduleDisabled 链接不允许改期
	ErrRescheduleDisabled = errors.New("该预约不支持改期")
	// ErrInterviewInPast 面试已经开始或结束，不能再改期或取消
	ErrInterviewInPast = errors.New("面试时间已过")
)
