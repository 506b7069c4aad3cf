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

// Package tzx 封装 IANA 时区的查询与换算。
// 唯一的失败方式是"未知时区标识"，应当在入参校验阶段就拦下来，
// 不允许流入更深处的区间运算。
package tzx

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownTimezone 表示时区标识不在 IANA 数据库里。
var ErrUnknownTimezone = errors.New("未知的时区标识")

// Location 按 IANA 名字加载时区，名字为空时回退到 UTC。
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTimezone, name)
	}
	return loc, nil
}

// Validate 校验时区标识是否合法。
func Validate(name string) error {
	_, err := Location(name)
	return err
}

// Weekday 返回时刻 t 在 loc 时区下的星期几，0 表示周日。
func Weekday(t time.Time, loc *time.Location) int {
	return int(t.In(loc).Weekday())
}

// WallClock 把某一天的 "HH:mm" 墙上时钟组合成 loc 时区下的绝对时刻。
// day 只取年月日。
func WallClock(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	tod, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("时间格式非法: %s", hhmm)
	}
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(),
		tod.Hour(), tod.Minute(), 0, 0, loc), nil
}

// FormatInZone 按目标时区格式化时刻，用于对外展示。
// 时区名非法时回退到 UTC，展示层不因此报错。
func FormatInZone(t time.Time, name string) string {
	loc, err := Location(name)
	if err != nil {
		loc = time.UTC
	}
	return t.In(loc).Format(time.RFC3339)
}
