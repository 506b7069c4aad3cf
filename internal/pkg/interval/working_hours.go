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

package interval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// WorkingHour 描述某个星期几的本地工作时间窗口，时间为 "HH:mm" 墙上时钟。
// 一个用户的每周可用时间由一组 WorkingHour 定义，某个星期几没有条目就表示当天不可用。
type WorkingHour struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0=周日 ... 6=周六
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
}

// Validate 校验工作时间条目。写入侧（日历档案保存）调用，
// 保证 ClipToWorkingHours 在读路径上不会碰到非法条目。
func (w WorkingHour) Validate() error {
	if w.DayOfWeek < 0 || w.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek 必须在 [0,6] 内: %d", w.DayOfWeek)
	}
	sh, sm, err := parseHHMM(w.StartTime)
	if err != nil {
		return err
	}
	eh, em, err := parseHHMM(w.EndTime)
	if err != nil {
		return err
	}
	if eh*60+em <= sh*60+sm {
		return fmt.Errorf("结束时间必须晚于开始时间: %s-%s", w.StartTime, w.EndTime)
	}
	return nil
}

// ClipToWorkingHours 把每个区间裁剪到本地工作时间窗口内。
// 对区间覆盖到的每一个本地日（跨本地午夜的区间两端可能落在不同的星期几，
// 两天的窗口都要考虑），查出当天的窗口并换算回绝对时刻求重叠，
// 零长度的重叠丢弃。非法的 hours 条目会被跳过，校验应在写入侧完成。
func ClipToWorkingHours(ivs []Interval, hours []WorkingHour, loc *time.Location) []Interval {
	if len(hours) == 0 || loc == nil {
		return nil
	}
	byDay := make(map[int][]WorkingHour, len(hours))
	for _, h := range hours {
		if h.Validate() != nil {
			continue
		}
		byDay[h.DayOfWeek] = append(byDay[h.DayOfWeek], h)
	}

	var res []Interval
	for _, iv := range ivs {
		localStart := iv.Start.In(loc)
		day := time.Date(localStart.Year(), localStart.Month(), localStart.Day(), 0, 0, 0, 0, loc)
		for ; day.Before(iv.End.In(loc)); day = day.AddDate(0, 0, 1) {
			for _, h := range byDay[int(day.Weekday())] {
				sh, sm, _ := parseHHMM(h.StartTime)
				eh, em, _ := parseHHMM(h.EndTime)
				ws := time.Date(day.Year(), day.Month(), day.Day(), sh, sm, 0, 0, loc)
				we := time.Date(day.Year(), day.Month(), day.Day(), eh, em, 0, 0, loc)
				lo := iv.Start
				if ws.After(lo) {
					lo = ws
				}
				hi := iv.End
				if we.Before(hi) {
					hi = we
				}
				if lo.Before(hi) {
					res = append(res, Interval{Start: lo, End: hi})
				}
			}
		}
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Start.Before(res[j].Start)
	})
	return res
}

// DefaultWorkingHours 返回兜底的每周工作时间：周一到周五 09:00–17:00。
// 用户没有配置任何窗口时使用。
func DefaultWorkingHours() []WorkingHour {
	res := make([]WorkingHour, 0, 5)
	for day := 1; day <= 5; day++ {
		res = append(res, WorkingHour{
			DayOfWeek: day,
			StartTime: "09:00",
			EndTime:   "17:00",
		})
	}
	return res
}

func parseHHMM(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("时间格式非法: %s", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("小时非法: %s", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("分钟非法: %s", s)
	}
	return hour, minute, nil
}
