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

// Package interval 提供纯粹的时间区间运算：求空闲、求交集、按工作时间裁剪、离散化。
// 所有函数都不做 I/O、不持有状态，输出一律按 Start 升序排列，输入切片不会被修改。
package interval

import (
	"sort"
	"time"
)

// Interval 表示一个左闭右开的时间区间，要求 Start < End。
// 既用于忙碌时段，也用于空闲时段和生成出来的可预约时段。
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration 返回区间长度。
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps 判断两个区间是否有非零长度的重叠。
// 边界相接（a.End == b.Start）不算重叠。
func (i Interval) Overlaps(o Interval) bool {
	return i.Start.Before(o.End) && o.Start.Before(i.End)
}

// Free 计算 [start, end) 范围内不被 busy 覆盖的空闲区间。
// busy 可以乱序、可以互相重叠，内部用一个"已覆盖到"游标扫描，
// 重叠或相邻的忙碌区间会被隐式合并。busy 为空时返回整个范围。
func Free(busy []Interval, start, end time.Time) []Interval {
	if !start.Before(end) {
		return nil
	}
	sorted := make([]Interval, len(busy))
	copy(sorted, busy)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var res []Interval
	cursor := start
	for _, b := range sorted {
		if !b.End.After(cursor) {
			// 整个忙碌区间都在游标之前，已被覆盖
			continue
		}
		if !b.Start.Before(end) {
			break
		}
		if b.Start.After(cursor) {
			gapEnd := b.Start
			if gapEnd.After(end) {
				gapEnd = end
			}
			res = append(res, Interval{Start: cursor, End: gapEnd})
		}
		if b.End.After(cursor) {
			cursor = b.End
		}
		if !cursor.Before(end) {
			return res
		}
	}
	if cursor.Before(end) {
		res = append(res, Interval{Start: cursor, End: end})
	}
	return res
}

// Intersect 计算两组区间的交集。
// 要求 a、b 各自按 Start 升序且内部互不重叠（Free 的输出天然满足）。
// 采用双指针扫描，零长度的重叠不计入结果。
func Intersect(a, b []Interval) []Interval {
	var res []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo := a[i].Start
		if b[j].Start.After(lo) {
			lo = b[j].Start
		}
		hi := a[i].End
		if b[j].End.Before(hi) {
			hi = b[j].End
		}
		if lo.Before(hi) {
			res = append(res, Interval{Start: lo, End: hi})
		}
		// 推进先结束的那一边
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return res
}

// IntersectAll 从左到右折叠多组区间的交集，任何一步得到空集就立即短路。
// 没有输入时返回 nil。
func IntersectAll(sets ...[]Interval) []Interval {
	if len(sets) == 0 {
		return nil
	}
	res := sets[0]
	for _, s := range sets[1:] {
		if len(res) == 0 {
			return nil
		}
		res = Intersect(res, s)
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// Discretize 把每个区间切成固定时长的可预约时段。
// 在每个区间内以 stride 为步长推进起点 t，只要 t+duration <= 区间终点就产出一个时段，
// 终点恰好落在区间边界上的时段也会被保留。
func Discretize(ivs []Interval, duration, stride time.Duration) []Interval {
	if duration <= 0 || stride <= 0 {
		return nil
	}
	var res []Interval
	for _, iv := range ivs {
		for t := iv.Start; !t.Add(duration).After(iv.End); t = t.Add(stride) {
			res = append(res, Interval{Start: t, End: t.Add(duration)})
		}
	}
	return res
}

// FilterMinDuration 丢弃长度不足 minDuration 的区间。
func FilterMinDuration(ivs []Interval, minDuration time.Duration) []Interval {
	var res []Interval
	for _, iv := range ivs {
		if iv.Duration() >= minDuration {
			res = append(res, iv)
		}
	}
	return res
}
