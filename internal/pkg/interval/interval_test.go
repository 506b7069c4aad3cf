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
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(t *testing.T, value string) time.Time {
	t.Helper()
	res, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return res
}

func iv(t *testing.T, start, end string) Interval {
	t.Helper()
	return Interval{Start: at(t, start), End: at(t, end)}
}

func TestFree(t *testing.T) {
	testCases := []struct {
		name    string
		busy    []Interval
		start   string
		end     string
		wantRes []Interval
	}{
		{
			name:  "没有忙碌时段_返回整个范围",
			busy:  nil,
			start: "2025-03-03T09:00:00Z",
			end:   "2025-03-03T17:00:00Z",
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "中间一段忙碌",
			busy: []Interval{
				{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)},
			},
			start: "2025-03-03T09:00:00Z",
			end:   "2025-03-03T17:00:00Z",
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "乱序且重叠的忙碌时段_隐式合并",
			busy: []Interval{
				{Start: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)},
			},
			start: "2025-03-03T09:00:00Z",
			end:   "2025-03-03T17:00:00Z",
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "忙碌时段越过范围两端_被夹住",
			busy: []Interval{
				{Start: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)},
			},
			start: "2025-03-03T09:00:00Z",
			end:   "2025-03-03T17:00:00Z",
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "完全被覆盖_没有空闲",
			busy: []Interval{
				{Start: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)},
			},
			start:   "2025-03-03T09:00:00Z",
			end:     "2025-03-03T17:00:00Z",
			wantRes: nil,
		},
		{
			name: "相邻忙碌时段之间没有缝隙",
			busy: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)},
			},
			start: "2025-03-03T09:00:00Z",
			end:   "2025-03-03T17:00:00Z",
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Free(tc.busy, at(t, tc.start), at(t, tc.end))
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

// TestFree_Reconstruction 验证空闲 ∪ 忙碌（合并重叠后）恰好还原整个范围，
// 既没有缝隙也没有重叠。
func TestFree_Reconstruction(t *testing.T) {
	start := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	busy := []Interval{
		{Start: time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)},
		{Start: time.Date(2025, 3, 4, 14, 30, 0, 0, time.UTC), End: time.Date(2025, 3, 4, 16, 0, 0, 0, time.UTC)},
		{Start: time.Date(2025, 3, 6, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 6, 10, 0, 0, 0, time.UTC)},
		{Start: time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC)},
	}
	free := Free(busy, start, end)

	// 合并忙碌时段并与空闲时段拼在一起
	all := make([]Interval, 0, len(free)+len(busy))
	all = append(all, free...)
	for _, b := range busy {
		if b.Start.Before(start) {
			b.Start = start
		}
		if b.End.After(end) {
			b.End = end
		}
		if b.Start.Before(b.End) {
			all = append(all, b)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Start.Before(all[j].Start) })

	cursor := start
	for _, iv := range all {
		assert.False(t, iv.Start.After(cursor), "出现缝隙: cursor=%v interval=%v", cursor, iv)
		if iv.End.After(cursor) {
			cursor = iv.End
		}
	}
	assert.Equal(t, end, cursor)
}

func TestIntersect(t *testing.T) {
	testCases := []struct {
		name    string
		a       []Interval
		b       []Interval
		wantRes []Interval
	}{
		{
			name:    "一边为空_交集为空",
			a:       nil,
			b:       []Interval{{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)}},
			wantRes: nil,
		},
		{
			name: "部分重叠",
			a: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
			},
			b: []Interval{
				{Start: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)},
			},
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "边界相接不算重叠",
			a: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
			},
			b: []Interval{
				{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)},
			},
			wantRes: nil,
		},
		{
			name: "一个长区间对多个短区间",
			a: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
			b: []Interval{
				{Start: time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 18, 0, 0, 0, time.UTC)},
			},
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 13, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Intersect(tc.a, tc.b)
			assert.Equal(t, tc.wantRes, res)
			// 交换律
			assert.Equal(t, res, Intersect(tc.b, tc.a))
		})
	}
}

func TestIntersectAll(t *testing.T) {
	a := []Interval{{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)}}
	b := []Interval{{Start: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)}}
	c := []Interval{{Start: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 20, 0, 0, 0, time.UTC)}}

	res := IntersectAll(a, b, c)
	assert.Equal(t, []Interval{
		{Start: time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC)},
	}, res)

	// 中途出现空集就短路
	assert.Nil(t, IntersectAll(a, nil, c))
	assert.Nil(t, IntersectAll())
}

func TestDiscretize(t *testing.T) {
	testCases := []struct {
		name     string
		ivs      []Interval
		duration time.Duration
		stride   time.Duration
		wantRes  []Interval
	}{
		{
			name: "整除_末尾时段恰好贴住边界",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)},
			},
			duration: time.Hour,
			stride:   time.Hour,
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 11, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "带缓冲的步长",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 12, 0, 0, 0, time.UTC)},
			},
			duration: time.Hour,
			stride:   90 * time.Minute,
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 11, 30, 0, 0, time.UTC)},
			},
		},
		{
			name: "区间不够放一个时段",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC)},
			},
			duration: time.Hour,
			stride:   time.Hour,
			wantRes:  nil,
		},
		{
			name:     "非法步长",
			ivs:      []Interval{{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)}},
			duration: time.Hour,
			stride:   0,
			wantRes:  nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := Discretize(tc.ivs, tc.duration, tc.stride)
			assert.Equal(t, tc.wantRes, res)
			for _, s := range res {
				// 任何时段的终点都不能越过来源区间
				ok := false
				for _, src := range tc.ivs {
					if !s.Start.Before(src.Start) && !s.End.After(src.End) {
						ok = true
					}
				}
				assert.True(t, ok, "时段越过了来源区间: %v", s)
			}
		})
	}
}

func TestClipToWorkingHours(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)

	testCases := []struct {
		name    string
		ivs     []Interval
		hours   []WorkingHour
		loc     *time.Location
		wantRes []Interval
	}{
		{
			name: "UTC_工作日窗口内裁剪",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)},
			},
			hours: DefaultWorkingHours(),
			loc:   time.UTC,
			wantRes: []Interval{
				// 2025-03-03 是周一
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "周末没有条目_全部裁掉",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)},
			},
			hours:   DefaultWorkingHours(),
			loc:     time.UTC,
			wantRes: nil,
		},
		{
			name: "跨本地午夜_两天的窗口都要算",
			ivs: []Interval{
				// 周一 16:00 到周二 10:00
				{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)},
			},
			hours: DefaultWorkingHours(),
			loc:   time.UTC,
			wantRes: []Interval{
				{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
				{Start: time.Date(2025, 3, 4, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "东八区_UTC区间换算到本地星期几",
			ivs: []Interval{
				// UTC 周五 22:00 - 周六 04:00，上海已是周六 06:00 - 12:00，周六无窗口
				{Start: time.Date(2025, 3, 7, 22, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 8, 4, 0, 0, 0, time.UTC)},
			},
			hours:   DefaultWorkingHours(),
			loc:     shanghai,
			wantRes: nil,
		},
		{
			name: "东八区_本地上午窗口",
			ivs: []Interval{
				// UTC 周日 23:00 - 周一 09:00，上海是周一 07:00 - 17:00
				{Start: time.Date(2025, 3, 2, 23, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
			},
			hours: DefaultWorkingHours(),
			loc:   shanghai,
			wantRes: []Interval{
				// 上海周一 09:00 = UTC 01:00
				{Start: time.Date(2025, 3, 3, 1, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)},
			},
		},
		{
			name: "没有任何窗口_不可用",
			ivs: []Interval{
				{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 3, 17, 0, 0, 0, time.UTC)},
			},
			hours:   nil,
			loc:     time.UTC,
			wantRes: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := ClipToWorkingHours(tc.ivs, tc.hours, tc.loc)
			require.Equal(t, len(tc.wantRes), len(res))
			for i := range res {
				assert.True(t, tc.wantRes[i].Start.Equal(res[i].Start), "start: want %v got %v", tc.wantRes[i].Start, res[i].Start)
				assert.True(t, tc.wantRes[i].End.Equal(res[i].End), "end: want %v got %v", tc.wantRes[i].End, res[i].End)
			}
		})
	}
}

func TestWorkingHour_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		wh      WorkingHour
		wantErr bool
	}{
		{name: "合法", wh: WorkingHour{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
		{name: "星期几越界", wh: WorkingHour{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}, wantErr: true},
		{name: "格式非法", wh: WorkingHour{DayOfWeek: 1, StartTime: "9点", EndTime: "17:00"}, wantErr: true},
		{name: "结束不晚于开始", wh: WorkingHour{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}, wantErr: true},
		{name: "分钟越界", wh: WorkingHour{DayOfWeek: 1, StartTime: "09:61", EndTime: "17:00"}, wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.wh.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFilterMinDuration(t *testing.T) {
	ivs := []Interval{
		iv(t, "2025-03-03T09:00:00Z", "2025-03-03T09:30:00Z"),
		iv(t, "2025-03-03T10:00:00Z", "2025-03-03T12:00:00Z"),
	}
	res := FilterMinDuration(ivs, time.Hour)
	assert.Equal(t, []Interval{ivs[1]}, res)
}
