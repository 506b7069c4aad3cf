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

package tzx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	testCases := []struct {
		name    string
		tz      string
		wantErr error
	}{
		{name: "空串回退UTC", tz: ""},
		{name: "合法时区", tz: "Asia/Shanghai"},
		{name: "未知时区", tz: "Mars/Olympus", wantErr: ErrUnknownTimezone},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			loc, err := Location(tc.tz)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, Validate(tc.tz), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, loc)
		})
	}
}

func TestWeekday(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	// UTC 周日 20:00，上海已是周一
	instant := time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, Weekday(instant, time.UTC))
	assert.Equal(t, 1, Weekday(instant, shanghai))
}

func TestWallClock(t *testing.T) {
	shanghai, err := time.LoadLocation("Asia/Shanghai")
	require.NoError(t, err)
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	// UTC 的 3 月 3 日零点在上海已经是 3 日 08:00，墙上时钟仍取 3 日
	got, err := WallClock(day, "09:30", shanghai)
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2025, 3, 3, 1, 30, 0, 0, time.UTC)))

	_, err = WallClock(day, "9点半", shanghai)
	assert.Error(t, err)
}

func TestFormatInZone(t *testing.T) {
	instant := time.Date(2025, 3, 3, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03-03T09:30:00+08:00", FormatInZone(instant, "Asia/Shanghai"))
	// 非法时区回退 UTC
	assert.Equal(t, "2025-03-03T01:30:00Z", FormatInZone(instant, "Nope/Nope"))
}
