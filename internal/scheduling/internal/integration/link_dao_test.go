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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository/dao"
	testioc "github.com/rajmahato111/HyreHR-sub001/internal/test/ioc"
)

func TestSchedulingLinkDAO(t *testing.T) {
	suite.Run(t, new(LinkDAOTestSuite))
}

type LinkDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.SchedulingLinkDAO
}

func (s *LinkDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewGORMSchedulingLinkDAO(s.db)
}

func (s *LinkDAOTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `scheduling_links`").Error)
}

func (s *LinkDAOTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `scheduling_links`").Error)
}

func (s *LinkDAOTestSuite) newLink(token string) dao.SchedulingLink {
	now := time.Now()
	return dao.SchedulingLink{
		Token:           token,
		ApplicationID:   11,
		InterviewerIDs:  `[101,102]`,
		DurationMinutes: 60,
		BufferMinutes:   15,
		LocationType:    "VIDEO",
		StartDate:       now.Add(time.Hour).UnixMilli(),
		EndDate:         now.Add(14 * 24 * time.Hour).UnixMilli(),
		CreatedBy:       9,
	}
}

// TestConcurrentClaimExactlyOneWins 同一 token 上的并发抢占，
// 恰好一个成功，其余拿到 ErrLinkAlreadyUsed。
func (s *LinkDAOTestSuite) TestConcurrentClaimExactlyOneWins() {
	t := s.T()
	_, err := s.dao.Create(context.Background(), s.newLink("tok-concurrent"))
	require.NoError(t, err)

	const n = 10
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		succeeded  int
		conflicted int
	)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			claimErr := s.dao.ClaimByToken(context.Background(), "tok-concurrent")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case claimErr == nil:
				succeeded++
			case errors.Is(claimErr, dao.ErrLinkAlreadyUsed):
				conflicted++
			default:
				t.Errorf("未预期的错误: %v", claimErr)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, n-1, conflicted)
}

// TestClaimResetRoundTrip 抢占、挂面试、重置之后同一 token 可以再次抢占。
func (s *LinkDAOTestSuite) TestClaimResetRoundTrip() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Create(ctx, s.newLink("tok-roundtrip"))
	require.NoError(t, err)

	require.NoError(t, s.dao.ClaimByToken(ctx, "tok-roundtrip"))
	require.NoError(t, s.dao.AttachInterview(ctx, id, 77))
	require.NoError(t, s.dao.SetRescheduleToken(ctx, id, "r-tok-roundtrip"))
	require.NoError(t, s.dao.UpdateCalendarEvents(ctx, id, `[{"uid":101,"provider":"google","eventId":"evt-101"}]`))

	found, err := s.dao.FindByToken(ctx, "tok-roundtrip")
	require.NoError(t, err)
	assert.True(t, found.Used)
	assert.True(t, found.InterviewID.Valid)
	assert.Equal(t, int64(77), found.InterviewID.V)

	// 再次抢占失败
	assert.ErrorIs(t, s.dao.ClaimByToken(ctx, "tok-roundtrip"), dao.ErrLinkAlreadyUsed)

	// 取消后重置，链接恢复可预约，改期凭证保留
	require.NoError(t, s.dao.ResetByID(ctx, id))
	found, err = s.dao.FindByToken(ctx, "tok-roundtrip")
	require.NoError(t, err)
	assert.False(t, found.Used)
	assert.False(t, found.InterviewID.Valid)
	assert.Empty(t, found.CalendarEvents)
	assert.True(t, found.RescheduleToken.Valid)

	require.NoError(t, s.dao.ClaimByToken(ctx, "tok-roundtrip"))
}

// TestCreateDuplicateToken 凭证撞上唯一索引时返回明确的哨兵错误。
func (s *LinkDAOTestSuite) TestCreateDuplicateToken() {
	t := s.T()
	ctx := context.Background()
	_, err := s.dao.Create(ctx, s.newLink("tok-dup"))
	require.NoError(t, err)
	_, err = s.dao.Create(ctx, s.newLink("tok-dup"))
	assert.ErrorIs(t, err, dao.ErrDuplicatedToken)
}

// TestReleaseClaimOnlyWhenUnattached 已经挂上面试的抢占不能被补偿回滚。
func (s *LinkDAOTestSuite) TestReleaseClaimOnlyWhenUnattached() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Create(ctx, s.newLink("tok-release"))
	require.NoError(t, err)

	require.NoError(t, s.dao.ClaimByToken(ctx, "tok-release"))
	require.NoError(t, s.dao.ReleaseClaim(ctx, id))
	found, err := s.dao.FindByToken(ctx, "tok-release")
	require.NoError(t, err)
	assert.False(t, found.Used)

	require.NoError(t, s.dao.ClaimByToken(ctx, "tok-release"))
	require.NoError(t, s.dao.AttachInterview(ctx, id, 77))
	// 面试已挂上，补偿不生效
	require.NoError(t, s.dao.ReleaseClaim(ctx, id))
	found, err = s.dao.FindByToken(ctx, "tok-release")
	require.NoError(t, err)
	assert.True(t, found.Used)
}

// TestSetRescheduleTokenKeepsFirst 改期凭证只写一次，重复写不覆盖。
func (s *LinkDAOTestSuite) TestSetRescheduleTokenKeepsFirst() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Create(ctx, s.newLink("tok-resched"))
	require.NoError(t, err)

	require.NoError(t, s.dao.SetRescheduleToken(ctx, id, "r-first"))
	require.NoError(t, s.dao.SetRescheduleToken(ctx, id, "r-second"))

	found, err := s.dao.FindByRescheduleToken(ctx, "r-first")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	_, err = s.dao.FindByRescheduleToken(ctx, "r-second")
	assert.ErrorIs(t, err, dao.ErrLinkNotFound)
}

// TestDeleteByID 只有创建者能删除未使用的链接。
func (s *LinkDAOTestSuite) TestDeleteByID() {
	t := s.T()
	ctx := context.Background()
	id, err := s.dao.Create(ctx, s.newLink("tok-delete"))
	require.NoError(t, err)

	rows, err := s.dao.DeleteByID(ctx, id, 8)
	require.NoError(t, err)
	assert.Zero(t, rows)

	require.NoError(t, s.dao.ClaimByToken(ctx, "tok-delete"))
	rows, err = s.dao.DeleteByID(ctx, id, 9)
	require.NoError(t, err)
	assert.Zero(t, rows)

	require.NoError(t, s.dao.ResetByID(ctx, id))
	rows, err = s.dao.DeleteByID(ctx, id, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

// TestDeleteUnusedExpiredBefore 分批清理过期已久且从未使用的链接。
func (s *LinkDAOTestSuite) TestDeleteUnusedExpiredBefore() {
	t := s.T()
	ctx := context.Background()
	expired := time.Now().Add(-40 * 24 * time.Hour).UnixMilli()
	for _, token := range []string{"tok-old-1", "tok-old-2", "tok-old-3"} {
		link := s.newLink(token)
		link.ExpiresAt = expired
		_, err := s.dao.Create(ctx, link)
		require.NoError(t, err)
	}
	// 永不过期的链接不应被清理
	_, err := s.dao.Create(ctx, s.newLink("tok-keep"))
	require.NoError(t, err)

	before := time.Now().Add(-30 * 24 * time.Hour).UnixMilli()
	rows, err := s.dao.DeleteUnusedExpiredBefore(ctx, before, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rows)
	rows, err = s.dao.DeleteUnusedExpiredBefore(ctx, before, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = s.dao.FindByToken(ctx, "tok-keep")
	require.NoError(t, err)
}
