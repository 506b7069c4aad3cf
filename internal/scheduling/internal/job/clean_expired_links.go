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

package job

import (
	"context"
	"fmt"
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/repository"
)

// CleanExpiredLinksJob 清理过期超过保留期且从未使用过的预约链接。
// 已使用的链接保留，它们挂着真实的面试记录。
type CleanExpiredLinksJob struct {
	repo      repository.LinkRepository
	retention time.Duration
	limit     int
}

func NewCleanExpiredLinksJob(repo repository.LinkRepository, retention time.Duration, limit int) *CleanExpiredLinksJob {
	return &CleanExpiredLinksJob{repo: repo, retention: retention, limit: limit}
}

func (c *CleanExpiredLinksJob) Name() string {
	return "CleanExpiredLinksJob"
}

func (c *CleanExpiredLinksJob) Run(ctx context.Context) error {
	before := time.Now().Add(-c.retention)
	for {
		rows, err := c.repo.DeleteUnusedExpiredBefore(ctx, before, c.limit)
		if err != nil {
			return fmt.Errorf("清理过期预约链接失败: %w", err)
		}
		if rows < int64(c.limit) {
			return nil
		}
	}
}
