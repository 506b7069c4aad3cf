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

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/rajmahato111/HyreHR-sub001/internal/scheduling/internal/domain"
)

var ErrKeyNotFound = errors.New("key not found")

// LinkCache 按 token 缓存链接，挡住公共端点对数据库的高频读。
// 预约、取消等任何状态变化都必须先失效缓存。
type LinkCache interface {
	SetByToken(ctx context.Context, link domain.SchedulingLink) error
	GetByToken(ctx context.Context, token string) (domain.SchedulingLink, error)
	DelByToken(ctx context.Context, token string) error
}

type linkCache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewLinkCache 注意缓存前缀
func NewLinkCache(c ecache.Cache) LinkCache {
	return &linkCache{
		cache: &ecache.NamespaceCache{
			Namespace: "slink:",
			C:         c,
		},
		// 短 TTL，链接状态会被并发修改
		expiration: time.Minute,
	}
}

func (l *linkCache) SetByToken(ctx context.Context, link domain.SchedulingLink) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}
	return l.cache.Set(ctx, link.Token, string(data), l.expiration)
}

func (l *linkCache) GetByToken(ctx context.Context, token string) (domain.SchedulingLink, error) {
	val := l.cache.Get(ctx, token)
	if val.Err != nil {
		return domain.SchedulingLink{}, val.Err
	}
	if val.KeyNotFound() {
		return domain.SchedulingLink{}, ErrKeyNotFound
	}
	var link domain.SchedulingLink
	err := json.Unmarshal([]byte(val.Val.(string)), &link)
	return link, err
}

func (l *linkCache) DelByToken(ctx context.Context, token string) error {
	_, err := l.cache.Delete(ctx, token)
	return err
}
