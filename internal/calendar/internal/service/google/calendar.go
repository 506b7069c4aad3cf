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

// Package google 实现 Google 日历的 Port 适配器。
// 凭证是 OAuth2 token 的 JSON 序列化，忙碌时段走 FreeBusy 查询，
// 事件读写针对用户的 primary 日历。
package google

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"golang.org/x/oauth2"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const primaryCalendarID = "primary"

type Calendar struct {
	cfg *oauth2.Config
}

func NewCalendar(cfg *oauth2.Config) *Calendar {
	return &Calendar{cfg: cfg}
}

func (c *Calendar) FetchBusy(ctx context.Context, credential string, start, end time.Time) ([]interval.Interval, error) {
	srv, err := c.client(ctx, credential)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Freebusy.Query(&calendar.FreeBusyRequest{
		TimeMin: start.UTC().Format(time.RFC3339),
		TimeMax: end.UTC().Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: primaryCalendarID}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("查询 freebusy 失败: %w", err)
	}
	cal, ok := resp.Calendars[primaryCalendarID]
	if !ok {
		return nil, nil
	}
	res := make([]interval.Interval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		s, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			return nil, fmt.Errorf("解析忙碌时段起点失败: %w", err)
		}
		e, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			return nil, fmt.Errorf("解析忙碌时段终点失败: %w", err)
		}
		res = append(res, interval.Interval{Start: s.UTC(), End: e.UTC()})
	}
	return res, nil
}

func (c *Calendar) HasConflict(ctx context.Context, credential string, start, end time.Time) (bool, error) {
	busy, err := c.FetchBusy(ctx, credential, start, end)
	if err != nil {
		return false, err
	}
	target := interval.Interval{Start: start, End: end}
	for _, b := range busy {
		if target.Overlaps(b) {
			return true, nil
		}
	}
	return false, nil
}

func (c *Calendar) CreateEvent(ctx context.Context, credential string, details domain.EventDetails) (domain.EventRef, error) {
	srv, err := c.client(ctx, credential)
	if err != nil {
		return domain.EventRef{}, err
	}
	ev, err := srv.Events.Insert(primaryCalendarID, c.toEvent(details)).Context(ctx).Do()
	if err != nil {
		return domain.EventRef{}, fmt.Errorf("创建远端事件失败: %w", err)
	}
	return domain.EventRef{Provider: domain.ProviderGoogle, EventID: ev.Id}, nil
}

func (c *Calendar) UpdateEvent(ctx context.Context, credential string, ref domain.EventRef, details domain.EventDetails) error {
	srv, err := c.client(ctx, credential)
	if err != nil {
		return err
	}
	_, err = srv.Events.Patch(primaryCalendarID, ref.EventID, &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: details.Start.UTC().Format(time.RFC3339)},
		End:   &calendar.EventDateTime{DateTime: details.End.UTC().Format(time.RFC3339)},
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("更新远端事件失败: %w", err)
	}
	return nil
}

func (c *Calendar) DeleteEvent(ctx context.Context, credential string, ref domain.EventRef) error {
	srv, err := c.client(ctx, credential)
	if err != nil {
		return err
	}
	err = srv.Events.Delete(primaryCalendarID, ref.EventID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("删除远端事件失败: %w", err)
	}
	return nil
}

func (c *Calendar) client(ctx context.Context, credential string) (*calendar.Service, error) {
	var token oauth2.Token
	if err := json.Unmarshal([]byte(credential), &token); err != nil {
		return nil, fmt.Errorf("凭证格式非法: %w", err)
	}
	httpClient := c.cfg.Client(ctx, &token)
	srv, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("创建日历客户端失败: %w", err)
	}
	return srv, nil
}

func (c *Calendar) toEvent(details domain.EventDetails) *calendar.Event {
	ev := &calendar.Event{
		Summary:     details.Summary,
		Description: details.Description,
		Location:    details.Location,
		Start:       &calendar.EventDateTime{DateTime: details.Start.UTC().Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: details.End.UTC().Format(time.RFC3339)},
	}
	if details.MeetingLink != "" {
		ev.Location = details.MeetingLink
	}
	for _, mail := range details.Attendees {
		ev.Attendees = append(ev.Attendees, &calendar.EventAttendee{Email: mail})
	}
	return ev
}
