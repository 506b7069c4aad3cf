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

// Package outlook 实现 Microsoft 日历的 Port 适配器，走 Microsoft Graph 的 REST 接口。
// 凭证同样是 OAuth2 token 的 JSON 序列化，所有请求都带
// Prefer: outlook.timezone="UTC"，拿到的时间统一按 UTC 解析。
package outlook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rajmahato111/HyreHR-sub001/internal/calendar/internal/domain"
	"github.com/rajmahato111/HyreHR-sub001/internal/pkg/interval"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://graph.microsoft.com/v1.0"

type Calendar struct {
	cfg     *oauth2.Config
	baseURL string
}

func NewCalendar(cfg *oauth2.Config) *Calendar {
	return &Calendar{cfg: cfg, baseURL: defaultBaseURL}
}

// NewCalendarWithBaseURL 仅测试用，指向本地的假 Graph 服务。
func NewCalendarWithBaseURL(cfg *oauth2.Config, baseURL string) *Calendar {
	return &Calendar{cfg: cfg, baseURL: baseURL}
}

type graphDateTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

type graphEvent struct {
	ID        string          `json:"id,omitempty"`
	Subject   string          `json:"subject,omitempty"`
	Body      *graphBody      `json:"body,omitempty"`
	Start     graphDateTime   `json:"start"`
	End       graphDateTime   `json:"end"`
	ShowAs    string          `json:"showAs,omitempty"`
	Location  *graphLocation  `json:"location,omitempty"`
	Attendees []graphAttendee `json:"attendees,omitempty"`
}

type graphBody struct {
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

type graphLocation struct {
	DisplayName string `json:"displayName"`
}

type graphAttendee struct {
	EmailAddress graphEmail `json:"emailAddress"`
	Type         string     `json:"type"`
}

type graphEmail struct {
	Address string `json:"address"`
}

func (c *Calendar) FetchBusy(ctx context.Context, credential string, start, end time.Time) ([]interval.Interval, error) {
	client, err := c.client(ctx, credential)
	if err != nil {
		return nil, err
	}
	endpoint := fmt.Sprintf("%s/me/calendarView?startDateTime=%s&endDateTime=%s&$select=start,end,showAs&$top=500",
		c.baseURL,
		url.QueryEscape(start.UTC().Format(time.RFC3339)),
		url.QueryEscape(end.UTC().Format(time.RFC3339)))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Prefer", `outlook.timezone="UTC"`)
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求 calendarView 失败: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("calendarView 返回 %d: %s", resp.StatusCode, string(body))
	}
	var payload struct {
		Value []graphEvent `json:"value"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("解析 calendarView 响应失败: %w", err)
	}
	var res []interval.Interval
	for _, ev := range payload.Value {
		// showAs 为 free 的事件不占用时间
		if strings.EqualFold(ev.ShowAs, "free") {
			continue
		}
		s, err := parseGraphTime(ev.Start.DateTime)
		if err != nil {
			return nil, err
		}
		e, err := parseGraphTime(ev.End.DateTime)
		if err != nil {
			return nil, err
		}
		res = append(res, interval.Interval{Start: s, End: e})
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
	var created graphEvent
	err := c.do(ctx, credential, http.MethodPost, "/me/events", c.toEvent(details), &created)
	if err != nil {
		return domain.EventRef{}, fmt.Errorf("创建远端事件失败: %w", err)
	}
	return domain.EventRef{Provider: domain.ProviderOutlook, EventID: created.ID}, nil
}

func (c *Calendar) UpdateEvent(ctx context.Context, credential string, ref domain.EventRef, details domain.EventDetails) error {
	patch := graphEvent{
		Start: graphDateTime{DateTime: details.Start.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
		End:   graphDateTime{DateTime: details.End.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
	}
	err := c.do(ctx, credential, http.MethodPatch, "/me/events/"+ref.EventID, patch, nil)
	if err != nil {
		return fmt.Errorf("更新远端事件失败: %w", err)
	}
	return nil
}

func (c *Calendar) DeleteEvent(ctx context.Context, credential string, ref domain.EventRef) error {
	err := c.do(ctx, credential, http.MethodDelete, "/me/events/"+ref.EventID, nil, nil)
	if err != nil {
		return fmt.Errorf("删除远端事件失败: %w", err)
	}
	return nil
}

func (c *Calendar) do(ctx context.Context, credential, method, path string, body, out any) error {
	client, err := c.client(ctx, credential)
	if err != nil {
		return err
	}
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("graph 返回 %d: %s", resp.StatusCode, string(data))
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Calendar) client(ctx context.Context, credential string) (*http.Client, error) {
	var token oauth2.Token
	if err := json.Unmarshal([]byte(credential), &token); err != nil {
		return nil, fmt.Errorf("凭证格式非法: %w", err)
	}
	return c.cfg.Client(ctx, &token), nil
}

func (c *Calendar) toEvent(details domain.EventDetails) graphEvent {
	ev := graphEvent{
		Subject: details.Summary,
		Start:   graphDateTime{DateTime: details.Start.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
		End:     graphDateTime{DateTime: details.End.UTC().Format("2006-01-02T15:04:05"), TimeZone: "UTC"},
	}
	if details.Description != "" {
		ev.Body = &graphBody{ContentType: "text", Content: details.Description}
	}
	location := details.Location
	if details.MeetingLink != "" {
		location = details.MeetingLink
	}
	if location != "" {
		ev.Location = &graphLocation{DisplayName: location}
	}
	for _, mail := range details.Attendees {
		ev.Attendees = append(ev.Attendees, graphAttendee{
			EmailAddress: graphEmail{Address: mail},
			Type:         "required",
		})
	}
	return ev
}

// parseGraphTime 解析 Graph 返回的 "2025-03-03T14:00:00.0000000" 形式的 UTC 时间。
func parseGraphTime(s string) (time.Time, error) {
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSuffix(s, "Z")
	t, err := time.Parse("2006-01-02T15:04:05", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("解析 graph 时间失败: %w", err)
	}
	return t.UTC(), nil
}
