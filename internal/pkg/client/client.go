// Package client 提供 menu-coach API 的輕量客戶端，供 CLI 與外部整合使用
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"menu-coach/internal/api/handlers/menuapi"
	"menu-coach/internal/core/menu"

	"github.com/go-resty/resty/v2"
)

// Client menu-coach API 客戶端
type Client struct {
	client *resty.Client
}

// New 創建客戶端
func New(baseURL string) *Client {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &Client{client: client}
}

// Recommend 呼叫完整推薦管線
func (c *Client) Recommend(ctx context.Context, req menuapi.RecommendRequest) (*menu.Result, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("/api/v1/menu/recommend")
	if err != nil {
		return nil, fmt.Errorf("failed to send recommend request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("recommend API returned error: %s", resp.String())
	}

	var result menu.Result
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse recommend response: %w", err)
	}
	return &result, nil
}

// ParseMenu 只做菜單解析
func (c *Client) ParseMenu(ctx context.Context, menuText string) (*menuapi.ParseResponse, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(menuapi.ParseRequest{MenuText: menuText}).
		Post("/api/v1/menu/parse")
	if err != nil {
		return nil, fmt.Errorf("failed to send parse request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("parse API returned error: %s", resp.String())
	}

	var result menuapi.ParseResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &result, nil
}

// Cuisines 取得模板目錄
func (c *Client) Cuisines(ctx context.Context) ([]menuapi.CuisineInfo, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/api/v1/cuisines")
	if err != nil {
		return nil, fmt.Errorf("failed to send cuisines request: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("cuisines API returned error: %s", resp.String())
	}

	var result struct {
		Cuisines []menuapi.CuisineInfo `json:"cuisines"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse cuisines response: %w", err)
	}
	return result.Cuisines, nil
}
