// Package announcements fetches government support-program listings from the
// bizinfo.go.kr open API.
package announcements

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

const (
	defaultBaseURL = "https://www.bizinfo.go.kr/uss/rss/bizinfoApi.do"
	fetchTimeout   = 15 * time.Second
)

// BizinfoClient calls the 기업마당 support-program API and passes the JSON
// payload through untouched.
type BizinfoClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewBizinfoClient(apiKey, baseURL string) *BizinfoClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &BizinfoClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: fetchTimeout},
	}
}

// Fetch retrieves the latest announcements. The upstream response body is
// returned verbatim so the dashboard can render whatever fields the API adds.
func (c *BizinfoClient) Fetch(ctx context.Context, q ports.AnnouncementsQuery) (json.RawMessage, error) {
	if c.apiKey == "" {
		return nil, domain.ErrAnnouncementsUnavailable
	}

	params := url.Values{}
	params.Set("crtfcKey", c.apiKey)
	params.Set("dataType", "json")
	// searchCnt of zero means "all" upstream and is sent as an empty value
	if q.Count > 0 {
		params.Set("searchCnt", strconv.Itoa(q.Count))
	} else {
		params.Set("searchCnt", "")
	}
	params.Set("pageIndex", strconv.Itoa(q.PageIndex))
	params.Set("pageUnit", strconv.Itoa(q.PageUnit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrAnnouncementsUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrAnnouncementsUpstream, resp.StatusCode)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: non-JSON response", domain.ErrAnnouncementsUpstream)
	}
	return json.RawMessage(body), nil
}
