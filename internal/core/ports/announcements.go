package ports

import (
	"context"
	"encoding/json"
)

// AnnouncementsQuery selects a page of support-programme announcements.
type AnnouncementsQuery struct {
	Count     int // total results to fetch; 0 = upstream default
	PageIndex int // 1-based
	PageUnit  int // results per page
}

// AnnouncementsClient fetches announcements from the upstream API. The
// payload shape is owned by the upstream and passed through verbatim.
type AnnouncementsClient interface {
	Fetch(ctx context.Context, q AnnouncementsQuery) (json.RawMessage, error)
}
