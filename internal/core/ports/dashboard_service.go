package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// OverviewInput identifies the acting user and the selected ledger year.
type OverviewInput struct {
	UserID string
	Role   string
	Year   int // 0 = service picks the default year
}

// ClassTable is one user class as the admin sees it: records in display
// order plus every user's payment grids.
type ClassTable struct {
	Records []domain.UserRecord
	Grids   map[string]map[int]domain.YearGrid
}

// AdminOverview is the admin-only portion of the dashboard payload.
type AdminOverview struct {
	Classes    map[domain.UserClass]ClassTable
	Notes      map[string]domain.Note
	Badges     map[string][]domain.Badge
	LastLogins []domain.LastLogin
}

// Overview is the role-dependent dashboard payload.
type Overview struct {
	UserID string
	Role   string
	Year   int
	Years  []int
	Months []string
	// Grids holds the acting user's own payment grids (empty for admin).
	Grids map[int]domain.YearGrid
	// Note and Badges are populated for members only.
	Note   *domain.Note
	Badges []domain.Badge
	Todos  []domain.TodoItem
	Admin  *AdminOverview
}

// DashboardService assembles the per-role dashboard payload.
type DashboardService interface {
	Overview(ctx context.Context, input OverviewInput) (*Overview, error)
}
