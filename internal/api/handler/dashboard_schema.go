package handler

import "github.com/yottalab/membership-system/internal/core/domain"

type noteResponse struct {
	Body      string `json:"body"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type badgeResponse struct {
	ID          int64  `json:"id"`
	MemberID    string `json:"member_id"`
	MissionName string `json:"mission_name"`
	IconType    int    `json:"icon_type"`
	Icon        string `json:"icon"`
}

type lastLoginResponse struct {
	UserID string `json:"user_id"`
	At     string `json:"at"`
	IP     string `json:"ip"`
}

type classTableResponse struct {
	Records []domain.UserRecord                `json:"records"`
	Grids   map[string]map[int]domain.YearGrid `json:"grids"`
}

type adminOverviewResponse struct {
	Classes    map[string]classTableResponse `json:"classes"`
	Notes      map[string]noteResponse       `json:"notes"`
	Badges     map[string][]badgeResponse    `json:"badges"`
	LastLogins []lastLoginResponse           `json:"last_logins"`
}

type overviewResponse struct {
	UserID string                  `json:"user_id"`
	Role   string                  `json:"role"`
	Year   int                     `json:"year"`
	Years  []int                   `json:"years"`
	Months []string                `json:"months"`
	Grids  map[int]domain.YearGrid `json:"grids,omitempty"`
	Note   *noteResponse           `json:"note,omitempty"`
	Badges []badgeResponse         `json:"badges,omitempty"`
	Todos  []domain.TodoItem       `json:"todos"`
	Admin  *adminOverviewResponse  `json:"admin,omitempty"`
}
