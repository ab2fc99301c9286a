package handler

import "github.com/yottalab/membership-system/internal/core/domain"

type addBadgeRequest struct {
	MemberID    string `json:"member_id"    validate:"required"`
	MissionName string `json:"mission_name" validate:"required"`
	IconType    int    `json:"icon_type"`
}

type updateBadgeRequest struct {
	MissionName string `json:"mission_name" validate:"required"`
	IconType    int    `json:"icon_type"`
}

type listBadgesResponse struct {
	Badges map[string][]domain.Badge `json:"badges"`
	Icons  []domain.BadgeIcon        `json:"icons"`
}
