package ports

import (
	"context"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// AddBadgeInput carries an admin add-badge request. IconType outside [1,10]
// is clamped to 1.
type AddBadgeInput struct {
	MemberID    string
	MissionName string
	IconType    int
}

// UpdateBadgeInput carries an admin badge edit. MissionName is required;
// IconType outside [1,10] is clamped to 1.
type UpdateBadgeInput struct {
	ID          int64
	MissionName string
	IconType    int
}

// BadgeService defines badge use cases.
type BadgeService interface {
	// ListByMember groups all badges by member id, insertion-ordered within
	// each group.
	ListByMember(ctx context.Context) (map[string][]domain.Badge, error)
	Add(ctx context.Context, input AddBadgeInput) (*domain.Badge, error)
	Update(ctx context.Context, input UpdateBadgeInput) error
	Delete(ctx context.Context, id int64) error
}
