package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/state"
)

// BadgeService manages mission badges awarded to members.
type BadgeService struct {
	repo   ports.BadgeRepository
	mirror *state.Mirror
	log    zerolog.Logger
}

func NewBadgeService(repo ports.BadgeRepository, mirror *state.Mirror, log zerolog.Logger) *BadgeService {
	return &BadgeService{repo: repo, mirror: mirror, log: log}
}

// ListByMember groups all badges by member id.
func (s *BadgeService) ListByMember(ctx context.Context) (map[string][]domain.Badge, error) {
	badges, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}

	grouped := make(map[string][]domain.Badge)
	for _, b := range badges {
		grouped[b.MemberID] = append(grouped[b.MemberID], b)
	}
	return grouped, nil
}

// Add awards a badge to an existing member. The icon type is clamped into
// the valid range.
func (s *BadgeService) Add(ctx context.Context, input ports.AddBadgeInput) (*domain.Badge, error) {
	memberID := strings.TrimSpace(input.MemberID)
	mission := strings.TrimSpace(input.MissionName)
	if memberID == "" || mission == "" {
		return nil, domain.ErrMalformedInput
	}
	if !s.mirror.HasUser(domain.ClassMember, memberID) {
		return nil, domain.ErrUserNotFound
	}

	badge := domain.Badge{
		MemberID:    memberID,
		MissionName: mission,
		IconType:    domain.ClampIconType(input.IconType),
	}
	id, err := s.repo.Create(ctx, badge)
	if err != nil {
		return nil, fmt.Errorf("add badge: %w", err)
	}
	badge.ID = id

	s.log.Info().Int64("id", id).Str("member", memberID).Str("mission", mission).Msg("badge awarded")
	return &badge, nil
}

// Update rewrites a badge's mission name and icon type.
func (s *BadgeService) Update(ctx context.Context, input ports.UpdateBadgeInput) error {
	mission := strings.TrimSpace(input.MissionName)
	if mission == "" {
		return domain.ErrMalformedInput
	}

	badge, err := s.repo.Find(ctx, input.ID)
	if err != nil {
		return fmt.Errorf("update badge: %w", err)
	}
	badge.MissionName = mission
	badge.IconType = domain.ClampIconType(input.IconType)

	if err := s.repo.Update(ctx, *badge); err != nil {
		return fmt.Errorf("update badge: %w", err)
	}
	return nil
}

func (s *BadgeService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete badge: %w", err)
	}
	s.log.Info().Int64("id", id).Msg("badge deleted")
	return nil
}
