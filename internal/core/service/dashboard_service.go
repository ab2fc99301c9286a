package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/state"
)

// DashboardService assembles the role-dependent dashboard payload from the
// other services and the in-memory mirror.
type DashboardService struct {
	accounts ports.AccountService
	ledger   ports.LedgerService
	todos    ports.TodoService
	badges   ports.BadgeService
	auth     ports.AuthService
	mirror   *state.Mirror
	log      zerolog.Logger
}

func NewDashboardService(
	accounts ports.AccountService,
	ledger ports.LedgerService,
	todos ports.TodoService,
	badges ports.BadgeService,
	auth ports.AuthService,
	mirror *state.Mirror,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		accounts: accounts,
		ledger:   ledger,
		todos:    todos,
		badges:   badges,
		auth:     auth,
		mirror:   mirror,
		log:      log,
	}
}

// Overview builds the dashboard for one authenticated user. Admins get every
// class table plus notes, badges and login history; regular users get their
// own grids and whatever the todo audiences allow.
func (s *DashboardService) Overview(ctx context.Context, input ports.OverviewInput) (*ports.Overview, error) {
	window := s.mirror.Window()
	year := input.Year
	if year == 0 {
		year = defaultYear(window)
	}

	ov := &ports.Overview{
		UserID: input.UserID,
		Role:   input.Role,
		Year:   year,
		Years:  window.Years(),
		Months: domain.MonthLabels[:],
	}

	if input.Role == domain.RoleAdmin {
		admin, err := s.adminOverview(ctx)
		if err != nil {
			return nil, err
		}
		ov.Admin = admin

		todos, err := s.todos.VisibleTo(ctx, input.UserID, "", true)
		if err != nil {
			return nil, fmt.Errorf("load todos: %w", err)
		}
		ov.Todos = todos
		return ov, nil
	}

	class, err := domain.ParseUserClass(input.Role)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	ov.Grids = s.ledger.UserGrids(input.UserID)
	if class == domain.ClassMember {
		if note, ok := s.mirror.Note(input.UserID); ok {
			ov.Note = &note
		}
		grouped, err := s.badges.ListByMember(ctx)
		if err != nil {
			return nil, fmt.Errorf("load badges: %w", err)
		}
		ov.Badges = grouped[input.UserID]
	}

	todos, err := s.todos.VisibleTo(ctx, input.UserID, class, false)
	if err != nil {
		return nil, fmt.Errorf("load todos: %w", err)
	}
	ov.Todos = todos
	return ov, nil
}

func (s *DashboardService) adminOverview(ctx context.Context) (*ports.AdminOverview, error) {
	classes := make(map[domain.UserClass]ports.ClassTable, len(domain.AllClasses))
	for _, class := range domain.AllClasses {
		records, err := s.accounts.List(ctx, class)
		if err != nil {
			return nil, fmt.Errorf("list %s accounts: %w", class, err)
		}
		classes[class] = ports.ClassTable{
			Records: records,
			Grids:   s.ledger.ClassGrids(class),
		}
	}

	badges, err := s.badges.ListByMember(ctx)
	if err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}

	logins, err := s.auth.ListLastLogins(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to load login history")
		logins = nil
	}

	return &ports.AdminOverview{
		Classes:    classes,
		Notes:      s.mirror.Notes(),
		Badges:     badges,
		LastLogins: logins,
	}, nil
}

// defaultYear prefers the current calendar year when it is tracked, falling
// back to the start of the window.
func defaultYear(window domain.YearWindow) int {
	now := time.Now().Year()
	if window.Contains(now) {
		return now
	}
	return window.Start
}
