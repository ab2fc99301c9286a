package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
	"github.com/yottalab/membership-system/internal/core/state"
)

// LedgerService serves payment grids from the mirror and applies bulk edits
// with full-replace semantics per class.
type LedgerService struct {
	repo    ports.LedgerRepository
	notes   ports.NoteRepository
	mirror  *state.Mirror
	log     zerolog.Logger
	flushMu sync.Mutex
}

func NewLedgerService(repo ports.LedgerRepository, notes ports.NoteRepository, mirror *state.Mirror, log zerolog.Logger) *LedgerService {
	return &LedgerService{repo: repo, notes: notes, mirror: mirror, log: log}
}

// GetYear returns the 12-month grid for one user and year. Unknown users and
// years outside the window yield an all-false grid.
func (s *LedgerService) GetYear(userID string, year int) domain.YearGrid {
	return s.mirror.GetYear(userID, year)
}

// UserGrids returns every tracked year's grid for one user.
func (s *LedgerService) UserGrids(userID string) map[int]domain.YearGrid {
	return s.mirror.UserGrids(userID)
}

// ClassGrids returns the grids of every user in the class.
func (s *LedgerService) ClassGrids(class domain.UserClass) map[string]map[int]domain.YearGrid {
	return s.mirror.ClassGrids(class)
}

// BulkSet replaces the whole class's ledger with the submitted entries.
// Every known user starts from an all-false skeleton, so any slot absent
// from entries is cleared. Persistence happens before the mirror swap; a
// storage failure leaves the previous state visible.
func (s *LedgerService) BulkSet(ctx context.Context, input ports.BulkSetInput) error {
	s.flushMu.Lock()
	defer s.flushMu.Unlock()

	window := s.mirror.Window()

	// 1. Build the all-false skeleton over every known user of the class.
	next := make(map[string]map[int]domain.YearGrid)
	for _, id := range s.mirror.Users(input.Class) {
		grids := make(map[int]domain.YearGrid, window.Count)
		for _, year := range window.Years() {
			grids[year] = domain.YearGrid{}
		}
		next[id] = grids
	}

	// 2. Overlay the submitted true slots. Malformed keys are skipped.
	for key, paid := range input.Entries {
		if !paid {
			continue
		}
		userID, year, month, ok := parseEntryKey(key)
		if !ok {
			s.log.Warn().Str("key", key).Msg("skipping malformed ledger entry key")
			continue
		}
		grids, known := next[userID]
		if !known {
			continue
		}
		grid, tracked := grids[year]
		if !tracked || month < 0 || month >= domain.MonthsPerYear {
			continue
		}
		grid[month] = true
		grids[year] = grid
	}

	// 3. Persist the union of all four classes with this one replaced,
	// then swap the mirror.
	rows := s.mirror.FlattenWith(input.Class, next)
	if err := s.repo.ReplaceAll(ctx, rows); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	s.mirror.ReplaceClassGrids(input.Class, next)

	// 4. Member bulk edits may carry note updates for known members.
	if input.Class == domain.ClassMember {
		for userID, body := range input.Notes {
			if !s.mirror.HasUser(domain.ClassMember, userID) {
				continue
			}
			if err := s.saveNote(ctx, userID, body); err != nil {
				s.log.Warn().Err(err).Str("id", userID).Msg("failed to save note during bulk edit")
			}
		}
	}

	s.log.Info().Str("class", string(input.Class)).Int("users", len(next)).Msg("ledger replaced")
	return nil
}

// SetNote stores a member note and stamps its update time.
func (s *LedgerService) SetNote(ctx context.Context, userID, body string) error {
	if !s.mirror.HasUser(domain.ClassMember, userID) {
		return domain.ErrUserNotFound
	}
	if err := s.saveNote(ctx, userID, body); err != nil {
		return fmt.Errorf("set note: %w", err)
	}
	return nil
}

func (s *LedgerService) saveNote(ctx context.Context, userID, body string) error {
	now := time.Now()
	note := domain.Note{Body: body, UpdatedAt: &now}
	if err := s.notes.Upsert(ctx, userID, note); err != nil {
		return err
	}
	s.mirror.SetNote(userID, note)
	return nil
}

// parseEntryKey splits "userID_year_month" from the right, since user ids
// may themselves contain underscores.
func parseEntryKey(key string) (userID string, year, month int, ok bool) {
	rest, monthStr, found := cutLast(key, "_")
	if !found {
		return "", 0, 0, false
	}
	userID, yearStr, found := cutLast(rest, "_")
	if !found || userID == "" {
		return "", 0, 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return "", 0, 0, false
	}
	month, err = strconv.Atoi(monthStr)
	if err != nil {
		return "", 0, 0, false
	}
	return userID, year, month, true
}

func cutLast(s, sep string) (before, after string, found bool) {
	idx := strings.LastIndex(s, sep)
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+len(sep):], true
}
