// Package state holds the in-process mirror of persisted membership state.
//
// The persistent store remains the source of truth; the mirror is rebuilt from
// it at startup and kept in lockstep by every mutating operation
// (write-through). All access goes through one coarse RWMutex so concurrent
// request handling stays safe without per-call store reads.
package state

import (
	"sync"

	"github.com/yottalab/membership-system/internal/core/domain"
)

// Mirror caches the known user ids per class, every payment grid, and the
// member notes. The zero value is not usable; construct with New.
type Mirror struct {
	mu     sync.RWMutex
	window domain.YearWindow
	users  map[domain.UserClass]map[string]struct{}
	grids  map[domain.UserClass]map[string]map[int]domain.YearGrid
	notes  map[string]domain.Note
}

// New returns an empty mirror for the given year window.
func New(window domain.YearWindow) *Mirror {
	m := &Mirror{
		window: window,
		users:  make(map[domain.UserClass]map[string]struct{}),
		grids:  make(map[domain.UserClass]map[string]map[int]domain.YearGrid),
		notes:  make(map[string]domain.Note),
	}
	for _, class := range domain.AllClasses {
		m.users[class] = make(map[string]struct{})
		m.grids[class] = make(map[string]map[int]domain.YearGrid)
	}
	return m
}

// Window returns the configured year window.
func (m *Mirror) Window() domain.YearWindow {
	return m.window
}

// Rebuild replaces the whole mirror: an all-false grid skeleton over the
// given users and window years, overlaid with the persisted rows. Rows for
// unknown users or out-of-window years are dropped. An id present in more
// than one class is overlaid in the first class only, matching the read
// order of ClassOf and GetYear.
func (m *Mirror) Rebuild(users map[domain.UserClass][]string, rows []domain.LedgerRow, notes map[string]domain.Note) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, class := range domain.AllClasses {
		m.users[class] = make(map[string]struct{})
		m.grids[class] = make(map[string]map[int]domain.YearGrid)
		for _, id := range users[class] {
			m.users[class][id] = struct{}{}
			m.grids[class][id] = m.emptyGrids()
		}
	}

	for _, row := range rows {
		if !m.window.Contains(row.Year) || row.Month < 0 || row.Month >= domain.MonthsPerYear {
			continue
		}
		for _, class := range domain.AllClasses {
			byYear, ok := m.grids[class][row.UserID]
			if !ok {
				continue
			}
			grid := byYear[row.Year]
			grid[row.Month] = true
			byYear[row.Year] = grid
			break
		}
	}

	m.notes = make(map[string]domain.Note, len(notes))
	for id, note := range notes {
		m.notes[id] = note
	}
}

// HasUser reports whether id is known in class.
func (m *Mirror) HasUser(class domain.UserClass, id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.users[class][id]
	return ok
}

// ClassOf returns the first class containing id, in the fixed evaluation
// order, and whether any matched.
func (m *Mirror) ClassOf(id string) (domain.UserClass, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, class := range domain.AllClasses {
		if _, ok := m.users[class][id]; ok {
			return class, true
		}
	}
	return "", false
}

// Users lists the known ids of a class in unspecified order.
func (m *Mirror) Users(class domain.UserClass) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.users[class]))
	for id := range m.users[class] {
		ids = append(ids, id)
	}
	return ids
}

// RegisterUser adds id to class with all-false grids. No-op when present.
func (m *Mirror) RegisterUser(class domain.UserClass, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[class][id]; ok {
		return
	}
	m.users[class][id] = struct{}{}
	m.grids[class][id] = m.emptyGrids()
}

// DropUser removes id and its grids from class.
func (m *Mirror) DropUser(class domain.UserClass, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users[class], id)
	delete(m.grids[class], id)
}

// GetYear returns the grid for the first class containing id; the zero grid
// when the user or year is unknown.
func (m *Mirror) GetYear(id string, year int) domain.YearGrid {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.window.Contains(year) {
		return domain.YearGrid{}
	}
	for _, class := range domain.AllClasses {
		if byYear, ok := m.grids[class][id]; ok {
			return byYear[year]
		}
	}
	return domain.YearGrid{}
}

// UserGrids returns a copy of all in-window grids for the first class
// containing id; nil when the user is unknown.
func (m *Mirror) UserGrids(id string) map[int]domain.YearGrid {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, class := range domain.AllClasses {
		if byYear, ok := m.grids[class][id]; ok {
			return copyGrids(byYear)
		}
	}
	return nil
}

// ClassGrids returns a deep copy of every user's grids in class.
func (m *Mirror) ClassGrids(class domain.UserClass) map[string]map[int]domain.YearGrid {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]map[int]domain.YearGrid, len(m.grids[class]))
	for id, byYear := range m.grids[class] {
		out[id] = copyGrids(byYear)
	}
	return out
}

// ReplaceClassGrids swaps in a freshly computed table for one class. Users
// present in the table but not yet registered are registered.
func (m *Mirror) ReplaceClassGrids(class domain.UserClass, grids map[string]map[int]domain.YearGrid) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.grids[class] = make(map[string]map[int]domain.YearGrid, len(grids))
	for id, byYear := range grids {
		m.users[class][id] = struct{}{}
		m.grids[class][id] = copyGrids(byYear)
	}
}

// FlattenWith renders the union of all four classes as persistable rows
// (true slots only), with override standing in for class. The snapshot is
// taken under one read lock so concurrent mutations cannot tear it. Rows are
// deduplicated: an id living in two classes yields one row per paid slot.
func (m *Mirror) FlattenWith(class domain.UserClass, override map[string]map[int]domain.YearGrid) []domain.LedgerRow {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var rows []domain.LedgerRow
	seen := make(map[domain.LedgerRow]struct{})
	for _, c := range domain.AllClasses {
		table := m.grids[c]
		if c == class {
			table = override
		}
		for id, byYear := range table {
			for year, grid := range byYear {
				for month, paid := range grid {
					if !paid {
						continue
					}
					row := domain.LedgerRow{UserID: id, Year: year, Month: month}
					if _, dup := seen[row]; dup {
						continue
					}
					seen[row] = struct{}{}
					rows = append(rows, row)
				}
			}
		}
	}
	return rows
}

// Note returns the note for a member id.
func (m *Mirror) Note(id string) (domain.Note, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	note, ok := m.notes[id]
	return note, ok
}

// Notes returns a copy of every member note.
func (m *Mirror) Notes() map[string]domain.Note {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string]domain.Note, len(m.notes))
	for id, note := range m.notes {
		out[id] = note
	}
	return out
}

// SetNote stores a note write-through.
func (m *Mirror) SetNote(id string, note domain.Note) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notes[id] = note
}

// DropNote removes a member's note.
func (m *Mirror) DropNote(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.notes, id)
}

// emptyGrids builds the all-false skeleton for one user. Callers hold the
// write lock.
func (m *Mirror) emptyGrids() map[int]domain.YearGrid {
	byYear := make(map[int]domain.YearGrid, m.window.Count)
	for _, year := range m.window.Years() {
		byYear[year] = domain.YearGrid{}
	}
	return byYear
}

func copyGrids(src map[int]domain.YearGrid) map[int]domain.YearGrid {
	out := make(map[int]domain.YearGrid, len(src))
	for year, grid := range src {
		out[year] = grid
	}
	return out
}
