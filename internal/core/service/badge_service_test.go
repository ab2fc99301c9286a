package service

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

type fakeBadgeRepo struct {
	badges map[int64]domain.Badge
	nextID int64
}

func newFakeBadgeRepo() *fakeBadgeRepo {
	return &fakeBadgeRepo{badges: make(map[int64]domain.Badge), nextID: 1}
}

func (r *fakeBadgeRepo) List(_ context.Context) ([]domain.Badge, error) {
	out := make([]domain.Badge, 0, len(r.badges))
	for _, b := range r.badges {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeBadgeRepo) Find(_ context.Context, id int64) (*domain.Badge, error) {
	b, ok := r.badges[id]
	if !ok {
		return nil, domain.ErrBadgeNotFound
	}
	return &b, nil
}

func (r *fakeBadgeRepo) Create(_ context.Context, badge domain.Badge) (int64, error) {
	badge.ID = r.nextID
	r.nextID++
	r.badges[badge.ID] = badge
	return badge.ID, nil
}

func (r *fakeBadgeRepo) Update(_ context.Context, badge domain.Badge) error {
	if _, ok := r.badges[badge.ID]; !ok {
		return domain.ErrBadgeNotFound
	}
	r.badges[badge.ID] = badge
	return nil
}

func (r *fakeBadgeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.badges[id]; !ok {
		return domain.ErrBadgeNotFound
	}
	delete(r.badges, id)
	return nil
}

func newBadgeService(repo *fakeBadgeRepo, members ...string) *BadgeService {
	mirror := newTestMirror(map[domain.UserClass][]string{domain.ClassMember: members})
	return NewBadgeService(repo, mirror, zerolog.Nop())
}

func TestBadgeService_Add(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := newBadgeService(repo, "alice")

	badge, err := svc.Add(context.Background(), ports.AddBadgeInput{
		MemberID: "  alice  ", MissionName: "  first mission  ", IconType: 3,
	})
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if badge.ID == 0 {
		t.Fatalf("assigned id missing")
	}
	if badge.MemberID != "alice" || badge.MissionName != "first mission" {
		t.Fatalf("fields not trimmed: %+v", badge)
	}
	if badge.IconType != 3 {
		t.Fatalf("icon type = %d, want 3", badge.IconType)
	}
}

func TestBadgeService_Add_ClampsIconType(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := newBadgeService(repo, "alice")

	for _, tc := range []struct{ in, want int }{{0, 1}, {-2, 1}, {11, 1}, {10, 10}} {
		badge, err := svc.Add(context.Background(), ports.AddBadgeInput{
			MemberID: "alice", MissionName: "m", IconType: tc.in,
		})
		if err != nil {
			t.Fatalf("Add(%d) returned error: %v", tc.in, err)
		}
		if badge.IconType != tc.want {
			t.Fatalf("Add(%d) stored icon %d, want %d", tc.in, badge.IconType, tc.want)
		}
	}
}

func TestBadgeService_Add_Rejections(t *testing.T) {
	svc := newBadgeService(newFakeBadgeRepo(), "alice")

	if _, err := svc.Add(context.Background(), ports.AddBadgeInput{MemberID: " ", MissionName: "m"}); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("blank member: expected ErrMalformedInput, got %v", err)
	}
	if _, err := svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "alice", MissionName: " "}); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("blank mission: expected ErrMalformedInput, got %v", err)
	}
	if _, err := svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "ghost", MissionName: "m"}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("unknown member: expected ErrUserNotFound, got %v", err)
	}
}

func TestBadgeService_Update(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := newBadgeService(repo, "alice")

	badge, _ := svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "alice", MissionName: "old", IconType: 2})

	err := svc.Update(context.Background(), ports.UpdateBadgeInput{ID: badge.ID, MissionName: "new name", IconType: 99})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	stored := repo.badges[badge.ID]
	if stored.MissionName != "new name" {
		t.Fatalf("mission not updated: %q", stored.MissionName)
	}
	if stored.IconType != 1 {
		t.Fatalf("out-of-range icon not clamped: %d", stored.IconType)
	}
	if stored.MemberID != "alice" {
		t.Fatalf("owner changed by update: %q", stored.MemberID)
	}
}

func TestBadgeService_Update_Rejections(t *testing.T) {
	svc := newBadgeService(newFakeBadgeRepo(), "alice")

	if err := svc.Update(context.Background(), ports.UpdateBadgeInput{ID: 1, MissionName: "  "}); !errors.Is(err, domain.ErrMalformedInput) {
		t.Fatalf("blank mission: expected ErrMalformedInput, got %v", err)
	}
	if err := svc.Update(context.Background(), ports.UpdateBadgeInput{ID: 99, MissionName: "m"}); !errors.Is(err, domain.ErrBadgeNotFound) {
		t.Fatalf("unknown badge: expected ErrBadgeNotFound, got %v", err)
	}
}

func TestBadgeService_Delete(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := newBadgeService(repo, "alice")

	badge, _ := svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "alice", MissionName: "m"})

	if err := svc.Delete(context.Background(), badge.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := svc.Delete(context.Background(), badge.ID); !errors.Is(err, domain.ErrBadgeNotFound) {
		t.Fatalf("expected ErrBadgeNotFound, got %v", err)
	}
}

func TestBadgeService_ListByMember(t *testing.T) {
	repo := newFakeBadgeRepo()
	svc := newBadgeService(repo, "alice", "bob")

	_, _ = svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "alice", MissionName: "one"})
	_, _ = svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "alice", MissionName: "two"})
	_, _ = svc.Add(context.Background(), ports.AddBadgeInput{MemberID: "bob", MissionName: "three"})

	grouped, err := svc.ListByMember(context.Background())
	if err != nil {
		t.Fatalf("ListByMember returned error: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("grouped into %d members, want 2", len(grouped))
	}
	if len(grouped["alice"]) != 2 || len(grouped["bob"]) != 1 {
		t.Fatalf("unexpected grouping: %v", grouped)
	}
	if grouped["alice"][0].MissionName != "one" || grouped["alice"][1].MissionName != "two" {
		t.Fatalf("insertion order lost: %v", grouped["alice"])
	}
}
