package handler

import (
	"github.com/yottalab/membership-system/internal/core/domain"
	"github.com/yottalab/membership-system/internal/core/ports"
)

// noteDateLayout matches the date format the dashboard has always shown
// next to member notes.
const noteDateLayout = "2006년 01월 02일"

const lastLoginLayout = "2006-01-02 15:04"

// --- Service result → HTTP response ---

func toOverviewResponse(o *ports.Overview) overviewResponse {
	resp := overviewResponse{
		UserID: o.UserID,
		Role:   o.Role,
		Year:   o.Year,
		Years:  o.Years,
		Months: o.Months,
		Grids:  o.Grids,
		Todos:  o.Todos,
	}
	if o.Note != nil {
		n := toNoteResponse(*o.Note)
		resp.Note = &n
	}
	if len(o.Badges) > 0 {
		resp.Badges = toBadgeResponses(o.Badges)
	}
	if o.Admin != nil {
		admin := toAdminResponse(o.Admin)
		resp.Admin = &admin
	}
	return resp
}

func toAdminResponse(a *ports.AdminOverview) adminOverviewResponse {
	classes := make(map[string]classTableResponse, len(a.Classes))
	for class, table := range a.Classes {
		classes[string(class)] = classTableResponse{
			Records: table.Records,
			Grids:   table.Grids,
		}
	}

	notes := make(map[string]noteResponse, len(a.Notes))
	for id, note := range a.Notes {
		notes[id] = toNoteResponse(note)
	}

	badges := make(map[string][]badgeResponse, len(a.Badges))
	for id, group := range a.Badges {
		badges[id] = toBadgeResponses(group)
	}

	logins := make([]lastLoginResponse, len(a.LastLogins))
	for i, l := range a.LastLogins {
		logins[i] = lastLoginResponse{
			UserID: l.UserID,
			At:     l.At.Format(lastLoginLayout),
			IP:     l.IP,
		}
	}

	return adminOverviewResponse{
		Classes:    classes,
		Notes:      notes,
		Badges:     badges,
		LastLogins: logins,
	}
}

func toNoteResponse(n domain.Note) noteResponse {
	resp := noteResponse{Body: n.Body}
	if n.UpdatedAt != nil {
		resp.UpdatedAt = n.UpdatedAt.Format(noteDateLayout)
	}
	return resp
}

func toBadgeResponses(badges []domain.Badge) []badgeResponse {
	out := make([]badgeResponse, len(badges))
	for i, b := range badges {
		out[i] = badgeResponse{
			ID:          b.ID,
			MemberID:    b.MemberID,
			MissionName: b.MissionName,
			IconType:    b.IconType,
			Icon:        b.Icon().Glyph,
		}
	}
	return out
}
