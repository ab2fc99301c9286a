package domain

import "errors"

const (
	MinIconType = 1
	MaxIconType = 10
)

var ErrBadgeNotFound = errors.New("badge not found")

// BadgeIcon is one selectable badge glyph; labels are product copy.
type BadgeIcon struct {
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

// BadgeIcons maps IconType-1 to its glyph. Ten entries, fixed order.
var BadgeIcons = [MaxIconType]BadgeIcon{
	{"🏆", "트로피"},
	{"🥇", "금메달"},
	{"⭐", "별"},
	{"🎯", "과녁"},
	{"💡", "전구"},
	{"🔥", "불꽃"},
	{"🌟", "빛나는 별"},
	{"✨", "반짝임"},
	{"🎖️", "훈장"},
	{"🏅", "메달"},
}

// ClampIconType forces v into [MinIconType, MaxIconType], defaulting to
// MinIconType for anything outside the range.
func ClampIconType(v int) int {
	if v < MinIconType || v > MaxIconType {
		return MinIconType
	}
	return v
}

// Badge is one achievement awarded to a member. Badges are insertion-ordered
// by ID and removed when the owning member is deleted.
type Badge struct {
	ID          int64  `json:"id"`
	MemberID    string `json:"member_id"`
	MissionName string `json:"mission_name"`
	IconType    int    `json:"icon_type"`
}

// Icon resolves the display glyph for the badge's IconType.
func (b Badge) Icon() BadgeIcon {
	return BadgeIcons[ClampIconType(b.IconType)-1]
}
