package domain

import (
	"encoding/json"
	"errors"
	"strings"
)

// AudienceKind discriminates the visibility rule attached to a todo.
type AudienceKind int

const (
	AudienceAll AudienceKind = iota
	AudienceMembers
	AudiencePartners
	AudienceExplicit
)

var ErrTodoNotFound = errors.New("todo not found")

// Audience is the visibility rule for a todo item: everyone, one whole user
// class, or an explicit set of user ids. The legacy delimited-string form
// ("all", "members", "partners", "id1,id2") exists only at the storage and
// transport boundaries; see ParseAudience and String.
type Audience struct {
	Kind AudienceKind
	IDs  []string // populated only when Kind == AudienceExplicit
}

// AudienceFor folds a checkbox-style id selection into an Audience. An empty
// selection degrades to everyone.
func AudienceFor(ids []string) Audience {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return Audience{Kind: AudienceAll}
	}
	return Audience{Kind: AudienceExplicit, IDs: clean}
}

// ParseAudience decodes the delimited string form. Unknown or empty input
// degrades to everyone rather than erroring, matching the stored default.
func ParseAudience(s string) Audience {
	switch strings.TrimSpace(s) {
	case "", "all":
		return Audience{Kind: AudienceAll}
	case "members":
		return Audience{Kind: AudienceMembers}
	case "partners":
		return Audience{Kind: AudiencePartners}
	}
	return AudienceFor(strings.Split(s, ","))
}

// String serialises back to the delimited form.
func (a Audience) String() string {
	switch a.Kind {
	case AudienceMembers:
		return "members"
	case AudiencePartners:
		return "partners"
	case AudienceExplicit:
		return strings.Join(a.IDs, ",")
	}
	return "all"
}

// Allows reports whether a non-admin user sees a todo with this audience.
// Admin bypass is the caller's concern.
func (a Audience) Allows(userID string, class UserClass) bool {
	switch a.Kind {
	case AudienceAll:
		return true
	case AudienceMembers:
		return class == ClassMember
	case AudiencePartners:
		return class == ClassPartner
	case AudienceExplicit:
		for _, id := range a.IDs {
			if id == userID {
				return true
			}
		}
	}
	return false
}

// MarshalJSON emits the delimited string form.
func (a Audience) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts the delimited string form.
func (a *Audience) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*a = ParseAudience(s)
	return nil
}

// TodoItem is one task on the shared board.
type TodoItem struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Done      bool     `json:"done"`
	Audience  Audience `json:"audience"`
	SortOrder int      `json:"sort_order"`
	Detail    string   `json:"detail"`
}
