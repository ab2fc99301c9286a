package domain

import "errors"

// UserClass identifies one of the four structurally identical account pools.
type UserClass string

const (
	ClassMember   UserClass = "member"
	ClassPartner  UserClass = "partner"
	ClassBacker   UserClass = "backer"
	ClassCustomer UserClass = "customer"
)

// AllClasses is the fixed evaluation order used by login and classification:
// the first class containing an id wins.
var AllClasses = [...]UserClass{ClassMember, ClassPartner, ClassBacker, ClassCustomer}

var ErrUserNotFound = errors.New("user not found")
var ErrDuplicateUser = errors.New("user already exists")
var ErrUnknownUserClass = errors.New("unknown user class")
var ErrMalformedInput = errors.New("malformed input")

// ParseUserClass maps a route segment or form value to a UserClass. Both the
// singular and plural spellings are accepted.
func ParseUserClass(s string) (UserClass, error) {
	switch s {
	case "member", "members":
		return ClassMember, nil
	case "partner", "partners":
		return ClassPartner, nil
	case "backer", "backers":
		return ClassBacker, nil
	case "customer", "customers":
		return ClassCustomer, nil
	}
	return "", ErrUnknownUserClass
}

// Hashed reports whether credentials of this class are stored one-way-hashed.
// Members and partners hash; backers and customers store verbatim.
func (c UserClass) Hashed() bool {
	return c == ClassMember || c == ClassPartner
}

// UserRecord is one account in a user-class table. SortOrder is a display
// ordering hint; ties are broken by ID. Equity is free text and may be empty.
type UserRecord struct {
	ID         string `json:"id"`
	Credential string `json:"-"`
	SortOrder  int    `json:"sort_order"`
	Equity     string `json:"equity"`
}
