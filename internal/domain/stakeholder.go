package domain

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type StakeholderRole string

const (
	RoleAdmin          StakeholderRole = "admin"
	RoleFactoryOwner   StakeholderRole = "factory_owner"
	RoleFactoryManager StakeholderRole = "factory_manager"
	RoleBuyer          StakeholderRole = "buyer"
	RoleBuyerEmployee  StakeholderRole = "buyer_employee"

	DefaultStakeholderRole = RoleBuyer
)

func (r StakeholderRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleFactoryOwner, RoleFactoryManager, RoleBuyer, RoleBuyerEmployee:
		return true
	}
	return false
}

type Permission string

const (
	PermissionRead    Permission = "read"
	PermissionComment Permission = "comment"
	PermissionUpdate  Permission = "update"

	DefaultPermission = PermissionRead
)

var permissionRank = map[Permission]int{
	PermissionRead:    1,
	PermissionComment: 2,
	PermissionUpdate:  3,
}

func (p Permission) IsValid() bool {
	_, ok := permissionRank[p]
	return ok
}

// Allows reports whether p includes required (read ⊂ comment ⊂ update).
// Stores never consult it.
func (p Permission) Allows(required Permission) bool {
	have, ok := permissionRank[p]
	if !ok {
		return false
	}
	return have >= permissionRank[required]
}

type Stakeholder struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"orderId"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        StakeholderRole `json:"role"`
	Permissions Permission      `json:"permissions"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func (s Stakeholder) WithDefaults() Stakeholder {
	if s.Role == "" {
		s.Role = DefaultStakeholderRole
	}
	if s.Permissions == "" {
		s.Permissions = DefaultPermission
	}
	return s
}

// DisplayNameFromEmail derives a readable name from the local part of an
// address: "john.q_public@co.com" becomes "John Q Public".
func DisplayNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}

	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_'
	})
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
