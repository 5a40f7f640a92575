package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents the JWT claims for cooperative staff and members.
type Claims struct {
	jwt.RegisteredClaims
	UserID     uuid.UUID `json:"user_id"`
	MemberCode string    `json:"member_code,omitempty"`
	Roles      []string  `json:"roles"`
}

// HasRole checks if the claims include the specified role.
func (c Claims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Cooperative office roles.
const (
	RoleAdmin      = "admin"
	RoleChairman   = "chairman"   // ketua
	RoleTreasurer  = "treasurer"  // bendahara
	RoleSupervisor = "supervisor" // pengawas
	RoleMember     = "member"     // anggota
)
