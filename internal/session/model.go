package session

import "time"

// Role is the access tier carried by a session. The on-chain user registry
// reports roles as integers; zero means unauthenticated.
type Role int

const (
	RoleNone Role = iota
	RoleUser
	RoleSeller
	RoleAdmin
)

func (r Role) String() string {
	switch r {
	case RoleUser:
		return "user"
	case RoleSeller:
		return "seller"
	case RoleAdmin:
		return "admin"
	default:
		return "none"
	}
}

// RoleFromInt maps a registry role number to a Role. Unknown values
// resolve to RoleNone.
func RoleFromInt(n int) Role {
	switch n {
	case 1:
		return RoleUser
	case 2:
		return RoleSeller
	case 3:
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Session correlates a bearer token to a role and identity. One store holds
// both user and admin sessions; the role is data, not a separate map.
type Session struct {
	Token        string
	IdentityHash []byte
	Account      string
	Role         Role
	CreatedAt    time.Time
}
