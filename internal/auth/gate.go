package auth

import (
	"legitlah-be/internal/session"
)

// Identity is the resolved caller: role, registry identity hash and the
// account acting as the cart key and the "from" party on contract sends.
// The zero value is Anonymous.
type Identity struct {
	Role         session.Role
	IdentityHash []byte
	Account      string
	Token        string
}

func (i Identity) Authenticated() bool {
	return i.Role != session.RoleNone
}

func (i Identity) IsSeller() bool {
	return i.Role == session.RoleSeller
}

func (i Identity) IsAdmin() bool {
	return i.Role == session.RoleAdmin
}

// Gate derives the caller identity from request cookies.
type Gate struct {
	sessions *session.Store
}

func NewGate(sessions *session.Store) *Gate {
	return &Gate{sessions: sessions}
}

// Resolve checks the admin and user session cookies independently. A
// resolving admin session wins regardless of what the user cookie says;
// otherwise the user session's role applies. Anything else is Anonymous.
func (g *Gate) Resolve(cookieHeader string) Identity {
	cookies := ParseCookies(cookieHeader)

	if token := cookies[CookieAdmin]; token != "" {
		if sess, ok := g.sessions.Lookup(token); ok && sess.Role == session.RoleAdmin {
			return identityFrom(sess)
		}
	}

	if token := cookies[CookieUser]; token != "" {
		if sess, ok := g.sessions.Lookup(token); ok {
			return identityFrom(sess)
		}
	}

	return Identity{}
}

func identityFrom(sess session.Session) Identity {
	return Identity{
		Role:         sess.Role,
		IdentityHash: sess.IdentityHash,
		Account:      sess.Account,
		Token:        sess.Token,
	}
}
