// Package session resolves the operator behind a request. Sessions are issued by the
// external authentication service; this package only reads them.
package session

import "net/http"

const RoleAdmin = "admin"

type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Token  string `json:"token,omitempty"`
}

func (s Session) IsAdmin() bool { return s.Role == RoleAdmin }

// Lookup returns the session attached to r, if any.
type Lookup interface {
	Lookup(r *http.Request) (Session, bool)
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(r *http.Request) (Session, bool)

func (f LookupFunc) Lookup(r *http.Request) (Session, bool) { return f(r) }
