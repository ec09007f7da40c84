package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCookieStore_RoundTrip(t *testing.T) {
	s := NewCookieStore([]byte("secret"), "")
	in := Session{UserID: "u-1", Email: "ops@example.com", Role: RoleAdmin, Token: "jwt"}

	v, err := s.Encode(in)
	require.NoError(t, err)

	out, err := s.Decode(v)
	require.NoError(t, err)
	assert.Equal(t, in, out)
	assert.True(t, out.IsAdmin())
	assert.Equal(t, DefaultCookieName, s.CookieName)
}

func TestCookieStore_RejectsTampering(t *testing.T) {
	s := NewCookieStore([]byte("secret"), "user")
	v, err := s.Encode(Session{UserID: "u-1", Role: "customer"})
	require.NoError(t, err)

	forged, err := NewCookieStore([]byte("other"), "user").Encode(Session{UserID: "u-1", Role: RoleAdmin})
	require.NoError(t, err)

	payload, _, _ := strings.Cut(forged, ".")
	_, sig, _ := strings.Cut(v, ".")

	for _, bad := range []string{"", "nodot", ".sig", payload + "." + sig, forged} {
		_, err := s.Decode(bad)
		assert.ErrorIs(t, err, ErrInvalid, bad)
	}
}

func TestCookieStore_RequiresUserID(t *testing.T) {
	s := NewCookieStore([]byte("secret"), "user")
	v, err := s.Encode(Session{Role: RoleAdmin})
	require.NoError(t, err)

	_, err = s.Decode(v)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestCookieStore_Lookup(t *testing.T) {
	s := NewCookieStore([]byte("secret"), "user")
	v, err := s.Encode(Session{UserID: "u-1", Role: RoleAdmin})
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	_, ok := s.Lookup(r)
	assert.False(t, ok)

	r.AddCookie(&http.Cookie{Name: "user", Value: v})
	sess, ok := s.Lookup(r)
	assert.True(t, ok)
	assert.Equal(t, "u-1", sess.UserID)

	r = httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	r.AddCookie(&http.Cookie{Name: "user", Value: "garbage"})
	_, ok = s.Lookup(r)
	assert.False(t, ok)
}

func TestDBStore_NoCookie(t *testing.T) {
	s := NewDBStore(nil, "")
	_, ok := s.Lookup(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
	assert.Equal(t, "session_id", s.CookieName)
}

func TestLookupFunc(t *testing.T) {
	var l Lookup = LookupFunc(func(*http.Request) (Session, bool) {
		return Session{UserID: "x", Role: "customer"}, true
	})
	sess, ok := l.Lookup(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.True(t, ok)
	assert.False(t, sess.IsAdmin())
}
