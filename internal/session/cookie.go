package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

var ErrInvalid = errors.New("invalid session cookie")

const DefaultCookieName = "user"

// CookieStore reads the signed user cookie shared with the authentication service.
type CookieStore struct {
	Secret     []byte
	CookieName string
}

func NewCookieStore(secret []byte, name string) *CookieStore {
	if strings.TrimSpace(name) == "" {
		name = DefaultCookieName
	}
	return &CookieStore{Secret: secret, CookieName: name}
}

// value format: base64(json user).base64(hmac)
func (s *CookieStore) Encode(sess Session) (string, error) {
	b, err := json.Marshal(sess)
	if err != nil {
		return "", err
	}
	payload := base64.RawURLEncoding.EncodeToString(b)
	return payload + "." + sign(s.Secret, payload), nil
}

func (s *CookieStore) Decode(v string) (Session, error) {
	payload, sig, ok := strings.Cut(v, ".")
	if !ok || payload == "" {
		return Session{}, ErrInvalid
	}
	if !verify(s.Secret, payload, sig) {
		return Session{}, ErrInvalid
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Session{}, ErrInvalid
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return Session{}, ErrInvalid
	}
	if strings.TrimSpace(sess.UserID) == "" {
		return Session{}, ErrInvalid
	}
	return sess, nil
}

func (s *CookieStore) Lookup(r *http.Request) (Session, bool) {
	c, err := r.Cookie(s.CookieName)
	if err != nil || c.Value == "" {
		return Session{}, false
	}
	sess, err := s.Decode(c.Value)
	if err != nil {
		return Session{}, false
	}
	return sess, true
}

func sign(secret []byte, payload string) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func verify(secret []byte, payload, sig string) bool {
	return hmac.Equal([]byte(sign(secret, payload)), []byte(sig))
}
