package view

import "time"

type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// BannerTTL is how long a mutation banner stays on screen.
const BannerTTL = 3000 * time.Millisecond

type Flash struct {
	Kind      FlashKind `json:"kind"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`

	// Persistent banners (list load failures) never auto-clear.
	Persistent bool `json:"persistent,omitempty"`
}

// NewFlash returns a banner that expires ttl after now.
func NewFlash(kind FlashKind, msg string, now time.Time, ttl time.Duration) Flash {
	return Flash{Kind: kind, Message: msg, ExpiresAt: now.Add(ttl)}
}

func (f Flash) Expired(now time.Time) bool {
	if f.Persistent || f.ExpiresAt.IsZero() {
		return false
	}
	return !now.Before(f.ExpiresAt)
}

// ClearAfterMS is the delay the page waits before hiding the banner.
// Zero means the banner stays.
func (f Flash) ClearAfterMS(now time.Time) int64 {
	if f.Persistent || f.ExpiresAt.IsZero() {
		return 0
	}
	ms := f.ExpiresAt.Sub(now).Milliseconds()
	if ms < 1 {
		return 1
	}
	return ms
}

// Banner is a flash as the page renders it.
type Banner struct {
	Kind         FlashKind
	Message      string
	ClearAfterMS int64
}

func (f *Flash) Banner(now time.Time) *Banner {
	if f == nil || f.Expired(now) {
		return nil
	}
	return &Banner{Kind: f.Kind, Message: f.Message, ClearAfterMS: f.ClearAfterMS(now)}
}
