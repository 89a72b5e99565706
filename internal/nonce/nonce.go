// Package nonce issues and verifies the anti-forgery tokens the weather
// endpoint requires. Tokens prove the request originated from a page
// that bootstrapped through the session endpoint, guarding the
// rate-limited upstream weather API against cross-site triggering.
package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// Tokens are tied to a time window rather than stored server side.
	// A token is valid for the tick it was minted in plus the previous
	// one, so its lifetime is between 12 and 24 hours.
	tickDuration = 12 * time.Hour

	tokenLength = 12
)

type Service struct {
	secret []byte
	now    func() time.Time
}

func NewService(secret string) *Service {
	return &Service{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Create mints a token for the given action in the current tick.
func (s *Service) Create(action string) string {
	return s.tokenAt(action, s.tick(0))
}

// Verify reports whether the token is valid for the action in the
// current or previous tick. Comparison is constant time.
func (s *Service) Verify(token, action string) bool {
	if token == "" {
		return false
	}
	for _, age := range []int{0, -1} {
		want := s.tokenAt(action, s.tick(age))
		if hmac.Equal([]byte(token), []byte(want)) {
			return true
		}
	}
	return false
}

func (s *Service) tick(offset int) int64 {
	return s.now().Unix()/int64(tickDuration.Seconds()) + int64(offset)
}

func (s *Service) tokenAt(action string, tick int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%s", tick, action)
	return hex.EncodeToString(mac.Sum(nil))[:tokenLength]
}
