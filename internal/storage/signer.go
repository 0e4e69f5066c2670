package storage

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// URLSigner mints and checks the HMAC protecting signed object URLs
type URLSigner struct {
	secret []byte
}

// NewURLSigner creates a new URL signer
func NewURLSigner(secret string) *URLSigner {
	return &URLSigner{secret: []byte(secret)}
}

// Sign computes the signature for key at the given expiry timestamp
func (s *URLSigner) Sign(key string, expires int64) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%s|%d", key, expires)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks a signature and its expiry. The comparison is constant-time.
func (s *URLSigner) Verify(key string, expires int64, signature string) bool {
	if time.Now().Unix() > expires {
		return false
	}
	expected := s.Sign(key, expires)
	return hmac.Equal([]byte(expected), []byte(signature))
}
