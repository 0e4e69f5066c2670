package storage

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *localStore {
	t.Helper()
	return NewLocalStore(t.TempDir(), "http://localhost:8080", NewURLSigner("test-signing-secret"))
}

func TestLocalStore_PutAndOpen(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Put(context.Background(), "user-1_key.pdf", "application/pdf", strings.NewReader("%PDF-1.4 fake"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/media/user-1_key.pdf", url)

	rc, err := store.Open("user-1_key.pdf")
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))
}

func TestLocalStore_RejectsTraversalKeys(t *testing.T) {
	store := newTestStore(t)

	for _, key := range []string{"", "../escape", "a/b", `a\b`} {
		_, err := store.Put(context.Background(), key, "application/pdf", strings.NewReader("x"))
		assert.Error(t, err, "key %q", key)
	}
}

func TestLocalStore_SignedURL(t *testing.T) {
	store := newTestStore(t)
	signer := store.signer

	signedURL, err := store.SignedURL("user-1_key.pdf", time.Hour)
	require.NoError(t, err)

	parsed, err := url.Parse(signedURL)
	require.NoError(t, err)

	expires, err := strconv.ParseInt(parsed.Query().Get("expires"), 10, 64)
	require.NoError(t, err)
	signature := parsed.Query().Get("signature")

	assert.True(t, signer.Verify("user-1_key.pdf", expires, signature))
	assert.False(t, signer.Verify("other-key.pdf", expires, signature))
	assert.False(t, signer.Verify("user-1_key.pdf", expires, "forged"))
}

func TestURLSigner_ExpiredSignatureFails(t *testing.T) {
	signer := NewURLSigner("secret")

	expires := time.Now().Add(-time.Minute).Unix()
	signature := signer.Sign("key.pdf", expires)

	assert.False(t, signer.Verify("key.pdf", expires, signature))
}

func TestDeriveKey(t *testing.T) {
	key := DeriveKey("user-1", "Sonata.PDF")

	assert.True(t, strings.HasPrefix(key, "user-1_"))
	assert.True(t, strings.HasSuffix(key, ".pdf"))
	assert.NotContains(t, key, "/")
}

func TestDeriveKey_DistinctForIdenticalInput(t *testing.T) {
	// Same actor, same filename, same instant: keys must still differ
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		key := DeriveKey("user-1", "piece.mp3")
		assert.False(t, seen[key], "duplicate key %s", key)
		seen[key] = true
	}
}
