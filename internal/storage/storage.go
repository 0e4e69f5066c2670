// Package storage provides the object store used by the upload gateway.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ObjectStore is the interface the upload gateway delegates to.
// Put stores a blob under key and returns a publicly retrievable URL.
// SignedURL mints a time-bounded capability link for private access.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
	SignedURL(key string, ttl time.Duration) (string, error)
}

// localStore implements ObjectStore using the local filesystem
type localStore struct {
	basePath string
	baseURL  string
	signer   *URLSigner
}

// NewLocalStore creates a new localStore instance. Objects are served
// under baseURL/api/media/{key}.
func NewLocalStore(basePath, baseURL string, signer *URLSigner) *localStore {
	return &localStore{
		basePath: basePath,
		baseURL:  baseURL,
		signer:   signer,
	}
}

// objectPath resolves a key to a path under basePath, rejecting keys that
// would escape it
func (s *localStore) objectPath(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return filepath.Join(s.basePath, key), nil
}

// Put stores the blob and returns its public URL
func (s *localStore) Put(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	path, err := s.objectPath(key)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to write object: %w", err)
	}

	return s.publicURL(key), nil
}

// Open opens a stored object for reading
func (s *localStore) Open(key string) (io.ReadCloser, error) {
	path, err := s.objectPath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// SignedURL mints a time-bounded link to the object
func (s *localStore) SignedURL(key string, ttl time.Duration) (string, error) {
	if _, err := s.objectPath(key); err != nil {
		return "", err
	}
	expires := time.Now().Add(ttl).Unix()
	signature := s.signer.Sign(key, expires)
	return fmt.Sprintf("%s?expires=%d&signature=%s", s.publicURL(key), expires, signature), nil
}

func (s *localStore) publicURL(key string) string {
	return fmt.Sprintf("%s/api/media/%s", s.baseURL, key)
}
