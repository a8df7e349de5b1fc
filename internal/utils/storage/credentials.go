package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

type (
	// CredentialStore keeps the session credentials the way the browser
	// client does: the short-lived access token stays in memory only (a
	// cookie-like store that dies with the session), the long-lived
	// refresh token is persisted to a file so the session survives a
	// restart. Both are cleared together on logout.
	CredentialStore interface {
		SetTokens(accessToken, refreshToken string) error
		AccessToken() string
		RefreshToken() string
		Clear() error
	}

	credentialStore struct {
		mu          sync.Mutex
		accessToken string
		refresh     string
		refreshPath string
	}

	refreshRecord struct {
		RefreshToken string `json:"refreshToken"`
	}
)

func NewCredentialStore(refreshPath string) CredentialStore {
	s := &credentialStore{refreshPath: refreshPath}
	s.refresh = s.loadRefresh()
	return s
}

func (s *credentialStore) SetTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = accessToken
	s.refresh = refreshToken

	data, err := json.Marshal(refreshRecord{RefreshToken: refreshToken})
	if err != nil {
		return errors.Wrap(err, "marshal refresh token")
	}
	if err := os.MkdirAll(filepath.Dir(s.refreshPath), 0o755); err != nil {
		return errors.Wrap(err, "create credential directory")
	}
	if err := os.WriteFile(s.refreshPath, data, 0o600); err != nil {
		return errors.Wrap(err, "persist refresh token")
	}
	return nil
}

func (s *credentialStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

func (s *credentialStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

func (s *credentialStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accessToken = ""
	s.refresh = ""

	if err := os.Remove(s.refreshPath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove persisted refresh token")
	}
	return nil
}

func (s *credentialStore) loadRefresh() string {
	data, err := os.ReadFile(s.refreshPath)
	if err != nil {
		return ""
	}
	var rec refreshRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return ""
	}
	return rec.RefreshToken
}
