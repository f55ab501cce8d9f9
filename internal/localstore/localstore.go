// Package localstore provides the key-value persistence the client core keeps
// its session in, the Go counterpart of browser local storage.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ElvisGalvez/bill-app/internal/models"
)

const (
	// KeyUser holds the JSON-encoded models.Session.
	KeyUser = "user"
	// KeyJWT holds the raw token issued at login.
	KeyJWT = "jwt"
)

var ErrNoSession = errors.New("no session in local storage")

// Storage is a flat string key-value store. Writes to different keys are not
// atomic with respect to each other.
type Storage interface {
	// GetItem returns the value for key and whether it was present.
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

// Memory is an in-process Storage.
type Memory struct {
	mu    sync.RWMutex
	items map[string]string
}

var _ Storage = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{items: make(map[string]string)}
}

func (m *Memory) GetItem(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.items[key]
	return v, ok
}

func (m *Memory) SetItem(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *Memory) RemoveItem(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

// SaveSession overwrites the "user" record.
func SaveSession(s Storage, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return s.SetItem(KeyUser, string(data))
}

// LoadSession reads the "user" record. Partial records (e.g. only an email)
// decode without error.
func LoadSession(s Storage) (*models.Session, error) {
	raw, ok := s.GetItem(KeyUser)
	if !ok || raw == "" {
		return nil, ErrNoSession
	}

	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Token returns the stored JWT, or "" when none is stored.
func Token(s Storage) string {
	token, _ := s.GetItem(KeyJWT)
	return token
}
