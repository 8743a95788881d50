// Package userstore keeps the user list in memory and writes it back as a
// single JSON document on every signup. The document itself lives in a
// file, an S3 object or a Redis key.
package userstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cityweather/services/internal/core/domain"
)

// Document is the durable location of the serialized user list. Read
// returns nil data and no error when nothing has been written yet.
type Document interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// SnapshotStore implements ports.UserStore over a Document. Lookups are
// served from memory; Create holds the write lock across the duplicate
// check and the persist so concurrent signups cannot both win.
type SnapshotStore struct {
	mu    sync.RWMutex
	users []domain.User
	doc   Document
}

// Open loads the document once. A missing document yields an empty store;
// a malformed one is an error.
func Open(ctx context.Context, doc Document) (*SnapshotStore, error) {
	data, err := doc.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read user document: %w", err)
	}

	users, err := decodeUsers(data)
	if err != nil {
		return nil, err
	}

	return &SnapshotStore{users: users, doc: doc}, nil
}

func (s *SnapshotStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends user and persists the whole list. If the write fails the
// in-memory snapshot is left as it was.
func (s *SnapshotStore) Create(ctx context.Context, user domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}

	next := make([]domain.User, len(s.users), len(s.users)+1)
	copy(next, s.users)
	next = append(next, user)

	data, err := encodeUsers(next)
	if err != nil {
		return err
	}
	if err := s.doc.Write(ctx, data); err != nil {
		return fmt.Errorf("write user document: %w", err)
	}

	s.users = next
	return nil
}

// Len reports the number of loaded users.
func (s *SnapshotStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
