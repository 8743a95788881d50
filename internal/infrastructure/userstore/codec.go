package userstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cityweather/services/internal/core/domain"
)

var ErrMalformedDocument = errors.New("malformed user document")

type usersDocument struct {
	Users []domain.User `json:"users"`
}

// decodeUsers accepts {"users": [...]} as well as a bare array. Empty input
// is an empty list.
func decodeUsers(data []byte) ([]domain.User, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []domain.User{}, nil
	}

	var users []domain.User
	switch data[0] {
	case '{':
		var doc usersDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		users = doc.Users
	case '[':
		if err := json.Unmarshal(data, &users); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	default:
		return nil, fmt.Errorf("%w: expected object or array", ErrMalformedDocument)
	}

	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func encodeUsers(users []domain.User) ([]byte, error) {
	data, err := json.MarshalIndent(usersDocument{Users: users}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode users: %w", err)
	}
	return append(data, '\n'), nil
}
