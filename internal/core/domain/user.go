package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserID identifies a user record. Legacy user files store it as a JSON
// number, newer ones as a string; both decode into the same value.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = UserID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("user id: %w", err)
	}
	if _, err := strconv.ParseInt(n.String(), 10, 64); err != nil {
		return fmt.Errorf("user id %q is not an integer", n.String())
	}
	*id = UserID(n.String())
	return nil
}

// MarshalJSON keeps integer ids as JSON numbers so legacy files round-trip
// unchanged.
func (id UserID) MarshalJSON() ([]byte, error) {
	if isLegacyNumericID(string(id)) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func isLegacyNumericID(s string) bool {
	digits := strings.TrimPrefix(s, "-")
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

func (id UserID) String() string {
	return string(id)
}

// User is a stored account. Password holds either a bcrypt hash or, for
// records created before hashing was introduced, the plaintext value.
type User struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// PublicUser is the projection of a User returned to clients.
type PublicUser struct {
	ID        UserID `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Claims is the verified payload of a bearer token.
type Claims struct {
	UserID   UserID
	Username string
}
