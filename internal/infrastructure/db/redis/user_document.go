package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultUsersKey = "cityweather:users"

// kv is the part of *redis.Client the document uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// UserDocument keeps the serialized user list under a single key with no
// expiry. It satisfies userstore.Document.
type UserDocument struct {
	client kv
	key    string
}

func NewUserDocument(client kv, key string) *UserDocument {
	if key == "" {
		key = DefaultUsersKey
	}
	return &UserDocument{client: client, key: key}
}

func (d *UserDocument) Read(ctx context.Context) ([]byte, error) {
	data, err := d.client.Get(ctx, d.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", d.key, err)
	}
	return data, nil
}

func (d *UserDocument) Write(ctx context.Context, data []byte) error {
	if err := d.client.Set(ctx, d.key, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", d.key, err)
	}
	return nil
}
