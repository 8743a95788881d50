package main

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/cityweather/services/internal/api/handler"
	"github.com/cityweather/services/internal/core/ports"
	mongodb "github.com/cityweather/services/internal/infrastructure/db/mongo"
	redisdb "github.com/cityweather/services/internal/infrastructure/db/redis"
	"github.com/cityweather/services/internal/infrastructure/userstore"
	"github.com/cityweather/services/internal/pkg/config"
)

const pingTimeout = 2 * time.Second

// userStore bundles the configured backend with its readiness checks and
// the cleanup for any connection it owns.
type userStore struct {
	ports.UserStore
	checks  map[string]handler.ReadinessCheck
	closers []func()
}

func (s *userStore) close() {
	for _, c := range s.closers {
		c()
	}
	s.closers = nil
}

func openUserStore(ctx context.Context, cfg *config.Auth, log zerolog.Logger) (*userStore, error) {
	switch cfg.UserStore {
	case config.StoreFile:
		store, err := userstore.Open(ctx, userstore.NewFileDocument(cfg.UsersFile))
		if err != nil {
			return nil, fmt.Errorf("users file %s: %w", cfg.UsersFile, err)
		}
		log.Info().Str("path", cfg.UsersFile).Int("users", store.Len()).Msg("user file loaded")
		return &userStore{UserStore: store}, nil

	case config.StoreS3:
		client, err := userstore.NewS3Client(ctx, userstore.S3Config{
			Bucket:          cfg.S3.Bucket,
			Key:             cfg.S3.Key,
			Region:          cfg.S3.Region,
			Endpoint:        cfg.S3.Endpoint,
			AccessKeyID:     cfg.S3.AccessKeyID,
			SecretAccessKey: cfg.S3.SecretAccessKey,
			UsePathStyle:    cfg.S3.UsePathStyle,
		})
		if err != nil {
			return nil, err
		}
		store, err := userstore.Open(ctx, userstore.NewS3Document(client, cfg.S3.Bucket, cfg.S3.Key))
		if err != nil {
			return nil, err
		}
		log.Info().Str("bucket", cfg.S3.Bucket).Str("key", cfg.S3.Key).Int("users", store.Len()).Msg("user object loaded")
		return &userStore{UserStore: store}, nil

	case config.StoreRedis:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		store, err := userstore.Open(ctx, redisdb.NewUserDocument(rdb, cfg.Redis.Key))
		if err != nil {
			_ = rdb.Close()
			return nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Int("users", store.Len()).Msg("user key loaded")
		return &userStore{
			UserStore: store,
			checks:    map[string]handler.ReadinessCheck{"redis": redisCheck(rdb)},
			closers:   []func(){func() { _ = rdb.Close() }},
		}, nil

	case config.StoreMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		repo, err := mongodb.NewUserRepository(ctx, db)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo user repository ready")
		return &userStore{
			UserStore: repo,
			checks:    map[string]handler.ReadinessCheck{"mongodb": mongoCheck(client)},
			closers:   []func(){func() { _ = client.Disconnect(context.Background()) }},
		}, nil
	}

	return nil, fmt.Errorf("unknown user store %q", cfg.UserStore)
}

func redisCheck(rdb *goredis.Client) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return redisdb.Ping(ctx, rdb, pingTimeout)
	}
}

func mongoCheck(client *mongodriver.Client) handler.ReadinessCheck {
	return func(ctx context.Context) error {
		return mongodb.Ping(ctx, client)
	}
}
