// Package storage elige el adapter clave/valor según STORE_ENGINE.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pet-companion/internal/adapters/storage/jsonfile"
	"pet-companion/internal/adapters/storage/memory"
	"pet-companion/internal/adapters/storage/postgres"
	"pet-companion/internal/adapters/storage/s3"
	"pet-companion/internal/adapters/storage/sqlite"
	"pet-companion/internal/platform/config"
	"pet-companion/internal/ports/kvstore"
)

const (
	EngineMemory   = "memory"
	EngineSQLite   = "sqlite"
	EngineJSON     = "json"
	EnginePostgres = "postgres"
	EngineS3       = "s3"
)

func Open(ctx context.Context, cfg config.StoreConfig) (kvstore.Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Engine)) {
	case EngineMemory:
		return memory.NewKVStore(), nil
	case "", EngineSQLite:
		s, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case EngineJSON:
		s, err := jsonfile.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case EnginePostgres:
		db, err := postgres.Open(ctx, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		s, err := postgres.NewKVStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		return s, nil
	case EngineS3:
		s, err := s3.New(ctx, s3.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			Prefix:          cfg.S3Prefix,
			PathStyle:       cfg.S3PathStyle,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
		})
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.New("unsupported store engine: " + cfg.Engine)
	}
}
