package factory

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/es"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/pg"
	"github.com/DjordjeVuckovic/linked-calc/internal/history/redis"
	"github.com/DjordjeVuckovic/linked-calc/pkg/utils"
)

type StorageConfig struct {
	history.Type
	Pg    *pg.PoolConfig
	Es    *es.ClientConfig
	Redis *redis.Config
}

// LoadEnv reads the history storage configuration. STORAGE_TYPE defaults to
// in_mem.
func LoadEnv() (*StorageConfig, error) {
	storageType := history.Type(os.Getenv("STORAGE_TYPE"))
	if storageType == "" {
		storageType = history.InMem
	}
	if !slices.Contains(history.Types, storageType) {
		slog.Error("Invalid STORAGE_TYPE environment variable value", "value", storageType)
		return nil, fmt.Errorf(
			"invalid STORAGE_TYPE environment variable value: %s, expected one of %v",
			storageType,
			history.Types)
	}

	cfg := &StorageConfig{Type: storageType}

	switch storageType {
	case history.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if cfg.Pg.ConnStr == "" {
			return nil, fmt.Errorf("PostgreSQL connection string is not set")
		}
		if maxStr := os.Getenv("PG_MAX_CONNS"); maxStr != "" {
			maxConns, err := strconv.ParseInt(maxStr, 10, 32)
			if err != nil || maxConns <= 0 {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value %q: must be a positive integer", maxStr)
			}
			cfg.Pg.MaxConns = int32(maxConns)
		}

	case history.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.SplitList(os.Getenv("ES_ADDRESSES")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
		if cfg.Es.IndexName == "" {
			cfg.Es.IndexName = "evaluations"
		}
		if len(cfg.Es.Addresses) == 0 {
			return nil, fmt.Errorf("elasticsearch configuration is incomplete: ES_ADDRESSES is missing")
		}

	case history.Redis:
		cfg.Redis = &redis.Config{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			Key:      os.Getenv("REDIS_KEY"),
		}
		if cfg.Redis.Addr == "" {
			cfg.Redis.Addr = "localhost:6379"
		}
		if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
			db, err := strconv.Atoi(dbStr)
			if err != nil || db < 0 {
				return nil, fmt.Errorf("invalid REDIS_DB value %q: must be a non-negative integer", dbStr)
			}
			cfg.Redis.DB = db
		}
	}

	return cfg, nil
}
