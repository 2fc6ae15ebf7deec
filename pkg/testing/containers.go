// Package testing starts throwaway backing services for history storer
// integration tests.
package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage      = "postgres:17.5"
	elasticsearchImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"
)

// Postgres is an empty database. Schema setup is left to the storer under test.
type Postgres struct {
	Container testcontainers.Container
	DSN       string
}

// Elasticsearch is a single-node cluster with security disabled.
type Elasticsearch struct {
	Container testcontainers.Container
	URL       string
}

// SkipIfShort skips integration tests under go test -short.
func SkipIfShort(tb testing.TB) {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping container-backed test in short mode")
	}
}

func StartPostgres(ctx context.Context, tb testing.TB) *Postgres {
	tb.Helper()

	c, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("calc_test_db"),
		postgres.WithUsername("calc"),
		postgres.WithPassword("calc"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	terminateOnCleanup(tb, c, "postgres")
	if err != nil {
		tb.Fatalf("start postgres: %v", err)
	}

	dsn, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		tb.Fatalf("postgres connection string: %v", err)
	}
	return &Postgres{Container: c, DSN: dsn}
}

func StartElasticsearch(ctx context.Context, tb testing.TB) *Elasticsearch {
	tb.Helper()

	c, err := elasticsearch.Run(ctx, elasticsearchImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(60*time.Second),
		),
	)
	terminateOnCleanup(tb, c, "elasticsearch")
	if err != nil {
		tb.Fatalf("start elasticsearch: %v", err)
	}

	url, err := endpoint(ctx, c, "9200")
	if err != nil {
		tb.Fatalf("elasticsearch endpoint: %v", err)
	}
	return &Elasticsearch{Container: c, URL: url}
}

func endpoint(ctx context.Context, c testcontainers.Container, port string) (string, error) {
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("http://%s:%s", host, mapped.Port()), nil
}

// terminateOnCleanup registers c for termination. A container that failed
// to start may still be non-nil and need removing.
func terminateOnCleanup(tb testing.TB, c testcontainers.Container, name string) {
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("terminate %s container: %v", name, err)
		}
	})
}
