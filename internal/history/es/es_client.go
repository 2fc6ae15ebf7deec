package es

import (
	"errors"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
)

const defaultRetries = 3

// ClientConfig points the storer at a cluster and the index holding the
// evaluation history.
type ClientConfig struct {
	Addresses []string
	IndexName string
	Username  string
	Password  string
}

func (c ClientConfig) validate() error {
	if len(c.Addresses) == 0 {
		return errors.New("no elasticsearch addresses configured")
	}
	if c.IndexName == "" {
		return errors.New("index name is required")
	}
	return nil
}

func newClient(c ClientConfig) (*elasticsearch.TypedClient, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	cfg := elasticsearch.Config{
		Addresses:     c.Addresses,
		MaxRetries:    defaultRetries,
		RetryOnStatus: []int{502, 503, 504, 429},
		RetryBackoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * 100 * time.Millisecond
		},
	}
	// basic auth only when both halves are set
	if c.Username != "" && c.Password != "" {
		cfg.Username = c.Username
		cfg.Password = c.Password
	}

	return elasticsearch.NewTypedClient(cfg)
}
