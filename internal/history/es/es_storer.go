package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/linked-calc/internal/history"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/google/uuid"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

// Document is the indexed form of a history.Record.
type Document struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Valid      bool      `json:"valid"`
	Result     *float64  `json:"result,omitempty"`
	Display    string    `json:"display,omitempty"`
	Error      string    `json:"error,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewStorer(ctx context.Context, config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	storer := &Storer{
		client:    client,
		indexName: config.IndexName,
	}

	if err := storer.EnsureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return storer, nil
}

func (e *Storer) Save(ctx context.Context, record history.Record) (uuid.UUID, error) {
	doc := toDocument(record)

	res, err := e.client.Index(e.indexName).
		Id(doc.ID).
		Document(doc).
		Refresh(refresh.Waitfor).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index evaluation: %w", err)
	}

	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse evaluation ID: %w", err)
	}

	slog.Debug("Evaluation indexed", "id", doc.ID, "index", e.indexName, "result", res.Result)
	return id, nil
}

func (e *Storer) List(ctx context.Context, limit int) ([]history.Record, error) {
	desc := sortorder.Desc

	res, err := e.client.Search().
		Index(e.indexName).
		Query(&types.Query{MatchAll: &types.MatchAllQuery{}}).
		Size(history.NormalizeLimit(limit)).
		Sort(&types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"created_at": {Order: &desc},
			},
		}).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search evaluations: %w", err)
	}

	records := make([]history.Record, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc Document
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal evaluation document: %w", err)
		}
		r, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, nil
}

func (e *Storer) EnsureIndex(ctx context.Context) error {
	exists, err := e.client.Indices.Exists(e.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", e.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"id":         types.NewKeywordProperty(),
			"expression": types.NewKeywordProperty(),
			"valid":      types.NewBooleanProperty(),
			"result":     types.NewDoubleNumberProperty(),
			"display":    types.NewKeywordProperty(),
			"error":      types.NewTextProperty(),
			"created_at": types.NewDateProperty(),
		},
	}

	createRes, err := e.client.Indices.Create(e.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	slog.Info("Index created", "index", e.indexName, "acknowledged", createRes.Acknowledged)
	return nil
}

func (e *Storer) Healthy(ctx context.Context) bool {
	ok, err := e.client.Ping().Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch health check failed", "error", err)
		return false
	}
	return ok
}

func toDocument(r history.Record) Document {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return Document{
		ID:         r.ID.String(),
		Expression: r.Expression,
		Valid:      r.Valid,
		Result:     r.Result,
		Display:    r.Display,
		Error:      r.Error,
		CreatedAt:  r.CreatedAt,
	}
}

func fromDocument(d Document) (history.Record, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return history.Record{}, fmt.Errorf("invalid evaluation id %q: %w", d.ID, err)
	}
	return history.Record{
		ID:         id,
		Expression: d.Expression,
		Valid:      d.Valid,
		Result:     d.Result,
		Display:    d.Display,
		Error:      d.Error,
		CreatedAt:  d.CreatedAt,
	}, nil
}
