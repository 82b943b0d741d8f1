// Package service implements the per-entity repositories that bind filters,
// sorting and pagination to Elasticsearch calls, and the aggregation
// handlers that reshape bucketed responses.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/dataplatform-hub/search/internal/domain"
	"github.com/dataplatform-hub/search/internal/elasticsearch"
	"github.com/dataplatform-hub/search/internal/logger"
)

const pkBytes = 10

// Filter adds entity-specific criteria into a search query.
type Filter interface {
	Apply(q *elasticsearch.SearchQuery)
}

// ESClient defines the Elasticsearch operations the repositories need.
// The concrete *elasticsearch.Client satisfies this interface.
type ESClient interface {
	CreateDocument(ctx context.Context, index, id string, document any) error
	GetDocument(ctx context.Context, index, id string) (*elasticsearch.Document, error)
	Search(ctx context.Context, indices []string, body map[string]any) (*esapi.Response, error)
	IndexExists(ctx context.Context, index string) (bool, error)
	CreateIndex(ctx context.Context, index string, mappings, settings map[string]any) error
}

// CRUD is the base repository for one document family. It combines the
// query builder output with pagination and sorting to execute searches and
// parse raw hits into typed records.
type CRUD[M any] struct {
	es       ESClient
	indices  []string
	mappings map[string]any
	settings map[string]any
	parse    func(doc *elasticsearch.Document) (M, error)
	logger   logger.Logger
}

// generatePK returns a random opaque primary key for a new document.
func generatePK() string {
	buf := make([]byte, pkBytes)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}

// Index returns the primary index of the repository.
func (c *CRUD[M]) Index() string {
	return c.indices[0]
}

// EnsureIndex creates the repository's index if it does not exist yet.
func (c *CRUD[M]) EnsureIndex(ctx context.Context) error {
	index := c.indices[0]

	exists, err := c.es.IndexExists(ctx, index)
	if err != nil {
		return fmt.Errorf("failed to check index %s: %w", index, err)
	}
	if exists {
		return nil
	}

	c.logger.Info("Creating index", logger.String("index", index))
	if err := c.es.CreateIndex(ctx, index, c.mappings, c.settings); err != nil {
		return fmt.Errorf("failed to create index %s: %w", index, err)
	}

	return nil
}

// Create writes a new document under a freshly generated primary key and
// reads it back so the caller gets the fully parsed stored record.
func (c *CRUD[M]) Create(ctx context.Context, document any) (M, error) {
	var zero M

	pk := generatePK()
	if err := c.es.CreateDocument(ctx, c.indices[0], pk, document); err != nil {
		return zero, fmt.Errorf("failed to create document: %w", err)
	}

	return c.RetrieveByPK(ctx, pk)
}

// RetrieveByPK fetches a single document by primary key. Returns
// elasticsearch.ErrNotFound if the document does not exist.
func (c *CRUD[M]) RetrieveByPK(ctx context.Context, pk string) (M, error) {
	var zero M

	doc, err := c.es.GetDocument(ctx, c.indices[0], pk)
	if err != nil {
		return zero, err
	}

	entry, err := c.parse(doc)
	if err != nil {
		return zero, fmt.Errorf("failed to parse document %s: %w", pk, err)
	}

	return entry, nil
}

// List returns one page of documents matching the filter, in the requested
// sort order. A nil filter means match-all.
func (c *CRUD[M]) List(
	ctx context.Context,
	pagination domain.Pagination,
	sorting *domain.Sorting,
	filter Filter,
) (*domain.PageOf[M], error) {
	q := elasticsearch.NewSearchQuery()
	if filter != nil {
		filter.Apply(q)
	}

	body := map[string]any{
		"query":            q.Build(),
		"from":             pagination.From(),
		"size":             pagination.Size(),
		"track_total_hits": true,
	}
	if sorting != nil && sorting.IsSet() {
		body["sort"] = sorting.Apply()
	}

	res, err := c.es.Search(ctx, c.indices, body)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	var esResp searchResponse
	if decodeErr := json.NewDecoder(res.Body).Decode(&esResp); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", decodeErr)
	}

	entries := make([]M, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		entry, parseErr := c.parse(&elasticsearch.Document{
			ID:     hit.ID,
			Index:  hit.Index,
			Source: hit.Source,
		})
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse hit %s: %w", hit.ID, parseErr)
		}
		entries = append(entries, entry)
	}

	return &domain.PageOf[M]{
		Pagination: pagination,
		Count:      esResp.Hits.Total.Value,
		Entries:    entries,
	}, nil
}

// Aggregate executes a search for the given body and returns the raw
// response so aggregation handlers can decode their own bucket shapes.
func (c *CRUD[M]) Aggregate(ctx context.Context, body map[string]any) (json.RawMessage, error) {
	res, err := c.es.Search(ctx, c.indices, body)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	return raw, nil
}

// searchResponse is the typed envelope of an Elasticsearch search response.
type searchResponse struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string          `json:"_id"`
			Index  string          `json:"_index"`
			Source json.RawMessage `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}
