// Package elasticsearch wraps the Elasticsearch client with the document,
// search and index operations used by the search service.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Client wraps the Elasticsearch client.
type Client struct {
	esClient *es.Client
	config   *Config
}

// Config holds Elasticsearch connection configuration.
type Config struct {
	URL        string
	Username   string
	Password   string
	MaxRetries int
	Timeout    time.Duration
}

// Document represents a raw Elasticsearch document with its identity.
type Document struct {
	ID     string
	Index  string
	Source json.RawMessage
}

// NewClient creates a new Elasticsearch client and verifies the connection.
func NewClient(cfg *Config) (*Client, error) {
	addresses := []string{cfg.URL}
	if !strings.HasPrefix(cfg.URL, "http://") && !strings.HasPrefix(cfg.URL, "https://") {
		addresses = []string{"http://" + cfg.URL}
	}

	clientConfig := es.Config{
		Addresses:  addresses,
		MaxRetries: cfg.MaxRetries,
	}

	if cfg.Username != "" && cfg.Password != "" {
		clientConfig.Username = cfg.Username
		clientConfig.Password = cfg.Password
	}

	esClient, err := es.NewClient(clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	res, err := esClient.Ping()
	if err != nil {
		return nil, fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error pinging Elasticsearch: %s", res.String())
	}

	return &Client{
		esClient: esClient,
		config:   cfg,
	}, nil
}

// Ping checks that the cluster is reachable.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.esClient.Ping(c.esClient.Ping.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to ping Elasticsearch: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error pinging Elasticsearch: %s", res.String())
	}

	return nil
}

// GetClient returns the underlying Elasticsearch client.
func (c *Client) GetClient() *es.Client {
	return c.esClient
}

// CreateDocument creates a new document with the given id. The create API is
// used so an existing id fails instead of being overwritten.
func (c *Client) CreateDocument(ctx context.Context, index, id string, document any) error {
	body, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res, err := c.esClient.Create(
		index,
		id,
		bytes.NewReader(body),
		c.esClient.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating document in %s: %s", index, res.String())
	}

	return nil
}

// GetDocument retrieves a document by id. Returns ErrNotFound if the
// document does not exist.
func (c *Client) GetDocument(ctx context.Context, index, id string) (*Document, error) {
	res, err := c.esClient.Get(index, id, c.esClient.Get.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.IsError() {
		return nil, fmt.Errorf("error getting document %s from %s: %s", id, index, res.String())
	}

	var doc struct {
		ID     string          `json:"_id"`
		Index  string          `json:"_index"`
		Source json.RawMessage `json:"_source"`
	}
	if err := json.NewDecoder(res.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return &Document{ID: doc.ID, Index: doc.Index, Source: doc.Source}, nil
}

// Search executes a search request against one or more indices. The caller
// owns the response body and must close it.
func (c *Client) Search(ctx context.Context, indices []string, body map[string]any) (*esapi.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search body: %w", err)
	}

	res, err := c.esClient.Search(
		c.esClient.Search.WithContext(ctx),
		c.esClient.Search.WithIndex(indices...),
		c.esClient.Search.WithBody(bytes.NewReader(payload)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	if res.IsError() {
		defer res.Body.Close()
		return nil, fmt.Errorf("search error on %s: %s", strings.Join(indices, ","), res.String())
	}

	return res, nil
}

// IndexExists checks if an index exists.
func (c *Client) IndexExists(ctx context.Context, index string) (bool, error) {
	res, err := c.esClient.Indices.Exists([]string{index}, c.esClient.Indices.Exists.WithContext(ctx))
	if err != nil {
		return false, fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if res.IsError() {
		return false, fmt.Errorf("error checking index existence: %s", res.String())
	}

	return true, nil
}

// CreateIndex creates a new index with the given mappings and settings.
func (c *Client) CreateIndex(ctx context.Context, index string, mappings, settings map[string]any) error {
	body := map[string]any{}
	if len(mappings) > 0 {
		body["mappings"] = mappings
	}
	if len(settings) > 0 {
		body["settings"] = settings
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal index body: %w", err)
	}

	res, err := c.esClient.Indices.Create(
		index,
		c.esClient.Indices.Create.WithBody(bytes.NewReader(payload)),
		c.esClient.Indices.Create.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index %s: %s", index, res.String())
	}

	return nil
}
