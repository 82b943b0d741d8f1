package config

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	defaultServiceName    = "search"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8080
	defaultESURL          = "http://localhost:9200"
	defaultESMaxRetries   = 3
	defaultESTimeoutSec   = 30
	defaultLogLevel       = "info"
	defaultShards         = 1
)

// Default index names.
const (
	defaultMetadataItemsIndex       = "metadata-items"
	defaultItemActivityLogsIndex    = "items-activity-logs"
	defaultDatasetActivityLogsIndex = "datasets-activity-logs"
)

// Config holds the application configuration.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Indices       IndicesConfig       `yaml:"indices"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service configuration.
type ServiceConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
	Port    int    `env:"SEARCH_PORT" yaml:"port"`
	Debug   bool   `env:"APP_DEBUG"   yaml:"debug"`
}

// ElasticsearchConfig holds Elasticsearch connection configuration.
type ElasticsearchConfig struct {
	URL        string        `env:"ELASTICSEARCH_URL"      yaml:"url"`
	Username   string        `env:"ELASTICSEARCH_USER"     yaml:"username"`
	Password   string        `env:"ELASTICSEARCH_PASSWORD" yaml:"password"`
	MaxRetries int           `yaml:"max_retries"`
	Timeout    time.Duration `yaml:"timeout"`
}

// IndicesConfig holds the index names and creation settings.
type IndicesConfig struct {
	MetadataItems       string `env:"METADATA_ITEMS_INDEX"        yaml:"metadata_items"`
	ItemActivityLogs    string `env:"ITEM_ACTIVITY_LOGS_INDEX"    yaml:"item_activity_logs"`
	DatasetActivityLogs string `env:"DATASET_ACTIVITY_LOGS_INDEX" yaml:"dataset_activity_logs"`
	AutoCreate          bool   `yaml:"auto_create"`
	Shards              int    `yaml:"shards"`
	Replicas            int    `yaml:"replicas"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" yaml:"level"`
	Output string `yaml:"output"`
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	setServiceDefaults(&cfg.Service)
	setElasticsearchDefaults(&cfg.Elasticsearch)
	setIndicesDefaults(&cfg.Indices)
	setLoggingDefaults(&cfg.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.MaxRetries == 0 {
		e.MaxRetries = defaultESMaxRetries
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
}

func setIndicesDefaults(i *IndicesConfig) {
	if i.MetadataItems == "" {
		i.MetadataItems = defaultMetadataItemsIndex
	}
	if i.ItemActivityLogs == "" {
		i.ItemActivityLogs = defaultItemActivityLogsIndex
	}
	if i.DatasetActivityLogs == "" {
		i.DatasetActivityLogs = defaultDatasetActivityLogsIndex
	}
	// Replicas defaults to zero, which is a valid replica count.
	if i.Shards == 0 {
		i.Shards = defaultShards
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Service.Port < 1 || c.Service.Port > 65535 {
		return &ValidationError{Field: "service.port", Message: "must be between 1 and 65535"}
	}
	if c.Elasticsearch.URL == "" {
		return &ValidationError{Field: "elasticsearch.url", Message: "is required"}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return &ValidationError{Field: "logging.level", Message: "must be one of: debug, info, warn, error, fatal"}
	}
	return nil
}
