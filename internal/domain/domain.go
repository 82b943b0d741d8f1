// Package domain defines the record models, filters and page primitives for
// the search service.
package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ContainerType identifies the kind of container a record belongs to.
type ContainerType string

// Available container types.
const (
	ContainerTypeProject ContainerType = "project"
	ContainerTypeDataset ContainerType = "dataset"
)

// Timestamp is a time.Time that marshals to epoch seconds, matching the
// epoch_second date format the indices use. It unmarshals from either an
// epoch number or an RFC 3339 string.
type Timestamp struct {
	time.Time
}

// NewTimestamp creates a Timestamp from a time.Time.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

// MarshalJSON encodes the timestamp as epoch seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// UnmarshalJSON decodes from an epoch number or an RFC 3339 string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		parsed, err := time.Parse(time.RFC3339, s[1:len(s)-1])
		if err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", s, err)
		}
		t.Time = parsed.UTC()
		return nil
	}

	epoch, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %s: %w", s, err)
	}
	t.Time = time.Unix(int64(epoch), 0).UTC()
	return nil
}

// splitCSV splits a comma-separated filter value into its parts.
func splitCSV(value string) []string {
	return strings.Split(value, ",")
}
