package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// The images column stores an ordered list of image URLs as a single JSON
// text blob. NULL and an empty list are interchangeable on the way in; on
// the way out both decode to an empty sequence.

// encodeImages serializes an image URL sequence for storage. An empty or nil
// sequence maps to NULL.
func encodeImages(images []string) (sql.NullString, error) {
	if len(images) == 0 {
		return sql.NullString{}, nil
	}
	raw, err := json.Marshal(images)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("marshal images: %w", err)
	}
	return sql.NullString{String: string(raw), Valid: true}, nil
}

// decodeImages parses the stored blob back into the image URL sequence,
// preserving order.
func decodeImages(stored sql.NullString) ([]string, error) {
	if !stored.Valid || stored.String == "" {
		return nil, nil
	}
	var images []string
	if err := json.Unmarshal([]byte(stored.String), &images); err != nil {
		return nil, fmt.Errorf("unmarshal images: %w", err)
	}
	return images, nil
}
