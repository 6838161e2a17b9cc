package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"
)

// Metadata describes one extracted document
type Metadata struct {
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"` // RFC3339 format
	Hash      string `json:"hash"`      // SHA256 hex digest of the extracted text
	Lines     int    `json:"lines"`
	Runes     int    `json:"runes"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(path string, content string) *Metadata {
	lines := 0
	if content != "" {
		lines = 1
		for _, r := range content {
			if r == '\n' {
				lines++
			}
		}
	}
	return &Metadata{
		Path:      path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Lines:     lines,
		Runes:     utf8.RuneCountInString(content),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
