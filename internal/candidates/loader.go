// Package candidates loads the user dataset offered by the mention widget.
package candidates

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"mentionbox/internal/domain"
)

// EmbeddedSource is reported as the source of the built-in dataset
const EmbeddedSource = "embedded"

//go:embed data.json
var embeddedData []byte

// Decode reads a JSON array of candidates, keeping file order
func Decode(r io.Reader) ([]domain.Candidate, error) {
	var out []domain.Candidate
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to parse candidates: %w", err)
	}
	if out == nil {
		out = []domain.Candidate{}
	}
	return out, nil
}

// LoadFile reads candidates from a JSON file
func LoadFile(path string) ([]domain.Candidate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidates file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Embedded returns the built-in dataset
func Embedded() []domain.Candidate {
	var out []domain.Candidate
	if err := json.Unmarshal(embeddedData, &out); err != nil {
		panic(fmt.Sprintf("embedded candidates are invalid: %v", err))
	}
	return out
}

// Load returns the dataset at path, or the embedded one when path is empty.
// The second return value names the source.
func Load(path string) ([]domain.Candidate, string, error) {
	if path == "" {
		return Embedded(), EmbeddedSource, nil
	}
	c, err := LoadFile(path)
	if err != nil {
		return nil, "", err
	}
	return c, path, nil
}
