package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"salesdash/internal/domain"
)

//go:embed sample_dataset.json
var sampleDataset []byte

type datasetDocument struct {
	Orders   []domain.OrderFact  `json:"orders"`
	Statuses []domain.StatusFact `json:"statuses"`
}

// FileRepository reads both lists from a single JSON document. An empty path
// selects the sample dataset compiled into the binary.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) Load(ctx context.Context) ([]domain.OrderFact, []domain.StatusFact, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	if r.path == "" {
		return decodeDataset(bytes.NewReader(sampleDataset))
	}

	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset file: %w", err)
	}
	defer f.Close()

	return decodeDataset(f)
}

func decodeDataset(r io.Reader) ([]domain.OrderFact, []domain.StatusFact, error) {
	var doc datasetDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return doc.Orders, doc.Statuses, nil
}
