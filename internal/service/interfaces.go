package service

import (
	"context"

	"github.com/djmisieq/chmurowy-system-mrp/internal/bomfile"
	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
)

// FileReport holds the outcome of validating one BOM file.
type FileReport struct {
	Path         string            `json:"path"`
	Name         string            `json:"name,omitempty"`
	Format       bomfile.Format    `json:"format"`
	NodeCount    int               `json:"node_count"`
	SchemaErrors []string          `json:"schema_errors,omitempty"`
	Result       validation.Result `json:"result"`
	Forest       domain.Forest     `json:"-"`
}

// Valid reports whether the file parsed cleanly and passed validation.
func (r *FileReport) Valid() bool {
	return len(r.SchemaErrors) == 0 && r.Result.IsValid
}

// MoveRequest asks whether SourceID may be moved under TargetID in the BOM
// stored at Path. With Apply set, a legal move also returns the new forest.
type MoveRequest struct {
	Path     string
	SourceID string
	TargetID string
	Apply    bool
}

// MoveReport holds the outcome of a move check.
type MoveReport struct {
	Path     string            `json:"path"`
	Name     string            `json:"name,omitempty"`
	Format   bomfile.Format    `json:"format"`
	SourceID string            `json:"source_id"`
	TargetID string            `json:"target_id"`
	Result   validation.Result `json:"result"`
	Forest   domain.Forest     `json:"-"`
}

type ValidationService interface {
	ValidateForest(ctx context.Context, forest domain.Forest) validation.Result
	ValidateFile(ctx context.Context, path string) (*FileReport, error)
	ValidateFiles(ctx context.Context, paths []string) ([]*FileReport, error)
	CheckMove(ctx context.Context, req MoveRequest) (*MoveReport, error)
}
