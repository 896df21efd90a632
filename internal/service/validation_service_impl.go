package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/djmisieq/chmurowy-system-mrp/internal/bomfile"
	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
	"golang.org/x/sync/errgroup"
)

type validationService struct {
	validator   *validation.Validator
	concurrency int
	observer    UseCaseObserver
}

// NewValidationService wires a validator for file and in-memory checks.
// concurrency bounds how many files ValidateFiles processes at once.
func NewValidationService(
	validator *validation.Validator,
	concurrency int,
	observers ...UseCaseObserver,
) ValidationService {
	if validator == nil {
		validator = validation.New()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &validationService{
		validator:   validator,
		concurrency: concurrency,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *validationService) ValidateForest(ctx context.Context, forest domain.Forest) validation.Result {
	startedAt := time.Now().UTC()
	res := s.validator.ValidateFullBom(forest)

	fields := map[string]any{"node_count": forest.Count()}
	resultFields(fields, res)
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "validate-forest",
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   true,
		Fields:    fields,
	})
	return res
}

func (s *validationService) ValidateFile(ctx context.Context, path string) (report *FileReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() {
		if report != nil {
			fields["node_count"] = report.NodeCount
			fields["schema_error_count"] = len(report.SchemaErrors)
			resultFields(fields, report.Result)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "validate-file",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	loaded, err := loadForest(path)
	var schemaErr *SchemaError
	if err != nil && !errors.As(err, &schemaErr) {
		return nil, err
	}

	report = &FileReport{Path: path, Name: loaded.name, Format: loaded.format}
	if schemaErr != nil {
		report.SchemaErrors = schemaErr.Messages()
		return report, nil
	}

	report.Forest = loaded.forest
	report.NodeCount = loaded.forest.Count()
	report.Result = s.validator.ValidateFullBom(loaded.forest)
	return report, nil
}

// ValidateFiles validates paths concurrently and returns reports in input
// order. The first load failure cancels files not yet started.
func (s *validationService) ValidateFiles(ctx context.Context, paths []string) ([]*FileReport, error) {
	reports := make([]*FileReport, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			report, err := s.ValidateFile(gctx, path)
			if err != nil {
				return fmt.Errorf("validating %s: %w", path, err)
			}
			reports[i] = report
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *validationService) CheckMove(ctx context.Context, req MoveRequest) (report *MoveReport, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"path":   req.Path,
		"source": req.SourceID,
		"target": req.TargetID,
		"apply":  req.Apply,
	}
	defer func() {
		if report != nil {
			resultFields(fields, report.Result)
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "check-move",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	loaded, err := loadForest(req.Path)
	if err != nil {
		return nil, err
	}

	report = &MoveReport{
		Path:     req.Path,
		Name:     loaded.name,
		Format:   loaded.format,
		SourceID: req.SourceID,
		TargetID: req.TargetID,
	}
	if !req.Apply {
		report.Result = s.validator.ValidateMove(req.SourceID, req.TargetID, loaded.forest)
		return report, nil
	}

	moved, res, applyErr := s.validator.ApplyMove(req.SourceID, req.TargetID, loaded.forest)
	report.Result = res
	if applyErr == nil {
		report.Forest = moved
	}
	return report, nil
}

type loadedForest struct {
	name   string
	format bomfile.Format
	forest domain.Forest
}

// loadForest reads and converts a BOM file. Schema problems come back as a
// *SchemaError alongside the partially filled result.
func loadForest(path string) (*loadedForest, error) {
	doc, format, err := bomfile.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading bom file: %w", err)
	}
	loaded := &loadedForest{name: doc.Name, format: format}
	if errs := bomfile.ValidateSchema(doc); len(errs) > 0 {
		return loaded, &SchemaError{Path: path, Errs: errs}
	}
	loaded.forest = bomfile.Convert(doc)
	return loaded, nil
}
