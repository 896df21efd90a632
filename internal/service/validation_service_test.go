package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/testutil"
	"github.com/djmisieq/chmurowy-system-mrp/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const sampleYAML = `name: Bike
nodes:
  - id: assembly1
    kind: assembly
    children:
      - id: subassembly1
        kind: subassembly
        children:
          - id: part1
            kind: part
            children:
              - id: material1
                kind: material
      - id: part2
        kind: part
  - id: assembly2
    kind: assembly
`

const duplicateJSON = `{"items": [
  {"id": "a", "kind": "assembly"},
  {"id": "a", "kind": "part", "parent_id": "a"}
]}`

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

func writeBom(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateFile_Valid(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewValidationService(validation.New(), 2, obs)

	report, err := svc.ValidateFile(context.Background(), writeBom(t, "bike.yaml", sampleYAML))
	require.NoError(t, err)

	assert.True(t, report.Valid())
	assert.Equal(t, "Bike", report.Name)
	assert.Equal(t, 6, report.NodeCount)

	require.Len(t, obs.events, 1)
	ev := obs.events[0]
	assert.Equal(t, "validate-file", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 6, ev.Fields["node_count"])
	assert.Equal(t, true, ev.Fields["valid"])
}

func TestValidateFile_DuplicateIDs(t *testing.T) {
	svc := NewValidationService(validation.New(), 1)
	report, err := svc.ValidateFile(context.Background(), writeBom(t, "dup.json", duplicateJSON))
	require.NoError(t, err)

	assert.False(t, report.Valid())
	assert.True(t, report.Result.HasCode(validation.CodeDuplicateID))
}

func TestValidateFile_SchemaErrorsAreReported(t *testing.T) {
	svc := NewValidationService(nil, 1)
	report, err := svc.ValidateFile(context.Background(), writeBom(t, "bad.yaml", "nodes:\n  - id: x\n    kind: gizmo\n"))
	require.NoError(t, err)

	assert.False(t, report.Valid())
	require.Len(t, report.SchemaErrors, 1)
	assert.Contains(t, report.SchemaErrors[0], `invalid value "gizmo"`)
}

func TestValidateFile_LoadError(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewValidationService(nil, 1, obs)

	_, err := svc.ValidateFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
}

func TestValidateFiles_PreservesOrder(t *testing.T) {
	obs := &recordingObserver{}
	svc := NewValidationService(validation.New(), 3, obs)

	var paths []string
	for i := 0; i < 8; i++ {
		if i%3 == 0 {
			paths = append(paths, writeBom(t, fmt.Sprintf("dup%d.json", i), duplicateJSON))
			continue
		}
		paths = append(paths, writeBom(t, fmt.Sprintf("ok%d.yaml", i), sampleYAML))
	}

	reports, err := svc.ValidateFiles(context.Background(), paths)
	require.NoError(t, err)
	require.Len(t, reports, len(paths))
	for i, r := range reports {
		assert.Equal(t, paths[i], r.Path)
		assert.Equal(t, i%3 != 0, r.Valid(), "file %d", i)
	}
	assert.Len(t, obs.names(), len(paths))
}

func TestValidateFiles_LoadErrorFailsBatch(t *testing.T) {
	svc := NewValidationService(nil, 2)
	paths := []string{
		writeBom(t, "ok.yaml", sampleYAML),
		filepath.Join(t.TempDir(), "missing.json"),
	}

	_, err := svc.ValidateFiles(context.Background(), paths)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "missing.json")
}

func TestValidateFiles_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewValidationService(nil, 1)
	_, err := svc.ValidateFiles(ctx, []string{writeBom(t, "ok.yaml", sampleYAML)})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCheckMove(t *testing.T) {
	svc := NewValidationService(validation.New(), 1)
	path := writeBom(t, "bike.yaml", sampleYAML)

	tests := []struct {
		name      string
		src, dst  string
		wantValid bool
		wantCode  validation.IssueCode
	}{
		{"valid", "part2", "assembly2", true, ""},
		{"self", "part1", "part1", false, validation.CodeSelfReference},
		{"cycle", "assembly1", "part1", false, validation.CodeCycle},
		{"type", "assembly2", "material1", false, validation.CodeTypeCompatibility},
		{"missing", "doesNotExist", "assembly2", false, validation.CodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			report, err := svc.CheckMove(context.Background(), MoveRequest{Path: path, SourceID: tc.src, TargetID: tc.dst})
			require.NoError(t, err)
			assert.Equal(t, tc.wantValid, report.Result.IsValid)
			if tc.wantCode != "" {
				assert.True(t, report.Result.HasCode(tc.wantCode))
			}
			assert.Nil(t, report.Forest)
		})
	}
}

func TestCheckMove_Apply(t *testing.T) {
	svc := NewValidationService(validation.New(), 1)
	path := writeBom(t, "bike.yaml", sampleYAML)

	report, err := svc.CheckMove(context.Background(), MoveRequest{Path: path, SourceID: "part2", TargetID: "assembly2", Apply: true})
	require.NoError(t, err)
	require.NotNil(t, report.Forest)
	assert.Equal(t, []string{"assembly2", "part2"}, validation.FindPathToItem("part2", report.Forest))

	report, err = svc.CheckMove(context.Background(), MoveRequest{Path: path, SourceID: "assembly1", TargetID: "part1", Apply: true})
	require.NoError(t, err)
	assert.False(t, report.Result.IsValid)
	assert.Nil(t, report.Forest)
}

func TestCheckMove_SchemaError(t *testing.T) {
	svc := NewValidationService(nil, 1)
	_, err := svc.CheckMove(context.Background(), MoveRequest{Path: writeBom(t, "bad.json", `{"nodes":[{"kind":"part"}]}`)})

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, err.Error(), "nodes[0].id is required")
}

func TestValidateForest_ConcurrentCallersShareValidator(t *testing.T) {
	forest := testutil.GenerateForest(rand.New(rand.NewSource(5)), 2000, 3, 9)
	forest = append(forest, testutil.Node(domain.NodeAssembly, "gen-1"))

	obs := &recordingObserver{}
	svc := NewValidationService(validation.New(), 1, obs)
	want := validation.New().ValidateFullBom(forest)

	var wg sync.WaitGroup
	results := make([]validation.Result, 16)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = svc.ValidateForest(context.Background(), forest)
		}()
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "caller %d", i)
	}
	assert.Len(t, obs.names(), len(results))
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "validate-file", Success: true, Fields: map[string]any{"node_count": 6}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "check-move", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=validate-file")
	assert.Contains(t, out, "node_count=6")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "error=boom")
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
