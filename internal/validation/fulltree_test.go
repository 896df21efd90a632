package validation

import (
	"math/rand"
	"testing"

	"github.com/djmisieq/chmurowy-system-mrp/internal/domain"
	"github.com/djmisieq/chmurowy-system-mrp/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFullBom_WellFormed(t *testing.T) {
	res := New().ValidateFullBom(testutil.SampleForest())
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
}

func TestValidateFullBom_EmptyForestIsValid(t *testing.T) {
	res := New().ValidateFullBom(domain.Forest{})
	assert.True(t, res.IsValid)
}

func TestValidateFullBom_DuplicateID(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f domain.Forest) domain.Forest
	}{
		{"as another root", func(f domain.Forest) domain.Forest {
			return append(f, testutil.Node(domain.NodeAssembly, "assembly1"))
		}},
		{"deep inside a subtree", func(f domain.Forest) domain.Forest {
			f[0].Children[0].Children = append(f[0].Children[0].Children, testutil.Node(domain.NodePart, "assembly1"))
			return f
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := New().ValidateFullBom(tc.mutate(testutil.SampleForest()))
			assert.False(t, res.IsValid)
			require.Equal(t, 1, res.CountCode(CodeDuplicateID))
			assert.Contains(t, res.ErrorMessages()[0], "duplicate")
			assert.Contains(t, res.ErrorMessages()[0], "assembly1")
		})
	}
}

func TestValidateFullBom_TripleDuplicateReportsEachRepeat(t *testing.T) {
	forest := domain.Forest{
		testutil.Node(domain.NodePart, "x"),
		testutil.Node(domain.NodePart, "x"),
		testutil.Node(domain.NodePart, "x"),
	}
	res := New().ValidateFullBom(forest)
	assert.Equal(t, 2, res.CountCode(CodeDuplicateID))
}

func TestValidateFullBom_MaterialLeafInvariant(t *testing.T) {
	forest := testutil.SampleForest()
	material, ok := FindByID("material1", forest)
	require.True(t, ok)
	material.Children = append(material.Children, testutil.Node(domain.NodeMaterial, "grain"))

	res := New().ValidateFullBom(forest)
	assert.False(t, res.IsValid)
	assert.True(t, res.HasCode(CodeInvariantViolation))
	// the child edge itself is also illegal under the default table
	assert.True(t, res.HasCode(CodeTypeCompatibility))
}

func TestValidateFullBom_TypeCompatibility(t *testing.T) {
	forest := domain.Forest{
		testutil.Node(domain.NodePart, "p",
			testutil.Node(domain.NodeSubassembly, "s"),
		),
	}
	res := New().ValidateFullBom(forest)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, CodeTypeCompatibility, res.Errors[0].Code)
	assert.Equal(t, "s", res.Errors[0].NodeID)
	assert.Contains(t, res.Errors[0].Message, "subassembly")
	assert.Contains(t, res.Errors[0].Message, "part")
}

func TestValidateFullBom_RootsHaveNoParentCheck(t *testing.T) {
	forest := domain.Forest{testutil.Node(domain.NodeMaterial, "m")}
	assert.True(t, New().ValidateFullBom(forest).IsValid)
}

func TestValidateFullBom_UnknownKind(t *testing.T) {
	forest := domain.Forest{
		testutil.Node(domain.NodeAssembly, "a",
			testutil.Node("widget", "w", testutil.Node(domain.NodeMaterial, "m")),
		),
	}
	res := New().ValidateFullBom(forest)
	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1, "children of an unknown kind are not double-reported: %v", res.ErrorMessages())
	assert.Equal(t, CodeUnknownKind, res.Errors[0].Code)
}

func TestValidateFullBom_NilEntries(t *testing.T) {
	forest := domain.Forest{
		nil,
		testutil.Node(domain.NodeAssembly, "a", nil),
	}
	res := New().ValidateFullBom(forest)
	assert.False(t, res.IsValid)
	assert.Equal(t, 2, res.CountCode(CodeInvariantViolation))
	assert.Contains(t, res.Errors[0].Message, "root 0")
	assert.Contains(t, res.Errors[1].Message, `"a"`)
}

func TestValidateFullBom_DepthWarningBoundary(t *testing.T) {
	t.Run("at threshold", func(t *testing.T) {
		res := New().ValidateFullBom(testutil.AssemblyChain(5))
		assert.True(t, res.IsValid)
		require.Len(t, res.Warnings, 1)
		assert.Equal(t, CodeDepth, res.Warnings[0].Code)
		assert.Equal(t, "level-5", res.Warnings[0].NodeID)
	})

	t.Run("one level shallower", func(t *testing.T) {
		res := New().ValidateFullBom(testutil.AssemblyChain(4))
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Warnings)
	})

	t.Run("every level past threshold", func(t *testing.T) {
		res := New().ValidateFullBom(testutil.AssemblyChain(8))
		assert.True(t, res.IsValid)
		assert.Len(t, res.Warnings, 4)
	})
}

func TestValidateFullBom_ReportsInPreOrder(t *testing.T) {
	forest := domain.Forest{
		testutil.Node(domain.NodePart, "p1", testutil.Node(domain.NodePart, "bad1")),
		testutil.Node(domain.NodeMaterial, "m1", testutil.Node(domain.NodeMaterial, "bad2")),
	}
	res := New().ValidateFullBom(forest)
	ids := make([]string, len(res.Errors))
	for i, e := range res.Errors {
		ids[i] = e.NodeID
	}
	assert.Equal(t, []string{"bad1", "m1", "bad2"}, ids)
}

func TestValidateFullBom_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	forest := testutil.GenerateForest(rng, 400, 3, 8)
	forest = append(forest, testutil.Node(domain.NodeAssembly, "gen-3"))
	forest[0].Children = append(forest[0].Children, testutil.Node(domain.NodeMaterial, "leafy", testutil.Node(domain.NodePart, "odd")))

	v := New()
	first := v.ValidateFullBom(forest)
	second := v.ValidateFullBom(forest)

	require.False(t, first.IsValid)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second run differs (-first +second):\n%s", diff)
	}
}

func TestValidateFullBom_GeneratedForestsAreValid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	v := New()
	for trial := 0; trial < 50; trial++ {
		size := rng.Intn(500) + 1
		maxDepth := rng.Intn(8) + 1
		forest := testutil.GenerateForest(rng, size, rng.Intn(4)+1, maxDepth)

		res := v.ValidateFullBom(forest)
		assert.True(t, res.IsValid, "trial %d: %v", trial, res.ErrorMessages())
		if maxDepth < DefaultDepthThreshold {
			assert.Empty(t, res.Warnings, "trial %d", trial)
		}
		assert.Equal(t, size, forest.Count(), "trial %d", trial)
	}
}

func TestValidateFullBom_DeepChainDoesNotRecurse(t *testing.T) {
	res := New().ValidateFullBom(testutil.AssemblyChain(100000))
	assert.True(t, res.IsValid)
	assert.Len(t, res.Warnings, 100000-DefaultDepthThreshold+1)
}

func TestValidateFullBom_NilForestPanics(t *testing.T) {
	assertContractPanic(t, ErrNilForest, func() { New().ValidateFullBom(nil) })
}

func TestValidateFullBom_SharedSubtreePanics(t *testing.T) {
	shared := testutil.Node(domain.NodePart, "shared")
	forest := domain.Forest{testutil.Node(domain.NodeAssembly, "a", shared, shared)}
	assertContractPanic(t, ErrNotATree, func() { New().ValidateFullBom(forest) })
}
