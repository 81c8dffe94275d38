package tips

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSelector(t *testing.T) *Selector {
	t.Helper()
	s, err := NewSelector(rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return s
}

func TestLoadPools_ValidatesAgainstSchema(t *testing.T) {
	pools, err := LoadPools()
	require.NoError(t, err)

	for _, key := range []string{"Recyclable", "Compostable", "Trash", "Unknown"} {
		assert.GreaterOrEqual(t, len(pools[key]), 3, "canonical pool %q too small", key)
	}
	for _, key := range []string{
		"Detection error",
		"No clear object detected",
		"Try adjusting camera angle or lighting",
	} {
		assert.NotEmpty(t, pools[key], "status pool %q missing", key)
	}
}

func TestSelect_NeverEmpty(t *testing.T) {
	s := newTestSelector(t)

	inputs := []string{
		"",
		"Recyclable",
		"Possible Recyclable",
		"some random error occurred",
		"No clear object detected",
		"Try adjusting camera angle or lighting",
		"completely made up nonsense",
		"recyclable",
		"TRASH",
	}
	for _, in := range inputs {
		// Many draws so a lucky pick can't hide an empty pool.
		for i := 0; i < 20; i++ {
			assert.NotEmpty(t, s.Select(in), "Select(%q)", in)
		}
	}
}

func TestSelect_ExactMatchDrawsFromPool(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	tip := s.Select("Recyclable")
	assert.Contains(t, pools["Recyclable"], tip)
}

func TestSelect_PossiblePrefixAppendsCaveat(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	tip := s.Select("Possible Trash")
	require.True(t, strings.HasSuffix(tip, LowConfidenceCaveat), "missing caveat: %q", tip)

	base := strings.TrimSuffix(tip, LowConfidenceCaveat)
	assert.Contains(t, pools["Trash"], base)
}

func TestSelect_PossibleUnknownStringFallsBack(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	tip := s.Select("Possible gadget")
	require.True(t, strings.HasSuffix(tip, LowConfidenceCaveat))
	assert.Contains(t, pools["Unknown"], strings.TrimSuffix(tip, LowConfidenceCaveat))
}

func TestSelect_SubstringRules(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	tests := []struct {
		key  string
		pool string
	}{
		{"Detection error", "Detection error"},
		{"fatal ERROR in pipeline", "Detection error"},
		{"hmm, no clear object here", "No clear object detected"},
		{"try adjusting the thing", "Try adjusting camera angle or lighting"},
		{"bad lighting conditions", "Try adjusting camera angle or lighting"},
	}
	for _, tt := range tests {
		tip := s.Select(tt.key)
		assert.Contains(t, pools[tt.pool], tip, "Select(%q)", tt.key)
	}
}

func TestSelect_CaseNormalizedCanonical(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	for _, key := range []string{"compostable", "COMPOSTABLE", "  compostable  "} {
		tip := s.Select(key)
		assert.Contains(t, pools["Compostable"], tip, "Select(%q)", key)
	}
}

func TestSelect_EmptyKeyUsesUnknownPool(t *testing.T) {
	s := newTestSelector(t)
	pools, err := LoadPools()
	require.NoError(t, err)

	assert.Contains(t, pools["Unknown"], s.Select(""))
}

func TestSelect_DeterministicWithSeed(t *testing.T) {
	a, err := NewSelector(rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := NewSelector(rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Select("Recyclable"), b.Select("Recyclable"))
	}
}

func TestSelect_HandBuiltPoolsNeverPanic(t *testing.T) {
	// Pools that skipped schema validation may be missing keys entirely.
	s := NewSelectorWithPools(Pools{}, rand.New(rand.NewSource(1)))
	assert.NotEmpty(t, s.Select("Recyclable"))
	assert.NotEmpty(t, s.Select(""))
}
