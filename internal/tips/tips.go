// Package tips maps a category or status string to one disposal tip, chosen
// uniformly from a fixed pool. Lookup is total: every string resolves to a
// pool, falling back to Unknown.
package tips

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/ecosort/internal/waste"
)

//go:embed pools.json
var poolsJSON []byte

//go:embed pools_schema.json
var poolsSchemaJSON []byte

// LowConfidenceCaveat is appended to tips resolved through a "Possible X"
// label, where the classification was a borderline guess.
const LowConfidenceCaveat = " (Low confidence — double-check before tossing.)"

// Status keys recognized alongside the four canonical categories. These must
// match the labels the interpreter emits.
const (
	keyDetectionError = "Detection error"
	keyNoDetection    = "No clear object detected"
	keyAdjustHelp     = "Try adjusting camera angle or lighting"
)

// Pools maps a category or status key to its tip strings.
type Pools map[string][]string

// LoadPools parses the embedded tip pools and validates them against the
// embedded JSON Schema. The schema enforces that every canonical category
// carries at least 3 tips, so lookups can never come up empty.
func LoadPools() (Pools, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(poolsJSON))
	if err != nil {
		return nil, fmt.Errorf("parse tip pools: %w", err)
	}

	schemaDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(poolsSchemaJSON))
	if err != nil {
		return nil, fmt.Errorf("parse tip pool schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("ecosort://tips/pools_schema.json", schemaDoc); err != nil {
		return nil, fmt.Errorf("add tip pool schema: %w", err)
	}
	compiled, err := c.Compile("ecosort://tips/pools_schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile tip pool schema: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return nil, fmt.Errorf("tip pools invalid: %w", err)
	}

	var pools Pools
	if err := json.Unmarshal(poolsJSON, &pools); err != nil {
		return nil, fmt.Errorf("decode tip pools: %w", err)
	}
	return pools, nil
}

// Selector picks tips with an injected random source so tests can pin the
// draw. Selection is an independent uniform draw per call; consecutive
// repeats are fine.
type Selector struct {
	pools Pools
	rng   *rand.Rand
}

// NewSelector loads and validates the embedded pools. A nil rng falls back
// to a time-seeded source.
func NewSelector(rng *rand.Rand) (*Selector, error) {
	pools, err := LoadPools()
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{pools: pools, rng: rng}, nil
}

// NewSelectorWithPools builds a Selector over explicit pools. Used by tests.
func NewSelectorWithPools(pools Pools, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{pools: pools, rng: rng}
}

// Select returns one tip for the given category or status string. Never
// returns an empty string. Resolution order, first match wins:
//
//  1. exact key
//  2. case-insensitive substring rules for known status text
//  3. "Possible X" → resolve X, append the low-confidence caveat
//  4. case-normalized canonical category
//  5. Unknown pool
func (s *Selector) Select(key string) string {
	pool, caveat := s.resolve(key)
	if len(pool) == 0 {
		pool = s.pools[string(waste.Unknown)]
	}
	if len(pool) == 0 {
		// Only reachable with hand-built pools that skip the schema.
		return "Check your local disposal guidelines."
	}
	tip := pool[s.rng.Intn(len(pool))]
	if caveat {
		tip += LowConfidenceCaveat
	}
	return tip
}

func (s *Selector) resolve(key string) (pool []string, caveat bool) {
	if p, ok := s.pools[key]; ok && len(p) > 0 {
		return p, false
	}

	lower := strings.ToLower(key)
	switch {
	case strings.Contains(lower, "error"):
		return s.pools[keyDetectionError], false
	case strings.Contains(lower, "no clear object"):
		return s.pools[keyNoDetection], false
	case strings.Contains(lower, "adjusting"), strings.Contains(lower, "lighting"):
		return s.pools[keyAdjustHelp], false
	}

	if rest, ok := strings.CutPrefix(key, "Possible "); ok {
		pool, _ = s.resolve(rest)
		return pool, true
	}

	if cat, ok := waste.Parse(key); ok {
		return s.pools[string(cat)], false
	}

	return s.pools[string(waste.Unknown)], false
}
