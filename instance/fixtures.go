package instance

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/wspplanner/builder"
	"github.com/katalvlaran/wspplanner/planner"
	"github.com/katalvlaran/wspplanner/predicate"
)

const (
	fixtureStepPrefix = "step"
	fixtureUserPrefix = "user"
)

type fixtureConfig struct {
	rng     *rand.Rand
	density float64
	sodFrac float64
	bodFrac float64
}

func defaultFixtureConfig() fixtureConfig {
	return fixtureConfig{rng: rand.New(rand.NewSource(1)), density: 0.5, sodFrac: 0.2, bodFrac: 0.1}
}

// FixtureOption configures RandomInstance, mirroring builder's
// BuilderOption/WithSeed/WithRand determinism discipline.
type FixtureOption func(*fixtureConfig)

// WithSeed creates a new deterministic RNG from seed.
func WithSeed(seed int64) FixtureOption {
	return func(c *fixtureConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG source. Panics on nil, per the
// teacher's "builder 99-rules" validation-panic convention for malformed
// option arguments.
func WithRand(r *rand.Rand) FixtureOption {
	if r == nil {
		panic("instance: WithRand(nil)")
	}

	return func(c *fixtureConfig) { c.rng = r }
}

// WithDensity sets the fraction of users authorized per step (default
// 0.5).
func WithDensity(d float64) FixtureOption {
	return func(c *fixtureConfig) { c.density = d }
}

// WithConstraintMix sets the per-adjacent-step-pair probability of
// placing a sod or bod constraint (defaults 0.2/0.1).
func WithConstraintMix(sodFrac, bodFrac float64) FixtureOption {
	return func(c *fixtureConfig) { c.sodFrac = sodFrac; c.bodFrac = bodFrac }
}

// RandomInstance builds a deterministic random WSP instance. The
// authorization relation is built the way builder builds any other
// topology: BuildGraph(CompleteBipartite(k, n)) lays down the full
// step↔user skeleton (steps as the left partition, users as the right,
// grounded on impl_bipartite.go's K_{n1,n2} construction), then each edge
// is independently retained with probability density using the same
// seeded RNG discipline as the rest of builder. A sod/bod constraint is
// placed between consecutive steps with the configured probabilities.
// Used by the planner property tests.
func RandomInstance(k, n int, opts ...FixtureOption) *planner.Instance {
	cfg := defaultFixtureConfig()
	for _, o := range opts {
		o(&cfg)
	}

	auth := buildRandomAuth(k, n, cfg)

	preds := make([]predicate.Scoped, 0, k)
	for s := 0; s+1 < k; s++ {
		roll := cfg.rng.Float64()
		switch {
		case roll < cfg.sodFrac:
			preds = append(preds, predicate.SoD(s, s+1))
		case roll < cfg.sodFrac+cfg.bodFrac:
			preds = append(preds, predicate.BoD(s, s+1))
		}
	}

	return planner.NewInstance(k, n, auth, predicate.NewSet(preds...))
}

// buildRandomAuth lays down the full step↔user bipartite skeleton via
// builder.CompleteBipartite and independently retains each edge with
// probability cfg.density. A step that loses every edge to the coin flips
// keeps one random user, so no step is ever left unauthorized.
func buildRandomAuth(k, n int, cfg fixtureConfig) [][]int {
	auth := make([][]int, k)
	for s := range auth {
		auth[s] = make([]int, 0, n)
	}
	if k == 0 || n == 0 {
		return auth
	}

	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithPartitionPrefix(fixtureStepPrefix, fixtureUserPrefix)},
		builder.CompleteBipartite(k, n),
	)
	if err != nil {
		panic(fmt.Errorf("instance: building authorization skeleton: %w", err))
	}

	for _, e := range g.Edges() {
		s, sOK := stripPrefixedIndex(e.From, fixtureStepPrefix)
		u, uOK := stripPrefixedIndex(e.To, fixtureUserPrefix)
		if !sOK || !uOK {
			continue
		}
		if cfg.rng.Float64() < cfg.density {
			auth[s] = append(auth[s], u)
		}
	}

	for s := range auth {
		if len(auth[s]) == 0 {
			auth[s] = append(auth[s], cfg.rng.Intn(n))
		}
		sort.Ints(auth[s])
	}

	return auth
}

func stripPrefixedIndex(id, prefix string) (int, bool) {
	if !strings.HasPrefix(id, prefix) {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil {
		return 0, false
	}

	return v, true
}
