package workbench

import (
	"hash/fnv"
	"math/rand"

	"github.com/desim-project/desim/sim"
)

// SeedKey identifies a reproducible workbench run: two runs given the
// same SeedKey and the same job definitions produce identical jittered
// durations. Adapted from the teacher's PartitionedRNG (sim/rng.go in
// inference-sim), generalized from LLM-serving subsystem names
// ("workload", "router") to workbench's own ("durations").
type SeedKey int64

// PartitionedRNG provides deterministic, isolated RNG instances per
// named subsystem, derived from one master SeedKey so that adding a new
// subsystem never perturbs another's sequence.
//
// Thread-safety: NOT thread-safe; ForSubsystem must be called from a
// single goroutine per subsystem name — in practice, once up front by
// cmd's simulate, before any Job clients are spawned.
type PartitionedRNG struct {
	key        SeedKey
	subsystems map[string]*rand.Rand
}

func NewPartitionedRNG(key SeedKey) *PartitionedRNG {
	return &PartitionedRNG{key: key, subsystems: make(map[string]*rand.Rand)}
}

// ForSubsystem returns a deterministically-seeded RNG for name, caching
// it so repeated calls with the same name return the same *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	seed := int64(p.key) ^ fnv1a64(name)
	rng := rand.New(rand.NewSource(seed))
	p.subsystems[name] = rng
	return rng
}

func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}

// SubsystemDurations names the RNG subsystem used to jitter work unit
// durations.
const SubsystemDurations = "durations"

// JitterDuration perturbs base by a uniform +/- spread fraction (e.g.
// spread=0.1 for +/-10%), floored at zero.
func JitterDuration(rng *rand.Rand, base sim.VirtualTime, spread float64) sim.VirtualTime {
	if spread <= 0 {
		return base
	}
	factor := 1 + (rng.Float64()*2-1)*spread
	jittered := sim.VirtualTime(float64(base) * factor)
	if jittered < 0 {
		return 0
	}
	return jittered
}
