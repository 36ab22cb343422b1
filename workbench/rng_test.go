package workbench

import (
	"testing"

	"github.com/desim-project/desim/sim"
	"github.com/stretchr/testify/assert"
)

func TestPartitionedRNG_SameSubsystemIsDeterministic(t *testing.T) {
	a := NewPartitionedRNG(42)
	b := NewPartitionedRNG(42)

	ra := a.ForSubsystem(SubsystemDurations)
	rb := b.ForSubsystem(SubsystemDurations)

	for i := 0; i < 10; i++ {
		assert.Equal(t, ra.Float64(), rb.Float64())
	}
}

func TestPartitionedRNG_DifferentSubsystemsDiverge(t *testing.T) {
	p := NewPartitionedRNG(42)

	durations := p.ForSubsystem(SubsystemDurations)
	other := p.ForSubsystem("other")

	assert.NotEqual(t, durations.Float64(), other.Float64())
}

func TestPartitionedRNG_ForSubsystemCachesInstance(t *testing.T) {
	p := NewPartitionedRNG(7)

	first := p.ForSubsystem(SubsystemDurations)
	second := p.ForSubsystem(SubsystemDurations)

	assert.Same(t, first, second)
}

func TestJitterDuration_ZeroSpreadReturnsBase(t *testing.T) {
	p := NewPartitionedRNG(1)
	rng := p.ForSubsystem(SubsystemDurations)

	assert.Equal(t, sim.VirtualTime(3), JitterDuration(rng, 3, 0))
}

func TestJitterDuration_StaysWithinSpreadAndNonNegative(t *testing.T) {
	p := NewPartitionedRNG(1)
	rng := p.ForSubsystem(SubsystemDurations)

	base := sim.VirtualTime(10)
	for i := 0; i < 200; i++ {
		d := JitterDuration(rng, base, 0.2)
		assert.GreaterOrEqual(t, float64(d), 0.0)
		assert.LessOrEqual(t, float64(d), float64(base)*1.2+1e-9)
		assert.GreaterOrEqual(t, float64(d), float64(base)*0.8-1e-9)
	}
}

func TestJitterDuration_FloorsAtZero(t *testing.T) {
	p := NewPartitionedRNG(1)
	rng := p.ForSubsystem(SubsystemDurations)

	for i := 0; i < 200; i++ {
		d := JitterDuration(rng, 0.01, 5.0)
		assert.GreaterOrEqual(t, float64(d), 0.0)
	}
}
