package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/deferred-sim/sim"
)

// GenerateOperations produces the operation sequence described by spec.
// Explicit operations are returned as a copy; otherwise NumRequests operations
// are drawn from the workload RNG subsystem seeded by spec.Seed: the user
// uniformly from Users, the content by the popularity model.
// Deterministic given the same spec.
func GenerateOperations(spec *WorkloadSpec) ([]sim.Operation, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	if spec.IsReplay() {
		logrus.Debugf("Replaying %d explicit operations", len(spec.Operations))
		return append([]sim.Operation(nil), spec.Operations...), nil
	}

	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed)).ForSubsystem(sim.SubsystemWorkload)
	sampler, err := NewContentSampler(spec.Popularity, spec.ContentCount, rng)
	if err != nil {
		return nil, fmt.Errorf("content popularity: %w", err)
	}
	prefix := spec.ContentPrefix
	if prefix == "" {
		prefix = DefaultContentPrefix
	}

	ops := make([]sim.Operation, 0, spec.NumRequests)
	for i := 0; i < spec.NumRequests; i++ {
		user := spec.Users[rng.Intn(len(spec.Users))]
		ops = append(ops, sim.Operation{
			UserID:      user,
			ContentName: fmt.Sprintf("%s%d", prefix, sampler.Next()),
		})
	}
	logrus.Debugf("Generated %d operations over %d users and %d contents", len(ops), len(spec.Users), spec.ContentCount)
	return ops, nil
}
