package kinematics

import (
	"context"

	"golang.org/x/sync/errgroup"

	"vecmath/internal/config"
	"vecmath/internal/util"
	"vecmath/pkg/vec"
)

type BatchSummary struct {
	Scenario       string               `json:"scenario"`
	Runs           int                  `json:"runs"`
	CompletionRate float64              `json:"completion_rate"`
	AvgDuration    float64              `json:"avg_duration"`
	Bodies         map[string]BodyStats `json:"bodies"`
}

type BodyStats struct {
	AvgTraveled     float64           `json:"avg_traveled"`
	AvgMaxDeviation float64           `json:"avg_max_deviation"`
	AvgFinal        vec.Vec2[float64] `json:"avg_final"`
	FinishRate      float64           `json:"finish_rate"`
}

// RunSeed is the seed of run i of a batch started from seed.
func RunSeed(seed int64, i int) int64 { return seed + int64(i)*7919 }

// RunBatch runs sc n times on a pool of workers and averages the results.
// Run i always uses RunSeed(seed, i), so the summary does not depend on
// scheduling.
func RunBatch(ctx context.Context, sc *config.ScenarioConfig, seed int64, n, workers int) (BatchSummary, error) {
	if workers < 1 {
		workers = 1
	}
	if n < 0 {
		n = 0
	}
	results := make([]SimResult, n)

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan int)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				env := &Env{Rng: util.New(RunSeed(seed, i))}
				results[i] = RunSingle(env, sc, false)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < n; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return BatchSummary{}, err
	}

	sum := BatchSummary{Scenario: sc.ID, Runs: n, Bodies: map[string]BodyStats{}}
	if n == 0 {
		return sum, nil
	}
	type acc struct {
		traveled, deviation float64
		final               vec.Vec2[float64]
		finished            int
	}
	completed, sumT := 0, 0.0
	perBody := map[string]*acc{}
	for _, res := range results {
		if res.Done {
			completed++
		}
		sumT += res.Duration
		for _, br := range res.Bodies {
			a := perBody[br.ID]
			if a == nil {
				a = &acc{}
				perBody[br.ID] = a
			}
			a.traveled += br.Traveled
			a.deviation += br.MaxDeviation
			a.final.AddAssign(br.Final)
			if br.Finished {
				a.finished++
			}
		}
	}

	runs := float64(n)
	sum.CompletionRate = float64(completed) / runs
	sum.AvgDuration = sumT / runs
	for id, a := range perBody {
		sum.Bodies[id] = BodyStats{
			AvgTraveled:     a.traveled / runs,
			AvgMaxDeviation: a.deviation / runs,
			AvgFinal:        a.final.Div(runs),
			FinishRate:      float64(a.finished) / runs,
		}
	}
	return sum, nil
}
