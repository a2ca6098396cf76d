package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"vecmath/internal/config"
	"vecmath/internal/kinematics"
	"vecmath/internal/util"
)

func main() {
	var cfgDir, out string
	var seed int64
	var n, workers int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of simulations")
	flag.IntVar(&workers, "workers", 8, "batch workers")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.Parse()
	defer glog.Flush()

	sc, err := config.LoadAll(cfgDir)
	if err != nil {
		glog.Fatalf("Error loading scenario: %v", err)
	}
	glog.Infof("Loaded scenario %q with %d bodies from %s", sc.ID, len(sc.Bodies), cfgDir)

	if n <= 1 {
		env := &kinematics.Env{Rng: util.New(seed)}
		res := kinematics.RunSingle(env, sc, saveLog)
		if err := os.WriteFile(out, kinematics.MarshalPretty(res), 0644); err != nil {
			glog.Fatalf("Error writing %s: %v", out, err)
		}
		glog.Infof("Run %s finished. Done=%v, T=%.2fs, steps=%d -> %s", res.RunID, res.Done, res.Duration, res.Steps, out)
		for _, b := range res.Bodies {
			glog.Infof("  %s: final %v (cell %v), traveled %.2f, max deviation %.3f", b.ID, b.Final, b.Cell, b.Traveled, b.MaxDeviation)
		}
		return
	}

	summary, err := kinematics.RunBatch(context.Background(), sc, seed, n, workers)
	if err != nil {
		glog.Fatalf("Error running batch: %v", err)
	}
	if err := os.WriteFile(out, kinematics.MarshalPretty(summary), 0644); err != nil {
		glog.Fatalf("Error writing %s: %v", out, err)
	}
	glog.Infof("Batch %d done, completion %.0f%% -> %s", n, summary.CompletionRate*100, filepath.Base(out))
}
