package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"

	"beeclust/internal/sims/beeclust"
)

type paramSet struct {
	pWall float64
	pMeet float64
	kStay float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("p_wall=%.2f p_meet=%.2f k_stay=%.0f", p.pWall, p.pMeet, p.kStay)
}

type scenarioResult struct {
	PWall             float64 `csv:"p_wall"`
	PMeet             float64 `csv:"p_meet"`
	KStay             float64 `csv:"k_stay"`
	ScoreMean         float64 `csv:"score_mean"`
	ScoreStdDev       float64 `csv:"score_stddev"`
	SwarmMean         float64 `csv:"swarm_mean"`
	LargestSwarmShare float64 `csv:"largest_swarm_share"`
	TotalMoves        int     `csv:"total_moves"`
}

func main() {
	steps := flag.Int("steps", 400, "ticks to simulate per replica")
	replicas := flag.Int("replicas", 4, "replicas per parameter set, each with its own seed")
	width := flag.Int("w", 128, "arena width")
	height := flag.Int("h", 96, "arena height")
	seed := flag.Int64("seed", 1, "base seed; replica k runs with seed+k")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	configPath := flag.String("config", "", "YAML base configuration")
	out := flag.String("out", "", "CSV output path")
	flag.Parse()

	baseCfg := beeclust.DefaultConfig()
	if *configPath != "" {
		loaded, err := beeclust.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("loading %s: %v", *configPath, err)
		}
		baseCfg = loaded
	}
	baseCfg.Width = *width
	baseCfg.Height = *height

	wallOptions := []float64{0.4, 0.6, 0.8, 1.0}
	meetOptions := []float64{0.4, 0.6, 0.8, 1.0}
	stayOptions := []float64{20, 50, 100}

	var sets []paramSet
	for _, pw := range wallOptions {
		for _, pm := range meetOptions {
			for _, ks := range stayOptions {
				sets = append(sets, paramSet{pWall: pw, pMeet: pm, kStay: ks})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps, %d replicas)\n",
		len(sets), *workers, *steps, *replicas)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(baseCfg, params, *steps, *replicas, *seed)
			}
		}()
	}

	go func() {
		for _, s := range sets {
			jobs <- s
		}
		close(jobs)
	}()
	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []scenarioResult
	for res := range results {
		collected = append(collected, res)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].ScoreMean > collected[j].ScoreMean
	})

	for i, res := range collected {
		if i >= 10 {
			break
		}
		fmt.Printf("%2d. p_wall=%.2f p_meet=%.2f k_stay=%3.0f  score=%6.2f±%.2f  swarms=%5.1f  largest=%.2f\n",
			i+1, res.PWall, res.PMeet, res.KStay,
			res.ScoreMean, res.ScoreStdDev, res.SwarmMean, res.LargestSwarmShare)
	}

	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatalf("creating %s: %v", *out, err)
		}
		defer f.Close()
		if err := gocsv.MarshalFile(&collected, f); err != nil {
			log.Fatalf("writing %s: %v", *out, err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(collected), *out)
	}
}

func runScenario(base beeclust.Config, params paramSet, steps, replicas int, seed int64) scenarioResult {
	scores := make([]float64, 0, replicas)
	swarmCounts := make([]float64, 0, replicas)
	largestShare := 0.0
	totalMoves := 0

	for rep := 0; rep < replicas; rep++ {
		cfg := base
		cfg.Params.PWall = params.pWall
		cfg.Params.PMeet = params.pMeet
		cfg.Params.KStay = params.kStay
		cfg.Seed = seed + int64(rep)

		world, err := beeclust.NewWithConfig(cfg)
		if err != nil {
			log.Fatalf("configuring scenario %v: %v", params, err)
		}
		world.Reset(0)

		for i := 0; i < steps; i++ {
			totalMoves += world.Tick()
		}

		if score, err := world.Score(); err == nil {
			scores = append(scores, score)
		}
		groups := world.Swarms()
		swarmCounts = append(swarmCounts, float64(len(groups)))
		if bees := world.BeeCount(); bees > 0 {
			largest := 0
			for _, g := range groups {
				if len(g) > largest {
					largest = len(g)
				}
			}
			if share := float64(largest) / float64(bees); share > largestShare {
				largestShare = share
			}
		}
	}

	res := scenarioResult{
		PWall:             params.pWall,
		PMeet:             params.pMeet,
		KStay:             params.kStay,
		SwarmMean:         stat.Mean(swarmCounts, nil),
		LargestSwarmShare: largestShare,
		TotalMoves:        totalMoves,
	}
	if len(scores) > 0 {
		res.ScoreMean = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		res.ScoreStdDev = stat.StdDev(scores, nil)
	}
	return res
}
