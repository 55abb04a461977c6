// Command trafficflow plays one round of the traffic-network puzzle: it
// generates (or loads) a round, prints the roads, and grades an answer by
// computing the maximum traffic with Edmonds–Karp and Dinic.
//
// Defaults come from TRAFFICFLOW_* environment variables and are overridden
// by flags:
//
//	TRAFFICFLOW_SEED      RNG seed for generated rounds (0 = time based)
//	TRAFFICFLOW_ROUND     path of a TOML round to load instead of generating
//	TRAFFICFLOW_PARALLEL  run both solvers concurrently
//	TRAFFICFLOW_WORKERS   worker pool size for parallel runs
//	TRAFFICFLOW_VERBOSE   log every augmentation and phase
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
	"github.com/vrischmann/envconfig"

	"github.com/katalvlaran/trafficflow/flow"
	"github.com/katalvlaran/trafficflow/metrics"
	"github.com/katalvlaran/trafficflow/puzzle"
)

// Config holds the environment defaults.
type Config struct {
	Seed     int64  `envconfig:"default=0"`
	Round    string `envconfig:"optional"`
	Parallel bool   `envconfig:"default=false"`
	Workers  int    `envconfig:"default=2"`
	Verbose  bool   `envconfig:"default=false"`
}

const envPrefix = "TRAFFICFLOW"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	var conf Config
	if err := envconfig.InitWithPrefix(&conf, envPrefix); err != nil {
		log.Fatal().Err(err).Msg("read environment")
	}

	if err := run(conf, os.Args[1:], os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("trafficflow")
	}
}

// run parses args on top of conf, plays one round and writes the report to out.
func run(conf Config, args []string, out io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("trafficflow", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Int64Var(&conf.Seed, "seed", conf.Seed, "RNG seed for generated rounds (0 = time based)")
	fs.StringVar(&conf.Round, "round", conf.Round, "TOML round file to load")
	fs.BoolVar(&conf.Parallel, "parallel", conf.Parallel, "run both solvers concurrently")
	fs.IntVar(&conf.Workers, "workers", conf.Workers, "worker pool size for parallel runs")
	fs.BoolVar(&conf.Verbose, "verbose", conf.Verbose, "log every augmentation and phase")
	answerArg := fs.String("answer", "", "your answer in vehicles per minute (empty = reveal)")
	save := fs.String("save", "", "write the round as TOML to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := zerolog.InfoLevel
	if conf.Verbose {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)

	round, err := loadOrGenerate(conf, log)
	if err != nil {
		return err
	}
	if *save != "" {
		if err := saveRound(*save, round); err != nil {
			return err
		}
		log.Info().Str("path", *save).Msg("round saved")
	}
	printRound(out, round)

	opts := flow.DefaultCompareOptions()
	opts.Verbose = conf.Verbose
	opts.Logger = &log
	opts.Observer = metrics.Recorder{}
	if conf.Parallel {
		pool, err := ants.NewPool(conf.Workers)
		if err != nil {
			return fmt.Errorf("create worker pool: %w", err)
		}
		defer pool.Release()
		opts.Parallel = true
		opts.Pool = pool
	}

	if *answerArg == "" {
		g, err := round.Graph()
		if err != nil {
			return err
		}
		cmp, err := flow.Compare(g, round.Source, round.Sink, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "maximum traffic: %d vehicles/min\n", cmp.MaxFlow)
		printRuns(out, cmp.Runs)
		return nil
	}

	answer, err := strconv.ParseInt(*answerArg, 10, 64)
	if err != nil {
		return fmt.Errorf("parse answer %q: %w", *answerArg, err)
	}
	v, err := puzzle.Grade(round, answer, opts)
	if err != nil {
		return err
	}
	if v.Correct {
		fmt.Fprintf(out, "correct: %d vehicles/min\n", v.Expected)
	} else {
		fmt.Fprintf(out, "wrong: you said %d, maximum traffic is %d vehicles/min\n", v.Answer, v.Expected)
	}
	printRuns(out, v.Runs)

	return nil
}

func loadOrGenerate(conf Config, log zerolog.Logger) (*puzzle.Round, error) {
	if conf.Round != "" {
		r, err := puzzle.LoadRound(conf.Round)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", conf.Round).Str("round", r.ID.String()).Msg("round loaded")
		return r, nil
	}

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r, err := puzzle.Generate(puzzle.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	log.Debug().Int64("seed", seed).Str("round", r.ID.String()).Msg("round generated")

	return r, nil
}

func saveRound(path string, round *puzzle.Round) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := puzzle.EncodeRound(f, round); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printRound(out io.Writer, r *puzzle.Round) {
	fmt.Fprintf(out, "round %s: from %s to %s\n", r.ID, r.Source, r.Sink)
	for _, road := range r.Roads {
		fmt.Fprintf(out, "  %s -> %s  %d vehicles/min\n", road.From, road.To, road.Capacity)
	}
}

func printRuns(out io.Writer, runs []flow.Run) {
	for _, r := range runs {
		fmt.Fprintf(out, "  %-14s %.3f ms\n", r.Algorithm, r.Millis())
	}
}
