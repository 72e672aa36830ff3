package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"

	"github.com/powellquiring/wordlesolvers/compare"
	"github.com/powellquiring/wordlesolvers/game"
	"github.com/powellquiring/wordlesolvers/server"
	"github.com/powellquiring/wordlesolvers/solver"
	"github.com/powellquiring/wordlesolvers/wordle"
)

// playWordle with guess/answer pairs provided
func playWordle(globalConfig GlobalConfiguration, kind solver.Kind, answers []string) error {
	d := globalConfig.dictionary
	s, err := solver.New(kind, d, nil, "")
	if err != nil {
		return err
	}
	for i := 0; i < len(answers); i += 2 {
		guess, err := wordle.ParseWord(answers[i])
		if err != nil {
			return err
		}
		feedback, err := wordle.ParseFeedback(answers[i+1])
		if err != nil {
			return fmt.Errorf("answer not in right format r,y,g like rrggy: %w", err)
		}
		if err := s.Update(guess, feedback); err != nil {
			return err
		}
	}
	if s.State() == solver.Solved {
		fmt.Println("solved:", answers[len(answers)-2])
		return nil
	}
	nextGuess, err := s.NextGuess()
	if err != nil {
		return err
	}
	fmt.Print(nextGuess, ":")
	if engine, ok := s.(interface{ Candidates() *wordle.WordList }); ok {
		for _, word := range d.WordlistStrings(engine.Candidates()) {
			fmt.Print(" ", word)
		}
	}
	fmt.Println()
	return nil
}

// simulate one game for each solution and print the guesses
func simulate(globalConfig GlobalConfiguration, kind solver.Kind, seed uint64, solutionStrings []string) error {
	d := globalConfig.dictionary
	rng := rand.New(rand.NewPCG(seed, seed))
	var solutions []wordle.Word
	if len(solutionStrings) == 0 {
		solutions = d.Words()
	} else {
		for _, solutionString := range solutionStrings {
			solution, err := wordle.ParseWord(solutionString)
			if err != nil {
				return err
			}
			solutions = append(solutions, solution)
		}
	}

	sortedGames := make(map[int][]wordle.Word)
	failed := 0
	for solutionCount, solution := range solutions {
		g, err := game.New(d, solution)
		if err != nil {
			return err
		}
		s, err := solver.New(kind, d, rng, solution)
		if err != nil {
			return err
		}
		trace, err := solver.Play(g, s)
		fmt.Print(solutionCount, " ", solution, ":")
		for _, turn := range trace.Turns {
			fmt.Print(" ", turn.Guess, "/", turn.Feedback)
		}
		if err != nil {
			failed++
			fmt.Print(" error: ", err)
		} else {
			sortedGames[len(trace.Turns)] = append(sortedGames[len(trace.Turns)], solution)
		}
		fmt.Println()
	}
	fmt.Println("---------------------")
	for numGuesses := range maxKey(sortedGames) + 1 {
		if games, ok := sortedGames[numGuesses]; ok {
			fmt.Println(numGuesses, len(games))
		}
	}
	if failed > 0 {
		fmt.Println("failed", failed)
	}
	return nil
}

func maxKey(m map[int][]wordle.Word) int {
	ret := 0
	for k := range m {
		ret = max(ret, k)
	}
	return ret
}

// first sorts first guesses by frequency score
func first(globalConfig GlobalConfiguration, top int) {
	d := globalConfig.dictionary
	all := d.WordlistAll()
	for _, item := range solver.Rank(d, all, wordle.NewLetterFrequencies(d, all), top) {
		fmt.Printf("%s %.4f\n", item.Word, item.Score)
	}
}

func runCompare(ctx context.Context, globalConfig GlobalConfiguration, opts compare.Options, columns int) error {
	report, err := compare.Run(ctx, globalConfig.dictionary, opts)
	if err != nil {
		return err
	}
	return report.WriteTable(os.Stdout, columns)
}

func cpuProfile() (func(), error) {
	f, err := os.Create("cpu.prof")
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

type GlobalConfiguration struct {
	dictionary *wordle.Dictionary
	progress   bool
}

func globalConfiguration(dictPath string, count int, progress bool) (GlobalConfiguration, error) {
	var words []string
	if dictPath == "" {
		words = wordle.DefaultWords()
	} else {
		var err error
		if words, err = wordle.LoadWords(dictPath); err != nil {
			return GlobalConfiguration{}, err
		}
	}
	dictionary, err := wordle.NewDictionary(words)
	if err != nil {
		return GlobalConfiguration{}, err
	}
	log.Debug().Str("dictionary", dictPath).Int("words", dictionary.Len()).Int("count", count).Msg("loaded")
	return GlobalConfiguration{
		dictionary: dictionary.Truncate(count),
		progress:   progress,
	}, nil
}

func parseKinds(names []string) ([]solver.Kind, error) {
	var ret []solver.Kind
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			kind, err := solver.ParseKind(part)
			if err != nil {
				return nil, err
			}
			ret = append(ret, kind)
		}
	}
	return ret, nil
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, wordle.ErrInvalidLength), errors.Is(err, wordle.ErrInvalidWord):
		return 2
	case errors.Is(err, wordle.ErrNoCandidates):
		return 3
	}
	return 1
}

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dictPath := ""
	count := 0
	progress := false
	profile := false
	logLevel := "info"
	strategy := "frequency"

	// each action wraps its work so profiling and errors are handled the same way
	run := func(work func(GlobalConfiguration) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			if lvl, err := zerolog.ParseLevel(logLevel); err == nil {
				zerolog.SetGlobalLevel(lvl)
			}
			if profile {
				stop, err := cpuProfile()
				if err != nil {
					return err
				}
				defer stop()
			}
			globalConfig, err := globalConfiguration(dictPath, count, progress)
			if err != nil {
				return cli.Exit(err, exitCode(err))
			}
			if err := work(globalConfig); err != nil {
				return cli.Exit(err, exitCode(err))
			}
			return nil
		}
	}
	strategyFlag := func() cli.Flag {
		return &cli.StringFlag{
			Name:        "strategy",
			Value:       "frequency",
			Aliases:     []string{"s"},
			Usage:       "solver: naive, pruning, frequency or hybrid",
			Destination: &strategy,
		}
	}

	cmd := &cli.Command{
		Name:  "wdl",
		Usage: "wordle solvers",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "dict",
				Aliases:     []string{"d"},
				Usage:       "word file, one word per line, default is the embedded list",
				Sources:     cli.EnvVars("WDL_DICTIONARY"),
				Destination: &dictPath,
			},
			&cli.IntFlag{
				Name:        "count",
				Value:       0,
				Aliases:     []string{"c"},
				Usage:       "number of words, 0 is all words",
				Destination: &count,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Value:       false,
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Value:       false,
				Usage:       "store profile data to analyze",
				Destination: &profile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &logLevel,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "play",
				Usage: `play a game of wordle by entering pairs of [guess answer]...
				answer colors are r (absent), y (present), g (correct), like: wdl play crane rggyr
				`,
				Flags: []cli.Flag{strategyFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess answer", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess answer", 2)
					}
					kind, err := solver.ParseKind(strategy)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return run(func(globalConfig GlobalConfiguration) error {
						return playWordle(globalConfig, kind, cmd.Args().Slice())
					})(ctx, cmd)
				},
			},
			{
				Name: "sim",
				Usage: `sim [solution] ...
				Simulate a game for each solution. If no solutions are provided,
				simulate solutions for all words.  All words can be cut back by using the -count global flag for testing.
				`,
				Flags: []cli.Flag{
					strategyFlag(),
					&cli.IntFlag{Name: "seed", Value: 1, Usage: "seed for naive and pruning picks"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					kind, err := solver.ParseKind(strategy)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return run(func(globalConfig GlobalConfiguration) error {
						return simulate(globalConfig, kind, uint64(cmd.Int("seed")), cmd.Args().Slice())
					})(ctx, cmd)
				},
			},
			{
				Name: "compare",
				Usage: `compare --games 500 --strategies naive,pruning,frequency,hybrid
				Play the same random solutions with each solver and print the mean number of
				remaining candidates before each guess.
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "games", Aliases: []string{"n"}, Value: 500, Usage: "games per solver"},
					&cli.IntFlag{Name: "seed", Value: 1, Usage: "seed for solutions and picks"},
					&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Value: 0, Usage: "games played at once, 0 is one per cpu"},
					&cli.IntFlag{Name: "columns", Value: 10, Usage: "guesses shown in the burndown table"},
					&cli.StringSliceFlag{Name: "strategies", Usage: "solvers to compare, default all"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					kinds, err := parseKinds(cmd.StringSlice("strategies"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					return run(func(globalConfig GlobalConfiguration) error {
						opts := compare.Options{
							Games:      cmd.Int("games"),
							Seed:       uint64(cmd.Int("seed")),
							Workers:    cmd.Int("workers"),
							Strategies: kinds,
							Progress:   globalConfig.progress,
						}
						return runCompare(ctx, globalConfig, opts, cmd.Int("columns"))
					})(ctx, cmd)
				},
			},
			{
				Name:    "rank",
				Aliases: []string{"first"},
				Usage: `rank
				Sort first words by letter frequency score
				`,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "top", Value: 20, Usage: "words to print, 0 is all"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(func(globalConfig GlobalConfiguration) error {
						first(globalConfig, cmd.Int("top"))
						return nil
					})(ctx, cmd)
				},
			},
			{
				Name:  "serve",
				Usage: "serve hints over http",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Value: ":5175", Usage: "listen address", Sources: cli.EnvVars("WDL_ADDR")},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return run(func(globalConfig GlobalConfiguration) error {
						addr := cmd.String("addr")
						log.Info().Str("addr", addr).Int("words", globalConfig.dictionary.Len()).Msg("starting server")
						return server.New(globalConfig.dictionary).Start(addr)
					})(ctx, cmd)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wdl")
	}
}
