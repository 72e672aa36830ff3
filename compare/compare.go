// Package compare plays many games with each solver and reports how fast the candidates burn down.
package compare

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"runtime"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/powellquiring/wordlesolvers/game"
	"github.com/powellquiring/wordlesolvers/solver"
	"github.com/powellquiring/wordlesolvers/wordle"
)

type Options struct {
	Games int
	// Seed picks the solutions and seeds each game's solver, the same seed gives the same report
	Seed       uint64
	Workers    int
	Strategies []solver.Kind
	Progress   bool
}

// Result of one game
type Result struct {
	Kind       solver.Kind
	Solution   wordle.Word
	Trace      solver.Trace
	FalsePrune bool
	Err        error
}

// Summary is the aggregate for one solver
type Summary struct {
	Kind        solver.Kind
	Games       int
	Wins        int
	Failures    int
	FalsePrunes int
	MeanGuesses float64
	MaxGuesses  int
	// MeanBurndown[i] is the mean candidate count before guess i+1, finished games count as 1
	MeanBurndown []float64
}

type Report struct {
	Solutions []wordle.Word
	Summaries []Summary
}

// Run plays opts.Games games for each solver. Every solver sees the same solutions.
// Games run concurrently but share nothing except the read only dictionary.
func Run(ctx context.Context, d *wordle.Dictionary, opts Options) (Report, error) {
	if d == nil || d.Len() == 0 {
		return Report{}, wordle.ErrEmptyDictionary
	}
	if opts.Games <= 0 {
		return Report{}, fmt.Errorf("games must be positive: %d", opts.Games)
	}
	if len(opts.Strategies) == 0 {
		opts.Strategies = solver.Kinds()
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	solutions := make([]wordle.Word, opts.Games)
	for i := range solutions {
		solutions[i] = d.At(wordle.WordID(rng.IntN(d.Len())))
	}

	total := opts.Games * len(opts.Strategies)
	var bar *progressbar.ProgressBar
	if opts.Progress {
		bar = progressbar.Default(int64(total), "games")
	} else {
		bar = progressbar.DefaultSilent(int64(total))
	}

	results := make([][]Result, len(opts.Strategies))
	for i := range results {
		results[i] = make([]Result, opts.Games)
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for k, kind := range opts.Strategies {
		for i, solution := range solutions {
			seed := opts.Seed + uint64(i)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := playOne(d, kind, solution, rand.New(rand.NewPCG(seed, uint64(k))))
				if err != nil {
					return err
				}
				results[k][i] = result
				return bar.Add(1)
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	_ = bar.Finish()

	report := Report{Solutions: solutions}
	for k, kind := range opts.Strategies {
		summary := Summarize(kind, results[k])
		log.Debug().
			Str("solver", string(kind)).
			Int("wins", summary.Wins).
			Int("failures", summary.Failures).
			Float64("mean", summary.MeanGuesses).
			Msg("compare")
		report.Summaries = append(report.Summaries, summary)
	}
	return report, nil
}

// playOne plays a single game. Solver errors are part of the result, setup errors are returned.
func playOne(d *wordle.Dictionary, kind solver.Kind, solution wordle.Word, rng *rand.Rand) (Result, error) {
	g, err := game.New(d, solution)
	if err != nil {
		return Result{}, err
	}
	s, err := solver.New(kind, d, rng, solution)
	if err != nil {
		return Result{}, err
	}
	trace, err := solver.Play(g, s)
	result := Result{Kind: kind, Solution: solution, Trace: trace, Err: err}
	if hybrid, ok := s.(*solver.Hybrid); ok {
		_, result.FalsePrune = hybrid.FalsePrune()
	}
	if err != nil && !errors.Is(err, wordle.ErrNoCandidates) {
		log.Warn().Err(err).Str("solver", string(kind)).Str("solution", string(solution)).Msg("game failed")
	}
	return result, nil
}

// Summarize aggregates the results of one solver
func Summarize(kind solver.Kind, results []Result) Summary {
	summary := Summary{Kind: kind, Games: len(results)}
	guesses := 0
	maxLen := 0
	for _, result := range results {
		if result.FalsePrune {
			summary.FalsePrunes++
		}
		if result.Err != nil || !result.Trace.Solved {
			summary.Failures++
		} else {
			summary.Wins++
			n := len(result.Trace.Turns)
			guesses += n
			summary.MaxGuesses = max(summary.MaxGuesses, n)
		}
		maxLen = max(maxLen, len(result.Trace.Burndown))
	}
	if summary.Wins > 0 {
		summary.MeanGuesses = float64(guesses) / float64(summary.Wins)
	}
	if len(results) == 0 {
		return summary
	}
	summary.MeanBurndown = make([]float64, maxLen)
	for _, result := range results {
		for i := range maxLen {
			count := 1
			if i < len(result.Trace.Burndown) {
				count = result.Trace.Burndown[i]
			}
			summary.MeanBurndown[i] += float64(count)
		}
	}
	for i := range summary.MeanBurndown {
		summary.MeanBurndown[i] /= float64(len(results))
	}
	return summary
}

// WriteTable prints one row per solver with the mean burndown for the first guesses
func (r Report) WriteTable(w io.Writer, columns int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "solver\tgames\twins\tfailures\tfalse prunes\tmean\tmax\t")
	for i := range columns {
		fmt.Fprintf(tw, "g%d\t", i+1)
	}
	fmt.Fprintln(tw)
	for _, s := range r.Summaries {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%d\t", s.Kind, s.Games, s.Wins, s.Failures, s.FalsePrunes, s.MeanGuesses, s.MaxGuesses)
		for i := range columns {
			if i < len(s.MeanBurndown) {
				fmt.Fprintf(tw, "%.1f\t", s.MeanBurndown[i])
			} else {
				fmt.Fprint(tw, "1.0\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
