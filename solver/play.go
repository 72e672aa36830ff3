package solver

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/powellquiring/wordlesolvers/wordle"
)

// Referee scores guesses, game.Game is one
type Referee interface {
	Guess(guess wordle.Word) (feedback wordle.Feedback, attempts int, err error)
}

// Trace is the record of one game
type Trace struct {
	Turns []wordle.Turn
	// Burndown is the number of candidates before the first guess and after each update
	Burndown []int
	Attempts int
	Solved   bool
}

// Play asks the solver for guesses until the referee reports all green.
// An error from the referee ends the game, the guess is not retried.
func Play(referee Referee, s Solver) (Trace, error) {
	trace := Trace{Burndown: []int{s.Remaining()}}
	// every guess removes at least the guessed word from the candidates
	limit := s.Remaining() + 1
	for range limit {
		guess, err := s.NextGuess()
		if err != nil {
			return trace, fmt.Errorf("%s turn %d: %w", s.Name(), len(trace.Turns)+1, err)
		}
		feedback, attempts, err := referee.Guess(guess)
		if err != nil {
			return trace, fmt.Errorf("%s turn %d guess %q: %w", s.Name(), len(trace.Turns)+1, guess, err)
		}
		trace.Attempts = attempts
		trace.Turns = append(trace.Turns, wordle.Turn{Guess: guess, Feedback: feedback})
		if err := s.Update(guess, feedback); err != nil {
			return trace, err
		}
		if feedback.Solved() {
			trace.Solved = true
			log.Debug().Str("solver", s.Name()).Str("solution", string(guess)).Int("guesses", len(trace.Turns)).Msg("solved")
			return trace, nil
		}
		trace.Burndown = append(trace.Burndown, s.Remaining())
		log.Trace().Str("solver", s.Name()).Str("guess", string(guess)).Str("feedback", feedback.String()).Int("remaining", s.Remaining()).Msg("turn")
	}
	return trace, fmt.Errorf("%s gave up after %d guesses: %w", s.Name(), limit, wordle.ErrNoCandidates)
}
