// Package game plays Wordle against a hidden solution.
//
// A Game holds a dictionary and the solution. Guess checks the word is in the dictionary,
// counts the attempt and scores it with the two pass rule in wordle.Evaluate.
// There is no limit on the number of attempts.
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/powellquiring/wordlesolvers/wordle"
)

var (
	ErrNotInDictionary = errors.New("word not in dictionary")
	ErrFinished        = errors.New("game finished")
)

// Game is a single Wordle game. Not safe for concurrent use, each game owns its state.
type Game struct {
	dictionary *wordle.Dictionary
	solution   wordle.Word
	guesses    []wordle.Turn
	attempts   int
	won        bool
}

// New starts a game with the given solution
func New(d *wordle.Dictionary, solution wordle.Word) (*Game, error) {
	if d == nil || d.Len() == 0 {
		return nil, wordle.ErrEmptyDictionary
	}
	if !d.Contains(solution) {
		return nil, fmt.Errorf("solution %q: %w", solution, ErrNotInDictionary)
	}
	return &Game{dictionary: d, solution: solution}, nil
}

// NewRandom starts a game with a solution chosen uniformly from the dictionary
func NewRandom(d *wordle.Dictionary, rng *rand.Rand) (*Game, error) {
	if d == nil || d.Len() == 0 {
		return nil, wordle.ErrEmptyDictionary
	}
	return New(d, d.At(wordle.WordID(rng.IntN(d.Len()))))
}

// Guess scores a guess. Words outside the dictionary are rejected without using an attempt.
func (g *Game) Guess(guess wordle.Word) (wordle.Feedback, int, error) {
	if g.won {
		return nil, g.attempts, ErrFinished
	}
	word, err := wordle.ParseWord(string(guess))
	if err != nil {
		return nil, g.attempts, err
	}
	if !g.dictionary.Contains(word) {
		return nil, g.attempts, fmt.Errorf("%q: %w", word, ErrNotInDictionary)
	}
	feedback, err := wordle.Evaluate(g.solution, word)
	if err != nil {
		return nil, g.attempts, err
	}
	g.attempts++
	g.guesses = append(g.guesses, wordle.Turn{Guess: word, Feedback: feedback})
	g.won = feedback.Solved()
	return feedback, g.attempts, nil
}

func (g *Game) Solution() wordle.Word {
	return g.solution
}

func (g *Game) Attempts() int {
	return g.attempts
}

func (g *Game) Won() bool {
	return g.won
}

func (g *Game) Guesses() []wordle.Turn {
	ret := make([]wordle.Turn, len(g.guesses))
	copy(ret, g.guesses)
	return ret
}
