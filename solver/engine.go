package solver

import (
	"errors"
	"fmt"

	"github.com/powellquiring/wordlesolvers/wordle"
)

var (
	ErrGameOver      = errors.New("game over")
	ErrUninitialized = errors.New("engine not initialized, use NewEngine")
)

// State of one solver for one game
type State int

const (
	Uninitialized State = iota
	Ready
	Solved
	Exhausted
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Solved:
		return "solved"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal states accept no more feedback
func (s State) Terminal() bool {
	return s == Solved || s == Exhausted
}

// Engine holds the words that are still consistent with every feedback received.
// The candidate list only ever loses words.
type Engine struct {
	dictionary *wordle.Dictionary
	candidates *wordle.WordList
	history    []wordle.Turn
	state      State
}

// NewEngine starts with every dictionary word as a candidate
func NewEngine(d *wordle.Dictionary) (*Engine, error) {
	if d == nil || d.Len() == 0 {
		return nil, wordle.ErrEmptyDictionary
	}
	return &Engine{
		dictionary: d,
		candidates: d.WordlistAll(),
		state:      Ready,
	}, nil
}

func (e *Engine) Dictionary() *wordle.Dictionary {
	return e.dictionary
}

// Candidates is the live candidate list, callers must not modify it
func (e *Engine) Candidates() *wordle.WordList {
	return e.candidates
}

func (e *Engine) Remaining() int {
	if e.candidates == nil {
		return 0
	}
	return e.candidates.Len()
}

func (e *Engine) State() State {
	return e.state
}

// History returns a copy of the turns so far
func (e *Engine) History() []wordle.Turn {
	ret := make([]wordle.Turn, len(e.history))
	copy(ret, e.history)
	return ret
}

func (e *Engine) check(guess wordle.Word, feedback wordle.Feedback) error {
	if e.state == Uninitialized {
		return ErrUninitialized
	}
	if e.state.Terminal() {
		return fmt.Errorf("update after %s: %w", e.state, ErrGameOver)
	}
	wordLen := e.dictionary.WordLen()
	if guess.Len() != wordLen {
		return fmt.Errorf("guess %q has %d letters, expected %d: %w", guess, guess.Len(), wordLen, wordle.ErrInvalidLength)
	}
	if len(feedback) != wordLen {
		return fmt.Errorf("feedback %s has %d colors, expected %d: %w", feedback, len(feedback), wordLen, wordle.ErrInvalidLength)
	}
	if !guess.Valid() {
		return fmt.Errorf("guess %q: %w", guess, wordle.ErrInvalidWord)
	}
	return feedback.Validate()
}

// Observe records the turn without pruning
func (e *Engine) Observe(guess wordle.Word, feedback wordle.Feedback) error {
	if err := e.check(guess, feedback); err != nil {
		return err
	}
	e.history = append(e.history, wordle.Turn{Guess: guess, Feedback: feedback})
	if feedback.Solved() {
		e.state = Solved
	}
	return nil
}

// Update records the turn and keeps only the candidates that match the feedback
func (e *Engine) Update(guess wordle.Word, feedback wordle.Feedback) error {
	if err := e.Observe(guess, feedback); err != nil {
		return err
	}
	possibleWords, err := e.dictionary.Matcher().Prune(e.candidates, guess, feedback)
	if err != nil {
		return err
	}
	e.candidates = possibleWords
	if e.state != Solved && possibleWords.Len() == 0 {
		e.state = Exhausted
	}
	return nil
}

// take removes a word from the candidates
func (e *Engine) take(id wordle.WordID) {
	e.candidates.Remove(id)
}

// selectable returns the single remaining candidate when there is exactly one.
// It moves an empty engine to Exhausted.
func (e *Engine) selectable() (wordle.WordID, bool, error) {
	switch e.state {
	case Uninitialized:
		return 0, false, ErrUninitialized
	case Solved:
		return 0, false, fmt.Errorf("next guess after %s: %w", e.state, ErrGameOver)
	case Exhausted:
		return 0, false, wordle.ErrNoCandidates
	}
	switch e.candidates.Len() {
	case 0:
		e.state = Exhausted
		return 0, false, wordle.ErrNoCandidates
	case 1:
		id, _ := e.candidates.FirstWord()
		return id, true, nil
	}
	return 0, false, nil
}
