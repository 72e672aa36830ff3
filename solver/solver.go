package solver

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/powellquiring/wordlesolvers/wordle"
)

// Solver plays one game. Update is called with the feedback for each guess NextGuess made.
type Solver interface {
	Name() string
	Update(guess wordle.Word, feedback wordle.Feedback) error
	NextGuess() (wordle.Word, error)
	Remaining() int
	State() State
	History() []wordle.Turn
}

type Kind string

const (
	KindNaive     Kind = "naive"
	KindPruning   Kind = "pruning"
	KindFrequency Kind = "frequency"
	KindHybrid    Kind = "hybrid"
)

func Kinds() []Kind {
	return []Kind{KindNaive, KindPruning, KindFrequency, KindHybrid}
}

func ParseKind(s string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, k := range Kinds() {
		if k == kind {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown solver %q, expected one of %v", s, Kinds())
}

// New builds a solver of the given kind for one game.
// rng picks among equal candidates for naive and pruning, nil means first in dictionary order.
// target is handed to the hybrid solver only, which uses it to report false prunes.
func New(kind Kind, d *wordle.Dictionary, rng *rand.Rand, target wordle.Word) (Solver, error) {
	switch kind {
	case KindNaive:
		return NewNaive(d, NaiveConfig{Rand: rng})
	case KindPruning:
		return NewPruning(d, PruningConfig{Rand: rng})
	case KindFrequency:
		return NewFrequency(d)
	case KindHybrid:
		return NewHybrid(d, HybridConfig{Target: target, Logger: log.Logger})
	default:
		return nil, fmt.Errorf("unknown solver kind: %q", kind)
	}
}

// pick returns a random candidate, or the first one without a rng
func pick(candidates *wordle.WordList, rng *rand.Rand) wordle.WordID {
	if rng != nil {
		if id, ok := candidates.Nth(rng.IntN(candidates.Len())); ok {
			return id
		}
	}
	id, _ := candidates.FirstWord()
	return id
}

type NaiveConfig struct {
	Rand *rand.Rand
}

// Naive ignores feedback. Each guess is removed from its pool so it never repeats a guess,
// but it keeps guessing words the feedback has already ruled out.
type Naive struct {
	*Engine
	rng *rand.Rand
}

func NewNaive(d *wordle.Dictionary, config NaiveConfig) (*Naive, error) {
	engine, err := NewEngine(d)
	if err != nil {
		return nil, err
	}
	return &Naive{Engine: engine, rng: config.Rand}, nil
}

func (s *Naive) Name() string { return string(KindNaive) }

func (s *Naive) Update(guess wordle.Word, feedback wordle.Feedback) error {
	return s.Observe(guess, feedback)
}

func (s *Naive) NextGuess() (wordle.Word, error) {
	id, only, err := s.selectable()
	if err != nil {
		return "", err
	}
	if !only {
		id = pick(s.candidates, s.rng)
	}
	s.take(id)
	return s.dictionary.At(id), nil
}

type PruningConfig struct {
	Rand *rand.Rand
}

// Pruning guesses any word that is still consistent with the feedback
type Pruning struct {
	*Engine
	rng *rand.Rand
}

func NewPruning(d *wordle.Dictionary, config PruningConfig) (*Pruning, error) {
	engine, err := NewEngine(d)
	if err != nil {
		return nil, err
	}
	return &Pruning{Engine: engine, rng: config.Rand}, nil
}

func (s *Pruning) Name() string { return string(KindPruning) }

func (s *Pruning) NextGuess() (wordle.Word, error) {
	id, only, err := s.selectable()
	if err != nil {
		return "", err
	}
	if !only {
		id = pick(s.candidates, s.rng)
	}
	return s.dictionary.At(id), nil
}

// Frequency guesses the candidate whose unique letters are most common in the full dictionary.
// The first candidate with the best score wins a tie.
type Frequency struct {
	*Engine
	frequencies wordle.LetterFrequencies
}

func NewFrequency(d *wordle.Dictionary) (*Frequency, error) {
	engine, err := NewEngine(d)
	if err != nil {
		return nil, err
	}
	return &Frequency{
		Engine:      engine,
		frequencies: wordle.NewLetterFrequencies(d, engine.Candidates()),
	}, nil
}

func (s *Frequency) Name() string { return string(KindFrequency) }

// Frequencies of the dictionary the solver started with
func (s *Frequency) Frequencies() wordle.LetterFrequencies {
	return s.frequencies
}

func (s *Frequency) NextGuess() (wordle.Word, error) {
	id, only, err := s.selectable()
	if err != nil {
		return "", err
	}
	if !only {
		id = s.best()
	}
	return s.dictionary.At(id), nil
}

func (s *Frequency) best() wordle.WordID {
	bestScore := 0.0
	bestWord, found := wordle.WordID(0), false
	for _, id := range s.candidates.Range {
		score := s.frequencies.Score(s.dictionary.At(id))
		if score > bestScore {
			bestScore, bestWord, found = score, id, true
		}
	}
	if !found {
		// nothing scored, any candidate will do
		bestWord, _ = s.candidates.FirstWord()
	}
	return bestWord
}

type HybridConfig struct {
	// Target is the solution of the game being played. It is only used to notice feedback
	// that prunes the real solution, never to choose a guess.
	Target wordle.Word
	Logger zerolog.Logger
}

// Hybrid scores candidates by the letters common among the remaining candidates.
// Ties go to the dictionary wide letter frequencies, then dictionary order.
type Hybrid struct {
	*Engine
	frequencies wordle.LetterFrequencies
	target      wordle.WordID
	hasTarget   bool
	lostAt      int
	logger      zerolog.Logger
}

func NewHybrid(d *wordle.Dictionary, config HybridConfig) (*Hybrid, error) {
	engine, err := NewEngine(d)
	if err != nil {
		return nil, err
	}
	ret := &Hybrid{
		Engine:      engine,
		frequencies: wordle.NewLetterFrequencies(d, engine.Candidates()),
		logger:      config.Logger,
	}
	if config.Target != "" {
		ret.target, ret.hasTarget = d.Word(config.Target)
		if !ret.hasTarget {
			return nil, fmt.Errorf("hybrid target %q not in dictionary", config.Target)
		}
	}
	return ret, nil
}

func (s *Hybrid) Name() string { return string(KindHybrid) }

func (s *Hybrid) Update(guess wordle.Word, feedback wordle.Feedback) error {
	hadTarget := s.hasTarget && s.candidates.Contains(s.target)
	if err := s.Engine.Update(guess, feedback); err != nil {
		return err
	}
	if hadTarget && !s.candidates.Contains(s.target) {
		s.lostAt = len(s.history)
		s.logger.Warn().
			Str("target", string(s.dictionary.At(s.target))).
			Str("guess", string(guess)).
			Str("feedback", feedback.String()).
			Int("turn", s.lostAt).
			Msg("feedback pruned the solution")
	}
	return nil
}

// FalsePrune returns the turn whose feedback removed the target from the candidates
func (s *Hybrid) FalsePrune() (int, bool) {
	return s.lostAt, s.lostAt > 0
}

func (s *Hybrid) NextGuess() (wordle.Word, error) {
	id, only, err := s.selectable()
	if err != nil {
		return "", err
	}
	if !only {
		id = s.best()
	}
	return s.dictionary.At(id), nil
}

func (s *Hybrid) best() wordle.WordID {
	local := wordle.NewLetterFrequencies(s.dictionary, s.candidates)
	bestLocal, bestGlobal := -1.0, -1.0
	var bestWord wordle.WordID
	for _, id := range s.candidates.Range {
		word := s.dictionary.At(id)
		localScore := local.Score(word)
		globalScore := s.frequencies.Score(word)
		if localScore > bestLocal || (localScore == bestLocal && globalScore > bestGlobal) {
			bestLocal, bestGlobal, bestWord = localScore, globalScore, id
		}
	}
	return bestWord
}
