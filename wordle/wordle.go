package wordle

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set"
)

var (
	ErrInvalidLength   = errors.New("invalid length")
	ErrInvalidWord     = errors.New("invalid word")
	ErrEmptyDictionary = errors.New("empty dictionary")
	ErrNoCandidates    = errors.New("no candidates")
	ErrInvalidFeedback = errors.New("invalid feedback")
)

// Word is a lowercase a-z word. The dictionary fixes the length.
type Word string

// Verdict is the color for one letter of a guess
type Verdict uint8

// Feedback has one Verdict for each position of the guess
type Feedback []Verdict

const (
	Absent  Verdict = iota // r
	Present                // y
	Correct                // g
)

// ParseWord lowercases s and checks that it is made of letters a-z
func ParseWord(s string) (Word, error) {
	w := strings.ToLower(strings.TrimSpace(s))
	if len(w) == 0 {
		return "", fmt.Errorf("%w: empty", ErrInvalidWord)
	}
	if !Word(w).Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, s)
	}
	return Word(w), nil
}

// Valid is true for a non empty word of letters a-z
func (w Word) Valid() bool {
	for i := 0; i < len(w); i++ {
		if !isLetter(w[i]) {
			return false
		}
	}
	return len(w) > 0
}

func isLetter(b byte) bool {
	return b >= 'a' && b <= 'z'
}

func (w Word) Len() int {
	return len(w)
}

// Contains is true if the letter is anywhere in the word
func (w Word) Contains(letter byte) bool {
	return strings.IndexByte(string(w), letter) >= 0
}

// UniqueLetters returns the set of letters in the word, each letter once
func (w Word) UniqueLetters() mapset.Set {
	ret := mapset.NewThreadUnsafeSet()
	for i := 0; i < len(w); i++ {
		ret.Add(w[i])
	}
	return ret
}

func (v Verdict) Valid() bool {
	return v <= Correct
}

func (v Verdict) String() string {
	switch v {
	case Absent:
		return "r"
	case Present:
		return "y"
	case Correct:
		return "g"
	}
	return "?"
}

// ParseFeedback reads colors r,y,g like rrggy
func ParseFeedback(colors string) (Feedback, error) {
	ret := make(Feedback, 0, len(colors))
	for _, color := range colors {
		switch color {
		case 'r':
			ret = append(ret, Absent)
		case 'y':
			ret = append(ret, Present)
		case 'g':
			ret = append(ret, Correct)
		default:
			return nil, fmt.Errorf("%w %q: color %q is not one of r,y,g", ErrInvalidFeedback, colors, color)
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("feedback: %w", ErrInvalidLength)
	}
	return ret, nil
}

func (f Feedback) String() string {
	var sb strings.Builder
	for _, v := range f {
		sb.WriteString(v.String())
	}
	return sb.String()
}

// Validate checks every verdict is Absent, Present or Correct
func (f Feedback) Validate() error {
	for i, v := range f {
		if !v.Valid() {
			return fmt.Errorf("%w: verdict %d at position %d", ErrInvalidFeedback, v, i+1)
		}
	}
	return nil
}

// Solved is true when every verdict is Correct
func (f Feedback) Solved() bool {
	for _, v := range f {
		if v != Correct {
			return false
		}
	}
	return len(f) > 0
}

// AllCorrect returns the winning feedback for a word of length n
func AllCorrect(n int) Feedback {
	ret := make(Feedback, n)
	for i := range ret {
		ret[i] = Correct
	}
	return ret
}

// Turn is one guess and the feedback the game gave for it
type Turn struct {
	Guess    Word
	Feedback Feedback
}

func (t Turn) String() string {
	return string(t.Guess) + "/" + t.Feedback.String()
}
