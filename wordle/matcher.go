package wordle

import (
	"fmt"
)

// Matches reports whether candidate could be the solution given the feedback for guess.
//
// Each position is checked on its own:
//
//	g: the candidate has the guess letter at this position
//	r: the guess letter is nowhere in the candidate
//	y: the guess letter is in the candidate, but not at this position
//
// Letter counts are not tracked. A guess with a doubled letter where one copy is y or g
// and the other r will reject the real solution, see TestMatchesDuplicateLetterLimitation.
func Matches(candidate, guess Word, feedback Feedback) (bool, error) {
	if guess.Len() != len(feedback) {
		return false, fmt.Errorf("guess %q has %d letters, feedback has %d: %w", guess, guess.Len(), len(feedback), ErrInvalidLength)
	}
	if candidate.Len() != guess.Len() {
		return false, fmt.Errorf("candidate %q has %d letters, guess has %d: %w", candidate, candidate.Len(), guess.Len(), ErrInvalidLength)
	}
	if err := feedback.Validate(); err != nil {
		return false, err
	}
	return matches(candidate, guess, feedback), nil
}

// matches is Matches without the length checks
func matches(candidate, guess Word, feedback Feedback) bool {
	for i, verdict := range feedback {
		letter := guess[i]
		switch verdict {
		case Correct:
			if candidate[i] != letter {
				return false
			}
		case Absent:
			if candidate.Contains(letter) {
				return false
			}
		case Present:
			if candidate[i] == letter || !candidate.Contains(letter) {
				return false
			}
		}
	}
	return true
}

// Evaluate returns the feedback the game gives for guess when solution is the answer.
//
// First pass marks the greens and counts the solution letters that are not green.
// Second pass turns a letter yellow while the solution still has an unused copy of it.
func Evaluate(solution, guess Word) (Feedback, error) {
	if solution.Len() != guess.Len() {
		return nil, fmt.Errorf("solution has %d letters, guess %q has %d: %w", solution.Len(), guess, guess.Len(), ErrInvalidLength)
	}
	for _, word := range []Word{solution, guess} {
		if !word.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, word)
		}
	}
	ret := make(Feedback, guess.Len())
	solutionNotGreenCount := [26]int{}
	for i := 0; i < solution.Len(); i++ {
		if solution[i] == guess[i] {
			ret[i] = Correct
		} else {
			solutionNotGreenCount[solution[i]-'a']++
		}
	}
	// turn the red to yellow if in the word but not green
	for i := 0; i < guess.Len(); i++ {
		if ret[i] == Correct {
			continue
		}
		if solutionNotGreenCount[guess[i]-'a'] > 0 {
			ret[i] = Present
			solutionNotGreenCount[guess[i]-'a']--
		}
	}
	return ret, nil
}
