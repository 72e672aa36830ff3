package wordle

// LetterFrequencies is how often each letter a-z occurs per word in a word list.
// A letter that appears twice in a word is counted twice.
type LetterFrequencies [26]float64

// NewLetterFrequencies counts the letters of every word in the list
func NewLetterFrequencies(d *Dictionary, wordlist *WordList) LetterFrequencies {
	var ret LetterFrequencies
	total := wordlist.Len()
	if total == 0 {
		return ret
	}
	counts := [26]int{}
	for _, id := range wordlist.Range {
		word := d.At(id)
		for i := 0; i < word.Len(); i++ {
			if isLetter(word[i]) {
				counts[word[i]-'a']++
			}
		}
	}
	for letter, count := range counts {
		ret[letter] = float64(count) / float64(total)
	}
	return ret
}

// Of returns the frequency of a letter a-z, 0 for anything else
func (lf *LetterFrequencies) Of(letter byte) float64 {
	if !isLetter(letter) {
		return 0
	}
	return lf[letter-'a']
}

// Score sums the frequency of each unique letter in the word.
// Letters are added in alphabetical order so equal letter sets give bit-identical scores.
func (lf *LetterFrequencies) Score(word Word) float64 {
	letters := word.UniqueLetters()
	score := 0.0
	for letter := byte('a'); letter <= 'z'; letter++ {
		if letters.Contains(letter) {
			score += lf.Of(letter)
		}
	}
	return score
}
