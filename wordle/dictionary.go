package wordle

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
)

// WordID is an index into the dictionary
type WordID uint32

//go:embed words.txt
var defaultWords string

// Dictionary is the sorted list of unique words of one length.
// It is not modified after NewDictionary so games running at the same time can share it.
type Dictionary struct {
	words        []Word
	stringToWord map[Word]WordID
	wordLen      int
	matcher      *Matcher
}

// NewDictionary validates the words, removes duplicates and sorts them.
// The length of the first word is the length of every word.
func NewDictionary(strings []string) (*Dictionary, error) {
	if len(strings) == 0 {
		return nil, ErrEmptyDictionary
	}
	unique := mapset.NewThreadUnsafeSet()
	words := make([]Word, 0, len(strings))
	wordLen := 0
	for i, s := range strings {
		word, err := ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("word %d: %w", i+1, err)
		}
		if i == 0 {
			wordLen = word.Len()
		} else if word.Len() != wordLen {
			return nil, fmt.Errorf("word %d %q has %d letters, expected %d: %w", i+1, word, word.Len(), wordLen, ErrInvalidLength)
		}
		if unique.Add(word) {
			words = append(words, word)
		}
	}
	sort.Slice(words, func(i, j int) bool { return words[i] < words[j] })

	ret := &Dictionary{
		words:        words,
		stringToWord: make(map[Word]WordID, len(words)),
		wordLen:      wordLen,
	}
	for i, word := range words {
		ret.stringToWord[word] = WordID(i)
	}
	ret.matcher = newMatcher(words, wordLen)
	return ret, nil
}

// ReadWords reads one word per line. Blank lines and lines starting with # are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	var ret []string
	wordLen := 0
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		word, err := ParseWord(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(ret) == 0 {
			wordLen = word.Len()
		} else if word.Len() != wordLen {
			return nil, fmt.Errorf("line %d %q has %d letters, expected %d: %w", line, s, word.Len(), wordLen, ErrInvalidLength)
		}
		ret = append(ret, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(ret) == 0 {
		return nil, ErrEmptyDictionary
	}
	return ret, nil
}

// LoadWords reads a word file, see ReadWords
func LoadWords(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ret, err := ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

// DefaultWords is the embedded list of five letter words
func DefaultWords() []string {
	ret, err := ReadWords(strings.NewReader(defaultWords))
	if err != nil {
		panic("embedded words.txt: " + err.Error())
	}
	return ret
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// WordLen is the number of letters in every word
func (d *Dictionary) WordLen() int {
	return d.wordLen
}

// Matcher is the letter index used to prune word lists of this dictionary
func (d *Dictionary) Matcher() *Matcher {
	return d.matcher
}

func (d *Dictionary) WordlistAll() *WordList {
	wordsLen := uint(len(d.words))
	ret := bitset.New(wordsLen)
	for i := range wordsLen {
		ret.Set(i)
	}
	return (*WordList)(ret)
}

func (d *Dictionary) WordlistEmpty() *WordList {
	return (*WordList)(bitset.New(uint(len(d.words))))
}

func (d *Dictionary) WordlistFromStrings(strings []string) (*WordList, error) {
	ret := d.WordlistEmpty()
	for _, s := range strings {
		id, ok := d.Word(Word(s))
		if !ok {
			return nil, fmt.Errorf("word not in dictionary: %q", s)
		}
		ret.Insert(id)
	}
	return ret, nil
}

// Word looks up the WordID of a word
func (d *Dictionary) Word(word Word) (WordID, bool) {
	ret, ok := d.stringToWord[word]
	return ret, ok
}

func (d *Dictionary) Contains(word Word) bool {
	_, ok := d.stringToWord[word]
	return ok
}

func (d *Dictionary) At(id WordID) Word {
	return d.words[id]
}

func (d *Dictionary) Words() []Word {
	ret := make([]Word, len(d.words))
	copy(ret, d.words)
	return ret
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := make([]string, 0, wordlist.Len())
	for _, id := range wordlist.Range {
		ret = append(ret, string(d.At(id)))
	}
	return ret
}

// Truncate returns a dictionary of the first count words, 0 or more than Len is all of them
func (d *Dictionary) Truncate(count int) *Dictionary {
	if count <= 0 || count >= len(d.words) {
		return d
	}
	ret := &Dictionary{
		words:        d.words[:count:count],
		stringToWord: make(map[Word]WordID, count),
		wordLen:      d.wordLen,
	}
	for i, word := range ret.words {
		ret.stringToWord[word] = WordID(i)
	}
	ret.matcher = newMatcher(ret.words, ret.wordLen)
	return ret
}
