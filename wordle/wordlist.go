package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

// WordList is a set of dictionary words, there is a bit for each WordID
type WordList bitset.BitSet

func (wl *WordList) bits() *bitset.BitSet {
	return (*bitset.BitSet)(wl)
}

// Range iterates the words in ascending WordID order, which is alphabetical
func (wl *WordList) Range(yield func(i int, id WordID) bool) {
	bs := wl.bits()
	i := 0
	for id, ok := bs.NextSet(0); ok; id, ok = bs.NextSet(id + 1) {
		if !yield(i, WordID(id)) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []WordID {
	ret := make([]WordID, 0, wl.Len())
	for _, id := range wl.Range {
		ret = append(ret, id)
	}
	return ret
}

// FirstWord returns the lowest WordID in the list
func (wl *WordList) FirstWord() (WordID, bool) {
	id, ok := wl.bits().NextSet(0)
	return WordID(id), ok
}

// Nth returns the n'th word in iteration order
func (wl *WordList) Nth(n int) (WordID, bool) {
	for i, id := range wl.Range {
		if i == n {
			return id, true
		}
	}
	return 0, false
}

func (wl *WordList) Len() int {
	return int(wl.bits().Count())
}

func (wl *WordList) Insert(id WordID) {
	wl.bits().Set(uint(id))
}

func (wl *WordList) Remove(id WordID) {
	wl.bits().Clear(uint(id))
}

func (wl *WordList) Contains(id WordID) bool {
	return wl.bits().Test(uint(id))
}

func (wl *WordList) Clone() *WordList {
	return (*WordList)(wl.bits().Clone())
}

func (wl *WordList) Equal(other *WordList) bool {
	return wl.bits().Equal(other.bits())
}
