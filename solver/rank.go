package solver

import (
	"container/heap"

	"github.com/powellquiring/wordlesolvers/wordle"
)

// Heap is a generic heap ordered by less
type Heap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *Heap[T]) Len() int           { return len(h.data) }
func (h *Heap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *Heap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

// Push adds an element to the heap.
func (h *Heap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

// Pop removes the highest-priority element.
func (h *Heap[T]) Pop() any {
	n := len(h.data)
	item := h.data[n-1]
	h.data = h.data[0 : n-1]
	return item
}

func NewHeap[T any](less func(a, b T) bool) *Heap[T] {
	ret := &Heap[T]{data: []T{}, less: less}
	heap.Init(ret)
	return ret
}

// WordScore is a word and its letter frequency score, higher is better
type WordScore struct {
	Word  wordle.Word
	Score float64
}

// Rank orders the words of the list by frequency score, best first.
// Equal scores are in dictionary order. limit <= 0 returns every word.
func Rank(d *wordle.Dictionary, wordlist *wordle.WordList, frequencies wordle.LetterFrequencies, limit int) []WordScore {
	h := NewHeap(func(a, b WordScore) bool {
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Word < b.Word
	})
	for _, id := range wordlist.Range {
		word := d.At(id)
		heap.Push(h, WordScore{Word: word, Score: frequencies.Score(word)})
	}
	if limit <= 0 || limit > h.Len() {
		limit = h.Len()
	}
	ret := make([]WordScore, 0, limit)
	for len(ret) < limit {
		ret = append(ret, heap.Pop(h).(WordScore))
	}
	return ret
}
