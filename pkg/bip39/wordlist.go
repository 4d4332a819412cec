package bip39

import (
	"sync"

	"github.com/tyler-smith/go-bip39/wordlists"
)

// WordListSize is the number of words every BIP-39 language list holds.
// Each word therefore encodes exactly 11 bits.
const WordListSize = 2048

// WordList is an immutable, ordered 2048-entry word collection with
// constant-time lookup in both directions. Build one with NewWordList
// or use the shared English default from EnglishWordList.
type WordList struct {
	words []string
	index map[string]int
}

// NewWordList builds a WordList from an ordered word slice. The slice
// must contain exactly 2048 unique words.
func NewWordList(words []string) (*WordList, error) {
	if len(words) != WordListSize {
		return nil, ErrInvalidWordList
	}

	index := make(map[string]int, WordListSize)
	for i, w := range words {
		if _, dup := index[w]; dup {
			return nil, ErrInvalidWordList
		}
		index[w] = i
	}

	list := make([]string, WordListSize)
	copy(list, words)

	return &WordList{words: list, index: index}, nil
}

// Word returns the word at the given 11-bit index.
func (wl *WordList) Word(i int) (string, bool) {
	if i < 0 || i >= len(wl.words) {
		return "", false
	}
	return wl.words[i], true
}

// Index returns the position of word in the list.
func (wl *WordList) Index(word string) (int, bool) {
	i, ok := wl.index[word]
	return i, ok
}

var (
	englishOnce sync.Once
	english     *WordList
)

// EnglishWordList returns the bundled English word list. It is built
// once and shared read-only; callers must not mutate it.
func EnglishWordList() *WordList {
	englishOnce.Do(func() {
		var err error
		english, err = NewWordList(wordlists.English)
		if err != nil {
			// The bundled list is a compile-time constant; failing to
			// load it is unrecoverable.
			panic(err)
		}
	})
	return english
}

// resolveWordList applies the default list when the caller passed nil,
// so tests and other languages can inject their own.
func resolveWordList(wl *WordList) *WordList {
	if wl == nil {
		return EnglishWordList()
	}
	return wl
}
