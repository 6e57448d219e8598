// Package generator picks quiz words from a local word list.
package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/verte-zerg/termkit/internal/model"
)

// ErrNoWords is returned when picking from an empty list.
var ErrNoWords = errors.New("no words to pick from")

// Generator selects words uniformly at random.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns one word from words.
func (g *Generator) Pick(words []string) (string, error) {
	if len(words) == 0 {
		return "", ErrNoWords
	}
	return words[g.rnd.Intn(len(words))], nil
}

// LocalSource serves quiz words from an in-memory list.
// Definitions and pronunciations are not known for local words.
type LocalSource struct {
	words []string
	gen   *Generator
}

// NewLocalSource wraps words and gen as a word source. A nil gen uses New.
func NewLocalSource(words []string, gen *Generator) *LocalSource {
	if gen == nil {
		gen = New()
	}
	return &LocalSource{words: words, gen: gen}
}

// FetchRandomWord returns a random word from the list.
func (s *LocalSource) FetchRandomWord(ctx context.Context) (model.WordRecord, error) {
	if err := ctx.Err(); err != nil {
		return model.WordRecord{}, err
	}
	word, err := s.gen.Pick(s.words)
	if err != nil {
		return model.WordRecord{}, err
	}
	return model.WordRecord{Spelling: word}, nil
}
