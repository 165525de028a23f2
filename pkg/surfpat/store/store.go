package store

import (
	"context"
	"crypto/rand"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Store persists annotated sentences and serves them back as a corpus
type Store interface {
	Close() error

	// PutSentence inserts or replaces a sentence. An empty id is replaced
	// by a newly generated one, which is returned.
	PutSentence(ctx context.Context, id string, sent token.Sentence) (string, error)
	Sentence(ctx context.Context, id string) (token.Sentence, error)
	Corpus(ctx context.Context) (token.Corpus, error)
	Count(ctx context.Context) (int, error)
}

// IDs generates lexically sortable sentence ids.
type IDs struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewIDs creates an id generator
func NewIDs() *IDs {
	return &IDs{entropy: ulid.Monotonic(rand.Reader, 0)}
}

// Next returns a new id.
func (g *IDs) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Now(), g.entropy).String()
}
