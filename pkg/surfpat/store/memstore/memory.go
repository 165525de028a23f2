package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/store"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu    sync.RWMutex
	ids   *store.IDs
	sents map[string]token.Sentence
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		ids:   store.NewIDs(),
		sents: make(map[string]token.Sentence),
	}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// PutSentence inserts or replaces a sentence.
func (s *Store) PutSentence(ctx context.Context, id string, sent token.Sentence) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		id = s.ids.Next()
	}
	s.sents[id] = copySentence(sent)
	return id, nil
}

// Sentence returns a sentence by id.
func (s *Store) Sentence(ctx context.Context, id string) (token.Sentence, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sent, ok := s.sents[id]
	if !ok {
		return nil, fmt.Errorf("sentence %s: %w", id, internalerr.ErrNotFound)
	}
	return copySentence(sent), nil
}

// Corpus returns every stored sentence.
func (s *Store) Corpus(ctx context.Context) (token.Corpus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c := make(token.Corpus, len(s.sents))
	for id, sent := range s.sents {
		c[id] = copySentence(sent)
	}
	return c, nil
}

// Count returns the number of stored sentences.
func (s *Store) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sents), nil
}

func copySentence(sent token.Sentence) token.Sentence {
	out := make(token.Sentence, len(sent))
	for i, tok := range sent {
		out[i] = tok
		if tok.Classes != nil {
			out[i].Classes = make(map[string]string, len(tok.Classes))
			for k, v := range tok.Classes {
				out[i].Classes[k] = v
			}
		}
	}
	return out
}
