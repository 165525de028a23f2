package batch

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/generate"
	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/pattern"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Result maps sentence id → token index → patterns.
type Result map[string]map[int]pattern.Triple

// Range is the half-open slice [From, To) of sorted sentence ids a worker owns.
type Range struct {
	From, To int
}

// Driver fans pattern generation for a corpus out over a fixed set of workers.
type Driver struct {
	s      *config.Settings
	gen    *generate.Generator
	logger *log.Logger
}

// New creates a driver. A nil logger uses log.Default().
func New(s *config.Settings, gen *generate.Generator, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.Default()
	}
	return &Driver{s: s, gen: gen, logger: logger}
}

// Partition splits n sentence ids over workers. The chunk size is n when
// there is a single worker and n/(workers-1) otherwise, so the last worker
// usually gets a short or empty range. Ids the chunks do not reach are
// given to the last worker.
func Partition(n, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	chunk := n
	if workers > 1 {
		chunk = n / (workers - 1)
	}

	ranges := make([]Range, workers)
	for i := range ranges {
		from := min(n, i*chunk)
		to := min(n, (i+1)*chunk)
		ranges[i] = Range{From: from, To: to}
	}
	ranges[workers-1].To = n
	return ranges
}

// Run generates patterns for every token of every sentence in corpus.
// It blocks until all workers are done; any worker error fails the run
// and no partial result is returned.
func (d *Driver) Run(ctx context.Context, label string, corpus token.Corpus) (Result, error) {
	if _, ok := d.s.AnswerKey(label); !ok {
		return nil, fmt.Errorf("%w: no answer class for label %q", internalerr.ErrInvalidConfig, label)
	}

	ids := corpus.IDs()
	d.logger.Printf("keyset size is %d", len(ids))

	ranges := Partition(len(ids), d.s.NumThreads)
	parts := make([]Result, len(ranges))

	g, ctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		d.logger.Printf("assigning from %d till %d", r.From, r.To)
		g.Go(func() error {
			part, err := d.work(ctx, label, corpus, ids[r.From:r.To])
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := make(Result, len(ids))
	for _, part := range parts {
		for id, tokens := range part {
			result[id] = tokens
		}
	}
	return result, nil
}

// work runs one worker over its ids and returns its local result.
func (d *Driver) work(ctx context.Context, label string, corpus token.Corpus, ids []string) (Result, error) {
	out := make(Result, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		p, err := d.gen.Sentence(label, corpus[id])
		if err != nil {
			return nil, fmt.Errorf("sentence %s: %w", id, err)
		}
		out[id] = p
	}
	return out, nil
}
