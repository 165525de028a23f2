package surfpat

import (
	"context"
	"log"

	"github.com/cognicore/surfpat/pkg/surfpat/batch"
	"github.com/cognicore/surfpat/pkg/surfpat/classify"
	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/generate"
	"github.com/cognicore/surfpat/pkg/surfpat/pattern"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Engine is the pattern generation facade
type Engine struct {
	settings *config.Settings
	gen      *generate.Generator
	driver   *batch.Driver
}

// Options configures an Engine
type Options struct {
	Config config.Config
	Logger *log.Logger
}

// New validates the configuration and builds an Engine. Configuration
// errors are returned here, before any sentence is processed.
func New(opts Options) (*Engine, error) {
	s, err := opts.Config.Compile()
	if err != nil {
		return nil, err
	}
	return NewFromSettings(s, opts.Logger), nil
}

// NewFromSettings builds an Engine over already compiled settings.
func NewFromSettings(s *config.Settings, logger *log.Logger) *Engine {
	gen := generate.New(s, classify.New(s))
	return &Engine{
		settings: s,
		gen:      gen,
		driver:   batch.New(s, gen, logger),
	}
}

// Settings returns the compiled configuration.
func (e *Engine) Settings() *config.Settings {
	return e.settings
}

// Patterns generates patterns for every token of every sentence in corpus.
func (e *Engine) Patterns(ctx context.Context, label string, corpus token.Corpus) (batch.Result, error) {
	return e.driver.Run(ctx, label, corpus)
}

// Context generates patterns around a single token.
func (e *Engine) Context(label string, sent token.Sentence, i int) (pattern.Triple, error) {
	return e.gen.Context(label, sent, i)
}
