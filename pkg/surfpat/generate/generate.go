package generate

import (
	"strings"

	"github.com/cognicore/surfpat/pkg/surfpat/classify"
	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/pattern"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

const (
	fillerGap   = " $FILLER{0,2} "
	stopwordGap = " $STOPWORD{0,2} "
)

// Generator builds surface patterns around tokens of a sentence.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	s   *config.Settings
	cls *classify.Classifier
}

// New creates a generator.
func New(s *config.Settings, cls *classify.Classifier) *Generator {
	return &Generator{s: s, cls: cls}
}

// Sentence generates patterns for every token of sent. Every index gets an
// entry; stopwords and tokens whose tag is not allowed get empty sets.
func (g *Generator) Sentence(label string, sent token.Sentence) (map[int]pattern.Triple, error) {
	out := make(map[int]pattern.Triple, len(sent))
	for i, tok := range sent {
		out[i] = pattern.NewTriple()

		// no patterns around stop words
		if g.s.Stops.IsStop(tok.Word) {
			continue
		}
		if !g.s.TagAllowed(tok.Tag) {
			continue
		}

		tr, err := g.Context(label, sent, i)
		if err != nil {
			return nil, err
		}
		out[i] = tr
	}
	return out, nil
}

// Context generates the left-only, right-only and combined patterns
// around sent[i] for every window size up to max_window4_pattern.
func (g *Generator) Context(label string, sent token.Sentence, i int) (pattern.Triple, error) {
	tr := pattern.NewTriple()
	targets := g.targets(sent[i])

	fw := " "
	if g.s.UseFillerWordsInPat {
		fw = fillerGap
	}
	sw := ""
	if g.s.UseStopWordsBeforeTerm {
		sw = stopwordGap
	}

	for window := 1; window <= g.s.MaxWindow4Pattern; window++ {
		var prev, next span
		var err error

		if g.s.UsePreviousContext {
			if prev, err = g.scan(label, sent, i, window, -1); err != nil {
				return pattern.Triple{}, err
			}
		}
		if g.s.UseNextContext {
			if next, err = g.scan(label, sent, i, window, 1); err != nil {
				return pattern.Triple{}, err
			}
		}

		var prevContext, nextContext string
		usePrev, useNext := false, false

		if prev.size() >= g.s.MinWindow4Pattern && prev.informative(g.s.NumMinStopWordsToAdd) {
			prevContext = strings.Join(prev.tokens, fw)
			// Only the left template is checked for non-ASCII text.
			if isASCII(prevContext) {
				for _, t := range targets {
					tr.Left.Add(pattern.Surface{
						Prev:         prevContext + fw + sw,
						Token:        t,
						OriginalPrev: prev.text(),
					})
				}
				usePrev = true
			}
		}

		if next.size() > 0 && next.informative(g.s.NumMinStopWordsToAdd) {
			nextContext = strings.Join(next.tokens, fw)
			if next.size() >= g.s.MinWindow4Pattern {
				for _, t := range targets {
					tr.Right.Add(pattern.Surface{
						Token:        t,
						Next:         sw + fw + nextContext,
						OriginalNext: next.text(),
					})
				}
			}
			useNext = true
		}

		if usePrev && useNext && prev.size()+next.size() >= g.s.MinWindow4Pattern {
			for _, t := range targets {
				tr.Combined.Add(pattern.Surface{
					Prev:         prevContext + fw + sw,
					Token:        t,
					Next:         sw + fw + nextContext,
					OriginalPrev: prev.text(),
					OriginalNext: next.text(),
				})
			}
		}
	}

	return tr, nil
}

// targets returns the target tokens to emit: without POS restriction,
// with POS restriction, or both.
func (g *Generator) targets(tok token.Token) []pattern.Token {
	var out []pattern.Token
	if g.s.AddPatWithoutPOS {
		out = append(out, pattern.NewToken(tok.Tag, false, g.s.NumWordsCompound, tok.NER, g.s.UseTargetNERRestriction))
	}
	if g.s.UsePOS4Pattern {
		out = append(out, pattern.NewToken(tok.Tag, true, g.s.NumWordsCompound, tok.NER, g.s.UseTargetNERRestriction))
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
