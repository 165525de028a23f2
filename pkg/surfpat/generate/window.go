package generate

import (
	"regexp"
	"strings"

	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// urlPrefix marks tokens that end a context scan.
const urlPrefix = "http"

// span is what one scan collected on one side of the target.
type span struct {
	tokens   []string // generalized tokens in reading order
	original []string // literal words or class names in reading order
	stops    int
	nonStops int
}

func (c span) size() int { return len(c.tokens) }

// informative reports whether the context carries a content word, or is a
// stopword run longer than threshold ("I am on X" but not "on X").
func (c span) informative(threshold int) bool {
	return c.nonStops > 0 || c.stops > threshold
}

func (c span) text() string {
	return strings.Join(c.original, " ")
}

// scan collects up to window counted tokens starting next to index i and
// moving by step (-1 for the left side, +1 for the right side). Filler
// words are skipped without being counted. A URL token discards the
// whole side.
func (g *Generator) scan(label string, sent token.Sentence, i, window, step int) (span, error) {
	var c span

	for j, n := i+step, 0; n < window && j >= 0 && j < len(sent); j += step {
		tok := sent[j]

		if g.s.UseFillerWordsInPat && g.s.Fillers.Contains(tok.Word) {
			continue
		}

		lbl, err := g.cls.Classify(tok, label)
		if err != nil {
			return span{}, err
		}

		switch {
		case !lbl.Background:
			c.tokens = append(c.tokens, "["+lbl.Generic+"]")
			c.original = append(c.original, lbl.Original)
			c.nonStops++
		case strings.HasPrefix(tok.Word, urlPrefix):
			return span{}, nil
		default:
			str := g.tokenString(tok)
			c.tokens = append(c.tokens, g.contextString(tok))
			c.original = append(c.original, str)
			if g.s.Stops.IsStop(str) {
				c.stops++
			} else {
				c.nonStops++
			}
		}
		n++
	}

	if step < 0 {
		reverse(c.tokens)
		reverse(c.original)
	}
	return c, nil
}

// tokenString is the word or lemma a background token contributes.
func (g *Generator) tokenString(tok token.Token) string {
	if g.s.UseLemmaContextTokens {
		return tok.Lemma
	}
	return tok.Word
}

// contextString renders a background token as a literal match,
// e.g. [{word:/on/}].
func (g *Generator) contextString(tok token.Token) string {
	field := "word"
	if g.s.UseLemmaContextTokens {
		field = "lemma"
	}
	str := g.tokenString(tok)
	if g.s.MatchLowerCaseContext {
		str = strings.ToLower(str)
	}
	return "[{" + field + ":/" + regexp.QuoteMeta(str) + "/}]"
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
