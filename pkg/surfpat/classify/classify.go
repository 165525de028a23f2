package classify

import (
	"fmt"
	"strings"

	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Label is the generalized view of one context token.
type Label struct {
	// Background is true when no answer class, generalization class or
	// (if enabled) NER tag applies to the token.
	Background bool
	// Generic is the placeholder, e.g. "{PERSON:PERSON} | {geo:CITY}".
	Generic string
	// Original names the classes that applied, e.g. "PERSON|geo".
	Original string
}

// Classifier maps tokens to class placeholders.
type Classifier struct {
	s *config.Settings
}

// New creates a classifier over compiled settings.
func New(s *config.Settings) *Classifier {
	return &Classifier{s: s}
}

// Classify labels tok for pattern generation around label. It fails with
// ErrMissingAnnotation when tok does not carry label's answer class key.
func (c *Classifier) Classify(tok token.Token, label string) (Label, error) {
	key, ok := c.s.AnswerKey(label)
	if !ok {
		return Label{}, fmt.Errorf("%w: no answer class for label %q", internalerr.ErrInvalidConfig, label)
	}
	if _, ok := tok.Lookup(key); !ok {
		return Label{}, fmt.Errorf("%w: class %q for token %q is not set", internalerr.ErrMissingAnnotation, key, tok.Word)
	}

	var generic, original []string
	bg := c.s.BackgroundSymbol

	for _, cl := range c.s.AnswerClasses {
		if v, ok := tok.Lookup(cl.Key); ok && v != bg {
			generic = append(generic, "{"+cl.Name+":"+cl.Name+"}")
			original = append(original, cl.Name)
		}
	}

	for _, cl := range c.s.GeneralizeClasses {
		if v, ok := tok.Lookup(cl.Key); ok && v != bg {
			generic = append(generic, "{"+cl.Name+":"+v+"}")
			original = append(original, cl.Name)
		}
	}

	if c.s.UseContextNERRestriction && tok.NER != "" && tok.NER != token.DefaultBackground {
		generic = append(generic, "{ner:"+tok.NER+"}")
		original = append(original, tok.NER)
	}

	return Label{
		Background: len(generic) == 0,
		Generic:    strings.Join(generic, " | "),
		Original:   strings.Join(original, "|"),
	}, nil
}
