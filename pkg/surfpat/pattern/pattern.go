package pattern

import (
	"sort"
	"strconv"
	"strings"
)

// Token describes what the target position of a pattern may match.
type Token struct {
	Tag              string // first two characters of the POS tag
	UseTag           bool
	UseCompound      bool
	NumWordsCompound int
	NER              string
	UseNER           bool
}

// NewToken builds a target token. The tag is cut to its first two characters.
func NewToken(tag string, useTag bool, numWordsCompound int, ner string, useNER bool) Token {
	if len(tag) > 2 {
		tag = tag[:2]
	}
	return Token{
		Tag:              tag,
		UseTag:           useTag,
		UseCompound:      numWordsCompound > 1,
		NumWordsCompound: numWordsCompound,
		NER:              ner,
		UseNER:           useNER,
	}
}

// TokenRegex renders the target as a token-sequence expression, e.g.
// "(?$term [{tag:/NN.*/}]{1,2})".
func (t Token) TokenRegex() string {
	var restrictions []string
	if t.UseTag {
		restrictions = append(restrictions, "{tag:/"+t.Tag+".*/}")
	}
	if t.UseNER {
		restrictions = append(restrictions, "{ner:"+t.NER+"}")
	}

	var b strings.Builder
	b.WriteString("(?$term [")
	b.WriteString(strings.Join(restrictions, " & "))
	b.WriteString("]")
	if t.UseCompound {
		b.WriteString("{1," + strconv.Itoa(t.NumWordsCompound) + "}")
	}
	b.WriteString(")")
	return b.String()
}

// String renders the target in short form, e.g. "X:NN{2}".
func (t Token) String() string {
	s := "X"
	if t.UseTag {
		s += ":" + t.Tag
	}
	if t.UseNER {
		s += ":" + t.NER
	}
	if t.UseCompound {
		s += "{" + strconv.Itoa(t.NumWordsCompound) + "}"
	}
	return s
}

// Surface is a surface pattern: context templates around a target token,
// plus the literal text the templates were generalized from.
type Surface struct {
	Prev         string
	Token        Token
	Next         string
	OriginalPrev string
	OriginalNext string
}

// String renders the full pattern. Two patterns are equal when their
// String values are equal.
func (p Surface) String() string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(p.Prev); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, p.Token.TokenRegex())
	if s := strings.TrimSpace(p.Next); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Simple renders the human-readable form, e.g. "I am on <X:NN>".
func (p Surface) Simple() string {
	parts := make([]string, 0, 3)
	if s := strings.TrimSpace(p.OriginalPrev); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, "<"+p.Token.String()+">")
	if s := strings.TrimSpace(p.OriginalNext); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Set is a set of patterns keyed by their rendered form.
type Set map[string]Surface

// Add inserts p unless an equal pattern is already present.
func (s Set) Add(p Surface) {
	key := p.String()
	if _, ok := s[key]; !ok {
		s[key] = p
	}
}

// Has reports whether an equal pattern is in the set.
func (s Set) Has(p Surface) bool {
	_, ok := s[p.String()]
	return ok
}

// Len returns the number of patterns.
func (s Set) Len() int { return len(s) }

// Sorted returns the patterns ordered by rendered form.
func (s Set) Sorted() []Surface {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Surface, len(keys))
	for i, k := range keys {
		out[i] = s[k]
	}
	return out
}

// Triple holds the patterns found around one token.
type Triple struct {
	Left     Set // left context only
	Right    Set // right context only
	Combined Set // both contexts from the same window
}

// NewTriple returns a triple of empty sets.
func NewTriple() Triple {
	return Triple{Left: Set{}, Right: Set{}, Combined: Set{}}
}

// Empty reports whether no pattern was found.
func (t Triple) Empty() bool {
	return t.Left.Len() == 0 && t.Right.Len() == 0 && t.Combined.Len() == 0
}
