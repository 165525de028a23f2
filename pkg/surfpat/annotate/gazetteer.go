package annotate

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Gazetteer labels tokens of a sentence from per-class phrase lists.
// Phrases may span several tokens; the longest phrase wins.
type Gazetteer struct {
	classes map[string]*phraseIndex // class key → index
}

type phraseIndex struct {
	phrases map[string]string // lower-cased phrase → label
	maxLen  int
}

// File is the YAML layout of a gazetteer:
//
//	classes:
//	  city:
//	    CITY: [paris, new york]
type File struct {
	Classes map[string]map[string][]string `yaml:"classes"`
}

// New creates an empty gazetteer.
func New() *Gazetteer {
	return &Gazetteer{classes: make(map[string]*phraseIndex)}
}

// Load reads a gazetteer from a YAML file.
func Load(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	g := New()
	for key, labels := range f.Classes {
		for label, phrases := range labels {
			g.Add(key, label, phrases)
		}
	}
	return g, nil
}

// Add registers phrases for label under the class key.
func (g *Gazetteer) Add(key, label string, phrases []string) {
	idx, ok := g.classes[key]
	if !ok {
		idx = &phraseIndex{phrases: make(map[string]string), maxLen: 1}
		g.classes[key] = idx
	}
	for _, p := range phrases {
		fields := strings.Fields(strings.ToLower(p))
		if len(fields) == 0 {
			continue
		}
		idx.phrases[strings.Join(fields, " ")] = label
		if len(fields) > idx.maxLen {
			idx.maxLen = len(fields)
		}
	}
}

// Keys returns the number of class keys in the gazetteer.
func (g *Gazetteer) Keys() int {
	return len(g.classes)
}

// Annotate returns a copy of sent in which every class key of the gazetteer
// is set on every token: the matched label, or background when nothing
// matches. Values already present on a token are left alone.
func (g *Gazetteer) Annotate(sent token.Sentence, background string) token.Sentence {
	out := make(token.Sentence, len(sent))
	copy(out, sent)

	words := make([]string, len(sent))
	for i, tok := range sent {
		words[i] = strings.ToLower(tok.Word)
	}

	for key, idx := range g.classes {
		labels := idx.match(words)
		for i := range out {
			if _, ok := out[i].Lookup(key); ok {
				continue
			}
			label := labels[i]
			if label == "" {
				label = background
			}
			out[i] = out[i].With(key, label)
		}
	}
	return out
}

// match applies greedy longest-match over words.
func (p *phraseIndex) match(words []string) []string {
	labels := make([]string, len(words))
	i := 0
	for i < len(words) {
		maxPhrase := p.maxLen
		if remaining := len(words) - i; maxPhrase > remaining {
			maxPhrase = remaining
		}

		matchLen := 0
		for n := maxPhrase; n >= 1; n-- {
			if label, ok := p.phrases[strings.Join(words[i:i+n], " ")]; ok {
				for j := i; j < i+n; j++ {
					labels[j] = label
				}
				matchLen = n
				break
			}
		}

		if matchLen == 0 {
			i++
		} else {
			i += matchLen
		}
	}
	return labels
}
