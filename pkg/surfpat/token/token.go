package token

import "sort"

// DefaultBackground is the label carried by tokens with no assigned class.
const DefaultBackground = "O"

// Token is one annotated word of a sentence.
type Token struct {
	Word  string
	Lemma string
	Tag   string // part-of-speech tag
	NER   string // named-entity tag

	// Classes maps a class key to the label assigned to this token.
	// A key that is not present is absent, which is different from
	// being present with the background label.
	Classes map[string]string
}

// Lookup returns the label stored under key and whether it is present.
func (t Token) Lookup(key string) (string, bool) {
	if t.Classes == nil {
		return "", false
	}
	v, ok := t.Classes[key]
	return v, ok
}

// With returns a copy of the token with key set to value.
func (t Token) With(key, value string) Token {
	classes := make(map[string]string, len(t.Classes)+1)
	for k, v := range t.Classes {
		classes[k] = v
	}
	classes[key] = value
	t.Classes = classes
	return t
}

// Sentence is an ordered token sequence.
type Sentence []Token

// Words returns the word forms of the sentence.
func (s Sentence) Words() []string {
	words := make([]string, len(s))
	for i, tok := range s {
		words[i] = tok.Word
	}
	return words
}

// Corpus maps sentence ids to sentences.
type Corpus map[string]Sentence

// IDs returns the sentence ids in sorted order.
func (c Corpus) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
