package corpusio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Record is one JSONL line: an annotated sentence.
type Record struct {
	ID     string      `json:"id"`
	Tokens []TokenJSON `json:"tokens"`
}

// TokenJSON is the wire form of a token.
type TokenJSON struct {
	Word    string            `json:"word"`
	Lemma   string            `json:"lemma"`
	Tag     string            `json:"tag"`
	NER     string            `json:"ner"`
	Classes map[string]string `json:"classes,omitempty"`
}

// Sentence converts the record to a token sentence. A missing lemma
// falls back to the word.
func (r Record) Sentence() token.Sentence {
	sent := make(token.Sentence, len(r.Tokens))
	for i, t := range r.Tokens {
		lemma := t.Lemma
		if lemma == "" {
			lemma = t.Word
		}
		sent[i] = token.Token{
			Word:    t.Word,
			Lemma:   lemma,
			Tag:     t.Tag,
			NER:     t.NER,
			Classes: t.Classes,
		}
	}
	return sent
}

// LoadJSONL loads records from a JSONL file with proper error handling
func LoadJSONL(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	defer f.Close()

	var records []Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", line, path, err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("no valid sentences found in %s", path)
	}

	return records, nil
}

// Corpus builds a corpus from records. Records without an id are keyed
// by their 1-based position.
func Corpus(records []Record) token.Corpus {
	c := make(token.Corpus, len(records))
	for i, rec := range records {
		id := rec.ID
		if id == "" {
			id = fmt.Sprintf("%d", i+1)
		}
		c[id] = rec.Sentence()
	}
	return c
}
