package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/cognicore/surfpat/internal/corpusio"
	"github.com/cognicore/surfpat/pkg/surfpat"
	"github.com/cognicore/surfpat/pkg/surfpat/batch"
	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/pattern"
	"github.com/cognicore/surfpat/pkg/surfpat/store/sqlite"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

type report struct {
	Label     string        `json:"label"`
	Sentences int           `json:"sentences"`
	Tokens    []tokenReport `json:"tokens"`
}

type tokenReport struct {
	Sentence string        `json:"sentence"`
	Index    int           `json:"index"`
	Word     string        `json:"word"`
	Left     []patternJSON `json:"left,omitempty"`
	Right    []patternJSON `json:"right,omitempty"`
	Combined []patternJSON `json:"combined,omitempty"`
}

type patternJSON struct {
	Pattern string `json:"pattern"`
	Text    string `json:"text"`
}

func main() {
	var (
		cfgPath       = flag.String("config", "", "Pattern configuration file (required)")
		label         = flag.String("label", "", "Answer label to generate patterns for (required)")
		input         = flag.String("input", "", "Annotated JSONL corpus")
		dbPath        = flag.String("db", "", "Corpus database built by corpus-indexer")
		gazetteerPath = flag.String("gazetteer", "", "Gazetteer applied to JSONL input (optional)")
		output        = flag.String("output", "", "Report path (default stdout)")
	)
	flag.Parse()

	if *cfgPath == "" {
		log.Fatal("--config required")
	}
	if *label == "" {
		log.Fatal("--label required")
	}
	if (*input == "") == (*dbPath == "") {
		log.Fatal("exactly one of --input or --db required")
	}

	ctx := context.Background()

	loader := config.Loader{
		ConfigPath:    *cfgPath,
		GazetteerPath: *gazetteerPath,
	}
	components, err := loader.Load()
	if err != nil {
		log.Fatalf("load configs: %v", err)
	}

	corpus, err := loadCorpus(ctx, *input, *dbPath, components)
	if err != nil {
		log.Fatalf("load corpus: %v", err)
	}

	engine := surfpat.NewFromSettings(components.Settings, nil)
	res, err := engine.Patterns(ctx, *label, corpus)
	if err != nil {
		log.Fatalf("generate patterns: %v", err)
	}

	data, err := json.MarshalIndent(buildReport(*label, corpus, res), "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}

	if *output == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}
	log.Printf("Wrote patterns for %d sentences to %s", len(res), *output)
}

func loadCorpus(ctx context.Context, input, dbPath string, comp *config.Components) (token.Corpus, error) {
	if dbPath != "" {
		st, err := sqlite.OpenSQLite(ctx, dbPath)
		if err != nil {
			return nil, err
		}
		defer st.Close()
		return st.Corpus(ctx)
	}

	records, err := corpusio.LoadJSONL(input)
	if err != nil {
		return nil, err
	}
	corpus := corpusio.Corpus(records)
	for id, sent := range corpus {
		corpus[id] = comp.Gazetteer.Annotate(sent, comp.Settings.BackgroundSymbol)
	}
	return corpus, nil
}

func buildReport(label string, corpus token.Corpus, res batch.Result) report {
	r := report{Label: label, Sentences: len(res)}

	for _, id := range corpus.IDs() {
		tokens := res[id]
		indices := make([]int, 0, len(tokens))
		for i := range tokens {
			indices = append(indices, i)
		}
		sort.Ints(indices)

		for _, i := range indices {
			tr := tokens[i]
			if tr.Empty() {
				continue
			}
			r.Tokens = append(r.Tokens, tokenReport{
				Sentence: id,
				Index:    i,
				Word:     corpus[id][i].Word,
				Left:     toJSON(tr.Left),
				Right:    toJSON(tr.Right),
				Combined: toJSON(tr.Combined),
			})
		}
	}
	return r
}

func toJSON(s pattern.Set) []patternJSON {
	out := make([]patternJSON, 0, s.Len())
	for _, p := range s.Sorted() {
		out = append(out, patternJSON{Pattern: p.String(), Text: p.Simple()})
	}
	return out
}
