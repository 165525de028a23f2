package main

import (
	"context"
	"flag"
	"log"

	"github.com/cognicore/surfpat/internal/corpusio"
	"github.com/cognicore/surfpat/pkg/surfpat/annotate"
	"github.com/cognicore/surfpat/pkg/surfpat/store/sqlite"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

func main() {
	var (
		dbPath        = flag.String("db", "", "Database path (required)")
		dataPath      = flag.String("data", "", "Input JSONL file (required)")
		gazetteerPath = flag.String("gazetteer", "", "Gazetteer file used to label tokens (optional)")
		background    = flag.String("background", token.DefaultBackground, "Label for tokens no gazetteer phrase matches")
	)
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("--db required")
	}
	if *dataPath == "" {
		log.Fatal("--data required")
	}

	ctx := context.Background()

	gaz := annotate.New()
	if *gazetteerPath != "" {
		var err error
		gaz, err = annotate.Load(*gazetteerPath)
		if err != nil {
			log.Fatal("Failed to load gazetteer:", err)
		}
	}

	st, err := sqlite.OpenSQLite(ctx, *dbPath)
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	defer st.Close()

	records, err := corpusio.LoadJSONL(*dataPath)
	if err != nil {
		log.Fatal("Failed to load sentences:", err)
	}

	log.Printf("Loaded %d sentences from %s", len(records), *dataPath)

	for i, rec := range records {
		sent := gaz.Annotate(rec.Sentence(), *background)
		if _, err := st.PutSentence(ctx, rec.ID, sent); err != nil {
			log.Printf("Failed to store sentence %d (%s): %v", i, rec.ID, err)
			continue
		}

		if (i+1)%1000 == 0 {
			log.Printf("Stored %d/%d sentences", i+1, len(records))
		}
	}

	n, err := st.Count(ctx)
	if err != nil {
		log.Fatal("Failed to count sentences:", err)
	}
	log.Printf("Indexing complete: %d sentences stored", n)
}
