package classify

import (
	"errors"
	"testing"

	"github.com/cognicore/surfpat/pkg/surfpat/config"
	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

func newClassifier(t *testing.T, modify func(*config.Config)) *Classifier {
	t.Helper()
	cfg := config.Default()
	cfg.AnswerClasses = map[string]string{"PERSON": "person", "ORG": "org"}
	cfg.GeneralizeClasses = map[string]string{"geo": "geo_key"}
	if modify != nil {
		modify(&cfg)
	}
	s, err := cfg.Compile()
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return New(s)
}

func tok(word string, classes map[string]string) token.Token {
	return token.Token{Word: word, Lemma: word, Tag: "NN", NER: "O", Classes: classes}
}

func TestClassifyBackground(t *testing.T) {
	c := newClassifier(t, nil)

	l, err := c.Classify(tok("on", map[string]string{"person": "O", "org": "O", "geo_key": "O"}), "PERSON")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !l.Background {
		t.Error("expected background token")
	}
	if l.Generic != "" || l.Original != "" {
		t.Errorf("background token produced placeholder %q / %q", l.Generic, l.Original)
	}
}

func TestClassifyAbsentOtherClassesAreBackground(t *testing.T) {
	c := newClassifier(t, nil)

	l, err := c.Classify(tok("on", map[string]string{"person": "O"}), "PERSON")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !l.Background {
		t.Error("absent non-requested classes should count as background")
	}
}

func TestClassifyOrdering(t *testing.T) {
	c := newClassifier(t, func(cfg *config.Config) { cfg.UseContextNERRestriction = true })

	in := token.Token{
		Word: "Acme",
		NER:  "ORGANIZATION",
		Classes: map[string]string{
			"person":  "PERSON",
			"org":     "ORG",
			"geo_key": "CITY",
		},
	}

	l, err := c.Classify(in, "PERSON")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Background {
		t.Fatal("expected non-background token")
	}

	wantGeneric := "{ORG:ORG} | {PERSON:PERSON} | {geo:CITY} | {ner:ORGANIZATION}"
	if l.Generic != wantGeneric {
		t.Errorf("Generic = %q, want %q", l.Generic, wantGeneric)
	}
	wantOriginal := "ORG|PERSON|geo|ORGANIZATION"
	if l.Original != wantOriginal {
		t.Errorf("Original = %q, want %q", l.Original, wantOriginal)
	}
}

func TestClassifyGeneralizationUsesValue(t *testing.T) {
	c := newClassifier(t, nil)

	l, err := c.Classify(tok("Paris", map[string]string{"person": "O", "geo_key": "CITY"}), "PERSON")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if l.Generic != "{geo:CITY}" || l.Original != "geo" {
		t.Errorf("got %q / %q", l.Generic, l.Original)
	}
}

func TestClassifyNERIgnoredUnlessEnabled(t *testing.T) {
	c := newClassifier(t, nil)

	in := tok("Paris", map[string]string{"person": "O"})
	in.NER = "LOCATION"
	l, err := c.Classify(in, "PERSON")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if !l.Background {
		t.Error("NER tag should not count without use_context_ner_restriction")
	}
}

func TestClassifyMissingAnnotation(t *testing.T) {
	c := newClassifier(t, nil)

	_, err := c.Classify(tok("on", map[string]string{"org": "O"}), "PERSON")
	if !errors.Is(err, internalerr.ErrMissingAnnotation) {
		t.Errorf("expected ErrMissingAnnotation, got %v", err)
	}
}

func TestClassifyUnknownLabel(t *testing.T) {
	c := newClassifier(t, nil)

	_, err := c.Classify(tok("on", map[string]string{"person": "O"}), "DRUG")
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
