package annotate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

func sentence(words ...string) token.Sentence {
	s := make(token.Sentence, len(words))
	for i, w := range words {
		s[i] = token.Token{Word: w}
	}
	return s
}

func TestAnnotateSingleAndMultiToken(t *testing.T) {
	g := New()
	g.Add("city", "CITY", []string{"Paris", "New York"})

	got := g.Annotate(sentence("I", "flew", "from", "new", "York", "to", "paris"), "O")

	want := []string{"O", "O", "O", "CITY", "CITY", "O", "CITY"}
	for i, w := range want {
		v, ok := got[i].Lookup("city")
		if !ok {
			t.Fatalf("token %d: city not set", i)
		}
		if v != w {
			t.Errorf("token %d (%s): city = %q, want %q", i, got[i].Word, v, w)
		}
	}
}

func TestAnnotateLongestMatchWins(t *testing.T) {
	g := New()
	g.Add("org", "PLACE", []string{"york"})
	g.Add("org", "UNIV", []string{"york university"})

	got := g.Annotate(sentence("York", "University", "York"), "O")

	want := []string{"UNIV", "UNIV", "PLACE"}
	for i, w := range want {
		if v, _ := got[i].Lookup("org"); v != w {
			t.Errorf("token %d: org = %q, want %q", i, v, w)
		}
	}
}

func TestAnnotateKeepsExistingValues(t *testing.T) {
	g := New()
	g.Add("city", "CITY", []string{"paris"})

	sent := token.Sentence{{Word: "Paris", Classes: map[string]string{"city": "O"}}}
	got := g.Annotate(sent, "O")

	if v, _ := got[0].Lookup("city"); v != "O" {
		t.Errorf("existing value overwritten: %q", v)
	}
}

func TestAnnotateDoesNotMutateInput(t *testing.T) {
	g := New()
	g.Add("city", "CITY", []string{"paris"})

	sent := sentence("paris")
	g.Annotate(sent, "O")

	if _, ok := sent[0].Lookup("city"); ok {
		t.Error("input sentence was mutated")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.yaml")
	content := `classes:
  city:
    CITY: [paris, london]
  person:
    PERSON: [ada lovelace]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.Keys() != 2 {
		t.Errorf("expected 2 class keys, got %d", g.Keys())
	}

	got := g.Annotate(sentence("Ada", "Lovelace", "visited", "London"), "O")
	if v, _ := got[1].Lookup("person"); v != "PERSON" {
		t.Errorf("person on Lovelace = %q", v)
	}
	if v, _ := got[3].Lookup("city"); v != "CITY" {
		t.Errorf("city on London = %q", v)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/gazetteer.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
