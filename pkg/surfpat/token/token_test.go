package token

import "testing"

func TestLookupAbsentVersusBackground(t *testing.T) {
	tok := Token{Word: "Paris", Classes: map[string]string{"city": DefaultBackground}}

	v, ok := tok.Lookup("city")
	if !ok || v != DefaultBackground {
		t.Errorf("Lookup(city) = %q, %v; want %q, true", v, ok, DefaultBackground)
	}

	if _, ok := tok.Lookup("person"); ok {
		t.Error("Lookup(person) should report absent")
	}

	var bare Token
	if _, ok := bare.Lookup("city"); ok {
		t.Error("token without classes should report absent")
	}
}

func TestWithDoesNotMutateOriginal(t *testing.T) {
	orig := Token{Word: "Paris", Classes: map[string]string{"city": "O"}}
	updated := orig.With("city", "CITY")

	if v, _ := orig.Lookup("city"); v != "O" {
		t.Errorf("original mutated: city = %q", v)
	}
	if v, _ := updated.Lookup("city"); v != "CITY" {
		t.Errorf("updated city = %q, want CITY", v)
	}
}

func TestCorpusIDsSorted(t *testing.T) {
	c := Corpus{"s3": nil, "s1": nil, "s2": nil}
	ids := c.IDs()
	want := []string{"s1", "s2", "s3"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestSentenceWords(t *testing.T) {
	s := Sentence{{Word: "I"}, {Word: "am"}}
	words := s.Words()
	if len(words) != 2 || words[0] != "I" || words[1] != "am" {
		t.Errorf("unexpected words: %v", words)
	}
}
