package stoplist

import (
	"testing"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"The", "a", "and"}, nil)

	if !mgr.IsStop("the") {
		t.Error("'the' should be a stopword")
	}
	if !mgr.IsStop("THE") {
		t.Error("stopword lookup should be case-insensitive")
	}
	if mgr.IsStop("hello") {
		t.Error("'hello' should not be a stopword")
	}
}

func TestManagerIgnorePattern(t *testing.T) {
	re, err := CompileIgnore(`[0-9]+|[.,;:!?]`)
	if err != nil {
		t.Fatalf("CompileIgnore: %v", err)
	}
	mgr := NewManager(nil, re)

	tests := []struct {
		word string
		want bool
	}{
		{"2014", true},
		{",", true},
		{"a2014", false}, // must match the whole word
		{"2014b", false},
		{"word", false},
	}
	for _, tt := range tests {
		if got := mgr.IsStop(tt.word); got != tt.want {
			t.Errorf("IsStop(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestCompileIgnoreEmpty(t *testing.T) {
	re, err := CompileIgnore("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if re != nil {
		t.Error("empty pattern should compile to nil")
	}
	if NewManager(nil, re).IsStop("") {
		t.Error("empty manager should not flag anything")
	}
}

func TestCompileIgnoreInvalid(t *testing.T) {
	if _, err := CompileIgnore("(["); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestManagerAddAll(t *testing.T) {
	mgr := NewManager([]string{"the"}, nil)
	mgr.Add("Of")

	if !mgr.IsStop("of") {
		t.Error("'of' should be stopword after adding")
	}

	all := mgr.All()
	if len(all) != 2 || all[0] != "of" || all[1] != "the" {
		t.Errorf("expected sorted [of the], got %v", all)
	}
}

func TestFillers(t *testing.T) {
	f := NewFillers([]string{"a", "An", "the"})
	if !f.Contains("AN") {
		t.Error("'AN' should be a filler")
	}
	if f.Contains("on") {
		t.Error("'on' should not be a filler")
	}
}
