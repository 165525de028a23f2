package stoplist

import (
	"regexp"
	"sort"
	"strings"
)

// Manager decides whether a context word carries too little information
// to anchor a pattern.
type Manager struct {
	stops  map[string]struct{}
	ignore *regexp.Regexp
}

// NewManager creates a stoplist from the given words. Words are stored
// lower-cased. ignore may be nil; when set it must match the whole word.
func NewManager(initialStops []string, ignore *regexp.Regexp) *Manager {
	stops := make(map[string]struct{}, len(initialStops))
	for _, s := range initialStops {
		stops[strings.ToLower(s)] = struct{}{}
	}
	return &Manager{stops: stops, ignore: ignore}
}

// CompileIgnore compiles pattern so that it only matches a complete word.
// An empty pattern yields a nil regexp.
func CompileIgnore(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	return regexp.Compile(`^(?:` + pattern + `)$`)
}

// IsStop reports whether word is a stopword or matches the ignore pattern.
func (m *Manager) IsStop(word string) bool {
	if _, ok := m.stops[strings.ToLower(word)]; ok {
		return true
	}
	return m.ignore != nil && m.ignore.MatchString(word)
}

// Add adds a word to the stoplist
func (m *Manager) Add(word string) {
	m.stops[strings.ToLower(word)] = struct{}{}
}

// All returns all stopwords, sorted
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Fillers is a set of words skipped during context scanning.
type Fillers map[string]struct{}

// NewFillers builds a lower-cased filler set.
func NewFillers(words []string) Fillers {
	f := make(Fillers, len(words))
	for _, w := range words {
		f[strings.ToLower(w)] = struct{}{}
	}
	return f
}

// Contains reports whether word, lower-cased, is a filler.
func (f Fillers) Contains(word string) bool {
	_, ok := f[strings.ToLower(word)]
	return ok
}
