package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/surfpat/pkg/surfpat/internalerr"
	"github.com/cognicore/surfpat/pkg/surfpat/stoplist"
	"github.com/cognicore/surfpat/pkg/surfpat/token"
)

// Config is the on-disk pattern generation configuration.
type Config struct {
	// UsePOS4Pattern restricts the target term by its POS tag.
	// At least one of UsePOS4Pattern and AddPatWithoutPOS must be true.
	UsePOS4Pattern bool `yaml:"use_pos4_pattern"`
	// AddPatWithoutPOS also emits patterns with an unrestricted target.
	AddPatWithoutPOS bool `yaml:"add_pat_without_pos"`

	MinWindow4Pattern  int  `yaml:"min_window4_pattern"`
	MaxWindow4Pattern  int  `yaml:"max_window4_pattern"`
	UsePreviousContext bool `yaml:"use_previous_context"`
	UseNextContext     bool `yaml:"use_next_context"`

	// NumMinStopWordsToAdd is the count a stopword-only context must exceed
	// to be kept ("I am on X" is kept, "on X" is not).
	NumMinStopWordsToAdd int `yaml:"num_min_stop_words_to_add"`

	// AllowedTagsInitials is a comma separated list of POS tag prefixes.
	// "*" allows every tag.
	AllowedTagsInitials string `yaml:"allowed_tags_initials"`

	UseFillerWordsInPat      bool `yaml:"use_filler_words_in_pat"`
	UseStopWordsBeforeTerm   bool `yaml:"use_stop_words_before_term"`
	UseLemmaContextTokens    bool `yaml:"use_lemma_context_tokens"`
	MatchLowerCaseContext    bool `yaml:"match_lower_case_context"`
	UseContextNERRestriction bool `yaml:"use_context_ner_restriction"`
	UseTargetNERRestriction  bool `yaml:"use_target_ner_restriction"`
	NumWordsCompound         int  `yaml:"num_words_compound"`
	NumThreads               int  `yaml:"num_threads"`

	BackgroundSymbol string `yaml:"background_symbol"`

	// AnswerClasses maps a label name to the token class key holding it.
	AnswerClasses map[string]string `yaml:"answer_classes"`
	// GeneralizeClasses maps a class name to the token class key whose
	// value replaces the word in context templates.
	GeneralizeClasses map[string]string `yaml:"generalize_classes"`

	StopWords       []string `yaml:"stop_words"`
	StopWordsFile   string   `yaml:"stop_words_file"`
	FillerWords     []string `yaml:"filler_words"`
	IgnoreWordRegex string   `yaml:"ignore_word_regex"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		UsePOS4Pattern:       true,
		AddPatWithoutPOS:     true,
		MinWindow4Pattern:    2,
		MaxWindow4Pattern:    4,
		UsePreviousContext:   true,
		UseNextContext:       false,
		NumMinStopWordsToAdd: 3,
		AllowedTagsInitials:  "N,J",
		UseFillerWordsInPat:  true,
		NumWordsCompound:     2,
		NumThreads:           1,
		BackgroundSymbol:     token.DefaultBackground,
		FillerWords:          []string{"a", "an", "the", "`", "``", "'", "''"},
	}
}

// Load reads a YAML configuration on top of Default and validates it.
// A relative stop_words_file is resolved against the config file's directory.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.StopWordsFile != "" {
		stopPath := cfg.StopWordsFile
		if !filepath.IsAbs(stopPath) {
			stopPath = filepath.Join(filepath.Dir(path), stopPath)
		}
		sl, err := LoadStoplist(stopPath)
		if err != nil {
			return Config{}, fmt.Errorf("load stoplist: %w", err)
		}
		cfg.StopWords = append(cfg.StopWords, sl.Terms...)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Stoplist represents the stopword list configuration
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}

	return &sl, nil
}

// Validate checks option combinations that cannot produce patterns.
func (c Config) Validate() error {
	if !c.AddPatWithoutPOS && !c.UsePOS4Pattern {
		return fmt.Errorf("%w: add_pat_without_pos and use_pos4_pattern both cannot be false", internalerr.ErrInvalidConfig)
	}
	if c.MinWindow4Pattern < 0 {
		return fmt.Errorf("%w: min_window4_pattern must be >= 0, got %d", internalerr.ErrInvalidConfig, c.MinWindow4Pattern)
	}
	if c.MaxWindow4Pattern < 1 {
		return fmt.Errorf("%w: max_window4_pattern must be >= 1, got %d", internalerr.ErrInvalidConfig, c.MaxWindow4Pattern)
	}
	if c.NumThreads < 1 {
		return fmt.Errorf("%w: num_threads must be >= 1, got %d", internalerr.ErrInvalidConfig, c.NumThreads)
	}
	if c.NumWordsCompound < 1 {
		return fmt.Errorf("%w: num_words_compound must be >= 1, got %d", internalerr.ErrInvalidConfig, c.NumWordsCompound)
	}
	if len(c.AnswerClasses) == 0 {
		return fmt.Errorf("%w: at least one answer class is required", internalerr.ErrInvalidConfig)
	}
	if _, err := stoplist.CompileIgnore(c.IgnoreWordRegex); err != nil {
		return fmt.Errorf("%w: ignore_word_regex: %v", internalerr.ErrInvalidConfig, err)
	}
	return nil
}

// Class is a named class bound to a token class key.
type Class struct {
	Name string
	Key  string
}

// Settings is the compiled, read-only form of Config shared by every
// component and worker of a run.
type Settings struct {
	Config

	Stops             *stoplist.Manager
	Fillers           stoplist.Fillers
	AnswerClasses     []Class // sorted by name
	GeneralizeClasses []Class // sorted by name
	TagInitials       []string
	AllTags           bool
}

// Compile validates c and builds its runtime form.
func (c Config) Compile() (*Settings, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ignore, err := stoplist.CompileIgnore(c.IgnoreWordRegex)
	if err != nil {
		return nil, fmt.Errorf("%w: ignore_word_regex: %v", internalerr.ErrInvalidConfig, err)
	}
	if c.BackgroundSymbol == "" {
		c.BackgroundSymbol = token.DefaultBackground
	}

	s := &Settings{
		Config:            c,
		Stops:             stoplist.NewManager(c.StopWords, ignore),
		Fillers:           stoplist.NewFillers(c.FillerWords),
		AnswerClasses:     sortedClasses(c.AnswerClasses),
		GeneralizeClasses: sortedClasses(c.GeneralizeClasses),
	}

	for _, initial := range strings.Split(c.AllowedTagsInitials, ",") {
		s.TagInitials = append(s.TagInitials, strings.TrimSpace(initial))
	}
	s.AllTags = len(s.TagInitials) == 0 || s.TagInitials[0] == "*"

	return s, nil
}

// AnswerKey returns the class key configured for label.
func (s *Settings) AnswerKey(label string) (string, bool) {
	key, ok := s.Config.AnswerClasses[label]
	return key, ok
}

// TagAllowed reports whether a POS tag starts with one of the allowed initials.
func (s *Settings) TagAllowed(tag string) bool {
	if s.AllTags {
		return true
	}
	for _, initial := range s.TagInitials {
		if strings.HasPrefix(tag, initial) {
			return true
		}
	}
	return false
}

func sortedClasses(m map[string]string) []Class {
	classes := make([]Class, 0, len(m))
	for name, key := range m {
		classes = append(classes, Class{Name: name, Key: key})
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Name < classes[j].Name
	})
	return classes
}
