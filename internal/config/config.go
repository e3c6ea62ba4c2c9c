// Package config provides the encoding configuration: language selection
// and the three per-encoder sub-configurations.
//
// A configuration is created once per caller session, validated eagerly
// (unsupported languages fail here, not at encode time), and is read-only
// for its remaining lifetime. Concurrent encode calls share it freely.
package config

import (
	"fmt"

	"github.com/fyrsmithlabs/sempress/internal/rules"
	"github.com/fyrsmithlabs/sempress/internal/vocab"
)

// RecordsFormatToon selects TOON output for structured data instead of the
// default header/row grammar.
const RecordsFormatToon = "toon"

// EncodingConfiguration selects the language and per-encoder options.
type EncodingConfiguration struct {
	Language   string            `koanf:"language"`
	Prompt     PromptOptions     `koanf:"prompt"`
	Transcript TranscriptOptions `koanf:"transcript"`
	Records    RecordsOptions    `koanf:"records"`
	Tokens     TokenOptions      `koanf:"tokens"`

	// Vocabulary is an optional per-configuration extension overlay.
	// Extensions are merged into an immutable table at construction; shared
	// global state is never mutated.
	Vocabulary []vocab.Entry `koanf:"vocabulary"`

	// Rules is an optional pattern-rule overlay; new synonyms for existing
	// attribute categories are data, not code.
	Rules []rules.Rule `koanf:"rules"`
}

// PromptOptions configures the task/configuration prompt encoder.
type PromptOptions struct {
	// MinConfidence filters resolved intents below this confidence.
	MinConfidence float64 `koanf:"min_confidence"`
	// AnnotateFieldTypes adds field types to inlined output schemas.
	AnnotateFieldTypes bool `koanf:"annotate_field_types"`
	// AnnotateValueRanges adds enumerated value ranges to inlined schemas.
	AnnotateValueRanges bool `koanf:"annotate_value_ranges"`
	// KeepRuleText keeps configuration-mode rule content verbatim instead
	// of minimizing token-carried sentences away.
	KeepRuleText bool `koanf:"keep_rule_text"`
}

// TranscriptOptions configures the transcript encoder.
type TranscriptOptions struct {
	// IntermediateSentiment includes intermediate emotional states in the
	// sentiment trajectory, not just start and end.
	IntermediateSentiment bool `koanf:"intermediate_sentiment"`
	// MaxActions caps the number of ACTION tokens emitted.
	MaxActions int `koanf:"max_actions"`
}

// RecordsOptions configures the structured-data encoder.
type RecordsOptions struct {
	// Required fields always appear; a required field missing from a record
	// fails that record, not the batch.
	Required []string `koanf:"required"`
	// Excluded fields are dropped unless also required (required wins).
	Excluded []string `koanf:"excluded"`
	// Importance overrides the per-field importance score.
	Importance map[string]float64 `koanf:"importance"`
	// Threshold is the minimum importance for inclusion.
	Threshold float64 `koanf:"threshold"`
	// MaxFieldLength truncates long text values.
	MaxFieldLength int `koanf:"max_field_length"`
	// PreserveStructure inlines nested values with bracket/brace notation
	// instead of flattening them.
	PreserveStructure bool `koanf:"preserve_structure"`
	// Format selects an alternate output format ("toon"); empty means the
	// default header/row grammar.
	Format string `koanf:"format"`
}

// TokenOptions configures token-count estimation.
type TokenOptions struct {
	// CharsPerToken is the fixed estimation ratio.
	CharsPerToken float64 `koanf:"chars_per_token"`
	// Exact switches to the reference tokenizer instead of the ratio.
	Exact bool `koanf:"exact"`
	// Encoding names the reference tokenizer encoding.
	Encoding string `koanf:"encoding"`
}

// New returns a configuration with defaults applied.
func New() *EncodingConfiguration {
	cfg := &EncodingConfiguration{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills zero values with defaults.
func ApplyDefaults(cfg *EncodingConfiguration) {
	if cfg.Language == "" {
		cfg.Language = "en"
	}
	if cfg.Prompt.MinConfidence == 0 {
		cfg.Prompt.MinConfidence = 0.5
	}
	if cfg.Transcript.MaxActions == 0 {
		cfg.Transcript.MaxActions = 10
	}
	if cfg.Records.Threshold == 0 {
		cfg.Records.Threshold = 0.5
	}
	if cfg.Records.MaxFieldLength == 0 {
		cfg.Records.MaxFieldLength = 100
	}
	if cfg.Tokens.CharsPerToken == 0 {
		cfg.Tokens.CharsPerToken = 4.0
	}
}

// Validate rejects unusable configurations. Language support is checked
// here so unsupported languages fail fast at construction time.
func (c *EncodingConfiguration) Validate() error {
	supported := false
	for _, lang := range vocab.Supported() {
		if c.Language == lang {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("config: language %q not fully supported (have %v)", c.Language, vocab.Supported())
	}
	if c.Prompt.MinConfidence < 0 || c.Prompt.MinConfidence > 1 {
		return fmt.Errorf("config: prompt.min_confidence must be in [0,1], got %v", c.Prompt.MinConfidence)
	}
	if c.Records.Threshold < 0 || c.Records.Threshold > 1 {
		return fmt.Errorf("config: records.threshold must be in [0,1], got %v", c.Records.Threshold)
	}
	if c.Records.MaxFieldLength < 0 {
		return fmt.Errorf("config: records.max_field_length must be >= 0, got %d", c.Records.MaxFieldLength)
	}
	if c.Records.Format != "" && c.Records.Format != RecordsFormatToon {
		return fmt.Errorf("config: records.format must be empty or %q, got %q", RecordsFormatToon, c.Records.Format)
	}
	if c.Tokens.CharsPerToken < 0 {
		return fmt.Errorf("config: tokens.chars_per_token must be >= 0, got %v", c.Tokens.CharsPerToken)
	}
	if c.Transcript.MaxActions < 0 {
		return fmt.Errorf("config: transcript.max_actions must be >= 0, got %d", c.Transcript.MaxActions)
	}
	return nil
}
