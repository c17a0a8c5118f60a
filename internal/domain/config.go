package domain

import "fmt"

// ValidCheckCodes enumerates every issue code the engines can emit. Used to
// validate config references before they are applied.
var ValidCheckCodes = []string{
	// compilation
	"compile-error",
	// naming
	"name-parts", "name-prefix",
	// metadata
	"meta-description", "meta-author", "meta-date", "meta-reference",
	"desc-detects", "desc-short", "desc-long",
	// string definitions
	"str-short", "str-base64-short", "hex-few-bytes",
	"str-common", "hex-leading-wildcard",
	"re-unescaped-brace", "re-unbounded",
	"mod-nocase-long", "mod-xor-unbounded",
	// condition
	"cond-deprecated", "cond-negative-index",
	// atom quality
	"atom-weak", "atom-fair", "atom-short", "atom-base64-short",
	"atom-wildcard-density", "atom-leading-wildcards", "atom-modifier-combo",
}

// Config holds project-level configuration loaded from .yaraqc.yaml.
// Zero values change nothing; list fields replace the built-in defaults
// entirely when set.
type Config struct {
	Disable            []string          `yaml:"disable"             json:"disable,omitempty"`
	Severities         map[string]string `yaml:"severities"          json:"severities,omitempty"`
	CategoryPrefixes   []string          `yaml:"category_prefixes"   json:"category_prefixes,omitempty"`
	FalsePositives     []string          `yaml:"false_positives"     json:"false_positives,omitempty"`
	DeprecatedFeatures map[string]string `yaml:"deprecated_features" json:"deprecated_features,omitempty"`
	ExcludePaths       []string          `yaml:"exclude_paths"       json:"exclude_paths,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() Config {
	return Config{}
}

// Validate catches typos in user-supplied config before it is applied.
func (c Config) Validate() error {
	valid := make(map[string]bool, len(ValidCheckCodes))
	for _, code := range ValidCheckCodes {
		valid[code] = true
	}

	for _, code := range c.Disable {
		if !valid[code] {
			return fmt.Errorf("unknown check code in disable: %q", code)
		}
	}
	for code, sev := range c.Severities {
		if !valid[code] {
			return fmt.Errorf("unknown check code in severities: %q", code)
		}
		switch sev {
		case SeverityError, SeverityWarning, SeverityInfo:
		default:
			return fmt.Errorf("invalid severity %q for %s (valid: error, warning, info)", sev, code)
		}
	}
	return nil
}

// Disabled returns the disabled check codes as a set.
func (c Config) Disabled() map[string]bool {
	out := make(map[string]bool, len(c.Disable))
	for _, code := range c.Disable {
		out[code] = true
	}
	return out
}

// Resolve returns the effective severity for a check code, honoring user
// overrides, and whether the check is enabled at all.
func (c Config) Resolve(code, defaultSeverity string) (string, bool) {
	for _, d := range c.Disable {
		if d == code {
			return "", false
		}
	}
	if sev, ok := c.Severities[code]; ok {
		return sev, true
	}
	return defaultSeverity, true
}

// Vocabulary is the immutable word-list data the lint engine is built
// with. Engines receive a Vocabulary at construction so test suites can
// substitute smaller fixtures.
type Vocabulary struct {
	// CategoryPrefixes is the closed taxonomy of first name segments.
	CategoryPrefixes []string
	// FalsePositives are literal values common enough in benign files
	// that matching on one alone risks misclassification.
	FalsePositives []string
	// DeprecatedFeatures maps a deprecated condition feature to its
	// replacement.
	DeprecatedFeatures map[string]string
}

// DefaultVocabulary returns the built-in word lists.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		CategoryPrefixes: []string{
			"APT", "BACKDOOR", "CRIME", "EXPL", "GEN", "HKTL", "LOADER",
			"LOG", "MAL", "PHISH", "PUA", "RANSOM", "RAT", "SUSP",
			"TROJAN", "VULN", "WEBSHELL",
		},
		FalsePositives: []string{
			"Mozilla/5.0",
			"Microsoft Corporation",
			"This program cannot be run in DOS mode",
			"kernel32.dll",
			"user32.dll",
			"advapi32.dll",
			"GetProcAddress",
			"LoadLibrary",
			"VirtualAlloc",
			"Program Files",
			"Windows NT",
			"cmd.exe",
			"explorer.exe",
			"svchost.exe",
		},
		DeprecatedFeatures: map[string]string{
			"entrypoint": "pe.entry_point",
		},
	}
}

// Vocabulary builds the effective word lists: user-supplied lists replace
// the defaults entirely, matching how explicit config wins elsewhere.
func (c Config) Vocabulary() Vocabulary {
	v := DefaultVocabulary()
	if len(c.CategoryPrefixes) > 0 {
		v.CategoryPrefixes = c.CategoryPrefixes
	}
	if len(c.FalsePositives) > 0 {
		v.FalsePositives = c.FalsePositives
	}
	if len(c.DeprecatedFeatures) > 0 {
		v.DeprecatedFeatures = c.DeprecatedFeatures
	}
	return v
}
