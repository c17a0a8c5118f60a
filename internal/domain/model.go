package domain

import "time"

// Severity levels for issues, ordered from most to least serious.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// CompilationScope is the issue scope used for problems reported by the
// external rule compiler rather than by a specific rule.
const CompilationScope = "(compilation)"

// Issue represents a single problem found during analysis. Issues are
// immutable once created.
type Issue struct {
	Rule       string `json:"rule"`
	Severity   string `json:"severity"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Line       int    `json:"line,omitempty"`
}

// StringKind classifies a string definition by its literal form.
type StringKind string

const (
	KindText  StringKind = "text"
	KindHex   StringKind = "hex"
	KindRegex StringKind = "regex"
)

// StringDefinition is one pattern definition from a rule's strings section.
// Modifiers keep their source order.
type StringDefinition struct {
	ID        string     `json:"id"`
	Kind      StringKind `json:"kind"`
	Value     string     `json:"value"`
	Modifiers []string   `json:"modifiers,omitempty"`
	Line      int        `json:"line,omitempty"`
}

// HasModifier reports whether the definition carries the named modifier.
// Parameterized modifiers like xor(0x01-0xff) match on their base name.
func (d StringDefinition) HasModifier(name string) bool {
	for _, m := range d.Modifiers {
		if m == name {
			return true
		}
		if len(m) > len(name) && m[:len(name)] == name && m[len(name)] == '(' {
			return true
		}
	}
	return false
}

// Rule is a parsed rule: its name, raw body and the three structural
// sections recovered from it. Absent sections are zero values.
type Rule struct {
	Name      string             `json:"name"`
	Line      int                `json:"line,omitempty"`
	Raw       string             `json:"-"`
	Meta      map[string]string  `json:"meta,omitempty"`
	Strings   []StringDefinition `json:"strings,omitempty"`
	Condition string             `json:"condition,omitempty"`
}

// DecodedPattern is the concrete form of a hex pattern: literal bytes plus
// the offsets whose value is a wildcard placeholder. Placeholder positions
// hold 0x00, which is not meaningful there.
type DecodedPattern struct {
	Bytes     []byte
	Wildcards map[int]bool
}

// ConcreteBytes returns the number of non-wildcard bytes.
func (p DecodedPattern) ConcreteBytes() int {
	return len(p.Bytes) - len(p.Wildcards)
}

// WildcardDensity returns the fraction of wildcard positions, 0 for an
// empty pattern.
func (p DecodedPattern) WildcardDensity() float64 {
	if len(p.Bytes) == 0 {
		return 0
	}
	return float64(len(p.Wildcards)) / float64(len(p.Bytes))
}

// LeadingWildcards counts wildcard positions at the start of the pattern.
func (p DecodedPattern) LeadingWildcards() int {
	n := 0
	for p.Wildcards[n] {
		n++
	}
	return n
}

// AnalysisResult holds everything produced for one rule file. ParseError is
// set when the file could not be read or decoded; in that case Issues is
// empty and the file was skipped.
type AnalysisResult struct {
	FilePath   string  `json:"file_path"`
	ParseError string  `json:"parse_error,omitempty"`
	Issues     []Issue `json:"issues"`
}

// RunReport aggregates the results of one analysis run across files.
type RunReport struct {
	Results    []AnalysisResult `json:"results"`
	Timestamp  time.Time        `json:"timestamp"`
	CommitHash string           `json:"commit_hash,omitempty"`
	Errors     int              `json:"errors"`
	Warnings   int              `json:"warnings"`
	Infos      int              `json:"infos"`
}

// Tally recomputes the severity counters from the per-file results.
func (r *RunReport) Tally() {
	r.Errors, r.Warnings, r.Infos = 0, 0, 0
	for _, res := range r.Results {
		for _, issue := range res.Issues {
			switch issue.Severity {
			case SeverityError:
				r.Errors++
			case SeverityWarning:
				r.Warnings++
			default:
				r.Infos++
			}
		}
	}
}

// HasErrors reports whether any file failed to parse or produced an
// error-severity issue.
func (r *RunReport) HasErrors() bool {
	if r.Errors > 0 {
		return true
	}
	for _, res := range r.Results {
		if res.ParseError != "" {
			return true
		}
	}
	return false
}
