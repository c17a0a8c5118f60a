package rulesrc

import "regexp"

var metaEntryRe = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"((?:[^"\\]|\\.)*)"`)

// ParseMeta extracts key/value pairs from a metadata region. Only quoted
// string assignments are recognized; numeric and boolean metadata values
// are not extracted. Duplicate keys keep the last occurrence.
func ParseMeta(meta string) map[string]string {
	if meta == "" {
		return map[string]string{}
	}
	out := map[string]string{}
	for _, m := range metaEntryRe.FindAllStringSubmatch(meta, -1) {
		out[m[1]] = m[2]
	}
	return out
}
