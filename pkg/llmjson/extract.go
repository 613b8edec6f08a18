// Package llmjson extracts machine-readable JSON from free-form model
// output. Models are instructed to answer with bare JSON but routinely wrap
// it in prose or markdown fences anyway.
package llmjson

import (
	"fmt"
	"strings"
)

// ExtractArray finds the first well-formed top-level JSON array in s,
// tolerating surrounding prose. Bracket depth is tracked outside string
// literals so brackets inside element text do not break extraction.
func ExtractArray(s string) (string, error) {
	start := strings.Index(s, "[")
	if start == -1 {
		return "", fmt.Errorf("no JSON array found in response")
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unterminated JSON array in response")
}
