package templates

import (
	"sort"
	"strings"
)

// Renderer rewrites placeholder tokens in template content. Every occurrence
// of every token is replaced verbatim.
type Renderer struct {
	replacer *strings.Replacer
}

// NewRenderer creates a renderer for the given token to value mapping.
func NewRenderer(replacements map[string]string) *Renderer {
	tokens := make([]string, 0, len(replacements))
	for token := range replacements {
		tokens = append(tokens, token)
	}
	// Longer tokens first so that a token that prefixes another never wins.
	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	pairs := make([]string, 0, len(tokens)*2)
	for _, token := range tokens {
		pairs = append(pairs, token, replacements[token])
	}
	return &Renderer{replacer: strings.NewReplacer(pairs...)}
}

// RenderFile returns content with every token replaced.
func (r *Renderer) RenderFile(content []byte) []byte {
	return []byte(r.replacer.Replace(string(content)))
}

// RenderString returns s with every token replaced.
func (r *Renderer) RenderString(s string) string {
	return r.replacer.Replace(s)
}
