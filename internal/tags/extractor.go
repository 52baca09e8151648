// Package tags derives keyword tags from image prompts.
//
// The ranking is a deliberate heuristic: style terms and hyphenated compounds
// are considered more taggable than short common nouns, so they fill the
// limited tag slots first.
package tags

import (
	"regexp"
	"strings"
)

// MaxTags caps the number of tags per record.
const MaxTags = 10

// minTokenLen drops fragments too short to be meaningful tags.
const minTokenLen = 3

var (
	angleTagRe    = regexp.MustCompile(`<[^>]+>`)
	braceRe       = regexp.MustCompile(`\{[^}]+\}`)
	procInstRe    = regexp.MustCompile(`<\?[^>]+\?>`)
	entityRe      = regexp.MustCompile(`&\w+;`)
	nonWordRe     = regexp.MustCompile(`[^\w\s#-]`)
	digitsRe      = regexp.MustCompile(`\d+`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
	numericOnlyRe = regexp.MustCompile(`^\d+$`)
)

// Extract returns at most MaxTags unique lowercase keywords from a prompt,
// ranked style/compound terms first, then long words, then the rest.
func Extract(prompt string) []string {
	text := prompt
	if strings.Contains(prompt, "<") && strings.Contains(prompt, ">") {
		text = stripMarkup(prompt)
	}

	text = strings.ToLower(text)
	text = nonWordRe.ReplaceAllString(text, " ")
	text = digitsRe.ReplaceAllString(text, " ")

	keywords := tokenize(text)

	var prioritized, longer, others []string
	claimed := make(map[string]bool)

	for _, kw := range keywords {
		switch {
		case styleIndicators[kw] || strings.Contains(kw, "-"):
			prioritized = append(prioritized, kw)
			claimed[kw] = true
		case len(kw) > 6:
			longer = append(longer, kw)
			claimed[kw] = true
		}
	}
	for _, kw := range keywords {
		if !claimed[kw] {
			others = append(others, kw)
		}
	}

	ranked := make([]string, 0, len(keywords))
	ranked = append(ranked, prioritized...)
	ranked = append(ranked, longer...)
	ranked = append(ranked, others...)

	if len(ranked) > MaxTags {
		ranked = ranked[:MaxTags]
	}
	return ranked
}

// stripMarkup removes angle-bracket tags, brace-delimited segments, XML
// processing instructions, and entity references from prompt-builder output.
func stripMarkup(prompt string) string {
	text := procInstRe.ReplaceAllString(prompt, " ")
	text = angleTagRe.ReplaceAllString(text, " ")
	text = braceRe.ReplaceAllString(text, " ")
	text = entityRe.ReplaceAllString(text, " ")
	return text
}

// tokenize splits cleaned text into candidate keywords, dropping stop words,
// numerics, flag-like fragments, and repeats (first occurrence wins).
func tokenize(text string) []string {
	var keywords []string
	seen := make(map[string]bool)

	for _, word := range whitespaceRe.Split(text, -1) {
		w := strings.TrimSpace(word)
		if len(w) < minTokenLen {
			continue
		}
		if stopWords[w] || seen[w] || numericOnlyRe.MatchString(w) {
			continue
		}
		if strings.HasPrefix(w, "-year") || strings.HasPrefix(w, "-star") || strings.HasPrefix(w, "--") {
			continue
		}
		seen[w] = true
		keywords = append(keywords, w)
	}
	return keywords
}
