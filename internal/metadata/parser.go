// Package metadata parses sidecar text files into structured image metadata.
//
// Sidecars follow no single convention, so parsing is an ordered chain of
// strategies, each with its own "did this apply" predicate:
//
//  1. structured-tag: uppercase section headers (MODEL, STEPS, ...) with the
//     verbatim prompt before the first header
//  2. key/value: "key: value" or "key = value" lines with bilingual aliases
//  3. free-text: substring heuristics over plain prose
//
// The first strategy that applies wins; the free-text pass only runs when no
// earlier strategy produced a prompt.
package metadata

import (
	"strings"

	"github.com/yura9011/promptfolio/internal/domain"
)

// Result is the structured outcome of parsing one sidecar file.
type Result struct {
	Prompt       string
	Model        string
	Category     domain.Category
	Achievement  bool
	Settings     domain.Settings
	Notes        string
	VariantGroup string
	VariantIndex *int
}

// Defaults returns the record used when no sidecar exists or nothing could
// be recovered from it.
func Defaults() Result {
	return Result{
		Prompt:   domain.DefaultPrompt,
		Model:    domain.DefaultModel,
		Category: domain.CategoryOtros,
	}
}

// Parse turns raw sidecar text into structured metadata. It never fails:
// unparseable input degrades to the default record.
func Parse(content string) Result {
	rec := Result{
		Model:    domain.DefaultModel,
		Category: domain.CategoryOtros,
	}

	if applyStructured(&rec, content) {
		if rec.Prompt == "" {
			rec.Prompt = domain.DefaultPrompt
		}
		return rec
	}

	lines := nonEmptyLines(content)
	applyKeyValue(&rec, lines)

	if rec.Prompt == "" {
		applyFreeText(&rec, lines)
	}
	if rec.Prompt == "" {
		rec.Prompt = domain.DefaultPrompt
	}
	return rec
}

// nonEmptyLines splits content into trimmed, non-empty lines.
func nonEmptyLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
