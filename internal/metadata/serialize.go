package metadata

import (
	"strconv"
	"strings"

	"github.com/yura9011/promptfolio/internal/domain"
)

// FormatStructured serializes a parsed record back into the structured-tag
// sidecar format: the prompt, then HEADER / value pairs for every populated
// field. Parsing the output recovers the same settings.
func FormatStructured(rec Result) string {
	var b strings.Builder

	if rec.Prompt != "" && rec.Prompt != domain.DefaultPrompt {
		b.WriteString(rec.Prompt)
		b.WriteString("\n")
	}

	write := func(header, value string) {
		if value == "" {
			return
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(value)
		b.WriteString("\n")
	}

	if rec.Model != domain.DefaultModel {
		write("MODEL", rec.Model)
	}
	write("DIMENSIONS", rec.Settings.Size)
	write("SEED", rec.Settings.Seed)
	if !rec.Settings.Steps.IsZero() {
		write("STEPS", rec.Settings.Steps.String())
	}
	write("SAMPLER", rec.Settings.Sampler)
	write("SCHEDULER", rec.Settings.Scheduler)
	write("VARIANT_GROUP", rec.VariantGroup)
	if rec.VariantIndex != nil {
		write("VARIANT_INDEX", strconv.Itoa(*rec.VariantIndex))
	}

	return strings.TrimSuffix(b.String(), "\n")
}
