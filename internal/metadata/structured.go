package metadata

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/yura9011/promptfolio/internal/domain"
)

// sectionHeaders are the recognized uppercase headers, each introducing a
// single value on the following line.
var sectionHeaders = []string{
	"MODEL",
	"DIMENSIONS",
	"SEED",
	"STEPS",
	"SAMPLER",
	"SCHEDULER",
	"VARIANT_GROUP",
	"VARIANT_INDEX",
}

var (
	themeRe      = regexp.MustCompile(`(?i)<Theme>([^<]+)</Theme>`)
	atmosphereRe = regexp.MustCompile(`(?i)<Atmosphere>([^<]+)</Atmosphere>`)
)

func isSectionHeader(line string) bool {
	for _, h := range sectionHeaders {
		if line == h {
			return true
		}
	}
	return false
}

// applyStructured handles the structured-tag format: everything before the
// first header line is the verbatim prompt (line breaks preserved), everything
// after is parsed as HEADER / value pairs. Returns false when no header is
// present, letting the next strategy run.
func applyStructured(rec *Result, content string) bool {
	rawLines := strings.Split(content, "\n")

	first := -1
	for i, line := range rawLines {
		if isSectionHeader(strings.TrimSpace(line)) {
			first = i
			break
		}
	}
	if first < 0 {
		return false
	}

	promptPart := strings.TrimSpace(strings.Join(rawLines[:first], "\n"))

	// Prompt-builder exports wrap the actual prompt in <Theme> tags and
	// carry mood text in <Atmosphere>.
	if m := themeRe.FindStringSubmatch(promptPart); m != nil {
		rec.Prompt = strings.TrimSpace(m[1])
		if a := atmosphereRe.FindStringSubmatch(promptPart); a != nil {
			rec.Notes = strings.TrimSpace(a[1])
		}
	} else {
		rec.Prompt = promptPart
	}

	for i := first; i < len(rawLines); i++ {
		header := strings.TrimSpace(rawLines[i])
		if !isSectionHeader(header) {
			continue
		}
		value := nextValue(rawLines, i+1)
		if value == "" {
			continue
		}
		setSection(rec, header, value)
	}

	detectCategory(rec, content)
	return true
}

// nextValue returns the first non-empty line at or after start that is not
// itself a header.
func nextValue(lines []string, start int) string {
	for i := start; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		if isSectionHeader(line) {
			return ""
		}
		return line
	}
	return ""
}

func setSection(rec *Result, header, value string) {
	switch header {
	case "MODEL":
		rec.Model = value
	case "DIMENSIONS":
		rec.Settings.Size = value
	case "SEED":
		rec.Settings.Seed = value
	case "STEPS":
		rec.Settings.Steps = domain.ParseFlexInt(value)
	case "SAMPLER":
		rec.Settings.Sampler = value
	case "SCHEDULER":
		rec.Settings.Scheduler = value
	case "VARIANT_GROUP":
		rec.VariantGroup = value
	case "VARIANT_INDEX":
		if n, err := strconv.Atoi(value); err == nil {
			rec.VariantIndex = &n
		}
	}
}

// detectCategory scans whole content for category keywords. First match in
// the chain wins; the chain order is deliberate (fantasy after manga so that
// "dark fantasy manga" classifies as Manga).
func detectCategory(rec *Result, content string) {
	lower := strings.ToLower(content)
	switch {
	case strings.Contains(lower, "anime"):
		rec.Category = domain.CategoryAnime
	case strings.Contains(lower, "manga"):
		rec.Category = domain.CategoryManga
	case strings.Contains(lower, "fantasy"):
		rec.Category = domain.CategoryDarkFantasy
	case strings.Contains(lower, "fotorealismo"), strings.Contains(lower, "photorealistic"):
		rec.Category = domain.CategoryFoto
	case strings.Contains(lower, "rpg"):
		rec.Category = domain.CategoryRPG
	case strings.Contains(lower, "surreal"):
		rec.Category = domain.CategorySurrealismo
	}
}
