package metadata

import (
	"strconv"
	"strings"

	"github.com/yura9011/promptfolio/internal/domain"
)

// Length limits separating metadata lines from prompt fragments that happen
// to contain a colon. A 60-character "key" is a sentence, not a key.
const (
	maxKeyLen      = 50
	maxOverflowLen = 100
)

// applyKeyValue handles "key: value" and "key = value" lines. Recognized keys
// (case-insensitive, English/Spanish) map to fields, unrecognized short keys
// land in settings.otros, and everything else accumulates as prompt text.
// Returns true when at least one line parsed as metadata.
func applyKeyValue(rec *Result, lines []string) bool {
	matched := false
	var promptParts []string

	for _, line := range lines {
		key, value, ok := splitKeyValue(line)
		if !ok {
			promptParts = append(promptParts, line)
			continue
		}

		if setField(rec, domain.Fold(key), value) {
			matched = true
			continue
		}

		if len(value) < maxOverflowLen {
			rec.Settings.SetOtro(domain.Fold(key), value)
			matched = true
			continue
		}

		promptParts = append(promptParts, line)
	}

	if rec.Prompt == "" && len(promptParts) > 0 && matched {
		rec.Prompt = strings.Join(promptParts, " ")
	}
	return matched
}

// splitKeyValue matches "key: value" or "key = value" with a short key.
func splitKeyValue(line string) (key, value string, ok bool) {
	for _, sep := range []string{":", "="} {
		idx := strings.Index(line, sep)
		if idx <= 0 {
			continue
		}
		key = strings.TrimSpace(line[:idx])
		value = strings.TrimSpace(line[idx+1:])
		if key == "" || value == "" || len(key) >= maxKeyLen {
			continue
		}
		return key, value, true
	}
	return "", "", false
}

// setField assigns a recognized key to its field. The key is already folded
// (lowercased, diacritics stripped), so "categoría" arrives as "categoria".
func setField(rec *Result, key, value string) bool {
	switch key {
	case "prompt", "description", "desc", "descripcion":
		rec.Prompt = value
	case "model", "modelo":
		rec.Model = value
	case "category", "categoria":
		rec.Category = domain.NormalizeCategory(value)
	case "achievement", "logro":
		rec.Achievement = domain.ParseBool(value)
	case "notes", "notas":
		rec.Notes = value
	case "steps", "pasos":
		rec.Settings.Steps = domain.ParseFlexInt(value)
	case "cfg scale", "cfg_scale", "cfg":
		rec.Settings.CfgScale = domain.ParseFlexFloat(value)
	case "sampler":
		rec.Settings.Sampler = value
	case "seed", "semilla":
		rec.Settings.Seed = value
	case "size", "resolution", "tamano":
		rec.Settings.Size = value
	case "scheduler":
		rec.Settings.Scheduler = value
	case "variant_group", "grupo":
		rec.VariantGroup = value
	case "variant_index", "variante":
		if n, err := strconv.Atoi(value); err == nil {
			rec.VariantIndex = &n
		}
	default:
		return false
	}
	return true
}
