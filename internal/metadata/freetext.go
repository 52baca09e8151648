package metadata

import "strings"

// minPromptLineLen is the length above which a single line is trusted to be
// the prompt on its own.
const minPromptLineLen = 20

// promptDenylist marks lines that look like model or category annotations
// rather than prompt text.
var promptDenylist = []string{
	"stable diffusion",
	"midjourney",
	"dall-e",
	"achievement",
	"anime",
	"manga",
	"fantasy",
	"fotorealismo",
}

// applyFreeText is the last-resort strategy: scan lines for known model and
// category substrings (later lines overwrite earlier detections), then pick a
// prompt heuristically. Returns true when it recovered any signal.
func applyFreeText(rec *Result, lines []string) bool {
	applied := false

	for _, line := range lines {
		lower := strings.ToLower(line)

		switch {
		case strings.Contains(lower, "stable diffusion"), strings.Contains(lower, "sd"):
			rec.Model = line
			applied = true
		case strings.Contains(lower, "midjourney"):
			rec.Model = "Midjourney"
			applied = true
		case strings.Contains(lower, "dall-e"), strings.Contains(lower, "dalle"):
			rec.Model = "DALL-E"
			applied = true
		case strings.Contains(lower, "novelai"):
			rec.Model = "NovelAI"
			applied = true
		}

		detectCategory(rec, lower)

		if strings.Contains(lower, "achievement") || strings.Contains(lower, "logro") {
			rec.Achievement = true
			applied = true
		}
	}

	if prompt := extractPrompt(lines); prompt != "" {
		rec.Prompt = prompt
		applied = true
	}
	return applied
}

// extractPrompt picks the single longest line when it is long enough to be a
// sentence, otherwise joins all lines that do not look like annotations.
func extractPrompt(lines []string) string {
	longest := ""
	for _, line := range lines {
		if len(line) > len(longest) {
			longest = line
		}
	}
	if len(longest) > minPromptLineLen {
		return longest
	}

	var kept []string
	for _, line := range lines {
		lower := strings.ToLower(line)
		denied := false
		for _, word := range promptDenylist {
			if strings.Contains(lower, word) {
				denied = true
				break
			}
		}
		if !denied {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, " ")
}
