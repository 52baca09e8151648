package tags

import (
	"strings"
	"testing"
)

func TestExtractMarkupPrompt(t *testing.T) {
	prompt := "<Theme>Lonely astronaut</Theme> {junk} neon-lit city"
	got := Extract(prompt)

	want := []string{"neon-lit", "astronaut", "lonely", "city"}
	if len(got) != len(want) {
		t.Fatalf("Extract(%q) = %v, want %v", prompt, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractPrioritizesStyleTerms(t *testing.T) {
	got := Extract("a city at night, cinematic lighting, neon signs")

	if len(got) == 0 || got[0] != "cinematic" {
		t.Errorf("style indicator should rank first, got %v", got)
	}
	if got[1] != "neon" {
		t.Errorf("second style indicator should follow, got %v", got)
	}
}

func TestExtractCapAndInvariants(t *testing.T) {
	prompts := []string{
		"",
		"the and or but",
		"a sprawling cyberpunk metropolis with towering skyscrapers, holographic billboards, " +
			"rain-slicked streets, flying vehicles, crowded markets, mysterious strangers, " +
			"glowing lanterns, ancient temples, futuristic trains, endless rooftops, hidden alleys",
		"<Theme>Dragon</Theme> <?xml version?> &amp; {metadata} fire-breathing beast",
		"portrait photo of a woman 35mm f1.8 8k uhd",
	}

	for _, prompt := range prompts {
		got := Extract(prompt)

		if len(got) > MaxTags {
			t.Errorf("Extract(%q) returned %d tags, cap is %d", prompt, len(got), MaxTags)
		}

		seen := make(map[string]bool)
		for _, tag := range got {
			if tag != strings.ToLower(tag) {
				t.Errorf("tag %q is not lowercase", tag)
			}
			if stopWords[tag] {
				t.Errorf("tag %q is a stop word", tag)
			}
			if seen[tag] {
				t.Errorf("tag %q appears twice", tag)
			}
			seen[tag] = true
		}
	}
}

func TestExtractDropsNumericAndFlagTokens(t *testing.T) {
	got := Extract("masterpiece --ar 16:9 90-year-old wizard 4k")

	for _, tag := range got {
		if tag == "--ar" || strings.HasPrefix(tag, "-year") {
			t.Errorf("flag-like token %q should be dropped", tag)
		}
	}

	found := false
	for _, tag := range got {
		if tag == "wizard" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected wizard in tags, got %v", got)
	}
}

func TestExtractDeduplicatesFirstWins(t *testing.T) {
	got := Extract("dragon dragon DRAGON golden dragon")

	count := 0
	for _, tag := range got {
		if tag == "dragon" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("dragon should appear exactly once, got %v", got)
	}
}
