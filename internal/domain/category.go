package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category is one of the fixed gallery categories.
type Category string

// The gallery's category set. Anything unrecognized normalizes to CategoryOtros.
const (
	CategoryAnime       Category = "Anime"
	CategoryManga       Category = "Manga"
	CategoryDarkFantasy Category = "Dark Fantasy"
	CategoryFoto        Category = "Fotorealismo"
	CategoryRPG         Category = "RPG/Fantasy"
	CategorySurrealismo Category = "Surrealismo"
	CategoryOtros       Category = "Otros"
)

// Categories returns all valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryAnime,
		CategoryManga,
		CategoryDarkFantasy,
		CategoryFoto,
		CategoryRPG,
		CategorySurrealismo,
		CategoryOtros,
	}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	for _, v := range Categories() {
		if c == v {
			return true
		}
	}
	return false
}

// categoryAliases maps normalized (lowercased, diacritic-folded) free text to
// canonical categories. Bilingual English/Spanish synonyms.
var categoryAliases = map[string]Category{
	"anime":          CategoryAnime,
	"manga":          CategoryManga,
	"dark fantasy":   CategoryDarkFantasy,
	"fantasy":        CategoryDarkFantasy,
	"fantasia":       CategoryDarkFantasy,
	"fotorealismo":   CategoryFoto,
	"fotorealism":    CategoryFoto,
	"photorealistic": CategoryFoto,
	"photorealism":   CategoryFoto,
	"rpg":            CategoryRPG,
	"rpg/fantasy":    CategoryRPG,
	"surrealismo":    CategorySurrealismo,
	"surrealism":     CategorySurrealismo,
	"surreal":        CategorySurrealismo,
	"otros":          CategoryOtros,
	"otro":           CategoryOtros,
	"other":          CategoryOtros,
}

// foldTransformer strips combining marks so "categoría" and "categoria"
// normalize identically.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases, trims, and removes diacritics from s.
func Fold(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return folded
}

// NormalizeCategory maps free-text category input to a fixed category.
// Unrecognized input maps to CategoryOtros.
func NormalizeCategory(raw string) Category {
	if c, ok := categoryAliases[Fold(raw)]; ok {
		return c
	}
	return CategoryOtros
}

// truthy is the set of accepted true tokens, post-folding ("sí" folds to "si").
var truthy = map[string]bool{
	"yes":         true,
	"true":        true,
	"si":          true,
	"1":           true,
	"achievement": true,
	"logro":       true,
}

// ParseBool interprets free-text boolean input. Everything outside the fixed
// truthy set is false.
func ParseBool(raw string) bool {
	return truthy[Fold(raw)]
}
