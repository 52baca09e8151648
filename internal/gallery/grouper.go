package gallery

import (
	"sort"

	"github.com/yura9011/promptfolio/internal/domain"
	"github.com/yura9011/promptfolio/internal/id"
)

// Regroup rewrites the full record set, collapsing every record that shares a
// variant group identifier into a single group record. It re-derives the
// complete grouped state from scratch on every run: existing groups keep
// their identity and timestamp, ungrouped legacy records join or seed their
// group, plain records pass through unchanged, and the new batch folds in
// last. Variants are unique by hash and sorted by variant index, missing
// index last. Applying Regroup to its own output is a no-op.
func Regroup(existing, batch []domain.ImageRecord) []domain.ImageRecord {
	out := make([]domain.ImageRecord, 0, len(existing)+len(batch))
	groups := make(map[string]*domain.ImageRecord)
	var order []string

	fold := func(rec domain.ImageRecord) {
		if rec.IsGroup() {
			key := rec.VariantGroup
			if key == "" {
				key = rec.ID
			}
			if g, ok := groups[key]; ok {
				for _, v := range rec.Variants {
					appendVariant(g, v)
				}
				return
			}
			cp := rec
			cp.Variants = append([]domain.VariantSubRecord(nil), rec.Variants...)
			groups[key] = &cp
			order = append(order, key)
			return
		}

		if rec.VariantGroup == "" {
			out = append(out, rec)
			return
		}

		g, ok := groups[rec.VariantGroup]
		if !ok {
			g = newGroup(rec)
			groups[rec.VariantGroup] = g
			order = append(order, rec.VariantGroup)
		}
		appendVariant(g, rec.Subrecord())
	}

	for _, rec := range existing {
		fold(rec)
	}
	for _, rec := range batch {
		fold(rec)
	}

	for _, key := range order {
		g := groups[key]
		sort.SliceStable(g.Variants, func(i, j int) bool {
			return g.Variants[i].SortIndex() < g.Variants[j].SortIndex()
		})
		out = append(out, *g)
	}
	return out
}

// newGroup seeds a group record from the first member's shared fields. The
// group keeps that member's prompt, category, tags, and created_at; the
// per-image data moves into the variants.
func newGroup(rec domain.ImageRecord) *domain.ImageRecord {
	return &domain.ImageRecord{
		ID:           id.MustGenerate(id.GroupPrefix),
		Prompt:       rec.Prompt,
		Category:     rec.Category,
		Achievement:  rec.Achievement,
		Tags:         rec.Tags,
		VariantGroup: rec.VariantGroup,
		CreatedAt:    rec.CreatedAt,
	}
}

// appendVariant adds v to the group unless a variant with the same hash is
// already present.
func appendVariant(g *domain.ImageRecord, v domain.VariantSubRecord) {
	if v.Hash != "" {
		for _, cur := range g.Variants {
			if cur.Hash == v.Hash {
				return
			}
		}
	}
	g.Variants = append(g.Variants, v)
}
