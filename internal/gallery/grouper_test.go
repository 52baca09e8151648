package gallery

import (
	"reflect"
	"testing"

	"github.com/yura9011/promptfolio/internal/domain"
)

func flat(id, hash, group string, index *int) domain.ImageRecord {
	return domain.ImageRecord{
		ID:           id,
		Hash:         hash,
		URL:          "images/" + id + ".png",
		Prompt:       "shared prompt",
		Category:     domain.CategoryAnime,
		Tags:         []string{"shared"},
		VariantGroup: group,
		VariantIndex: index,
		CreatedAt:    "2026-01-02T03:04:05Z",
	}
}

func intp(n int) *int { return &n }

func TestRegroupMergesFlatRecords(t *testing.T) {
	batch := []domain.ImageRecord{
		flat("img-a", "h1", "g1", intp(1)),
		flat("img-b", "h2", "g1", intp(0)),
	}

	out := Regroup(nil, batch)

	if len(out) != 1 {
		t.Fatalf("expected 1 group record, got %d", len(out))
	}
	g := out[0]
	if !g.IsGroup() {
		t.Fatal("merged record should be a group")
	}
	if g.VariantGroup != "g1" {
		t.Errorf("group key = %q, want g1", g.VariantGroup)
	}
	if len(g.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(g.Variants))
	}
	// Sorted by variant_index ascending.
	if g.Variants[0].ID != "img-b" || g.Variants[1].ID != "img-a" {
		t.Errorf("variants out of order: %s, %s", g.Variants[0].ID, g.Variants[1].ID)
	}
	// Shared fields come from the first member seen.
	if g.Prompt != "shared prompt" || g.CreatedAt != "2026-01-02T03:04:05Z" {
		t.Errorf("group shared fields not carried: %+v", g)
	}
}

func TestRegroupMissingIndexSortsLast(t *testing.T) {
	batch := []domain.ImageRecord{
		flat("img-a", "h1", "g1", nil),
		flat("img-b", "h2", "g1", intp(3)),
	}

	out := Regroup(nil, batch)
	g := out[0]
	if g.Variants[0].ID != "img-b" {
		t.Errorf("indexed variant should sort before unindexed, got %s first", g.Variants[0].ID)
	}
}

func TestRegroupPassesPlainRecordsThrough(t *testing.T) {
	plain := flat("img-x", "hx", "", nil)
	out := Regroup([]domain.ImageRecord{plain}, nil)

	if len(out) != 1 {
		t.Fatalf("expected 1 record, got %d", len(out))
	}
	if !reflect.DeepEqual(out[0], plain) {
		t.Errorf("plain record changed: %+v", out[0])
	}
}

func TestRegroupJoinsExistingGroup(t *testing.T) {
	// First batch creates the group, second adds a variant to it.
	set := Regroup(nil, []domain.ImageRecord{flat("img-a", "h1", "g1", intp(0))})
	groupID := set[0].ID
	created := set[0].CreatedAt

	set = Regroup(set, []domain.ImageRecord{flat("img-b", "h2", "g1", intp(1))})

	if len(set) != 1 {
		t.Fatalf("expected 1 group, got %d records", len(set))
	}
	g := set[0]
	if g.ID != groupID {
		t.Errorf("group identity changed: %s -> %s", groupID, g.ID)
	}
	if g.CreatedAt != created {
		t.Errorf("group timestamp should not refresh on new variants")
	}
	if len(g.Variants) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(g.Variants))
	}
}

func TestRegroupDeduplicatesVariantsByHash(t *testing.T) {
	set := Regroup(nil, []domain.ImageRecord{
		flat("img-a", "h1", "g1", intp(0)),
		flat("img-dup", "h1", "g1", intp(1)),
	})

	if len(set[0].Variants) != 1 {
		t.Errorf("same-hash variant should be dropped, got %d variants", len(set[0].Variants))
	}
}

func TestRegroupIdempotent(t *testing.T) {
	once := Regroup(nil, []domain.ImageRecord{
		flat("img-a", "h1", "g1", intp(1)),
		flat("img-b", "h2", "g1", intp(0)),
		flat("img-c", "h3", "", nil),
		flat("img-d", "h4", "g2", nil),
	})

	twice := Regroup(once, nil)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Regroup is not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFindByHashFlattensGroups(t *testing.T) {
	set := Regroup(nil, []domain.ImageRecord{
		flat("img-a", "h1", "g1", intp(0)),
		flat("img-c", "h3", "", nil),
	})

	if _, ok := FindByHash(set, "h3"); !ok {
		t.Error("flat record hash not found")
	}
	rec, ok := FindByHash(set, "h1")
	if !ok {
		t.Fatal("group member hash not found")
	}
	if !rec.IsGroup() {
		t.Error("group member match should return the group record")
	}
	if _, ok := FindByHash(set, "missing"); ok {
		t.Error("unknown hash should not match")
	}
	if _, ok := FindByHash(set, ""); ok {
		t.Error("empty digest should not match")
	}
}
