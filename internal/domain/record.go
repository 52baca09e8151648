// Package domain defines the persisted gallery record types.
package domain

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Default values used when sidecar metadata is missing or unrecoverable.
// These match the strings the gallery UI displays, so they double as
// "not provided" sentinels.
const (
	DefaultPrompt = "Sin descripción"
	DefaultModel  = "Desconocido"
)

// UngroupedIndex is the sort key for variants that carry no index.
// They sort after every explicitly indexed variant.
const UngroupedIndex = 999

// FlexInt is an integer that tolerates non-numeric input: when the raw text
// fails to parse, the text is kept and round-trips through JSON as a string.
type FlexInt struct {
	Int int
	Raw string
}

// ParseFlexInt parses s as an integer, keeping the raw text on failure.
func ParseFlexInt(s string) FlexInt {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return FlexInt{Int: n}
	}
	return FlexInt{Raw: s}
}

// IsZero reports whether the value is unset, for json omitzero.
func (f FlexInt) IsZero() bool { return f.Int == 0 && f.Raw == "" }

// MarshalJSON writes a number when parsed, the raw string otherwise.
func (f FlexInt) MarshalJSON() ([]byte, error) {
	if f.Raw != "" {
		return json.Marshal(f.Raw)
	}
	return json.Marshal(f.Int)
}

// UnmarshalJSON accepts both numbers and strings.
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = FlexInt{Int: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = ParseFlexInt(s)
	return nil
}

// String renders the value the way it was written.
func (f FlexInt) String() string {
	if f.Raw != "" {
		return f.Raw
	}
	return strconv.Itoa(f.Int)
}

// FlexFloat is the float counterpart of FlexInt.
type FlexFloat struct {
	Float float64
	Raw   string
}

// ParseFlexFloat parses s as a float, keeping the raw text on failure.
func ParseFlexFloat(s string) FlexFloat {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return FlexFloat{Float: v}
	}
	return FlexFloat{Raw: s}
}

// IsZero reports whether the value is unset, for json omitzero.
func (f FlexFloat) IsZero() bool { return f.Float == 0 && f.Raw == "" }

// MarshalJSON writes a number when parsed, the raw string otherwise.
func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if f.Raw != "" {
		return json.Marshal(f.Raw)
	}
	return json.Marshal(f.Float)
}

// UnmarshalJSON accepts both numbers and strings.
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		*f = FlexFloat{Float: v}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*f = ParseFlexFloat(s)
	return nil
}

// String renders the value the way it was written.
func (f FlexFloat) String() string {
	if f.Raw != "" {
		return f.Raw
	}
	return strconv.FormatFloat(f.Float, 'g', -1, 64)
}

// Settings holds known generation parameters plus an overflow map for
// unrecognized keys.
type Settings struct {
	Steps     FlexInt           `json:"steps,omitzero"`
	CfgScale  FlexFloat         `json:"cfg_scale,omitzero"`
	Sampler   string            `json:"sampler,omitempty"`
	Seed      string            `json:"seed,omitempty"`
	Size      string            `json:"size,omitempty"`
	Scheduler string            `json:"scheduler,omitempty"`
	Otros     map[string]string `json:"otros,omitempty"`
}

// IsZero reports whether no setting is populated.
func (s Settings) IsZero() bool {
	return s.Steps.IsZero() && s.CfgScale.IsZero() && s.Sampler == "" &&
		s.Seed == "" && s.Size == "" && s.Scheduler == "" && len(s.Otros) == 0
}

// SetOtro records an unrecognized key under the overflow map.
func (s *Settings) SetOtro(key, value string) {
	if s.Otros == nil {
		s.Otros = make(map[string]string)
	}
	s.Otros[key] = value
}

// ImageRecord is one element of the persisted gallery set. A record with a
// non-empty Variants slice is a variant group: its URL, Thumbnail, and Hash
// are empty and the per-image data lives on the variants.
type ImageRecord struct {
	ID           string             `json:"id" validate:"required"`
	Hash         string             `json:"hash,omitempty"`
	URL          string             `json:"url,omitempty"`
	Thumbnail    string             `json:"thumbnail,omitempty"`
	BlurHash     string             `json:"blurhash,omitempty"`
	Filename     string             `json:"filename,omitempty"`
	Prompt       string             `json:"prompt"`
	Model        string             `json:"model,omitempty"`
	Category     Category           `json:"category"`
	Achievement  bool               `json:"achievement,omitempty"`
	Tags         []string           `json:"tags"`
	Settings     Settings           `json:"settings,omitzero"`
	Notes        string             `json:"notes,omitempty"`
	VariantGroup string             `json:"variant_group,omitempty"`
	VariantIndex *int               `json:"variant_index,omitempty"`
	Variants     []VariantSubRecord `json:"variants,omitempty"`
	CreatedAt    string             `json:"created_at,omitempty"`
}

// IsGroup reports whether the record is a variant group rather than a
// standalone gallery entry.
func (r *ImageRecord) IsGroup() bool { return len(r.Variants) > 0 }

// SortIndex returns the record's position within its group. Records without
// an explicit index sort last.
func (r *ImageRecord) SortIndex() int {
	if r.VariantIndex == nil {
		return UngroupedIndex
	}
	return *r.VariantIndex
}

// VariantSubRecord is one member of a variant group. It has no lifecycle of
// its own; it exists only inside its parent group's Variants slice.
type VariantSubRecord struct {
	ID           string   `json:"id" validate:"required"`
	Hash         string   `json:"hash,omitempty"`
	URL          string   `json:"url"`
	Thumbnail    string   `json:"thumbnail,omitempty"`
	BlurHash     string   `json:"blurhash,omitempty"`
	Filename     string   `json:"filename,omitempty"`
	Model        string   `json:"model,omitempty"`
	VariantIndex *int     `json:"variant_index,omitempty"`
	Settings     Settings `json:"settings,omitzero"`
	Notes        string   `json:"notes,omitempty"`
}

// SortIndex returns the variant's ordering key, missing index last.
func (v *VariantSubRecord) SortIndex() int {
	if v.VariantIndex == nil {
		return UngroupedIndex
	}
	return *v.VariantIndex
}

// Subrecord converts a flat record into a group member.
func (r *ImageRecord) Subrecord() VariantSubRecord {
	return VariantSubRecord{
		ID:           r.ID,
		Hash:         r.Hash,
		URL:          r.URL,
		Thumbnail:    r.Thumbnail,
		BlurHash:     r.BlurHash,
		Filename:     r.Filename,
		Model:        r.Model,
		VariantIndex: r.VariantIndex,
		Settings:     r.Settings,
		Notes:        r.Notes,
	}
}

// NowTimestamp returns the canonical created_at representation.
func NowTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
