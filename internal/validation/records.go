package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/yura9011/promptfolio/internal/domain"
	domainerrors "github.com/yura9011/promptfolio/internal/errors"
)

// Issue is a single validation finding tied to one record.
type Issue struct {
	Record  string `json:"record"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Record, i.Message)
}

// Report collects the findings of a validation pass. Errors make the pass
// fail; warnings are informational only.
type Report struct {
	Checked  int     `json:"checked"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

// HasErrors reports whether any hard error was found.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

func (r *Report) addError(record, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Record: record, Message: fmt.Sprintf(format, args...)})
}

func (r *Report) addWarning(record, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Record: record, Message: fmt.Sprintf(format, args...)})
}

// CheckRecords validates a gallery data set without mutating it.
//
// Hard errors: missing id, missing url, duplicate hash, malformed URL,
// a group without variants. Everything else (missing thumbnail or hash,
// unknown category, unparseable date, absent prompt) is a warning. Field
// presence is driven by the records' validate tags.
func (v *Validator) CheckRecords(records []domain.ImageRecord) *Report {
	report := &Report{Checked: len(records)}
	seenHashes := make(map[string]string)
	seenIDs := make(map[string]bool)

	for i := range records {
		rec := &records[i]
		label := recordLabel(i, rec.Filename, rec.ID)

		foldFieldErrors(report, label, v.Validate(rec))
		if rec.ID != "" {
			if seenIDs[rec.ID] {
				report.addError(label, "duplicate id %s", rec.ID)
			} else {
				seenIDs[rec.ID] = true
			}
		}

		if rec.Category != "" && !domain.ValidCategory(rec.Category) {
			report.addWarning(label, "invalid category %q (valid: %s)",
				rec.Category, strings.Join(categoryNames(), ", "))
		}

		if rec.CreatedAt != "" {
			if _, err := time.Parse(time.RFC3339, rec.CreatedAt); err != nil {
				report.addWarning(label, "invalid date format: %s", rec.CreatedAt)
			}
		}

		if rec.Prompt == "" || rec.Prompt == domain.DefaultPrompt {
			report.addWarning(label, "no prompt provided")
		}

		if rec.IsGroup() {
			v.checkGroup(report, label, rec, seenHashes)
			continue
		}

		checkStored(report, label, rec.URL, rec.Thumbnail, rec.Hash, seenHashes)
	}

	return report
}

// checkGroup validates a variant group's members.
func (v *Validator) checkGroup(report *Report, label string, rec *domain.ImageRecord, seenHashes map[string]string) {
	if len(rec.Variants) == 0 {
		report.addError(label, "variant group has no variants")
		return
	}
	for i := range rec.Variants {
		variant := &rec.Variants[i]
		vLabel := label
		if variant.ID != "" {
			vLabel = fmt.Sprintf("%s variant %s", label, variant.ID)
		}
		foldFieldErrors(report, vLabel, v.Validate(variant))
		checkStored(report, vLabel, variant.URL, variant.Thumbnail, variant.Hash, seenHashes)
	}
}

// foldFieldErrors turns the field details of a struct validation failure
// into hard errors on the report.
func foldFieldErrors(report *Report, label string, err error) {
	if err == nil {
		return
	}
	var domainErr *domainerrors.Error
	var fieldErrs map[string]string
	if errors.As(err, &domainErr) {
		fieldErrs, _ = domainErr.Details.(map[string]string)
	}
	if len(fieldErrs) == 0 {
		report.addError(label, "%s", err.Error())
		return
	}
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		if fieldErrs[field] == "is required" {
			report.addError(label, "missing '%s' field", field)
			continue
		}
		report.addError(label, "'%s' %s", field, fieldErrs[field])
	}
}

// checkStored validates the hosting references shared by flat records and
// group variants.
func checkStored(report *Report, label, url, thumbnail, hash string, seenHashes map[string]string) {
	switch {
	case url == "":
		report.addError(label, "missing 'url' field")
	case !validURL(url):
		report.addError(label, "invalid URL format: %s", url)
	}

	if thumbnail == "" {
		report.addWarning(label, "missing 'thumbnail' field")
	}

	if hash == "" {
		report.addWarning(label, "missing 'hash' field (duplicate detection won't work)")
		return
	}
	if prev, dup := seenHashes[hash]; dup {
		report.addError(label, "duplicate hash found: %s (same as %s)", hash, prev)
		return
	}
	seenHashes[hash] = label
}

// validURL accepts absolute http(s) URLs and the relative images/ paths
// produced by local hosting.
func validURL(url string) bool {
	if strings.ContainsAny(url, " \t\\") {
		return false
	}
	return strings.HasPrefix(url, "http://") ||
		strings.HasPrefix(url, "https://") ||
		strings.HasPrefix(url, "images/")
}

func recordLabel(index int, filename, id string) string {
	name := filename
	if name == "" {
		name = id
	}
	if name == "" {
		name = "?"
	}
	return fmt.Sprintf("Image #%d (%s)", index+1, name)
}

func categoryNames() []string {
	cats := domain.Categories()
	names := make([]string, len(cats))
	for i, c := range cats {
		names[i] = string(c)
	}
	return names
}
