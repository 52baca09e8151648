package api

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/yura9011/promptfolio/internal/domain"
	"github.com/yura9011/promptfolio/internal/http/response"
)

const (
	defaultPageSize = 24
	maxPageSize     = 100
)

// ListImagesResponse is the paginated image listing payload.
type ListImagesResponse struct {
	Images []domain.ImageRecord `json:"images"`
	Page   int                  `json:"page"`
	Limit  int                  `json:"limit"`
	Total  int                  `json:"total"`
}

// StatsResponse summarizes the persisted gallery set.
type StatsResponse struct {
	Total        int                     `json:"total"`
	Groups       int                     `json:"groups"`
	Achievements int                     `json:"achievements"`
	ByCategory   map[domain.Category]int `json:"by_category"`
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if _, err := s.store.Load(); err != nil {
		s.logger.Error("health check failed to read gallery data", "error", err)
		status = "unhealthy"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	response.JSON(w, code, map[string]string{"status": status}, s.logger)
}

// handleListImages lists records with optional category, tag, and
// achievement filters plus page/limit pagination.
func (s *Server) handleListImages(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Load()
	if err != nil {
		s.logger.Error("failed to load gallery data", "error", err)
		response.InternalError(w, "failed to load gallery data", s.logger)
		return
	}

	records = filterRecords(records, r.URL.Query().Get("category"), r.URL.Query().Get("tag"), r.URL.Query().Get("achievement"))

	page := queryInt(r, "page", 1)
	limit := queryInt(r, "limit", defaultPageSize)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}

	total := len(records)
	start := min((page-1)*limit, total)
	end := min(start+limit, total)

	resp := ListImagesResponse{
		Images: records[start:end],
		Page:   page,
		Limit:  limit,
		Total:  total,
	}
	if resp.Images == nil {
		resp.Images = []domain.ImageRecord{}
	}
	response.Success(w, resp, s.logger)
}

// handleGetImage returns one record by id. Variant ids resolve to their
// parent group.
func (s *Server) handleGetImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	records, err := s.store.Load()
	if err != nil {
		s.logger.Error("failed to load gallery data", "error", err)
		response.InternalError(w, "failed to load gallery data", s.logger)
		return
	}

	for i := range records {
		rec := &records[i]
		if rec.ID == id {
			response.Success(w, rec, s.logger)
			return
		}
		for _, v := range rec.Variants {
			if v.ID == id {
				response.Success(w, rec, s.logger)
				return
			}
		}
	}

	response.NotFound(w, "image not found", s.logger)
}

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, domain.Categories(), s.logger)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.Load()
	if err != nil {
		s.logger.Error("failed to load gallery data", "error", err)
		response.InternalError(w, "failed to load gallery data", s.logger)
		return
	}

	stats := StatsResponse{
		Total:      len(records),
		ByCategory: make(map[domain.Category]int),
	}
	for i := range records {
		rec := &records[i]
		stats.ByCategory[rec.Category]++
		if rec.IsGroup() {
			stats.Groups++
		}
		if rec.Achievement {
			stats.Achievements++
		}
	}

	response.Success(w, stats, s.logger)
}

// filterRecords applies the listing filters. Empty filter values match
// everything.
func filterRecords(records []domain.ImageRecord, category, tag, achievement string) []domain.ImageRecord {
	if category == "" && tag == "" && achievement == "" {
		return records
	}

	var wantAchievement *bool
	if achievement != "" {
		v := domain.ParseBool(achievement)
		wantAchievement = &v
	}

	out := records[:0:0]
	for i := range records {
		rec := &records[i]
		if category != "" && !strings.EqualFold(string(rec.Category), category) {
			continue
		}
		if tag != "" && !slices.Contains(rec.Tags, strings.ToLower(tag)) {
			continue
		}
		if wantAchievement != nil && rec.Achievement != *wantAchievement {
			continue
		}
		out = append(out, *rec)
	}
	return out
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
