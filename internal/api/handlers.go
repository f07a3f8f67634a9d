package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/query"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
	skerrors "github.com/harunnryd/skillmart/internal/errors"
	"github.com/harunnryd/skillmart/internal/logger"

	"github.com/go-chi/chi/v5"
)

const maxRating = 5.0

type healthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}

type ratingRequest struct {
	Rating *float64 `json:"rating"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if s.health != nil {
		resp.Components = s.health(r.Context())
		for _, c := range resp.Components {
			if !c.Healthy {
				resp.Status = "degraded"
				break
			}
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) listSkills(w http.ResponseWriter, r *http.Request) {
	q, err := query.FromValues(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}
	skills, err := s.skills.GetSkills(r.Context(), q.FilterPtr(), q.Sort)
	s.writeSkills(w, r, skills, err)
}

func (s *Server) browseSkills(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()

	sort, err := repository.ParseBrowseSort(values.Get("sort"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %v", skerrors.ErrInvalidInput, err))
		return
	}

	bq := repository.BrowseQuery{
		Search:   values.Get("q"),
		Category: domain.CategoryID(values.Get("category")),
		Tags:     splitTags(values["tags"]),
		Sort:     sort,
	}
	skills, err := s.skills.Browse(r.Context(), bq)
	s.writeSkills(w, r, skills, err)
}

func (s *Server) featuredSkills(w http.ResponseWriter, r *http.Request) {
	minDownloads := int64(repository.DefaultFeaturedMinDownloads)
	if raw := strings.TrimSpace(r.URL.Query().Get("min_downloads")); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			writeError(w, r, skerrors.InvalidInput("min_downloads must be a non-negative integer, got %q", raw))
			return
		}
		minDownloads = n
	}
	skills, err := s.skills.GetFeaturedSkills(r.Context(), minDownloads)
	s.writeSkills(w, r, skills, err)
}

func (s *Server) topSkills(get func(context.Context, int) ([]domain.Skill, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := query.ParseLimit(r.URL.Query().Get("limit"), repository.DefaultLimit)
		if err != nil {
			writeError(w, r, err)
			return
		}
		skills, err := get(r.Context(), limit)
		s.writeSkills(w, r, skills, err)
	}
}

func (s *Server) freeSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := s.skills.GetFreeSkills(r.Context())
	s.writeSkills(w, r, skills, err)
}

func (s *Server) skillsByAuthor(w http.ResponseWriter, r *http.Request) {
	skills, err := s.skills.GetSkillsByAuthor(r.Context(), chi.URLParam(r, "author"))
	s.writeSkills(w, r, skills, err)
}

func (s *Server) getSkill(w http.ResponseWriter, r *http.Request) {
	skill, err := s.lookupSkill(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, skill)
}

func (s *Server) incrementDownloads(w http.ResponseWriter, r *http.Request) {
	skill, err := s.lookupSkill(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.skills.IncrementDownloads(r.Context(), skill.ID); err != nil {
		writeError(w, r, err)
		return
	}
	s.writeCurrent(w, r)
}

func (s *Server) updateRating(w http.ResponseWriter, r *http.Request) {
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, skerrors.InvalidInput("invalid request body: %v", err))
		return
	}
	if req.Rating == nil {
		writeError(w, r, skerrors.InvalidInput("missing required field: rating"))
		return
	}
	rating := *req.Rating
	if math.IsNaN(rating) || rating < 0 || rating > maxRating {
		writeError(w, r, skerrors.InvalidInput("rating must be between 0 and %.0f", maxRating))
		return
	}

	skill, err := s.lookupSkill(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := s.skills.UpdateRating(r.Context(), skill.ID, rating); err != nil {
		writeError(w, r, err)
		return
	}
	s.writeCurrent(w, r)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.GetCategories(r.Context())
	s.writeCategories(w, r, categories, err)
}

func (s *Server) popularCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categories.GetCategoriesByPopularity(r.Context())
	s.writeCategories(w, r, categories, err)
}

func (s *Server) categoryDrift(w http.ResponseWriter, r *http.Request) {
	drift, err := s.categories.CategoryCountDrift(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if drift == nil {
		drift = []repository.CountDrift{}
	}
	writeJSON(w, r, http.StatusOK, drift)
}

func (s *Server) getCategory(w http.ResponseWriter, r *http.Request) {
	id := domain.CategoryID(chi.URLParam(r, "id"))
	category, ok, err := s.categories.GetCategoryByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if !ok {
		writeError(w, r, skerrors.NotFound("category %q", id))
		return
	}
	writeJSON(w, r, http.StatusOK, category)
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	st, err := s.skills.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, st)
}

func (s *Server) clearCache(w http.ResponseWriter, r *http.Request) {
	s.provider.ClearCache()
	logger.FromContext(r.Context()).Info("Catalog cache cleared")
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) lookupSkill(r *http.Request) (domain.Skill, error) {
	id := domain.SkillID(chi.URLParam(r, "id"))
	skill, ok, err := s.skills.GetSkillByID(r.Context(), id)
	if err != nil {
		return domain.Skill{}, err
	}
	if !ok {
		return domain.Skill{}, skerrors.NotFound("skill %q", id)
	}
	return skill, nil
}

// writeCurrent re-reads the skill so the response reflects the mutation.
func (s *Server) writeCurrent(w http.ResponseWriter, r *http.Request) {
	skill, err := s.lookupSkill(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, skill)
}

func (s *Server) writeSkills(w http.ResponseWriter, r *http.Request, skills []domain.Skill, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if skills == nil {
		skills = []domain.Skill{}
	}
	writeJSON(w, r, http.StatusOK, skills)
}

func (s *Server) writeCategories(w http.ResponseWriter, r *http.Request, categories []domain.Category, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, r, http.StatusOK, categories)
}

func splitTags(values []string) []string {
	var tags []string
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				tags = append(tags, tag)
			}
		}
	}
	return tags
}
