package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/harunnryd/skillmart/internal/catalog/domain"

	"golang.org/x/sync/singleflight"
)

const DefaultCacheTTL = time.Minute

// SkillStore receives the dataset when write-through is enabled.
type SkillStore interface {
	SaveSkills(ctx context.Context, skills []domain.Skill) error
}

type Option func(*JSONProvider)

func WithCacheTTL(ttl time.Duration) Option {
	return func(p *JSONProvider) {
		p.ttl = ttl
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *JSONProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// WithSamples appends extra entries after the dataset on every load. Entries
// whose id already exists in the dataset are skipped.
func WithSamples(samples []domain.Skill) Option {
	return func(p *JSONProvider) {
		p.samples = samples
	}
}

// WithWriteThrough makes mutations persist the dataset through store.
func WithWriteThrough(store SkillStore) Option {
	return func(p *JSONProvider) {
		p.store = store
	}
}

// JSONProvider serves the catalog from two JSON files with a time-bounded
// read-through cache.
type JSONProvider struct {
	source  Source
	ttl     time.Duration
	now     func() time.Time
	samples []domain.Skill
	store   SkillStore

	// persistMu orders snapshot and write so the last write carries the
	// newest cache state.
	persistMu sync.Mutex

	mu                 sync.RWMutex
	skills             []domain.Skill
	sampleIDs          map[domain.SkillID]struct{}
	categories         []domain.Category
	skillsLoadedAt     time.Time
	categoriesLoadedAt time.Time

	group singleflight.Group
}

var (
	_ Provider  = (*JSONProvider)(nil)
	_ Persister = (*JSONProvider)(nil)
)

func NewJSONProvider(source Source, opts ...Option) *JSONProvider {
	p := &JSONProvider{
		source: source,
		ttl:    DefaultCacheTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *JSONProvider) LoadSkills(ctx context.Context) ([]domain.Skill, error) {
	skills, err := p.cachedSkills(ctx)
	if err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]domain.Skill, len(skills))
	for i, s := range skills {
		out[i] = s.Clone()
	}
	return out, nil
}

func (p *JSONProvider) LoadCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := p.cachedCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Category, len(categories))
	copy(out, categories)
	return out, nil
}

func (p *JSONProvider) GetSkills(ctx context.Context, filters *SkillFilters, sort *SortOptions) ([]domain.Skill, error) {
	skills, err := p.LoadSkills(ctx)
	if err != nil {
		return nil, err
	}
	return applySort(applyFilters(skills, filters), sort), nil
}

func (p *JSONProvider) GetSkillByID(ctx context.Context, id domain.SkillID) (domain.Skill, bool, error) {
	skills, err := p.cachedSkills(ctx)
	if err != nil {
		return domain.Skill{}, false, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if idx := indexOf(skills, id); idx >= 0 {
		return skills[idx].Clone(), true, nil
	}
	return domain.Skill{}, false, nil
}

func (p *JSONProvider) GetSkillsByCategory(ctx context.Context, categoryID domain.CategoryID) ([]domain.Skill, error) {
	return p.GetSkills(ctx, &SkillFilters{Category: categoryID}, nil)
}

func (p *JSONProvider) GetSkillsByTags(ctx context.Context, tags []string) ([]domain.Skill, error) {
	return p.GetSkills(ctx, &SkillFilters{Tags: tags}, nil)
}

func (p *JSONProvider) SearchSkills(ctx context.Context, query string) ([]domain.Skill, error) {
	return p.GetSkills(ctx, &SkillFilters{Search: query}, nil)
}

func (p *JSONProvider) GetRecentlyUpdatedSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return p.topN(ctx, SortByLastUpdated, limit)
}

func (p *JSONProvider) GetPopularSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return p.topN(ctx, SortByDownloads, limit)
}

func (p *JSONProvider) GetTopRatedSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return p.topN(ctx, SortByRating, limit)
}

func (p *JSONProvider) topN(ctx context.Context, field SortField, limit int) ([]domain.Skill, error) {
	skills, err := p.GetSkills(ctx, nil, &SortOptions{Field: field, Order: OrderDesc})
	if err != nil {
		return nil, err
	}
	return take(skills, limit), nil
}

func (p *JSONProvider) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return p.LoadCategories(ctx)
}

func (p *JSONProvider) GetCategoryByID(ctx context.Context, id domain.CategoryID) (domain.Category, bool, error) {
	categories, err := p.LoadCategories(ctx)
	if err != nil {
		return domain.Category{}, false, err
	}
	for _, c := range categories {
		if c.ID == id {
			return c, true, nil
		}
	}
	return domain.Category{}, false, nil
}

func (p *JSONProvider) GetTotalDownloads(ctx context.Context) (int64, error) {
	skills, err := p.LoadSkills(ctx)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, s := range skills {
		total += s.Downloads
	}
	return total, nil
}

func (p *JSONProvider) GetSkillCount(ctx context.Context) (int, error) {
	skills, err := p.cachedSkills(ctx)
	if err != nil {
		return 0, err
	}
	return len(skills), nil
}

func (p *JSONProvider) GetUniqueAuthors(ctx context.Context) ([]string, error) {
	skills, err := p.LoadSkills(ctx)
	if err != nil {
		return nil, err
	}

	authors := make(map[string]struct{})
	for _, s := range skills {
		authors[s.Author] = struct{}{}
	}
	return sortedKeys(authors), nil
}

func (p *JSONProvider) GetAllTags(ctx context.Context) ([]string, error) {
	skills, err := p.LoadSkills(ctx)
	if err != nil {
		return nil, err
	}

	tags := make(map[string]struct{})
	for _, s := range skills {
		for _, tag := range s.Tags {
			tags[tag] = struct{}{}
		}
	}
	return sortedKeys(tags), nil
}

func (p *JSONProvider) IncrementDownloads(ctx context.Context, id domain.SkillID) error {
	return p.mutate(ctx, id, "increment_downloads", func(s *domain.Skill) {
		s.Downloads++
	})
}

func (p *JSONProvider) UpdateRating(ctx context.Context, id domain.SkillID, rating float64) error {
	return p.mutate(ctx, id, "update_rating", func(s *domain.Skill) {
		s.Rating = rating
	})
}

func (p *JSONProvider) mutate(ctx context.Context, id domain.SkillID, op string, apply func(*domain.Skill)) error {
	if _, err := p.cachedSkills(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	idx := indexOf(p.skills, id)
	if idx >= 0 {
		apply(&p.skills[idx])
	}
	p.mu.Unlock()

	if idx < 0 {
		slog.Debug("Mutation skipped, skill not found", "op", op, "id", id)
		return nil
	}

	if p.store == nil {
		slog.Warn("Catalog change kept in cache only, not persisted", "op", op, "id", id)
		return nil
	}

	if err := p.Persist(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Persist writes the cached dataset, excluding sample entries, to the
// configured store.
func (p *JSONProvider) Persist(ctx context.Context) error {
	if p.store == nil {
		return errors.New("write-through store not configured")
	}

	p.persistMu.Lock()
	defer p.persistMu.Unlock()

	p.mu.RLock()
	if p.skills == nil {
		p.mu.RUnlock()
		return nil
	}
	dataset := make([]domain.Skill, 0, len(p.skills))
	for _, s := range p.skills {
		if _, sample := p.sampleIDs[s.ID]; sample {
			continue
		}
		dataset = append(dataset, s.Clone())
	}
	p.mu.RUnlock()

	if err := p.store.SaveSkills(ctx, dataset); err != nil {
		return fmt.Errorf("persist skills: %w", err)
	}
	slog.Debug("Catalog skills persisted", "count", len(dataset))
	return nil
}

func (p *JSONProvider) ClearCache() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.skills = nil
	p.sampleIDs = nil
	p.categories = nil
	p.skillsLoadedAt = time.Time{}
	p.categoriesLoadedAt = time.Time{}
}

// cachedSkills returns the live cache slice, refilling it when stale. The
// elements must only be read or written with p.mu held.
func (p *JSONProvider) cachedSkills(ctx context.Context) ([]domain.Skill, error) {
	p.mu.RLock()
	if p.skills != nil && p.now().Sub(p.skillsLoadedAt) < p.ttl {
		skills := p.skills
		p.mu.RUnlock()
		return skills, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.group.Do(SkillsFile, func() (any, error) {
		p.mu.RLock()
		if p.skills != nil && p.now().Sub(p.skillsLoadedAt) < p.ttl {
			skills := p.skills
			p.mu.RUnlock()
			return skills, nil
		}
		p.mu.RUnlock()

		skills, sampleIDs, err := p.readSkills(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.skills = skills
		p.sampleIDs = sampleIDs
		p.skillsLoadedAt = p.now()
		p.mu.Unlock()

		slog.Debug("Catalog skills loaded", "count", len(skills), "samples", len(sampleIDs))
		return skills, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Skill), nil
}

func (p *JSONProvider) cachedCategories(ctx context.Context) ([]domain.Category, error) {
	p.mu.RLock()
	if p.categories != nil && p.now().Sub(p.categoriesLoadedAt) < p.ttl {
		categories := p.categories
		p.mu.RUnlock()
		return categories, nil
	}
	p.mu.RUnlock()

	v, err, _ := p.group.Do(CategoriesFile, func() (any, error) {
		p.mu.RLock()
		if p.categories != nil && p.now().Sub(p.categoriesLoadedAt) < p.ttl {
			categories := p.categories
			p.mu.RUnlock()
			return categories, nil
		}
		p.mu.RUnlock()

		categories, err := p.readCategories(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.categories = categories
		p.categoriesLoadedAt = p.now()
		p.mu.Unlock()

		slog.Debug("Catalog categories loaded", "count", len(categories))
		return categories, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Category), nil
}

func (p *JSONProvider) readSkills(ctx context.Context) ([]domain.Skill, map[domain.SkillID]struct{}, error) {
	data, err := p.readDocument(ctx, SkillsFile, skillsSchema)
	if err != nil {
		return nil, nil, err
	}

	skills := []domain.Skill{}
	if err := json.Unmarshal(data, &skills); err != nil {
		return nil, nil, p.loadError(SkillsFile, err)
	}
	if err := domain.ValidateSkills(skills); err != nil {
		return nil, nil, p.loadError(SkillsFile, err)
	}

	sampleIDs := make(map[domain.SkillID]struct{})
	if len(p.samples) > 0 {
		known := make(map[domain.SkillID]struct{}, len(skills))
		for _, s := range skills {
			known[s.ID] = struct{}{}
		}
		for _, sample := range p.samples {
			if _, exists := known[sample.ID]; exists {
				slog.Debug("Sample skill shadowed by dataset entry", "id", sample.ID)
				continue
			}
			skills = append(skills, sample.Clone())
			sampleIDs[sample.ID] = struct{}{}
		}
	}

	return skills, sampleIDs, nil
}

func (p *JSONProvider) readCategories(ctx context.Context) ([]domain.Category, error) {
	data, err := p.readDocument(ctx, CategoriesFile, categoriesSchema)
	if err != nil {
		return nil, err
	}

	categories := []domain.Category{}
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, p.loadError(CategoriesFile, err)
	}
	if err := domain.ValidateCategories(categories); err != nil {
		return nil, p.loadError(CategoriesFile, err)
	}
	return categories, nil
}

func (p *JSONProvider) readDocument(ctx context.Context, name string, schema schemaFunc) ([]byte, error) {
	data, err := p.source.Read(ctx, name)
	if err != nil {
		slog.Error("Failed to read catalog file", "file", name, "error", err)
		return nil, p.loadError(name, err)
	}
	if err := validateDocument(data, schema); err != nil {
		slog.Error("Catalog file is malformed", "file", name, "error", err)
		return nil, p.loadError(name, err)
	}
	return data, nil
}

func (p *JSONProvider) loadError(name string, err error) error {
	return &domain.LoadError{Collection: name, Path: p.source.Path(name), Err: err}
}

func indexOf(skills []domain.Skill, id domain.SkillID) int {
	for i := range skills {
		if skills[i].ID == id {
			return i
		}
	}
	return -1
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
