package provider

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/harunnryd/skillmart/internal/catalog/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioSkills = `[
  {
    "id": "A",
    "name": "Lidar SLAM",
    "description": "Builds maps while localizing",
    "category": "nav",
    "price": 0,
    "isOSS": true,
    "author": "Ada",
    "downloads": 500,
    "rating": 4.8,
    "version": "1.2.0",
    "tags": ["slam", "lidar"],
    "imageUrl": "https://img.example.com/a.png",
    "lastUpdated": "2024-05-01",
    "compatibility": ["ROS 2 Humble"]
  },
  {
    "id": "B",
    "name": "Camera Calibration",
    "description": "Intrinsic calibration helper",
    "category": "vision",
    "price": 25,
    "isOSS": false,
    "author": "Grace",
    "downloads": 50,
    "rating": 3.0,
    "version": "0.9",
    "tags": ["camera"],
    "imageUrl": "",
    "lastUpdated": "2024-06-10T08:00:00Z",
    "compatibility": []
  }
]`

const scenarioCategories = `[
  {"id": "nav", "name": "Navigation", "icon": "🧭", "count": 1},
  {"id": "vision", "name": "Vision", "icon": "👁️", "count": 4}
]`

type memorySource struct {
	mu    sync.Mutex
	files map[string][]byte
	reads map[string]int
	err   error
}

func newMemorySource(skills, categories string) *memorySource {
	return &memorySource{
		files: map[string][]byte{
			SkillsFile:     []byte(skills),
			CategoriesFile: []byte(categories),
		},
		reads: make(map[string]int),
	}
}

func (s *memorySource) Read(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads[name]++
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.files[name]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (s *memorySource) Path(name string) string {
	return "mem://" + name
}

func (s *memorySource) readCount(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads[name]
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newScenarioProvider(t *testing.T, opts ...Option) (*JSONProvider, *memorySource) {
	t.Helper()
	src := newMemorySource(scenarioSkills, scenarioCategories)
	return NewJSONProvider(src, opts...), src
}

func ids(skills []domain.Skill) []domain.SkillID {
	out := make([]domain.SkillID, len(skills))
	for i, s := range skills {
		out[i] = s.ID
	}
	return out
}

func TestJSONProvider_Scenario(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	byCategory, err := p.GetSkills(ctx, &SkillFilters{Category: "nav"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A"}, ids(byCategory))

	byDownloads, err := p.GetSkills(ctx, nil, &SortOptions{Field: SortByDownloads, Order: OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(byDownloads))

	popular, err := p.GetPopularSkills(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A"}, ids(popular))

	found, err := p.SearchSkills(ctx, "lidar")
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A"}, ids(found))
}

func TestJSONProvider_GetSkillsNaturalOrder(t *testing.T) {
	p, _ := newScenarioProvider(t)

	skills, err := p.GetSkills(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(skills))
}

func TestJSONProvider_FilteredResultsSatisfyFilters(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	all, err := p.LoadSkills(ctx)
	require.NoError(t, err)

	filters := []*SkillFilters{
		nil,
		{Category: "vision"},
		{Tags: []string{"camera", "slam"}},
		{Paid: Bool(true)},
		{Paid: Bool(false)},
		{Pricing: domain.PricingOpenSource},
		{MinRating: Float(4.8)},
		{MaxPrice: Float(0)},
		{Author: "Grace"},
		{Search: "CALIBRATION"},
		{Category: "nav", MinRating: Float(5)},
	}

	for _, f := range filters {
		got, err := p.GetSkills(ctx, f, &SortOptions{Field: SortByName, Order: OrderAsc})
		require.NoError(t, err)
		assert.LessOrEqual(t, len(got), len(all))
		for _, s := range got {
			assert.True(t, MatchesFilters(s, f), "skill %s violates %+v", s.ID, f)
		}
	}
}

func TestJSONProvider_FilterDimensions(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		filters *SkillFilters
		want    []domain.SkillID
	}{
		{name: "tags any", filters: &SkillFilters{Tags: []string{"camera", "slam"}}, want: []domain.SkillID{"A", "B"}},
		{name: "paid", filters: &SkillFilters{Paid: Bool(true)}, want: []domain.SkillID{"B"}},
		{name: "not paid", filters: &SkillFilters{Paid: Bool(false)}, want: []domain.SkillID{"A"}},
		{name: "min rating inclusive", filters: &SkillFilters{MinRating: Float(3.0)}, want: []domain.SkillID{"A", "B"}},
		{name: "max price inclusive", filters: &SkillFilters{MaxPrice: Float(25)}, want: []domain.SkillID{"A", "B"}},
		{name: "max price zero", filters: &SkillFilters{MaxPrice: Float(0)}, want: []domain.SkillID{"A"}},
		{name: "author exact", filters: &SkillFilters{Author: "Grac"}, want: []domain.SkillID{}},
		{name: "search excludes author", filters: &SkillFilters{Search: "ada"}, want: []domain.SkillID{}},
		{name: "search description", filters: &SkillFilters{Search: "INTRINSIC"}, want: []domain.SkillID{"B"}},
		{name: "and across dimensions", filters: &SkillFilters{Category: "vision", Tags: []string{"slam"}}, want: []domain.SkillID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.GetSkills(ctx, tt.filters, nil)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestJSONProvider_SortDoesNotMutateSource(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	_, err := p.GetSkills(ctx, nil, &SortOptions{Field: SortByName, Order: OrderAsc})
	require.NoError(t, err)

	natural, err := p.LoadSkills(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(natural))
}

func TestJSONProvider_SortIsStableAndReversible(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	for _, field := range []SortField{SortByName, SortByDownloads, SortByRating, SortByPrice, SortByLastUpdated} {
		asc, err := p.GetSkills(ctx, nil, &SortOptions{Field: field, Order: OrderAsc})
		require.NoError(t, err)
		again, err := p.GetSkills(ctx, nil, &SortOptions{Field: field, Order: OrderAsc})
		require.NoError(t, err)
		desc, err := p.GetSkills(ctx, nil, &SortOptions{Field: field, Order: OrderDesc})
		require.NoError(t, err)

		assert.Equal(t, ids(asc), ids(again), "field %s", field)

		reversed := ids(asc)
		for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
			reversed[i], reversed[j] = reversed[j], reversed[i]
		}
		assert.Equal(t, reversed, ids(desc), "field %s", field)
	}
}

func TestJSONProvider_UnknownSortFieldKeepsOrder(t *testing.T) {
	p, _ := newScenarioProvider(t)

	got, err := p.GetSkills(context.Background(), nil, &SortOptions{Field: "popularity", Order: OrderDesc})
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(got))
}

func TestJSONProvider_TopNLimits(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	recent, err := p.GetRecentlyUpdatedSkills(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"B", "A"}, ids(recent))

	topRated, err := p.GetTopRatedSkills(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(topRated))

	none, err := p.GetPopularSkills(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	negative, err := p.GetPopularSkills(ctx, -5)
	require.NoError(t, err)
	assert.Empty(t, negative)
}

func TestJSONProvider_GetSkillByID(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	all, err := p.LoadSkills(ctx)
	require.NoError(t, err)
	for _, s := range all {
		got, ok, err := p.GetSkillByID(ctx, s.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, s.ID, got.ID)
	}

	_, ok, err := p.GetSkillByID(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONProvider_Categories(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	categories, err := p.GetCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)

	vision, ok, err := p.GetCategoryByID(ctx, "vision")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 4, vision.Count, "stored count is exposed as-is")

	_, ok, err = p.GetCategoryByID(ctx, "speech")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONProvider_Aggregates(t *testing.T) {
	src := newMemorySource(`[
		{"id": "1", "name": "One", "author": "zed", "downloads": 3, "tags": ["b", "a"]},
		{"id": "2", "name": "Two", "author": "amy", "downloads": 7, "tags": ["a", "c"]},
		{"id": "3", "name": "Three", "author": "zed", "downloads": 0, "tags": []}
	]`, `[]`)
	p := NewJSONProvider(src)
	ctx := context.Background()

	total, err := p.GetTotalDownloads(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), total)

	count, err := p.GetSkillCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	authors, err := p.GetUniqueAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"amy", "zed"}, authors)

	tags, err := p.GetAllTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tags)
}

func TestJSONProvider_CacheFreshness(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	p, src := newScenarioProvider(t, WithClock(clock.Now), WithCacheTTL(time.Minute))
	ctx := context.Background()

	_, err := p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)
	_, err = p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, src.readCount(SkillsFile))

	clock.Advance(59 * time.Second)
	_, err = p.GetSkillCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, src.readCount(SkillsFile))

	clock.Advance(2 * time.Second)
	_, err = p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)
	_, err = p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, src.readCount(SkillsFile))
}

func TestJSONProvider_ConcurrentRefillsShareOneRead(t *testing.T) {
	p, src := newScenarioProvider(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := p.GetSkills(ctx, nil, nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.GreaterOrEqual(t, src.readCount(SkillsFile), 1)
	skills, err := p.LoadSkills(ctx)
	require.NoError(t, err)
	assert.Len(t, skills, 2)
}

func TestJSONProvider_ClearCacheIsIdempotent(t *testing.T) {
	p, src := newScenarioProvider(t)
	ctx := context.Background()

	before, err := p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)

	p.ClearCache()
	after, err := p.GetSkills(ctx, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, before, after)
	assert.Equal(t, 2, src.readCount(SkillsFile))
}

func TestJSONProvider_MutationsAreCacheOnly(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	require.NoError(t, p.IncrementDownloads(ctx, "A"))
	a, ok, err := p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(501), a.Downloads)

	require.NoError(t, p.UpdateRating(ctx, "A", 4.1))
	a, _, err = p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 4.1, a.Rating)

	p.ClearCache()
	a, _, err = p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(500), a.Downloads)
	assert.Equal(t, 4.8, a.Rating)
}

func TestJSONProvider_MutationOnMissingIDIsNoop(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	require.NoError(t, p.IncrementDownloads(ctx, "ghost"))
	require.NoError(t, p.UpdateRating(ctx, "ghost", 1))

	total, err := p.GetTotalDownloads(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(550), total)
}

func TestJSONProvider_ReturnedSlicesAreCopies(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	skills, err := p.LoadSkills(ctx)
	require.NoError(t, err)
	skills[0].Downloads = 9999
	skills[0].Tags[0] = "tampered"

	a, _, err := p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, int64(500), a.Downloads)
	assert.Equal(t, "slam", a.Tags[0])
}

func TestJSONProvider_LoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		skills string
	}{
		{name: "invalid json", skills: `[{"id": "A",`},
		{name: "not an array", skills: `{"id": "A"}`},
		{name: "null document", skills: `null`},
		{name: "wrong field type", skills: `[{"id": "A", "name": "A", "downloads": "many"}]`},
		{name: "negative price", skills: `[{"id": "A", "name": "A", "price": -1}]`},
		{name: "missing id", skills: `[{"name": "A"}]`},
		{name: "duplicate id", skills: `[{"id": "A", "name": "A"}, {"id": "A", "name": "B"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewJSONProvider(newMemorySource(tt.skills, scenarioCategories))
			skills, err := p.GetSkills(context.Background(), nil, nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrLoad))
			assert.Nil(t, skills)
		})
	}
}

func TestJSONProvider_EmptyCollectionIsNotAnError(t *testing.T) {
	p := NewJSONProvider(newMemorySource(`[]`, `[]`))

	skills, err := p.GetSkills(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, skills)

	_, ok, err := p.GetSkillByID(context.Background(), "A")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestJSONProvider_UnreadableStore(t *testing.T) {
	src := newMemorySource(scenarioSkills, scenarioCategories)
	src.err = errors.New("disk on fire")
	p := NewJSONProvider(src)

	_, err := p.GetCategories(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrLoad))

	var loadErr *domain.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "mem://categories.json", loadErr.Path)
}

func TestJSONProvider_FileSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillsFile), []byte(scenarioSkills), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, CategoriesFile), []byte(scenarioCategories), 0644))

	p := NewJSONProvider(NewFileSource(dir))
	count, err := p.GetSkillCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	missing := NewJSONProvider(NewFileSource(filepath.Join(dir, "nope")))
	_, err = missing.GetSkillCount(context.Background())
	assert.True(t, errors.Is(err, domain.ErrLoad))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestJSONProvider_Samples(t *testing.T) {
	samples, err := SampleSkills()
	require.NoError(t, err)
	require.NotEmpty(t, samples)

	shadow := domain.Skill{ID: "A", Name: "Shadowed sample"}
	p, _ := newScenarioProvider(t, WithSamples(append(samples, shadow)))

	skills, err := p.LoadSkills(context.Background())
	require.NoError(t, err)
	assert.Len(t, skills, 2+len(samples))
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(skills[:2]))
	assert.Equal(t, "Lidar SLAM", skills[0].Name)
}

type recordingStore struct {
	saved [][]domain.Skill
	err   error
}

func (s *recordingStore) SaveSkills(ctx context.Context, skills []domain.Skill) error {
	s.saved = append(s.saved, skills)
	return s.err
}

func TestJSONProvider_WriteThrough(t *testing.T) {
	store := &recordingStore{}
	samples, err := SampleSkills()
	require.NoError(t, err)
	p, _ := newScenarioProvider(t, WithWriteThrough(store), WithSamples(samples))
	ctx := context.Background()

	require.NoError(t, p.IncrementDownloads(ctx, "B"))
	require.Len(t, store.saved, 1)
	assert.Equal(t, []domain.SkillID{"A", "B"}, ids(store.saved[0]), "samples are never written back")
	assert.Equal(t, int64(51), store.saved[0][1].Downloads)

	store.err = errors.New("read-only filesystem")
	err = p.UpdateRating(ctx, "B", 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "update_rating")
}

// gatedStore holds its first save until release is closed.
type gatedStore struct {
	mu      sync.Mutex
	calls   int
	saved   [][]domain.Skill
	entered chan struct{}
	release chan struct{}
}

func (s *gatedStore) SaveSkills(ctx context.Context, skills []domain.Skill) error {
	s.mu.Lock()
	s.calls++
	first := s.calls == 1
	s.mu.Unlock()

	if first {
		close(s.entered)
		<-s.release
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, skills)
	return nil
}

func (s *gatedStore) last() []domain.Skill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved[len(s.saved)-1]
}

func TestJSONProvider_WriteThroughKeepsNewestOnDisk(t *testing.T) {
	store := &gatedStore{entered: make(chan struct{}), release: make(chan struct{})}
	p, _ := newScenarioProvider(t, WithWriteThrough(store))
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, p.IncrementDownloads(ctx, "A"))
	}()
	<-store.entered

	go func() {
		defer wg.Done()
		assert.NoError(t, p.IncrementDownloads(ctx, "A"))
	}()
	assert.Eventually(t, func() bool {
		a, _, err := p.GetSkillByID(ctx, "A")
		return err == nil && a.Downloads == 502
	}, time.Second, 5*time.Millisecond)

	close(store.release)
	wg.Wait()

	a, _, err := p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	persisted := store.last()
	require.Equal(t, domain.SkillID("A"), persisted[0].ID)
	assert.Equal(t, a.Downloads, persisted[0].Downloads)
	assert.Equal(t, int64(502), persisted[0].Downloads)
}

func TestJSONProvider_MutationLandsOnRefilledCache(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	p, src := newScenarioProvider(t, WithClock(clock.Now), WithCacheTTL(time.Minute))
	ctx := context.Background()

	_, err := p.LoadSkills(ctx)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	require.NoError(t, p.IncrementDownloads(ctx, "B"))
	assert.Equal(t, 2, src.readCount(SkillsFile))

	b, ok, err := p.GetSkillByID(ctx, "B")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(51), b.Downloads)
}

func TestJSONProvider_MutationsDuringRefillsStayConsistent(t *testing.T) {
	p, _ := newScenarioProvider(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.IncrementDownloads(ctx, "A"))
		}()
		go func() {
			defer wg.Done()
			p.ClearCache()
			_, err := p.LoadSkills(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	before, _, err := p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	require.NoError(t, p.IncrementDownloads(ctx, "A"))
	after, _, err := p.GetSkillByID(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, before.Downloads+1, after.Downloads)
}

func TestJSONProvider_PersistWithoutStore(t *testing.T) {
	p, _ := newScenarioProvider(t)
	assert.Error(t, p.Persist(context.Background()))
}
