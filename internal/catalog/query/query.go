// Package query turns user supplied key=value expressions into provider
// filters and sort options. The CLI feeds it shell-style strings and the
// HTTP API feeds it URL query values; both share one vocabulary:
//
//	category=<id>  tag=<t> (repeatable)  tags=<t1,t2>  paid=<bool>
//	pricing=open_source|free|paid  min_rating=<n>  max_price=<n>
//	author=<exact>  q=<text>  sort=<field>[:asc|desc]  order=asc|desc
package query

import (
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
	skerrors "github.com/harunnryd/skillmart/internal/errors"

	"github.com/google/shlex"
)

type Query struct {
	Filters provider.SkillFilters
	Sort    *provider.SortOptions
}

// FilterPtr returns nil when no filter dimension is active.
func (q Query) FilterPtr() *provider.SkillFilters {
	if q.Filters.IsEmpty() {
		return nil
	}
	f := q.Filters
	return &f
}

// Parse reads a shell-quoted expression such as
// `category=nav tag=slam q="lidar scan"`.
func Parse(expr string) (Query, error) {
	var q Query
	if strings.TrimSpace(expr) == "" {
		return q, nil
	}

	parts, err := shlex.Split(expr)
	if err != nil {
		return q, skerrors.InvalidInput("parse expression %q: %v", expr, err)
	}

	order := ""
	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return q, skerrors.InvalidInput("expected key=value, got %q", part)
		}
		if err := q.apply(key, value, &order); err != nil {
			return q, err
		}
	}
	return q, q.finish(order)
}

// FromValues reads URL query parameters. Unknown keys are ignored so callers
// can mix in their own parameters.
func FromValues(values url.Values) (Query, error) {
	var q Query

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	order := ""
	for _, key := range keys {
		if !known(key) {
			continue
		}
		for _, value := range values[key] {
			if err := q.apply(key, value, &order); err != nil {
				return q, err
			}
		}
	}
	return q, q.finish(order)
}

func known(key string) bool {
	switch strings.ToLower(key) {
	case "category", "tag", "tags", "paid", "pricing", "min_rating", "max_price",
		"author", "q", "search", "sort", "order":
		return true
	}
	return false
}

func (q *Query) apply(key, value string, order *string) error {
	value = strings.TrimSpace(value)

	switch strings.ToLower(strings.TrimSpace(key)) {
	case "category":
		q.Filters.Category = domain.CategoryID(value)
	case "tag":
		if value != "" {
			q.Filters.Tags = append(q.Filters.Tags, value)
		}
	case "tags":
		for _, tag := range strings.Split(value, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				q.Filters.Tags = append(q.Filters.Tags, tag)
			}
		}
	case "paid":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return skerrors.InvalidInput("paid must be true or false, got %q", value)
		}
		q.Filters.Paid = provider.Bool(b)
	case "pricing":
		p, err := domain.ParsePricing(value)
		if err != nil {
			return fmt.Errorf("%w: %v", skerrors.ErrInvalidInput, err)
		}
		q.Filters.Pricing = p
	case "min_rating":
		f, err := parseNumber(value)
		if err != nil {
			return skerrors.InvalidInput("min_rating must be a finite number, got %q", value)
		}
		q.Filters.MinRating = provider.Float(f)
	case "max_price":
		f, err := parseNumber(value)
		if err != nil {
			return skerrors.InvalidInput("max_price must be a finite number, got %q", value)
		}
		q.Filters.MaxPrice = provider.Float(f)
	case "author":
		q.Filters.Author = value
	case "q", "search":
		q.Filters.Search = value
	case "sort":
		field, ord, hasOrder := strings.Cut(value, ":")
		f, err := provider.ParseSortField(field)
		if err != nil {
			return fmt.Errorf("%w: %v", skerrors.ErrInvalidInput, err)
		}
		q.Sort = &provider.SortOptions{Field: f, Order: provider.OrderAsc}
		if hasOrder {
			*order = ord
		}
	case "order":
		*order = value
	default:
		return skerrors.InvalidInput("unknown filter key %q", key)
	}
	return nil
}

func (q *Query) finish(order string) error {
	if order == "" {
		return nil
	}
	o, err := provider.ParseSortOrder(order)
	if err != nil {
		return fmt.Errorf("%w: %v", skerrors.ErrInvalidInput, err)
	}
	if q.Sort == nil {
		return skerrors.InvalidInput("order %q given without sort", order)
	}
	q.Sort.Order = o
	return nil
}

func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("not finite: %s", s)
	}
	return f, nil
}

// ParseLimit parses a non-negative limit, returning def for an empty string.
func ParseLimit(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, skerrors.InvalidInput("limit must be a non-negative integer, got %q", s)
	}
	return n, nil
}
