// Package repository turns provider primitives into the named catalog views
// used by the HTTP API and the CLI.
package repository

import (
	"github.com/harunnryd/skillmart/internal/catalog/client"
	"github.com/harunnryd/skillmart/internal/config"
)

// Default builds both repositories on the process-wide provider.
func Default(cfg *config.Config) (*Skills, *Categories, error) {
	p, err := client.Get(cfg)
	if err != nil {
		return nil, nil, err
	}
	return NewSkills(p), NewCategories(p), nil
}
