// Package instance holds the process-wide provider. Only the client package
// and its test helpers can reach it.
package instance

import (
	"sync"

	"github.com/harunnryd/skillmart/internal/catalog/provider"
)

var (
	mu      sync.Mutex
	current provider.Provider
)

// GetOrBuild returns the held provider, calling build on first use. A failed
// build leaves nothing behind so the next call retries.
func GetOrBuild(build func() (provider.Provider, error)) (provider.Provider, error) {
	mu.Lock()
	defer mu.Unlock()

	if current != nil {
		return current, nil
	}

	p, err := build()
	if err != nil {
		return nil, err
	}
	current = p
	return current, nil
}

func Peek() provider.Provider {
	mu.Lock()
	defer mu.Unlock()
	return current
}

func Set(p provider.Provider) {
	mu.Lock()
	defer mu.Unlock()
	current = p
}

func Reset() {
	Set(nil)
}
