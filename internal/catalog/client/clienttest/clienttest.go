// Package clienttest exposes the singleton reset hook for tests.
package clienttest

import (
	"testing"

	"github.com/harunnryd/skillmart/internal/catalog/client/internal/instance"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
)

// Reset discards the process-wide provider so the next client.Get builds a
// fresh one.
func Reset() {
	instance.Reset()
}

// Use installs p as the process-wide provider for the duration of the test.
func Use(t testing.TB, p provider.Provider) {
	t.Helper()
	instance.Set(p)
	t.Cleanup(instance.Reset)
}
