package postgresql

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestHelper owns a TestContainer for the lifetime of a test or suite.
type TestHelper struct {
	Container *TestContainer
	T         *testing.T
}

// NewTestHelper starts a container with the default config. Integration tests
// are skipped under -short.
func NewTestHelper(t *testing.T) *TestHelper {
	return NewTestHelperWithConfig(t, DefaultTestContainerConfig())
}

// NewTestHelperWithConfig starts a container and terminates it in t.Cleanup.
func NewTestHelperWithConfig(t *testing.T, config *TestContainerConfig) *TestHelper {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	ctx := context.Background()
	container, err := NewTestContainer(ctx, config)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := container.Close(ctx); err != nil {
			t.Logf("failed to close test container: %v", err)
		}
	})

	return &TestHelper{Container: container, T: t}
}

// CleanupTables truncates tables between tests.
func (h *TestHelper) CleanupTables(tables ...string) {
	require.NoError(h.T, h.Container.TruncateTables(context.Background(), tables...))
}

// GetClient returns the client connected to the container.
func (h *TestHelper) GetClient() PostgreSQLClient {
	return h.Container.Client
}
