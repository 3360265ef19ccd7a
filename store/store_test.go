package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"contactdesk/pkg/backend"
)

func testBackend(t *testing.T) *backend.Backend {
	t.Helper()
	be, err := backend.Select("", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return be
}
