package mongo

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/cms-console/internal/core/domain"
)

func TestStore_AgainstServer(t *testing.T) {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		t.Skip("MONGO_URI not set")
	}
	ctx := context.Background()

	s, err := Open(ctx, Options{URI: uri, Database: "cms_console_test", Collection: "kv_test"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.col.Drop(ctx)
		_ = s.Close(ctx)
	})

	_, err = s.Get(ctx, "cms_rbac_reports")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "cms_rbac_reports", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "cms_rbac_reports", []byte(`[{"id":2}]`)))
	got, err := s.Get(ctx, "cms_rbac_reports")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":2}]`, string(got))

	require.NoError(t, s.Delete(ctx, "cms_rbac_reports"))
	_, err = s.Get(ctx, "cms_rbac_reports")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}
