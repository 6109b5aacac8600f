package storage

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/cms-console/internal/core/domain"
	"github.com/99minutos/cms-console/internal/infrastructure/db/memory"
)

func TestSeeder_InitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seeder := NewSeeder(s, zerolog.Nop())

	require.NoError(t, seeder.Initialize(ctx))

	users := NewCollection(s, Users, func(u domain.User) int { return u.ID }, zerolog.Nop())
	_, err := users.Append(ctx, func(id int) domain.User { return domain.User{ID: id, Name: "Extra"} })
	require.NoError(t, err)

	snapshot := map[string]string{}
	for _, key := range AllKeys() {
		if v, err := s.Get(ctx, key); err == nil {
			snapshot[key] = string(v)
		}
	}

	require.NoError(t, seeder.Initialize(ctx))
	for key, want := range snapshot {
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, want, string(got), key)
	}
	assert.Len(t, users.Load(ctx), 7)
}

func TestSeeder_DoesNotOverwriteCorruptValue(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	require.NoError(t, s.Set(ctx, Key(Roles), []byte("garbage")))

	require.NoError(t, NewSeeder(s, zerolog.Nop()).Initialize(ctx))

	raw, err := s.Get(ctx, Key(Roles))
	require.NoError(t, err)
	assert.Equal(t, "garbage", string(raw))

	content := NewCollection(s, Content, func(c domain.Content) int { return c.ID }, zerolog.Nop())
	assert.Len(t, content.Load(ctx), 3)
}

func TestSeeder_Clear(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()
	seeder := NewSeeder(s, zerolog.Nop())
	require.NoError(t, seeder.Initialize(ctx))
	require.NoError(t, s.Set(ctx, SessionKey, []byte(`{"id":1}`)))

	require.NoError(t, seeder.Clear(ctx))
	for _, key := range AllKeys() {
		_, err := s.Get(ctx, key)
		assert.ErrorIs(t, err, domain.ErrKeyNotFound, key)
	}
}

func TestDefaultData(t *testing.T) {
	users := DefaultUsers()
	require.Len(t, users, 6)
	assert.Equal(t, domain.StatusBanned, users[4].Status)

	roles := DefaultRoles()
	require.Len(t, roles, 4)
	assert.Equal(t, []domain.Permission{domain.PermissionAll}, roles[0].Permissions)

	assert.Len(t, DefaultComments(), 4)
	assert.Equal(t, 5, DefaultBlacklist()[0].UserID)
	assert.Len(t, DefaultReports(), 2)
	assert.Equal(t, 3245, DefaultContent()[0].Views)
}
