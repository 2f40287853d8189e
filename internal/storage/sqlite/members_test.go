package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMember(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	t.Run("round-trips all fields", func(t *testing.T) {
		created, err := store.CreateMember(ctx, "Ana", "a@x.com", "Lead")
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, time.Now().Format("2006-01-02"), created.JoinedOn)

		members, err := store.ListMembers(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, members)

		last := members[len(members)-1]
		assert.Equal(t, created.ID, last.ID)
		assert.Equal(t, "Ana", last.Name)
		assert.Equal(t, "a@x.com", last.Email)
		assert.Equal(t, "Lead", last.Role)
		assert.Equal(t, created.JoinedOn, last.JoinedOn)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		created, err := store.CreateMember(ctx, "  Bruno  ", " b@x.com ", " Dev ")
		require.NoError(t, err)
		assert.Equal(t, "Bruno", created.Name)
		assert.Equal(t, "b@x.com", created.Email)
		assert.Equal(t, "Dev", created.Role)
	})

	t.Run("rejects empty fields", func(t *testing.T) {
		for _, tc := range []struct {
			name, email, role string
		}{
			{"", "a@x.com", "Lead"},
			{"Ana", "", "Lead"},
			{"Ana", "a@x.com", ""},
			{"   ", "a@x.com", "Lead"},
		} {
			_, err := store.CreateMember(ctx, tc.name, tc.email, tc.role)
			assert.Error(t, err)
		}
	})

	t.Run("allows duplicate name and email", func(t *testing.T) {
		first, err := store.CreateMember(ctx, "Dup", "dup@x.com", "Dev")
		require.NoError(t, err)
		second, err := store.CreateMember(ctx, "Dup", "dup@x.com", "Dev")
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
	})
}

func TestListMembersOrder(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.CreateMember(ctx, "Novo Membro", "novo@x.com", "Dev")
	require.NoError(t, err)

	members, err := store.ListMembers(ctx)
	require.NoError(t, err)

	// Surrogate keys ascending: seeded members first, new one last.
	for i := 1; i < len(members); i++ {
		assert.Greater(t, members[i].ID, members[i-1].ID)
	}
	assert.Equal(t, "Novo Membro", members[len(members)-1].Name)
}

func TestGetMemberMissing(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetMember(context.Background(), 9999)
	assert.ErrorContains(t, err, "not found")
}
