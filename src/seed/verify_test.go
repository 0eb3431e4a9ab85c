package seed

import (
	"context"
	"testing"

	"ferrum_seed/src/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAfterRun(t *testing.T) {
	store := newMemStore()
	seeder := newDefaultSeeder(t, store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	mismatches, err := seeder.Verify(context.Background(), store)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerifyReportsChangedValues(t *testing.T) {
	store := newMemStore()
	seeder := newDefaultSeeder(t, store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	store.strings["ferrum_1.myApp_user_admin"] = `{}`
	store.lists["ferrum_1.realm_testApp_clients"] = append(store.lists["ferrum_1.realm_testApp_clients"], `[]`)

	mismatches, err := seeder.Verify(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, mismatches, 2)
	assert.Equal(t, "ferrum_1.realm_testApp_clients", mismatches[0].Key)
	assert.Len(t, mismatches[0].Got, 2)
	assert.Equal(t, "ferrum_1.myApp_user_admin", mismatches[1].Key)
	assert.Equal(t, []string{`{}`}, mismatches[1].Got)
}

func TestVerifyMissingKey(t *testing.T) {
	seeder := newDefaultSeeder(t, newMemStore())

	_, err := seeder.Verify(context.Background(), newMemStore())
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestVerifyIgnoresFormatting(t *testing.T) {
	store := newMemStore()
	seeder := newDefaultSeeder(t, store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	// json.dumps spacing, as written by the python loader
	store.strings["ferrum_1.realm_myApp"] = `{"name": "myApp", "token_expiration": 600, "refresh_expiration": 300, "clients": []}`
	store.lists["ferrum_1.realm_testApp_clients"] = []string{
		`[{"id": "d4dc483d-7d0d-4d2e-a0a0-2d34b55e5207", "name": "test-test-app-client"}]`,
	}

	mismatches, err := seeder.Verify(context.Background(), store)
	require.NoError(t, err)
	assert.Empty(t, mismatches)
}

func TestVerifyReportsInvalidJSON(t *testing.T) {
	store := newMemStore()
	seeder := newDefaultSeeder(t, store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	store.strings["ferrum_1.realm_testApp"] = `not json`

	mismatches, err := seeder.Verify(context.Background(), store)
	require.NoError(t, err)
	require.Len(t, mismatches, 1)
	assert.Equal(t, "ferrum_1.realm_testApp", mismatches[0].Key)
}

func TestVerifyMissingListKey(t *testing.T) {
	store := newMemStore()
	seeder := newDefaultSeeder(t, store)

	_, err := seeder.Run(context.Background())
	require.NoError(t, err)

	delete(store.lists, "ferrum_1.realm_myApp_users")

	_, err = seeder.Verify(context.Background(), store)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
	assert.ErrorContains(t, err, "ferrum_1.realm_myApp_users")
}
