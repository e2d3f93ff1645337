package implementation

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-notetaking-be/internal/repository/contract"
	"ai-notetaking-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadEnv() {
	if err := godotenv.Load("../../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}
}

func exerciseStore(t *testing.T, store contract.KeyValueRepository) {
	ctx := context.Background()
	key := "eduai_test_" + uuid.NewString()
	t.Cleanup(func() { _ = store.Delete(ctx, key) })

	_, err := store.Get(ctx, key)
	assert.ErrorIs(t, err, contract.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, key, []byte(`{"theme":"dark"}`)))
	require.NoError(t, store.Set(ctx, key, []byte(`{"theme":"light"}`)))

	got, err := store.Get(ctx, key)
	require.NoError(t, err)
	assert.JSONEq(t, `{"theme":"light"}`, string(got))

	require.NoError(t, store.Delete(ctx, key))
	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, contract.ErrKeyNotFound)
}

func TestKeyValueRepository_Postgres(t *testing.T) {
	loadEnv()

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	exerciseStore(t, NewKeyValueRepository(db))
}

func TestKeyValueRepository_Redis(t *testing.T) {
	loadEnv()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("Skipping integration test: REDIS_URL not set")
	}

	opt, err := redis.ParseURL(url)
	require.NoError(t, err)
	rdb := redis.NewClient(opt)
	t.Cleanup(func() { _ = rdb.Close() })

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Skipping integration test: redis unreachable: %v", err)
	}

	exerciseStore(t, NewRedisKeyValueRepository(rdb))
}
