package session

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/miband/internal/client/huami"
	"github.com/garrettladley/miband/internal/redis"
)

func testStore(t *testing.T, store Store) {
	t.Helper()
	ctx := t.Context()

	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() on empty store error = %v, want %v", err, ErrNotFound)
	}

	first := New(huami.Session{AppToken: "app-1", UserID: "1000001", LoginToken: "lt-1"}, "DE",
		time.Date(2019, 3, 1, 8, 30, 15, 999, time.UTC))
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	second := New(huami.Session{AppToken: "app-2", UserID: "1000001"}, "US",
		time.Date(2019, 3, 2, 9, 0, 0, 0, time.UTC))
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("Save() overwrite error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if err := store.Delete(ctx); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() after Delete() error = %v, want %v", err, ErrNotFound)
	}
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	testStore(t, NewMemoryStore())
}

func TestSQLiteStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "miband.db")
	store, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	testStore(t, store)
}

func TestSQLiteStorePersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "miband.db")
	want := New(huami.Session{AppToken: "app", UserID: "7"}, "DE", time.Unix(1551398400, 0))

	store, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	if err := store.Save(t.Context(), want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	_ = store.Close()

	reopened, err := OpenSQLite(t.Context(), path)
	if err != nil {
		t.Fatalf("OpenSQLite() reopen error = %v", err)
	}
	t.Cleanup(func() { _ = reopened.Close() })

	got, err := reopened.Load(t.Context())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client, err := redis.New(t.Context(), redis.Config{URL: "redis://" + srv.Addr()})
	if err != nil {
		t.Fatalf("redis.New() error = %v", err)
	}
	store := NewRedisStore(client)
	t.Cleanup(func() { _ = store.Close() })
	return store, srv
}

func TestRedisStore(t *testing.T) {
	t.Parallel()

	store, _ := newRedisStore(t)
	testStore(t, store)
}

func TestRedisStoreKey(t *testing.T) {
	t.Parallel()

	store, srv := newRedisStore(t)

	s := New(huami.Session{AppToken: "app-1", UserID: "7"}, "DE", time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC))
	if err := store.Save(t.Context(), s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !srv.Exists(redisKey) {
		t.Fatalf("key %q not written", redisKey)
	}

	if err := srv.Set(redisKey, "not json"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := store.Load(t.Context()); err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Load() of corrupt value error = %v, want a decode error", err)
	}
}

func TestRedisNewFailsFast(t *testing.T) {
	t.Parallel()

	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	if _, err := redis.New(t.Context(), redis.Config{URL: "redis://" + addr, PingTimeout: time.Second}); err == nil {
		t.Error("redis.New() against a stopped server error = nil, want ping failure")
	}
	if _, err := redis.New(t.Context(), redis.Config{URL: "http://" + addr}); err == nil {
		t.Error("redis.New() with a non-redis URL error = nil, want parse failure")
	}
}

func TestSessionHuamiRoundTrip(t *testing.T) {
	t.Parallel()

	in := huami.Session{AppToken: "app", UserID: "42", LoginToken: "lt"}
	if diff := cmp.Diff(in, New(in, "DE", time.Now()).Huami()); diff != "" {
		t.Errorf("Huami() mismatch (-want +got):\n%s", diff)
	}
}
