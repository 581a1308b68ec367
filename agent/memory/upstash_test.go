package memory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type redisCall struct {
	auth    string
	command []any
}

func newFakeRedis(t *testing.T, store map[string]string) (*httptest.Server, *[]redisCall) {
	t.Helper()
	calls := &[]redisCall{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var cmd []any
		if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
			t.Errorf("decode command: %v", err)
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		*calls = append(*calls, redisCall{auth: r.Header.Get("Authorization"), command: cmd})

		name, _ := cmd[0].(string)
		switch name {
		case "GET":
			key := cmd[1].(string)
			val, ok := store[key]
			if !ok {
				_, _ = w.Write([]byte(`{"result":null}`))
				return
			}
			resp, _ := json.Marshal(map[string]any{"result": val})
			_, _ = w.Write(resp)
		case "SET":
			store[cmd[1].(string)] = cmd[2].(string)
			_, _ = w.Write([]byte(`{"result":"OK"}`))
		case "DEL":
			delete(store, cmd[1].(string))
			_, _ = w.Write([]byte(`{"result":1}`))
		default:
			_, _ = w.Write([]byte(`{"error":"unknown command"}`))
		}
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, calls
}

func newTestStore(t *testing.T, srv *httptest.Server, opts ...StoreOption) *UpstashRedisStore {
	t.Helper()
	store, err := NewUpstashRedisStore(UpstashRedisConfig{
		URL:     srv.URL,
		Token:   "test-token",
		Timeout: 2 * time.Second,
	}, opts...)
	if err != nil {
		t.Fatalf("NewUpstashRedisStore() error = %v", err)
	}
	return store
}

func TestUpstashStoreRoundTrip(t *testing.T) {
	t.Parallel()

	backing := map[string]string{}
	srv, calls := newFakeRedis(t, backing)
	store := newTestStore(t, srv)
	ctx := context.Background()

	history, err := store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if history != "" {
		t.Fatalf("expected empty history, got %q", history)
	}

	if err := store.Append(ctx, "s1", "câu hỏi", "trả lời"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if _, ok := backing["edu:conv:s1"]; !ok {
		t.Fatalf("expected key edu:conv:s1, have %v", backing)
	}

	history, err = store.Load(ctx, "s1")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if history != "Human: câu hỏi\nAI: trả lời" {
		t.Fatalf("unexpected history: %q", history)
	}

	for _, c := range *calls {
		if c.auth != "Bearer test-token" {
			t.Fatalf("unexpected auth header: %q", c.auth)
		}
	}
}

func TestUpstashStoreAppendSetsTTL(t *testing.T) {
	t.Parallel()

	srv, calls := newFakeRedis(t, map[string]string{})
	store := newTestStore(t, srv, WithTTL(time.Hour), WithKeyPrefix("chat:"))

	if err := store.Append(context.Background(), "s1", "q", "r"); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	var set []any
	for _, c := range *calls {
		if c.command[0] == "SET" {
			set = c.command
		}
	}
	if set == nil {
		t.Fatalf("expected a SET command")
	}
	if set[1] != "chat:s1" {
		t.Fatalf("unexpected key: %v", set[1])
	}
	if len(set) != 5 || set[3] != "EX" || set[4].(float64) != 3600 {
		t.Fatalf("unexpected TTL arguments: %v", set)
	}
}

func TestUpstashStoreDelete(t *testing.T) {
	t.Parallel()

	backing := map[string]string{"edu:conv:s1": `[{"question":"q","response":"r"}]`}
	srv, _ := newFakeRedis(t, backing)
	store := newTestStore(t, srv)

	if err := store.Delete(context.Background(), "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(backing) != 0 {
		t.Fatalf("expected key removed, have %v", backing)
	}
}

func TestUpstashStoreServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"WRONGPASS invalid password"}`))
	}))
	t.Cleanup(srv.Close)

	store := newTestStore(t, srv)
	_, err := store.Load(context.Background(), "s1")
	if err == nil || !strings.Contains(err.Error(), "WRONGPASS") {
		t.Fatalf("expected redis error, got %v", err)
	}
}

func TestUpstashStoreConfigValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewUpstashRedisStore(UpstashRedisConfig{URL: "", Token: "t"}); err == nil {
		t.Fatalf("expected error for empty url")
	}
	if _, err := NewUpstashRedisStore(UpstashRedisConfig{URL: "https://example.upstash.io", Token: " "}); err == nil {
		t.Fatalf("expected error for empty token")
	}
}

func TestTTLSeconds(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   time.Duration
		want int64
	}{
		{time.Second, 1},
		{1500 * time.Millisecond, 2},
		{time.Hour, 3600},
		{500 * time.Millisecond, 1},
	}
	for _, tc := range cases {
		if got := ttlSeconds(tc.in); got != tc.want {
			t.Fatalf("ttlSeconds(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
