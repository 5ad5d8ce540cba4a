package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, rest http.HandlerFunc) (*Client, *MemoryTokenStore) {
	t.Helper()
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(AuthResponse{Token: "issued-token"})
	}))
	t.Cleanup(auth.Close)

	restSrv := httptest.NewServer(rest)
	t.Cleanup(restSrv.Close)

	store := &MemoryTokenStore{}
	return NewClient(auth.URL, restSrv.URL, store), store
}

func TestLoginStoresToken(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	require.NoError(t, client.Login("a@example.com", "pw"))

	token, err := store.Token()
	require.NoError(t, err)
	require.Equal(t, "issued-token", token)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var gotAuth string
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Profile{ID: 7, Name: "Ada", Email: "ada@example.com"})
	})
	require.NoError(t, store.SetToken("held-token"))

	p, err := client.Me()
	require.NoError(t, err)
	require.Equal(t, "Bearer held-token", gotAuth)
	require.Equal(t, int64(7), p.ID)
	require.Equal(t, "Ada", p.Name)
}

func TestStatusErrorSurfaced(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Me()
	require.Error(t, err)
	require.Contains(t, err.Error(), "401")
}

func TestFeedDecodesPosts(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/posts/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]Post{
			{ID: 1, ProfileID: 7, Content: "hello"},
			{ID: 2, ProfileID: 8, Content: "world"},
		})
	})
	require.NoError(t, store.SetToken("t"))

	posts, err := client.Feed()
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "hello", posts[0].Content)
}

func TestGenerateCVReturnsBody(t *testing.T) {
	client, store := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/cv/generate/7", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	})
	require.NoError(t, store.SetToken("t"))

	doc, err := client.GenerateCV(7)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-1.4 fake"), doc)
}

func TestFileTokenStoreRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	store, err := NewFileTokenStore()
	require.NoError(t, err)

	token, err := store.Token()
	require.NoError(t, err)
	require.Empty(t, token)

	require.NoError(t, store.SetToken("abc"))
	token, err = store.Token()
	require.NoError(t, err)
	require.Equal(t, "abc", token)
}
