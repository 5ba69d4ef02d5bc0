package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/princinho/arcadiabackend/config"
	"github.com/princinho/arcadiabackend/controllers"
	"github.com/princinho/arcadiabackend/database"
	"github.com/princinho/arcadiabackend/database/dbtest"
	"github.com/princinho/arcadiabackend/middleware"
	"github.com/princinho/arcadiabackend/utils"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var objectIDPattern = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type testServer struct {
	router http.Handler
	store  *dbtest.MemoryStore
}

func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	store := dbtest.NewMemoryStore("arcadia")
	if seed {
		utils.SeedCatalog(context.Background(), store, zerolog.Nop())
	}
	cfg := config.DefaultConfig()
	cfg.DatabaseURL = "mongodb://localhost:27017"
	app := controllers.NewApp(database.NewCatalog(store), cfg, zerolog.Nop())
	return &testServer{router: controllers.NewRouter(app), store: store}
}

func newStorelessServer() http.Handler {
	app := controllers.NewApp(database.NewCatalog(nil), config.DefaultConfig(), zerolog.Nop())
	return controllers.NewRouter(app)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRoot(t *testing.T) {
	s := newTestServer(t, false)

	w := do(t, s.router, http.MethodGet, "/", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, map[string]string{"brand": "Arcadia", "status": "ok"}, decode[map[string]string](t, w))
}

func TestGetProducts(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodGet, "/api/products", nil)

	require.Equal(t, http.StatusOK, w.Code)
	products := decode[[]map[string]any](t, w)
	require.Len(t, products, 3)
	for _, p := range products {
		id, ok := p["_id"].(string)
		require.True(t, ok, "id must be serialized as a string")
		assert.Regexp(t, objectIDPattern, id)
	}
}

func TestGetProduct(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodGet, "/api/products/arcadia-halo", nil)

	require.Equal(t, http.StatusOK, w.Code)
	p := decode[map[string]any](t, w)
	assert.Equal(t, "Arcadia Halo", p["name"])
	assert.Equal(t, 1890.0, p["base_price"])
	assert.Equal(t, []any{3000.0, 4000.0, 5000.0, 6500.0}, p["temperatures"])
	assert.Regexp(t, objectIDPattern, p["_id"])
}

func TestGetProductNotFound(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodGet, "/api/products/no-such-product", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode[map[string]string](t, w)["error"])
}

func TestQuotePrice(t *testing.T) {
	s := newTestServer(t, true)

	tests := []struct {
		name string
		body map[string]any
		want float64
	}{
		{"gold large warm", map[string]any{"slug": "arcadia-halo", "finish": "gold", "size": "L", "temperature": 4000}, 2608.2},
		{"unknown finish xl cool", map[string]any{"slug": "arcadia-halo", "finish": "unknown", "size": "XL", "temperature": 6500}, 2877.53},
		{"empty options", map[string]any{"slug": "arcadia-prism", "finish": "", "size": "", "temperature": 0}, 2509.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPost, "/api/price", tt.body)

			require.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.Equal(t, tt.want, decode[map[string]float64](t, w)["price"])
		})
	}
}

func TestQuotePriceUnknownSlug(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodPost, "/api/price", map[string]any{
		"slug": "no-such-product", "finish": "gold", "size": "L", "temperature": 4000,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", decode[map[string]string](t, w)["error"])
}

func TestQuotePriceRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t, true)

	for name, body := range map[string]any{
		"missing temperature": map[string]any{"slug": "arcadia-halo", "finish": "gold", "size": "L"},
		"missing slug":        map[string]any{"finish": "gold", "size": "L", "temperature": 4000},
		"wrong type":          map[string]any{"slug": "arcadia-halo", "finish": "gold", "size": "L", "temperature": "warm"},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPost, "/api/price", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateAndListReviews(t *testing.T) {
	s := newTestServer(t, true)

	comment := "Stunning in the hallway."
	for _, body := range []map[string]any{
		{"product_slug": "arcadia-halo", "author": "Ana", "rating": 5, "comment": comment},
		{"product_slug": "arcadia-halo", "author": "Ben", "rating": 4},
		{"product_slug": "arcadia-prism", "author": "Cy", "rating": 1},
	} {
		w := do(t, s.router, http.MethodPost, "/api/reviews", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Regexp(t, objectIDPattern, decode[map[string]string](t, w)["inserted_id"])
	}

	w := do(t, s.router, http.MethodGet, "/api/reviews?product=arcadia-halo", nil)
	require.Equal(t, http.StatusOK, w.Code)
	halo := decode[[]map[string]any](t, w)
	require.Len(t, halo, 2)
	assert.Equal(t, "Ana", halo[0]["author"])
	assert.Equal(t, comment, halo[0]["comment"])
	assert.Nil(t, halo[1]["comment"])

	w = do(t, s.router, http.MethodGet, "/api/reviews", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 3)
}

func TestCreateReviewValidation(t *testing.T) {
	s := newTestServer(t, true)

	for name, body := range map[string]any{
		"rating too high":  map[string]any{"product_slug": "arcadia-halo", "author": "Ana", "rating": 6},
		"rating too low":   map[string]any{"product_slug": "arcadia-halo", "author": "Ana", "rating": 0},
		"missing author":   map[string]any{"product_slug": "arcadia-halo", "rating": 3},
		"not a slug":       map[string]any{"product_slug": "Arcadia Halo", "author": "Ana", "rating": 3},
		"missing product":  map[string]any{"author": "Ana", "rating": 3},
		"rating as string": map[string]any{"product_slug": "arcadia-halo", "author": "Ana", "rating": "five"},
	} {
		t.Run(name, func(t *testing.T) {
			w := do(t, s.router, http.MethodPost, "/api/reviews", body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	assert.Zero(t, s.store.Len(database.ReviewsCollection))
}

func TestBlogAndFAQ(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodGet, "/api/blog", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]any](t, w), 2)

	w = do(t, s.router, http.MethodGet, "/api/blog/light-as-architecture", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Light as Architecture", decode[map[string]any](t, w)["title"])

	w = do(t, s.router, http.MethodGet, "/api/blog/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Post not found", decode[map[string]string](t, w)["error"])

	w = do(t, s.router, http.MethodGet, "/api/faq", nil)
	require.Equal(t, http.StatusOK, w.Code)
	faqs := decode[[]map[string]any](t, w)
	require.Len(t, faqs, 3)
	assert.Equal(t, "What is the lifespan?", faqs[1]["question"])
}

func TestStorelessMode(t *testing.T) {
	h := newStorelessServer()

	for _, path := range []string{"/api/products", "/api/reviews", "/api/reviews?product=arcadia-halo", "/api/blog", "/api/faq"} {
		w := do(t, h, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}

	w := do(t, h, http.MethodGet, "/api/products/arcadia-halo", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/price", map[string]any{"slug": "arcadia-halo", "finish": "gold", "size": "L", "temperature": 4000})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, h, http.MethodPost, "/api/reviews", map[string]any{"product_slug": "arcadia-halo", "author": "Ana", "rating": 5})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(t, h, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[controllers.DatabaseStatus](t, w)
	assert.Equal(t, "⚠️  Available but not initialized", status.Database)
	assert.Equal(t, "Not Connected", status.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", status.DatabaseURL)
	assert.Empty(t, status.Collections)
}

func TestStoreErrors(t *testing.T) {
	s := newTestServer(t, true)
	s.store.Err = errors.New("server selection timeout after waiting for a suitable server to be available")

	w := do(t, s.router, http.MethodGet, "/api/products", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, s.router, http.MethodPost, "/api/reviews", map[string]any{"product_slug": "arcadia-halo", "author": "Ana", "rating": 5})
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(t, s.router, http.MethodGet, "/test", nil)
	require.Equal(t, http.StatusOK, w.Code)
	status := decode[controllers.DatabaseStatus](t, w)
	assert.Equal(t, "Connected", status.ConnectionStatus)
	assert.Equal(t, "⚠️  Connected but Error: server selection timeout after waiting for a suita", status.Database)
}

func TestDatabaseStatus(t *testing.T) {
	s := newTestServer(t, true)

	w := do(t, s.router, http.MethodGet, "/test", nil)

	require.Equal(t, http.StatusOK, w.Code)
	status := decode[controllers.DatabaseStatus](t, w)
	assert.Equal(t, "✅ Running", status.Backend)
	assert.Equal(t, "✅ Connected & Working", status.Database)
	assert.Equal(t, "✅ Set", status.DatabaseURL)
	assert.Equal(t, "✅ Set", status.DatabaseName)
	assert.ElementsMatch(t, []string{database.BlogPostsCollection, database.FAQsCollection, database.ProductsCollection}, status.Collections)
}

func TestCORSAndRequestID(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://shop.arcadia.example")
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://shop.arcadia.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
}
