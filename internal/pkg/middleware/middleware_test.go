package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/domain"
	"bookstore/internal/pkg/logger"
	"bookstore/internal/pkg/middleware"
	"bookstore/internal/pkg/token"
)

// fakeCache é um cache.Client em memória; Expire só registra o TTL pedido.
type fakeCache struct {
	mu      sync.Mutex
	data    map[string]int
	expires map[string]int
	err     error
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]int{}, expires: map[string]int{}}
}

func (c *fakeCache) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return false, c.err
	}
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = value.(int)
	return true, nil
}

func (c *fakeCache) Incr(ctx context.Context, key string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return 0, c.err
	}
	c.data[key]++
	return int64(c.data[key]), nil
}

func (c *fakeCache) Expire(ctx context.Context, key string, exp time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expires[key]++
	return c.err
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) domain.ErrorResponse {
	t.Helper()
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

// TestAuth_MissingToken recusa requisições sem Authorization.
func TestAuth_MissingToken(t *testing.T) {
	tokenSvc := token.NewService("segredo", time.Hour)
	h := middleware.NewAuthMiddleware(tokenSvc, logger.NewNopLogger())(okHandler)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/restock", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, rr).Category)
}

// TestAuth_InvalidToken recusa tokens assinados com outra chave.
func TestAuth_InvalidToken(t *testing.T) {
	other, err := token.NewService("outra-chave", time.Hour).GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)

	h := middleware.NewAuthMiddleware(token.NewService("segredo", time.Hour), logger.NewNopLogger())(okHandler)
	req := httptest.NewRequest(http.MethodPost, "/api/restock", nil)
	req.Header.Set("Authorization", "Bearer "+other)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// TestAuth_AdminAllowed valida o encadeamento Auth + Permission com papel admin.
func TestAuth_AdminAllowed(t *testing.T) {
	tokenSvc := token.NewService("segredo", time.Hour)
	tok, err := tokenSvc.GenerateToken("admin", domain.RoleAdmin)
	require.NoError(t, err)

	var seen middleware.UserClaims
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = middleware.GetUserClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	log := logger.NewNopLogger()
	h := middleware.Chain(inner,
		middleware.NewAuthMiddleware(tokenSvc, log),
		middleware.PermissionMiddleware(log, domain.RoleAdmin),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/restock", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, middleware.UserClaims{Username: "admin", Role: domain.RoleAdmin}, seen)
}

// TestPermission_Forbidden recusa papel sem permissão.
func TestPermission_Forbidden(t *testing.T) {
	tokenSvc := token.NewService("segredo", time.Hour)
	tok, err := tokenSvc.GenerateToken("leitor", domain.RoleUser)
	require.NoError(t, err)

	log := logger.NewNopLogger()
	h := middleware.Chain(okHandler,
		middleware.NewAuthMiddleware(tokenSvc, log),
		middleware.PermissionMiddleware(log, domain.RoleAdmin),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/restock", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, rr).Category)
}

// TestRateLimiter_BlocksAfterLimit permite limit requisições por IP e recusa as seguintes.
func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	h := middleware.RateLimiter(newFakeCache(), logger.NewNopLogger(), 3, time.Minute)(okHandler)

	codes := make([]int, 0, 4)
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	assert.Equal(t, []int{200, 200, 200, 429}, codes)

	// Outro IP tem seu próprio contador.
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2", rr.Header().Get("X-RateLimit-Remaining"))
}

// TestRateLimiter_ConcurrentFirstRequests conta todas as requisições simultâneas
// que abrem a janela e define o TTL uma única vez.
func TestRateLimiter_ConcurrentFirstRequests(t *testing.T) {
	c := newFakeCache()
	const limit = 20
	h := middleware.RateLimiter(c, logger.NewNopLogger(), limit, time.Minute)(okHandler)

	var wg sync.WaitGroup
	for i := 0; i < limit; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
			req.RemoteAddr = "10.0.0.9:1234"
			h.ServeHTTP(httptest.NewRecorder(), req)
		}()
	}
	wg.Wait()

	assert.Equal(t, limit, c.data["rate-limit:10.0.0.9"])
	assert.Equal(t, 1, c.expires["rate-limit:10.0.0.9"])

	// A janela está cheia: a próxima é recusada.
	req := httptest.NewRequest(http.MethodGet, "/api/books", nil)
	req.RemoteAddr = "10.0.0.9:1234"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

// TestRateLimiter_CacheFailure responde 500 quando o Redis falha.
func TestRateLimiter_CacheFailure(t *testing.T) {
	c := newFakeCache()
	c.err = errors.New("conexão recusada")
	h := middleware.RateLimiter(c, logger.NewNopLogger(), 3, time.Minute)(okHandler)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/books", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

// TestIdempotency_RejectsDuplicate processa a primeira requisição e recusa a repetição.
func TestIdempotency_RejectsDuplicate(t *testing.T) {
	calls := 0
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	h := middleware.Idempotency(newFakeCache(), logger.NewNopLogger(), time.Hour)(inner)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/order", nil)
		req.Header.Set("Idempotency-Key", "pedido-1")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusOK, send())
	assert.Equal(t, http.StatusConflict, send())
	assert.Equal(t, 1, calls)
}

// TestIdempotency_ReleasesKeyOnServerError permite nova tentativa após um 5xx.
func TestIdempotency_ReleasesKeyOnServerError(t *testing.T) {
	status := http.StatusInternalServerError
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	})
	h := middleware.Idempotency(newFakeCache(), logger.NewNopLogger(), time.Hour)(inner)

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/api/order", nil)
		req.Header.Set("Idempotency-Key", "pedido-2")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusInternalServerError, send())
	status = http.StatusOK
	assert.Equal(t, http.StatusOK, send())
}

// TestIdempotency_WithoutHeader não interfere em requisições sem chave.
func TestIdempotency_WithoutHeader(t *testing.T) {
	h := middleware.Idempotency(newFakeCache(), logger.NewNopLogger(), time.Hour)(okHandler)

	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/order", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

// TestRequestID gera um id novo ou propaga o informado pelo cliente.
func TestRequestID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	})
	h := middleware.RequestID(inner)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rr.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", seen)
}
