package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/api/response"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/cache"
	"bookstore/internal/pkg/logger"
)

// RateLimiter limita o número de requisições por IP em uma janela fixa (contador no Redis).
func RateLimiter(client cache.Client, log logger.Logger, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			// 1. INCR é atômico: a primeira requisição da janela recebe 1 e abre o TTL
			count, err := client.Incr(ctx, key)
			if err != nil {
				response.Error(w, r, log, apperror.NewCacheError("Falha ao consultar rate limit", err))
				return
			}
			if count == 1 {
				if err := client.Expire(ctx, key, window); err != nil {
					response.Error(w, r, log, apperror.NewCacheError("Falha ao iniciar janela de rate limit", err))
					return
				}
			}

			// 2. Acima do limite a requisição é recusada
			if count > int64(limit) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				response.Error(w, r, log, apperror.NewTooManyRequestsError("too many requests, try again later."))
				return
			}

			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(int64(limit)-count, 10))
			next.ServeHTTP(w, r)
		})
	}
}
