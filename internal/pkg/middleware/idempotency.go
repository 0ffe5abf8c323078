package middleware

import (
	"net/http"
	"time"

	"bookstore/internal/api/response"
	apperror "bookstore/internal/errors"
	"bookstore/internal/pkg/cache"
	"bookstore/internal/pkg/logger"
)

const idempotencyHeader = "Idempotency-Key"

// Idempotency impede que um mesmo lote seja aplicado duas vezes.
//
// Requisições com o header Idempotency-Key reservam a chave no Redis (SET NX);
// uma segunda requisição com a mesma chave dentro do TTL recebe 409. Se o handler
// responder com 5xx a reserva é removida para permitir nova tentativa.
// Requisições sem o header passam direto.
func Idempotency(client cache.Client, log logger.Logger, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(idempotencyHeader)
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			cacheKey := "idempotency:" + r.URL.Path + ":" + key

			ok, err := client.SetNX(ctx, cacheKey, 1, ttl)
			if err != nil {
				response.Error(w, r, log, apperror.NewCacheError("Falha ao reservar chave de idempotência", err))
				return
			}
			if !ok {
				log.Info("Requisição duplicada recusada.", map[string]interface{}{"idempotency_key": key, "path": r.URL.Path})
				response.Error(w, r, log, apperror.NewConflictError("a request with this Idempotency-Key was already processed."))
				return
			}

			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			if rec.status >= http.StatusInternalServerError {
				if err := client.Delete(ctx, cacheKey); err != nil {
					log.Warn("Falha ao liberar chave de idempotência.", map[string]interface{}{"error": err.Error()})
				}
			}
		})
	}
}
