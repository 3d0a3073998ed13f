package middleware

import (
	"context"
	"encoding/json"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"gofinanceiro/internal/domain"
	"gofinanceiro/internal/pkg/cache"
	"gofinanceiro/internal/pkg/logger"
)

// RateLimiter limita as requisições por IP numa janela fixa, com contadores no Redis.
// Se o Redis falhar, a requisição segue (fail open) e a falha é registrada.
// O Redis expira chaves em segundos, então janelas menores viram 1s.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	if window < time.Second {
		window = time.Second
	}
	expire := func(ctx context.Context, key string) {
		if err := client.Expire(ctx, key, window); err != nil {
			log.Warn("Falha ao definir expiração do rate limit.", map[string]interface{}{"error": err.Error(), "key": key})
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			key := "rate-limit:" + ip
			ctx := r.Context()

			count, err := client.Incr(ctx, key)
			if err != nil {
				log.Warn("Rate limiter indisponível, requisição liberada.", map[string]interface{}{"error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}
			// Primeira requisição da janela: inicia a expiração do contador.
			if count == 1 {
				expire(ctx, key)
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				retryAfter := window
				ttl, err := client.TTL(ctx, key)
				switch {
				case err != nil:
					log.Warn("Falha ao consultar expiração do rate limit.", map[string]interface{}{"error": err.Error(), "key": key})
				case ttl > 0:
					retryAfter = ttl
				default:
					// Contador sem expiração (o Expire da primeira requisição falhou):
					// sem isso o IP ficaria bloqueado para sempre.
					expire(ctx, key)
				}
				w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(retryAfter)))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Category: "RATE_LIMITED",
					Message:  "Limite de requisições excedido. Tente novamente mais tarde.",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// retryAfterSeconds arredonda para cima, com mínimo de 1 segundo.
func retryAfterSeconds(d time.Duration) int {
	secs := int(math.Ceil(d.Seconds()))
	if secs < 1 {
		return 1
	}
	return secs
}
