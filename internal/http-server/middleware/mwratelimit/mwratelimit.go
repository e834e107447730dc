package mwratelimit

import (
	"context"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"
	"log/slog"
	"net"
	"net/http"
	"roomBooker/internal/lib/api/response"
	"sync"
	"time"
)

// Limiter hands out one token bucket per client address.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
	ttl      time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewLimiter(rps float64, burst int, ttl time.Duration) *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
		ttl:      ttl,
	}
}

func (l *Limiter) get(client string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[client]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.visitors[client] = v
	}
	v.lastSeen = time.Now()

	return v.limiter
}

// Run evicts clients idle for longer than the TTL, once per TTL, until ctx is done.
func (l *Limiter) Run(ctx context.Context) {
	ticker := time.NewTicker(l.ttl)
	defer ticker.Stop()

	for {
		select {
		case now := <-ticker.C:
			l.evict(now)
		case <-ctx.Done():
			return
		}
	}
}

func (l *Limiter) evict(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for client, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.ttl {
			delete(l.visitors, client)
		}
	}
}

func New(log *slog.Logger, l *Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/ratelimit"),
		)

		log.Info("rate limit middleware enabled", slog.Float64("rps", float64(l.rps)), slog.Int("burst", l.burst))

		fn := func(w http.ResponseWriter, r *http.Request) {
			client := clientAddr(r)

			if !l.get(client).Allow() {
				log.Warn("rate limit exceeded", slog.String("client", client))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
