package middlewares

import (
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a per client token bucket that blocks a client for blockTime once it runs dry.
// Clients idle for longer than per plus blockTime are forgotten; their bucket would be full again.
type RateLimiter struct {
	log         *zap.Logger
	limiters    map[string]*rate.Limiter
	blocked     map[string]time.Time
	lastSeen    map[string]time.Time
	mu          sync.Mutex
	requests    int
	per         time.Duration
	blockTime   time.Duration
	idleTTL     time.Duration
	lastCleanup time.Time
	now         func() time.Time
}

func NewRateLimiter(logger *zap.Logger, requests int, per, blockTime time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		lastSeen:  make(map[string]time.Time),
		requests:  requests,
		per:       per,
		blockTime: blockTime,
		idleTTL:   per + blockTime,
		now:       time.Now,
	}
}

func (rl *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := utils.GetRealIP(r)

		if !rl.allow(ip) {
			utils.BuildErrorResponse(rl.log, w, exceptions.ErrTooManyRequests(nil, ip))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastCleanup) >= rl.idleTTL {
		rl.cleanup(now)
		rl.lastCleanup = now
	}
	rl.lastSeen[ip] = now

	if blockedUntil, found := rl.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(rl.blocked, ip)
	}

	limiter, exists := rl.limiters[ip]
	if !exists {
		// requests tokens refilled evenly over per
		limiter = rate.NewLimiter(rate.Every(rl.per/time.Duration(rl.requests)), rl.requests)
		rl.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		rl.blocked[ip] = now.Add(rl.blockTime)
		return false
	}
	return true
}

// cleanup drops clients that are neither blocked nor seen within idleTTL. Callers hold mu.
func (rl *RateLimiter) cleanup(now time.Time) {
	for ip, seen := range rl.lastSeen {
		if now.Sub(seen) < rl.idleTTL {
			continue
		}
		if blockedUntil, found := rl.blocked[ip]; found && now.Before(blockedUntil) {
			continue
		}
		delete(rl.lastSeen, ip)
		delete(rl.limiters, ip)
		delete(rl.blocked, ip)
	}
}

func (m *Middlewares) NewBookingRateLimiter() *RateLimiter {
	booking := m.InternalConfig.Booking
	return NewRateLimiter(m.Log, booking.RateLimitPerMinute, time.Minute, time.Duration(booking.RateLimitBlockSeconds)*time.Second)
}
