package middleware

import (
	"hash/fnv"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/mapsim/internal/domain/dto"
	"github.com/guttosm/mapsim/internal/i18n"
)

const defaultNumShards = 16

// window is one caller's fixed rate window.
type window struct {
	used    int
	resetAt time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// ShardedRateLimiter is a fixed-window limiter whose callers are spread over
// independently locked shards.
type ShardedRateLimiter struct {
	shards   []*limiterShard
	rate     int
	period   time.Duration
	now      func() time.Time
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per window for every caller.
func NewRateLimiter(rate int, period time.Duration) *ShardedRateLimiter {
	return NewShardedRateLimiter(rate, period, defaultNumShards)
}

// NewShardedRateLimiter is NewRateLimiter with an explicit shard count.
func NewShardedRateLimiter(rate int, period time.Duration, numShards int) *ShardedRateLimiter {
	if numShards <= 0 {
		numShards = defaultNumShards
	}

	rl := &ShardedRateLimiter{
		shards: make([]*limiterShard, numShards),
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i] = &limiterShard{windows: make(map[string]*window)}
	}

	go rl.sweepLoop()
	return rl
}

func (rl *ShardedRateLimiter) shardFor(id string) *limiterShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	return rl.shards[h.Sum32()%uint32(len(rl.shards))]
}

// take consumes one request from id's current window. resetIn is the time left
// until the window rolls over.
func (rl *ShardedRateLimiter) take(id string) (allowed bool, remaining int, resetIn time.Duration) {
	shard := rl.shardFor(id)
	now := rl.now()

	shard.mu.Lock()
	defer shard.mu.Unlock()

	w, ok := shard.windows[id]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rl.period)}
		shard.windows[id] = w
	}
	resetIn = w.resetAt.Sub(now)

	if w.used >= rl.rate {
		return false, 0, resetIn
	}
	w.used++
	return true, rl.rate - w.used, resetIn
}

// RateLimit limits requests per client IP.
func (rl *ShardedRateLimiter) RateLimit() gin.HandlerFunc {
	return rl.limit(func(c *gin.Context) string {
		return c.ClientIP()
	})
}

// PrincipalRateLimit limits requests per authenticated caller, falling back to
// the client IP for anonymous requests. It must run after authentication.
func (rl *ShardedRateLimiter) PrincipalRateLimit() gin.HandlerFunc {
	return rl.limit(principalIdentifier)
}

func principalIdentifier(c *gin.Context) string {
	if p := GetPrincipal(c); p != "" {
		return "principal:" + p
	}
	return "ip:" + c.ClientIP()
}

func (rl *ShardedRateLimiter) limit(identify func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetIn := rl.take(identify(c))
		resetSecs := strconv.Itoa(ceilSeconds(resetIn))

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", resetSecs)

		if allowed {
			c.Next()
			return
		}

		c.Header("Retry-After", resetSecs)
		msg := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusTooManyRequests,
			dto.NewError(dto.ErrCodeRateLimit, msg).WithRequestID(GetRequestID(c)))
	}
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

func (rl *ShardedRateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep forgets callers whose window ended more than one period ago.
func (rl *ShardedRateLimiter) sweep() {
	cutoff := rl.now().Add(-rl.period)
	for _, shard := range rl.shards {
		shard.mu.Lock()
		for id, w := range shard.windows {
			if w.resetAt.Before(cutoff) {
				delete(shard.windows, id)
			}
		}
		shard.mu.Unlock()
	}
}

// Stop ends the sweep goroutine. It is safe to call more than once.
func (rl *ShardedRateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// Stats reports the tracked callers in total and per shard.
func (rl *ShardedRateLimiter) Stats() (total int, perShard []int) {
	perShard = make([]int, len(rl.shards))
	for i, shard := range rl.shards {
		shard.mu.Lock()
		perShard[i] = len(shard.windows)
		shard.mu.Unlock()
		total += perShard[i]
	}
	return total, perShard
}
