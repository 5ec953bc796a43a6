package meter

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-weigh/weigh"
	"github.com/redis/go-redis/v9"
)

// Distributed shares one window budget between replicas through a Redis
// token bucket in weight units. When Redis is unreachable it degrades to a
// per process Local meter until a ping succeeds again.
type Distributed struct {
	budget   weigh.Weight
	window   time.Duration
	redis    *redis.Client
	tokenKey string
	tsKey    string
	alive    uint32
	l        sync.Mutex
	monitor  bool
	local    *Local
}

func NewDistributed(budget weigh.Weight, window time.Duration, rdb *redis.Client, key string) *Distributed {
	if budget == 0 || budget > weigh.MaxBlockWeight {
		budget = weigh.MaxBlockWeight
	}
	if window <= 0 {
		window = time.Second
	}
	return &Distributed{
		budget:   budget,
		window:   window,
		redis:    rdb,
		tokenKey: fmt.Sprintf("weigh:budget:%s:tokens", key),
		tsKey:    fmt.Sprintf("weigh:budget:%s:ts", key),
		alive:    1,
		local:    NewLocal(budget, window),
	}
}

const script string = `
	local rate = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local requested = tonumber(ARGV[4])
	local fill_time = capacity/rate
	local ttl = math.floor(fill_time*2)
	if ttl < 1 then
		ttl = 1
	end
	local last_tokens = tonumber(redis.call("get", KEYS[1]))
	if last_tokens == nil then
		last_tokens = capacity
	end

	local last_refreshed = tonumber(redis.call("get", KEYS[2]))
	if last_refreshed == nil then
		last_refreshed = 0
	end

	local delta = math.max(0, now-last_refreshed)
	local filled_tokens = math.min(capacity, last_tokens+(delta*rate))
	local allowed = filled_tokens >= requested
	local new_tokens = filled_tokens
	if allowed then
		new_tokens = filled_tokens - requested
	end

	redis.call("setex", KEYS[1], ttl, new_tokens)
	redis.call("setex", KEYS[2], ttl, now)

	return allowed
`

func (m *Distributed) Allow(ctx context.Context, class weigh.Class, w weigh.Weight) bool {
	if class == weigh.Operational {
		// charge best effort, operational dispatches are always admitted
		m.reserve(ctx, w)
		return true
	}
	if w > m.budget {
		return false
	}
	return m.reserve(ctx, w)
}

func (m *Distributed) reserve(ctx context.Context, w weigh.Weight) bool {
	if w > m.budget {
		w = m.budget
	}
	if atomic.LoadUint32(&m.alive) == 0 {
		return m.local.Allow(ctx, weigh.Normal, w)
	}

	keys := []string{m.tokenKey, m.tsKey}
	args := []interface{}{
		fmt.Sprintf("%f", float64(m.budget)/m.window.Seconds()),
		uint64(m.budget),
		time.Now().Unix(),
		uint64(w),
	}
	result, err := redis.NewScript(script).Run(ctx, m.redis, keys, args...).Result()
	if err == redis.Nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return false
	}
	if err != nil {
		m.startMonitor()
		return m.local.Allow(ctx, weigh.Normal, w)
	}

	code, ok := result.(int64)
	if !ok {
		m.startMonitor()
		return m.local.Allow(ctx, weigh.Normal, w)
	}
	return code == 1
}

func (m *Distributed) startMonitor() {
	m.l.Lock()
	defer m.l.Unlock()

	if m.monitor {
		return
	}

	m.monitor = true
	atomic.StoreUint32(&m.alive, 0)

	go m.waitForRedis()
}

func (m *Distributed) waitForRedis() {
	tk := time.NewTicker(100 * time.Millisecond)
	defer func() {
		tk.Stop()
		m.l.Lock()
		m.monitor = false
		m.l.Unlock()
	}()

	for range tk.C {
		result, err := m.redis.Ping(context.Background()).Result()
		if err == nil && result == "PONG" {
			atomic.StoreUint32(&m.alive, 1)
			return
		}
	}
}
