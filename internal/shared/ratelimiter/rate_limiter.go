// Package ratelimiter は、ログインなどの操作の頻度をキーごとに制限します。
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter は、キーごとに操作を許可するかを判定するインターフェースです。
type Limiter interface {
	Allow(key string) bool
}

// window はキーごとの固定ウィンドウの状態です。
type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は、固定ウィンドウ方式でキーごとの操作回数を制限します。
// 上限に達した呼び出しは待機せず、即座に拒否されます。
type RateLimiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limit が0以下の場合は常に許可します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		windows:  make(map[string]*window),
		now:      time.Now,
	}
}

// Allow は key の現在のウィンドウでの呼び出しを数え、上限以内なら true を返します。
func (rl *RateLimiter) Allow(key string) bool {
	if rl.limit <= 0 {
		return true
	}
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
		rl.sweep(now)
	}
	w.count++
	return w.count <= rl.limit
}

// sweep は期限切れのウィンドウを削除します。呼び出し側でロックを保持していること。
func (rl *RateLimiter) sweep(now time.Time) {
	if len(rl.windows) < 1024 {
		return
	}
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
