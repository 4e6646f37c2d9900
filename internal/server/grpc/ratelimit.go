package grpc

import (
	"context"
	"sync"

	"github.com/mango-services/loyalty-auth/internal/netx"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// maxTrackedPeers bounds the limiter table; it is reset when exceeded.
const maxTrackedPeers = 10000

// PeerRateLimiter keeps one token bucket per remote host.
type PeerRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func NewPeerRateLimiter(requestsPerSecond float64, burst int) *PeerRateLimiter {
	return &PeerRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (rl *PeerRateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.limiters[key]
	if !exists {
		if len(rl.limiters) >= maxTrackedPeers {
			rl.limiters = make(map[string]*rate.Limiter)
		}
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}

	return limiter
}

// Allow reports whether key may make one more call now.
func (rl *PeerRateLimiter) Allow(key string) bool {
	return rl.getLimiter(key).Allow()
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	return netx.HostOnly(p.Addr.String())
}

// Interceptor throttles the listed methods per peer host. Other methods pass
// through untouched.
func (rl *PeerRateLimiter) Interceptor(methods map[string]bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if methods[info.FullMethod] && !rl.Allow(peerKey(ctx)) {
			return nil, status.Error(codes.ResourceExhausted, "too many requests")
		}
		return handler(ctx, req)
	}
}
