package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the repositories depend on. It is the full
// UniversalClient so a cluster or sentinel client can be dropped in.
type Client interface {
	redis.UniversalClient
}
