package redis

import (
	"errors"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client wraps redis.UniversalClient to allow for easy mocking
type Client interface {
	redis.UniversalClient
}

// IsNil reports whether err is the key-missing sentinel.
func IsNil(err error) bool {
	return errors.Is(err, redis.Nil)
}
