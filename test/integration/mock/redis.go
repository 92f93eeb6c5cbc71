package mock

import (
	"path"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *Redis

// Redis pairs an in-process Redis server with a client connected to it.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts the shared in-process Redis once.
func NewRedis() *Redis {
	redisConnOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisConn = &Redis{
			Server: server,
			Client: redis.NewClient(&redis.Options{Addr: server.Addr()}),
		}
	})
	return redisConn
}

// Clear drops every key.
func (r *Redis) Clear() {
	r.Server.FlushAll()
}

// Keys lists the keys matching a glob pattern.
func (r *Redis) Keys(pattern string) []string {
	var matched []string
	for _, key := range r.Server.Keys() {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched
}
