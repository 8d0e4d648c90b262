package redis

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrLocked is returned when another invocation holds the records lock.
var ErrLocked = errors.New("records are locked by another invocation")

// releaseScript deletes the lock only if it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Lock serialises invocations that share the same records.
// The TTL bounds how long a crashed invocation can block the others.
type Lock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	token  string
}

func NewLock(client *redis.Client, ttl time.Duration) *Lock {
	return &Lock{client: client, key: "quiz:lock", ttl: ttl}
}

// Acquire takes the lock or returns ErrLocked.
func (l *Lock) Acquire(ctx context.Context) error {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	ok, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return ErrLocked
	}
	l.token = token
	return nil
}

// Release frees the lock if this Lock still owns it.
func (l *Lock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	err := releaseScript.Run(ctx, l.client, []string{l.key}, l.token).Err()
	l.token = ""
	if err == redis.Nil {
		return nil
	}
	return err
}
