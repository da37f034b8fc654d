package infra_token_blacklist

import (
	"time"

	"github.com/go-redis/redis"
)

const revoked = "revoked"

// Driver stores revoked token ids in redis. The TTL matches the token's
// remaining lifetime, so entries clean themselves up.
type Driver struct {
	client *redis.Client
	key    string
}

func New(
	client *redis.Client,
	key string,
) *Driver {
	return &Driver{
		client: client,
		key:    key,
	}
}

func (d *Driver) Blacklist(jti string, ttl time.Duration) error {
	return d.client.Set(d.getFullKey(jti), revoked, ttl).Err()
}

func (d *Driver) IsBlacklisted(jti string) (bool, error) {
	val, err := d.client.Get(d.getFullKey(jti)).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return val == revoked, nil
}

func (d *Driver) getFullKey(jti string) string {
	if d.key != "" {
		return d.key + ":" + jti
	}
	return jti
}
