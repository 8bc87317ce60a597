package config

const (
	TokenStoreVar  = "TOKEN_STORE"
	RedisAddrVar   = "REDIS_ADDR"
	RedisPrefixVar = "REDIS_PREFIX"
)

// Token store backends
const (
	StoreFile   = "file"
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

type StoreConfig interface {
	GetTokenStore() string
	GetTokenKey() string
	GetRedisAddr() string
	GetRedisPrefix() string
}

type Store struct {
	o overrides
}

var _ StoreConfig = Store{}

func (s Store) GetTokenStore() string {
	return s.o.get(TokenStoreVar, StoreFile)
}

// GetTokenKey is the fixed name of the single token slot.
func (Store) GetTokenKey() string {
	return "token"
}

func (s Store) GetRedisAddr() string {
	return s.o.get(RedisAddrVar, "localhost:6379")
}

func (s Store) GetRedisPrefix() string {
	return s.o.get(RedisPrefixVar, "torneo")
}
