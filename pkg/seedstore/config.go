package seedstore

import "strings"

// Backend names accepted by Config.Backend.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

// Config selects where the provisioned seed lives.
type Config struct {
	Backend    string `env:"SEED_STORE" envDefault:"file"`
	Path       string `env:"SEED_PATH" envDefault:"/data/seed.txt"`
	RedisKey   string `env:"SEED_REDIS_KEY" envDefault:"attest:seed"`
	SealingKey string `env:"SEED_SEALING_KEY"` // base64, 32 bytes; empty disables sealing
}

// BackendName returns Backend trimmed and lower-cased, BackendFile when unset.
func (c Config) BackendName() string {
	name := strings.ToLower(strings.TrimSpace(c.Backend))
	if name == "" {
		return BackendFile
	}
	return name
}
