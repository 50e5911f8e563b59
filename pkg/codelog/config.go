package codelog

import "time"

// Config drives the cron binary.
type Config struct {
	// Output is appended to; "-" or empty means stdout.
	Output   string        `env:"CODELOG_OUTPUT" envDefault:"-"`
	Interval time.Duration `env:"CODELOG_INTERVAL" envDefault:"1m"`
}
