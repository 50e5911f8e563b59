// Package config loads env-tagged structs with github.com/caarlos0/env/v11,
// after reading an optional .env file with github.com/joho/godotenv.
//
//	type Config struct {
//	    Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Parsed values are cached per type, so every package can call Load for the
// same struct without re-reading the environment.
package config
