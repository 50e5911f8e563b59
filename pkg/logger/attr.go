package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil errors produce an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// ClientIP records the caller address under "client_ip".
func ClientIP(ip string) slog.Attr {
	if ip == "" {
		return slog.Attr{}
	}
	return slog.String("client_ip", ip)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Event(name string) slog.Attr {
	return slog.String("event", name)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// CommitHash records the commit a proof was built for.
func CommitHash(hash string) slog.Attr {
	return slog.String("commit_hash", hash)
}

// KeyBits records an RSA modulus size.
func KeyBits(bits int) slog.Attr {
	return slog.Int("key_bits", bits)
}

// Store records the seed store backend name.
func Store(name string) slog.Attr {
	return slog.String("store", name)
}

// Path records a filesystem path.
func Path(p string) slog.Attr {
	return slog.String("path", p)
}
