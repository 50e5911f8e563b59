package twofa

// Config holds the module settings read from the environment.
type Config struct {
	Issuer      string `env:"TOTP_ISSUER" envDefault:"attest"`
	AccountName string `env:"TOTP_ACCOUNT" envDefault:"student"`
	QREnabled   bool   `env:"TOTP_QR_ENABLED" envDefault:"false"`
	QRSize      int    `env:"TOTP_QR_SIZE" envDefault:"256"`
}
