package attest

// Config locates the seed owner's private key.
type Config struct {
	OwnerKeyPath string `env:"OWNER_PRIVATE_KEY_PATH" envDefault:"student_private.pem"`
}
