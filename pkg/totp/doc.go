// Package totp generates and verifies RFC 6238 Time-based One-Time Passwords.
//
// The package has two layers. The low-level helpers in otp.go work on base32
// secrets the way authenticator apps do: GenerateHOTP implements RFC 4226,
// GenerateTOTP/GenerateTOTPWithTime derive the code for a 30-second window and
// ValidateTOTP accepts codes from the previous, current and next window.
// GetTOTPURI builds otpauth:// URIs for onboarding an authenticator.
//
// Engine sits on top and consumes the 64-character hex seeds used by the
// service. It converts the seed to base32 through package seed, reads the
// time from an injectable clock and reports how long the current code stays
// valid.
//
// # Parameters
//
// HMAC-SHA1, 30-second step, 6 digits, Unix epoch, ±1 step tolerance.
//
// # Usage
//
//	engine := totp.NewEngine()
//
//	code, err := engine.Generate(hexSeed)
//	if err != nil {
//		// errors.Is(err, totp.ErrInvalidSeed)
//	}
//	fmt.Println(code.Code, code.SecondsRemaining)
//
//	ok, err := engine.Verify(hexSeed, "123456")
//
// Tests pin the clock:
//
//	engine := totp.NewEngine(totp.WithClock(func() time.Time { return time.Unix(59, 0) }))
//
// # Timing
//
// Verification computes all three candidate codes and compares each with
// crypto/subtle, so the time taken does not depend on which window matched
// or on how many digits of a wrong guess were correct.
//
// # Error Handling
//
// Malformed seeds and secrets are errors (ErrInvalidSeed, ErrInvalidSecret,
// ErrMissingSecret). A malformed code is an error from ValidateTOTP
// (ErrInvalidOTP) but Engine.Verify reports it simply as not valid.
//
// # See Also
//
//   - RFC 4226 – HMAC-Based One-Time Password (HOTP) Algorithm
//   - RFC 6238 – Time-Based One-Time Password (TOTP) Algorithm
package totp
