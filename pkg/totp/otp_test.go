package totp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/attestkit/pkg/totp"
)

// RFC 6238 appendix B secret "12345678901234567890".
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

func TestGetTOTPURI(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		params  totp.TOTPParams
		want    string
		wantErr error
	}{
		{
			name: "Basic URI",
			params: totp.TOTPParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test@example.com",
				Issuer:      "TestApp",
			},
			want: "otpauth://totp/TestApp:test@example.com?algorithm=SHA1&digits=6&issuer=TestApp&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "Padded secret is emitted unpadded",
			params: totp.TOTPParams{
				Secret:      "ULYV6EH6A6LX4GRMHVHF62T3RSOQ4HZKHNGF23T7RKNQYHJOH5FA====",
				AccountName: "student",
				Issuer:      "Attest",
			},
			want: "otpauth://totp/Attest:student?algorithm=SHA1&digits=6&issuer=Attest&period=30&secret=ULYV6EH6A6LX4GRMHVHF62T3RSOQ4HZKHNGF23T7RKNQYHJOH5FA",
		},
		{
			name: "URI with special characters",
			params: totp.TOTPParams{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "test+user@example.com",
				Issuer:      "Test & App",
				Algorithm:   "SHA1",
				Digits:      6,
				Period:      30,
			},
			want: "otpauth://totp/Test%20&%20App:test+user@example.com?algorithm=SHA1&digits=6&issuer=Test+%26+App&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name:    "Missing secret",
			params:  totp.TOTPParams{AccountName: "a", Issuer: "b"},
			wantErr: totp.ErrMissingSecret,
		},
		{
			name:    "Lowercase secret",
			params:  totp.TOTPParams{Secret: "abcdefgh", AccountName: "a", Issuer: "b"},
			wantErr: totp.ErrInvalidSecret,
		},
		{
			name:    "Missing account",
			params:  totp.TOTPParams{Secret: "ABCDEFGH", Issuer: "b"},
			wantErr: totp.ErrMissingAccountName,
		},
		{
			name:    "Missing issuer",
			params:  totp.TOTPParams{Secret: "ABCDEFGH", AccountName: "a"},
			wantErr: totp.ErrMissingIssuer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.GetTOTPURI(tt.params)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateHOTP(t *testing.T) {
	t.Parallel()
	// RFC 4226 appendix D.
	want := []int{755224, 287082, 359152, 969429, 338314, 254676, 287922, 162583, 399871, 520489}
	key := []byte("12345678901234567890")

	for counter, code := range want {
		assert.Equal(t, code, totp.GenerateHOTP(key, int64(counter), 6), "counter %d", counter)
	}
}

func TestGenerateTOTPWithTime(t *testing.T) {
	t.Parallel()
	// RFC 6238 appendix B, SHA1 rows truncated to six digits.
	tests := []struct {
		unix int64
		want string
	}{
		{unix: 59, want: "287082"},
		{unix: 1111111109, want: "081804"},
		{unix: 1111111111, want: "050471"},
		{unix: 1234567890, want: "005924"},
		{unix: 2000000000, want: "279037"},
	}

	for _, tt := range tests {
		got, err := totp.GenerateTOTPWithTime(rfcSecret, time.Unix(tt.unix, 0))
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "unix %d", tt.unix)
	}
}

func TestValidateTOTP(t *testing.T) {
	t.Parallel()

	validOTP, err := totp.GenerateTOTP(rfcSecret)
	require.NoError(t, err)

	tests := []struct {
		name    string
		secret  string
		otp     string
		wantErr error
		result  bool
	}{
		{name: "Invalid base32 secret", secret: "invalid-base32!@#$", otp: "123456", wantErr: totp.ErrInvalidSecret},
		{name: "Invalid OTP length", secret: rfcSecret, otp: "12345", wantErr: totp.ErrInvalidOTP},
		{name: "Invalid OTP characters", secret: rfcSecret, otp: "12345a", wantErr: totp.ErrInvalidOTP},
		{name: "Empty secret", secret: "", otp: "123456", wantErr: totp.ErrMissingSecret},
		{name: "Empty OTP", secret: rfcSecret, otp: "", wantErr: totp.ErrInvalidOTP},
		{name: "Valid OTP", secret: rfcSecret, otp: validOTP, result: true},
		{name: "Lowercase secret is normalized", secret: "gezdgnbvgy3tqojqgezdgnbvgy3tqojq", otp: validOTP, result: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result, err := totp.ValidateTOTP(tt.secret, tt.otp)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestValidateTOTPWithTimeWindow(t *testing.T) {
	t.Parallel()
	at := time.Unix(1111111109, 0)

	tests := []struct {
		name   string
		offset time.Duration
		result bool
	}{
		{name: "two windows back", offset: -60 * time.Second, result: false},
		{name: "previous window", offset: -30 * time.Second, result: true},
		{name: "current window", offset: 0, result: true},
		{name: "next window", offset: 30 * time.Second, result: true},
		{name: "two windows ahead", offset: 60 * time.Second, result: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			otp, err := totp.GenerateTOTPWithTime(rfcSecret, at.Add(tt.offset))
			require.NoError(t, err)

			result, err := totp.ValidateTOTPWithTime(rfcSecret, otp, at)
			require.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestCounter(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int64(0), totp.Counter(time.Unix(29, 0)))
	assert.Equal(t, int64(1), totp.Counter(time.Unix(30, 0)))
	assert.Equal(t, int64(56666666), totp.Counter(time.Unix(1700000000, 0)))
}
