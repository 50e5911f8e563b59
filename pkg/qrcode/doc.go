// Package qrcode renders otpauth:// provisioning URIs as QR codes using
// github.com/skip2/go-qrcode, as PNG bytes, a data URI, or terminal text.
package qrcode
