// Package twofa exposes seed provisioning and TOTP generation and
// verification over HTTP.
//
// Routes served by Service.Handle:
//
//	POST /decrypt-seed     {"encrypted_seed": "<base64>"}  -> {"status":"ok"}
//	GET  /generate-2fa                                     -> {"code":"123456","valid_for":17}
//	POST /verify-2fa       {"code": "123456"}              -> {"valid":true}
//	GET  /provisioning-qr  (only when Config.QREnabled)    -> image/png
//
// Failures answer {"status":"error","error":"<fixed message>"}; causes are
// logged, never returned.
//
// Router adds /health/live, /health/ready and /metrics plus the request id,
// client ip, metrics and panic recovery middleware.
package twofa
