package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// verifySignature checks the X-Line-Signature header:
// base64(HMAC-SHA256(channel secret, raw body)).
// An empty secret rejects everything — a misconfigured bridge must not
// accept unverified traffic.
func verifySignature(body []byte, secret, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
