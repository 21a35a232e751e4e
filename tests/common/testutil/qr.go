//go:build unit || e2e

package testutil

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/config"
	"cozycup/internal/pkg/qrtoken"

	"github.com/stretchr/testify/require"
)

// NewQRService signs with a throwaway 2048-bit key.
func NewQRService(t *testing.T, clk clock.Clock) *qrtoken.Service {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return qrtoken.NewServiceWithKey(key, config.QRConfig{
		TTL:       10 * time.Minute,
		RedeemTTL: 5 * time.Minute,
		Issuer:    "cozycup-qr",
		Audience:  "cozycup-kiosk",
	}, clk)
}

// PrivateKeyPEM returns a fresh PKCS#1 key in the form QR_PRIVATE_KEY expects.
func PrivateKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}))
}
