package ticket

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParsePublicKey(t *testing.T) {
	pub, _ := newKey(t)

	encoded, err := EncodePublicKey(pub)
	require.NoError(t, err)

	got, err := ParsePublicKey(encoded)
	require.NoError(t, err)
	assert.Equal(t, pub, got)

	rawPEM, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	got, err = ParsePublicKey(string(rawPEM))
	require.NoError(t, err)
	assert.Equal(t, pub, got)
}

func TestParsePublicKey_Rejects(t *testing.T) {
	ec, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&ec.PublicKey)
	require.NoError(t, err)
	ecPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})

	for name, in := range map[string]string{
		"not base64":  "%%%",
		"no pem":      base64.StdEncoding.EncodeToString([]byte("hello")),
		"wrong block": string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1}})),
		"not ed25519": string(ecPEM),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePublicKey(in)
			assert.ErrorIs(t, err, ErrKey)
		})
	}
}

func TestParsePublicKeys_KeepsGoodOnes(t *testing.T) {
	pub, _ := newKey(t)
	good, err := EncodePublicKey(pub)
	require.NoError(t, err)

	keys, errs := ParsePublicKeys([]string{"garbage", good})
	require.Len(t, keys, 1)
	assert.Len(t, errs, 1)
	assert.Equal(t, pub, keys[0])
}
