package ticket

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

var ErrKey = errors.New("invalid public key")

// ParsePublicKey accepts a PEM "PUBLIC KEY" block holding an Ed25519 key,
// either verbatim or base64-encoded as the authority distributes it.
func ParsePublicKey(encoded string) (ed25519.PublicKey, error) {
	text := strings.TrimSpace(encoded)
	if !strings.HasPrefix(text, "-----BEGIN") {
		raw, err := base64.StdEncoding.DecodeString(text)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKey, err)
		}
		text = string(raw)
	}

	block, _ := pem.Decode([]byte(text))
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, fmt.Errorf("%w: no PUBLIC KEY block", ErrKey)
	}
	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKey, err)
	}
	key, ok := pub.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 key", ErrKey)
	}
	return key, nil
}

// ParsePublicKeys parses every key it can. Keys that fail to parse are
// reported in errs and left out of the result, never trusted.
func ParsePublicKeys(encoded []string) (keys []ed25519.PublicKey, errs []error) {
	for i, e := range encoded {
		k, err := ParsePublicKey(e)
		if err != nil {
			errs = append(errs, fmt.Errorf("key %d: %w", i, err))
			continue
		}
		keys = append(keys, k)
	}
	return keys, errs
}

// EncodePublicKey renders pub the way events distribute valid keys:
// base64 of a PEM "PUBLIC KEY" block.
func EncodePublicKey(pub ed25519.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	block := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
	return base64.StdEncoding.EncodeToString(block), nil
}
