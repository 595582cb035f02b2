package ticket

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newKey(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	return pub, priv
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// rawBytes undoes the text encoding of a secret produced by Encode.
func rawBytes(t *testing.T, secret string) []byte {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(reverse(secret))
	require.NoError(t, err)
	return raw
}

func render(raw []byte) string {
	return reverse(base64.StdEncoding.EncodeToString(raw))
}

func TestEncodeVerify_RoundTrip(t *testing.T) {
	pub, priv := newKey(t)
	from := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	until := from.Add(48 * time.Hour)

	secret, err := Encode(Payload{
		Seed: "abcdef1234", ItemID: 12, VariationID: 3, SubeventID: 9,
		ValidFrom: &from, ValidUntil: &until,
	}, priv)
	require.NoError(t, err)

	tk, err := Verify(secret, []ed25519.PublicKey{pub})
	require.NoError(t, err)

	assert.Equal(t, secret, tk.Secret)
	assert.Equal(t, "abcdef1234", tk.Seed)
	assert.EqualValues(t, 12, tk.ItemID)
	assert.EqualValues(t, 3, tk.VariationID)
	assert.EqualValues(t, 9, tk.SubeventID)
	require.NotNil(t, tk.ValidFrom)
	require.NotNil(t, tk.ValidUntil)
	assert.True(t, from.Equal(*tk.ValidFrom))
	assert.True(t, until.Equal(*tk.ValidUntil))
}

func TestVerify_AnyTrustedKeySuffices(t *testing.T) {
	other, _ := newKey(t)
	pub, priv := newKey(t)

	secret, err := Encode(Payload{Seed: "s", ItemID: 1}, priv)
	require.NoError(t, err)

	_, err = Verify(secret, []ed25519.PublicKey{other, pub})
	require.NoError(t, err)
}

func TestVerify_UntrustedKey(t *testing.T) {
	other, _ := newKey(t)
	_, priv := newKey(t)

	secret, err := Encode(Payload{Seed: "s", ItemID: 1}, priv)
	require.NoError(t, err)

	_, err = Verify(secret, []ed25519.PublicKey{other})
	assert.ErrorIs(t, err, ErrSignature)

	_, err = Verify(secret, nil)
	assert.ErrorIs(t, err, ErrSignature)
}

func TestVerify_EverySingleBitFlipOfPayloadFails(t *testing.T) {
	pub, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "seed-0001", ItemID: 42, VariationID: 7}, priv)
	require.NoError(t, err)

	raw := rawBytes(t, secret)
	payloadLen := int(raw[1])<<8 | int(raw[2])

	for i := headerSize; i < headerSize+payloadLen; i++ {
		for bit := 0; bit < 8; bit++ {
			mutated := append([]byte(nil), raw...)
			mutated[i] ^= 1 << bit

			_, err := Verify(render(mutated), []ed25519.PublicKey{pub})
			require.ErrorIs(t, err, ErrSignature, "byte %d bit %d", i, bit)
		}
	}
}

func TestVerify_SignatureMutationFails(t *testing.T) {
	pub, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "x", ItemID: 1}, priv)
	require.NoError(t, err)

	raw := rawBytes(t, secret)
	raw[len(raw)-1] ^= 0x01

	_, err = Verify(render(raw), []ed25519.PublicKey{pub})
	assert.ErrorIs(t, err, ErrSignature)
}

func TestVerify_DecodeErrors(t *testing.T) {
	pub, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "x", ItemID: 1}, priv)
	require.NoError(t, err)
	raw := rawBytes(t, secret)

	wrongVersion := append([]byte(nil), raw...)
	wrongVersion[0] = 0x02

	truncated := raw[:len(raw)-3]

	tests := []struct {
		name   string
		secret string
	}{
		{name: "empty", secret: ""},
		{name: "not base64", secret: "!!!not-base64???"},
		{name: "too short", secret: render([]byte{0x01, 0x00})},
		{name: "unknown version", secret: render(wrongVersion)},
		{name: "length mismatch", secret: render(truncated)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Verify(tt.secret, []ed25519.PublicKey{pub})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode), "got %v", err)
		})
	}
}

func TestVerify_SignedGarbagePayloadIsDecodeError(t *testing.T) {
	pub, priv := newKey(t)
	payload := []byte{0x0a, 0x05, 'a'} // length-delimited field running past the end
	sig := ed25519.Sign(priv, payload)

	raw := []byte{Version1, 0, byte(len(payload)), 0, byte(len(sig))}
	raw = append(raw, payload...)
	raw = append(raw, sig...)

	_, err := Verify(render(raw), []ed25519.PublicKey{pub})
	assert.ErrorIs(t, err, ErrDecode)
}

func TestVerify_SkipsUnknownFields(t *testing.T) {
	pub, priv := newKey(t)
	// field 1 = "ab", field 15 varint 1, field 2 = 5
	payload := []byte{0x0a, 0x02, 'a', 'b', 0x78, 0x01, 0x10, 0x05}
	sig := ed25519.Sign(priv, payload)

	raw := []byte{Version1, 0, byte(len(payload)), 0, byte(len(sig))}
	raw = append(raw, payload...)
	raw = append(raw, sig...)

	tk, err := Verify(render(raw), []ed25519.PublicKey{pub})
	require.NoError(t, err)
	assert.Equal(t, "ab", tk.Seed)
	assert.EqualValues(t, 5, tk.ItemID)
}

func TestVerify_ToleratesWhitespaceAndPadding(t *testing.T) {
	pub, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "pad", ItemID: 1}, priv)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(secret, "=="))

	stripped := strings.TrimLeft(secret, "=")
	tk, err := Verify("  "+stripped+"\n", []ed25519.PublicKey{pub})
	require.NoError(t, err)
	assert.Equal(t, secret, tk.Secret, "secret is reported in canonical form")
}

func TestCanonical(t *testing.T) {
	_, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "pad", ItemID: 1}, priv)
	require.NoError(t, err)
	urlSafe := strings.NewReplacer("+", "-", "/", "_").Replace(secret)

	for _, in := range []string{secret, secret + "\n", " " + secret + " ", strings.TrimLeft(secret, "="), urlSafe} {
		got, err := Canonical(in)
		require.NoError(t, err)
		assert.Equal(t, secret, got, "%q", in)
	}

	_, err = Canonical("   ")
	assert.ErrorIs(t, err, ErrDecode)
}

func TestVerify_SkipsMalformedKeys(t *testing.T) {
	pub, priv := newKey(t)
	secret, err := Encode(Payload{Seed: "s", ItemID: 1}, priv)
	require.NoError(t, err)

	_, err = Verify(secret, []ed25519.PublicKey{ed25519.PublicKey{1, 2, 3}, pub})
	require.NoError(t, err)
}
