package ticket

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

var (
	ErrDecode    = errors.New("malformed ticket payload")
	ErrSignature = errors.New("ticket signature not valid for any trusted key")
)

// Version1 is the only signed-secret layout understood.
const Version1 byte = 0x01

const headerSize = 5

// Protobuf field numbers of the payload message.
const (
	fieldSeed       protowire.Number = 1
	fieldItem       protowire.Number = 2
	fieldVariation  protowire.Number = 3
	fieldSubevent   protowire.Number = 4
	fieldValidFrom  protowire.Number = 5
	fieldValidUntil protowire.Number = 6
)

// Payload carries the signed fields of a ticket.
type Payload struct {
	Seed        string
	ItemID      int64
	VariationID int64
	SubeventID  int64
	ValidFrom   *time.Time
	ValidUntil  *time.Time
}

// SignedTicket is a scanned ticket whose signature has been verified.
type SignedTicket struct {
	Payload

	// Secret is the canonical rendering of the scanned string, as Encode
	// emits it. The authority and the revocation list identify the ticket
	// by it.
	Secret    string
	Signed    []byte
	Signature []byte
}

type envelope struct {
	raw       []byte
	payload   []byte
	signature []byte
}

// Verify decodes secret, checks its signature against keys and parses the
// payload. Errors wrap ErrDecode or ErrSignature.
func Verify(secret string, keys []ed25519.PublicKey) (*SignedTicket, error) {
	env, err := split(secret)
	if err != nil {
		return nil, err
	}

	if !verifiedByAny(env.payload, env.signature, keys) {
		return nil, ErrSignature
	}

	p, err := parsePayload(env.payload)
	if err != nil {
		return nil, err
	}

	return &SignedTicket{
		Payload:   *p,
		Secret:    encodeText(env.raw),
		Signed:    env.payload,
		Signature: env.signature,
	}, nil
}

func verifiedByAny(payload, signature []byte, keys []ed25519.PublicKey) bool {
	if len(signature) != ed25519.SignatureSize {
		return false
	}
	for _, k := range keys {
		if len(k) != ed25519.PublicKeySize {
			continue
		}
		if ed25519.Verify(k, payload, signature) {
			return true
		}
	}
	return false
}

// split undoes the transport encoding and separates payload from signature.
func split(secret string) (*envelope, error) {
	raw, err := decodeText(secret)
	if err != nil {
		return nil, err
	}
	if len(raw) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is too short", ErrDecode, len(raw))
	}
	if raw[0] != Version1 {
		return nil, fmt.Errorf("%w: unknown version 0x%02x", ErrDecode, raw[0])
	}

	payloadLen := int(binary.BigEndian.Uint16(raw[1:3]))
	sigLen := int(binary.BigEndian.Uint16(raw[3:5]))
	if headerSize+payloadLen+sigLen != len(raw) {
		return nil, fmt.Errorf("%w: length mismatch", ErrDecode)
	}

	body := raw[headerSize:]
	return &envelope{raw: raw, payload: body[:payloadLen], signature: body[payloadLen:]}, nil
}

func decodeText(secret string) ([]byte, error) {
	s := strings.TrimSpace(secret)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrDecode)
	}

	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	s = strings.TrimRight(string(r), "=")

	enc := base64.RawStdEncoding
	if strings.ContainsAny(s, "-_") {
		enc = base64.RawURLEncoding
	}
	raw, err := enc.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return raw, nil
}

func parsePayload(b []byte) (*Payload, error) {
	p := &Payload{}
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, fmt.Errorf("%w: %v", ErrDecode, protowire.ParseError(n))
		}
		b = b[n:]

		switch {
		case num == fieldSeed && typ == protowire.BytesType:
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrDecode, protowire.ParseError(m))
			}
			p.Seed = string(v)
			n = m
		case num >= fieldItem && num <= fieldValidUntil && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return nil, fmt.Errorf("%w: %v", ErrDecode, protowire.ParseError(m))
			}
			p.setVarint(num, int64(v))
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("%w: %v", ErrDecode, protowire.ParseError(n))
			}
		}
		b = b[n:]
	}
	return p, nil
}

func (p *Payload) setVarint(num protowire.Number, v int64) {
	switch num {
	case fieldItem:
		p.ItemID = v
	case fieldVariation:
		p.VariationID = v
	case fieldSubevent:
		p.SubeventID = v
	case fieldValidFrom:
		p.ValidFrom = unixOrNil(v)
	case fieldValidUntil:
		p.ValidUntil = unixOrNil(v)
	}
}

func unixOrNil(v int64) *time.Time {
	if v == 0 {
		return nil
	}
	t := time.Unix(v, 0).UTC()
	return &t
}

// Encode signs p with key and renders the scannable secret.
func Encode(p Payload, key ed25519.PrivateKey) (string, error) {
	payload := p.marshal()
	sig := ed25519.Sign(key, payload)
	if len(payload) > 0xffff {
		return "", fmt.Errorf("payload too large: %d bytes", len(payload))
	}

	raw := make([]byte, headerSize, headerSize+len(payload)+len(sig))
	raw[0] = Version1
	binary.BigEndian.PutUint16(raw[1:3], uint16(len(payload)))
	binary.BigEndian.PutUint16(raw[3:5], uint16(len(sig)))
	raw = append(raw, payload...)
	raw = append(raw, sig...)

	return encodeText(raw), nil
}

// Canonical returns the form Encode would have produced for secret. Scanner
// noise like surrounding whitespace, missing padding or the URL-safe
// alphabet is removed.
func Canonical(secret string) (string, error) {
	raw, err := decodeText(secret)
	if err != nil {
		return "", err
	}
	return encodeText(raw), nil
}

func encodeText(raw []byte) string {
	s := []rune(base64.StdEncoding.EncodeToString(raw))
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
	return string(s)
}

func (p *Payload) marshal() []byte {
	var b []byte
	if p.Seed != "" {
		b = protowire.AppendTag(b, fieldSeed, protowire.BytesType)
		b = protowire.AppendString(b, p.Seed)
	}
	appendInt := func(num protowire.Number, v int64) {
		if v == 0 {
			return
		}
		b = protowire.AppendTag(b, num, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(v))
	}
	appendInt(fieldItem, p.ItemID)
	appendInt(fieldVariation, p.VariationID)
	appendInt(fieldSubevent, p.SubeventID)
	if p.ValidFrom != nil {
		appendInt(fieldValidFrom, p.ValidFrom.Unix())
	}
	if p.ValidUntil != nil {
		appendInt(fieldValidUntil, p.ValidUntil.Unix())
	}
	return b
}
