// Package ticket decodes and verifies signed ticket secrets scanned at the
// door.
//
// # Format
//
// A signed secret is a base64 string written backwards. Reversed and decoded
// it yields
//
//	version (1 byte, 0x01) | payload length (uint16 BE) | signature length (uint16 BE) | payload | signature
//
// where payload is a protobuf message
//
//	1 seed        string
//	2 item        int64
//	3 variation   int64
//	4 subevent    int64
//	5 valid_from  int64 (unix seconds)
//	6 valid_until int64 (unix seconds)
//
// and signature is an Ed25519 signature over the payload bytes.
//
// Verify checks the signature against every trusted key of the event before
// a single payload field is parsed, so callers only ever see tickets whose
// bytes were signed by the authority.
package ticket
