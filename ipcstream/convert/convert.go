// Package convert implements the value conversions of §4.1: pure,
// allocation-bounded functions that transform one engine-native scalar
// representation into the bytes an Arrow buffer expects. They are the leaf
// layer of the encoder — called once per row by the variable-width block
// converter in column.
package convert

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
)

// ipv4MappedPrefix is the ::ffff:0:0/96 prefix: the first 12 bytes of an
// IPv4-mapped IPv6 address.
var ipv4MappedPrefix = [12]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff}

// ShortenIP shortens a 16-byte IPv4-mapped IPv6 address to its trailing 4
// bytes; any other 16-byte value is returned unchanged. Returns an error if
// addr is not exactly 16 bytes.
func ShortenIP(addr []byte) ([]byte, error) {
	if len(addr) != 16 {
		return nil, fmt.Errorf("convert: ip value must be 16 bytes, got %d", len(addr))
	}
	if bytes.Equal(addr[:12], ipv4MappedPrefix[:]) {
		out := make([]byte, 4)
		copy(out, addr[12:])
		return out, nil
	}
	out := make([]byte, 16)
	copy(out, addr)
	return out, nil
}

// VersionToString renders a packed version value (four bytes per numeric
// component, big-endian) to its textual form: every component in decimal,
// joined by dots, zero components included. Returns an error if packed is
// structurally invalid (not a multiple of 4 bytes, or empty).
func VersionToString(packed []byte) (string, error) {
	if len(packed) == 0 || len(packed)%4 != 0 {
		return "", fmt.Errorf("convert: malformed packed version (%d bytes)", len(packed))
	}
	parts := make([]string, 0, len(packed)/4)
	for i := 0; i < len(packed); i += 4 {
		v := binary.BigEndian.Uint32(packed[i : i+4])
		parts = append(parts, fmt.Sprintf("%d", v))
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "." + p
	}
	return out, nil
}

// SourceToJSON re-encodes a serialized engine document to canonical JSON
// bytes. The engine's self-describing format is accepted either as JSON
// already (the common case for a query engine that stores _source as JSON
// text) or as a tagged binary form understood by decodeTagged. Round-trip
// is not required, only that a strict JSON parser accepts the output and
// yields the same logical tree as the input.
func SourceToJSON(src []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(src)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') && json.Valid(trimmed) {
		var v any
		if err := json.Unmarshal(trimmed, &v); err != nil {
			return nil, fmt.Errorf("convert: source is not valid JSON: %w", err)
		}
		return json.Marshal(v)
	}

	v, err := decodeTagged(src)
	if err != nil {
		return nil, fmt.Errorf("convert: source is neither JSON nor a recognised tagged document: %w", err)
	}
	return json.Marshal(v)
}
