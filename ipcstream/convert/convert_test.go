package convert

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"testing"
)

func jsonValid(b []byte) bool { return json.Valid(b) }

func TestShortenIP(t *testing.T) {
	cases := []struct {
		name string
		in   []byte
		want []byte
	}{
		{
			name: "ipv4-mapped",
			in:   append(append([]byte{}, ipv4MappedPrefix[:]...), 192, 0, 2, 1),
			want: []byte{192, 0, 2, 1},
		},
		{
			name: "native ipv6",
			in:   bytes.Repeat([]byte{0xAB}, 16),
			want: bytes.Repeat([]byte{0xAB}, 16),
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ShortenIP(c.in)
			if err != nil {
				t.Fatalf("ShortenIP: %v", err)
			}
			if !bytes.Equal(got, c.want) {
				t.Fatalf("ShortenIP(%x) = %x, want %x", c.in, got, c.want)
			}
		})
	}
}

func TestShortenIPRejectsWrongLength(t *testing.T) {
	if _, err := ShortenIP([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short input")
	}
}

func TestVersionToString(t *testing.T) {
	packed := make([]byte, 12)
	binary.BigEndian.PutUint32(packed[0:4], 8)
	binary.BigEndian.PutUint32(packed[4:8], 12)
	binary.BigEndian.PutUint32(packed[8:12], 1)

	got, err := VersionToString(packed)
	if err != nil {
		t.Fatalf("VersionToString: %v", err)
	}
	if got != "8.12.1" {
		t.Fatalf("VersionToString = %q, want %q", got, "8.12.1")
	}
}

func TestVersionToStringRejectsMalformed(t *testing.T) {
	if _, err := VersionToString([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for non-multiple-of-4 input")
	}
	if _, err := VersionToString(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestSourceToJSONFromJSON(t *testing.T) {
	in := []byte(`{"a": 1, "b": [true, null, "x"]}`)
	out, err := SourceToJSON(in)
	if err != nil {
		t.Fatalf("SourceToJSON: %v", err)
	}
	if !bytes.Contains(out, []byte(`"a":1`)) {
		t.Fatalf("SourceToJSON output missing expected field: %s", out)
	}
}

func TestSourceToJSONFromTagged(t *testing.T) {
	doc := encodeTaggedObjectForTest(t)
	out, err := SourceToJSON(doc)
	if err != nil {
		t.Fatalf("SourceToJSON: %v", err)
	}
	if !bytes.Contains(out, []byte(`"name":"es"`)) {
		t.Fatalf("SourceToJSON output missing expected field: %s", out)
	}
}

func TestSourceToJSONRejectsGarbage(t *testing.T) {
	if _, err := SourceToJSON([]byte{0xEE, 0xEE, 0xEE}); err == nil {
		t.Fatal("expected error for unrecognised input")
	}
}

// encodeTaggedObjectForTest builds {"name": "es"} in the tagged binary
// format, mirroring what decodeTagged expects to read.
func encodeTaggedObjectForTest(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	buf.WriteByte(tagObject)
	writeU32 := func(n uint32) {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], n)
		buf.Write(b[:])
	}
	writeStr := func(s string) {
		writeU32(uint32(len(s)))
		buf.WriteString(s)
	}
	writeU32(1) // one key/value pair
	writeStr("name")
	buf.WriteByte(tagString)
	writeStr("es")
	return buf.Bytes()
}
