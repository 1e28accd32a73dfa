package wire

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
)

func TestBuildSchemaMessageFraming(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32, Nullable: true},
		{Name: "b", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	msg := BuildSchemaMessage(schema)
	if len(msg) < 8 {
		t.Fatalf("message too short: %d bytes", len(msg))
	}
	if msg[0] != 0xFF || msg[1] != 0xFF || msg[2] != 0xFF || msg[3] != 0xFF {
		t.Fatalf("missing continuation indicator: %x", msg[:4])
	}
	if len(msg)%ipcAlignment != 0 {
		t.Fatalf("message length %d is not 8-byte aligned", len(msg))
	}

	metadataSize := int(msg[4]) | int(msg[5])<<8 | int(msg[6])<<16 | int(msg[7])<<24
	if 8+metadataSize != len(msg) {
		t.Fatalf("metadata size %d does not match message length %d", metadataSize, len(msg))
	}
}

func TestBuildRecordBatchMessageFraming(t *testing.T) {
	nodes := []FieldNode{{Length: 3, NullCount: 0}}
	buffers := []BufferMeta{{Offset: 0, Length: 1}, {Offset: 8, Length: 12}}
	msg := BuildRecordBatchMessage(3, nodes, buffers, 24)

	if len(msg) < 8 {
		t.Fatalf("message too short: %d bytes", len(msg))
	}
	if msg[0] != 0xFF || msg[1] != 0xFF || msg[2] != 0xFF || msg[3] != 0xFF {
		t.Fatalf("missing continuation indicator: %x", msg[:4])
	}
	if len(msg)%ipcAlignment != 0 {
		t.Fatalf("message length %d is not 8-byte aligned", len(msg))
	}
}

func TestEndOfStream(t *testing.T) {
	eos := EndOfStream()
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}
	if len(eos) != len(want) {
		t.Fatalf("EndOfStream length = %d, want %d", len(eos), len(want))
	}
	for i := range want {
		if eos[i] != want[i] {
			t.Fatalf("EndOfStream = %x, want %x", eos, want)
		}
	}
}

func TestPadding(t *testing.T) {
	cases := []struct {
		n, want int64
	}{
		{0, 0}, {1, 7}, {7, 1}, {8, 0}, {9, 7}, {16, 0},
	}
	for _, c := range cases {
		if got := padding(c.n); got != c.want {
			t.Fatalf("padding(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}
