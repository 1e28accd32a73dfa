package batch

import (
	"bytes"
	"testing"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
)

func mustColumn(t *testing.T, logicalType, name string) column.Column {
	t.Helper()
	c, err := column.NewColumn(logicalType, name, false)
	if err != nil {
		t.Fatalf("NewColumn(%q): %v", logicalType, err)
	}
	return c
}

func TestAssembleWritesFramedHeaderAndBody(t *testing.T) {
	cols := []column.Column{
		mustColumn(t, "integer", "a"),
		mustColumn(t, "keyword", "b"),
	}
	blocks := []column.Block{
		column.NewI32Block([]int32{1, 2, 3}, nil),
		column.NewBytesBlock([][]byte{[]byte("foo"), []byte("bar"), []byte("baz")}, nil),
	}
	page, err := column.NewPage(cols, blocks)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	var buf bytes.Buffer
	n, err := Assemble(page, &buf)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if n != buf.Len() {
		t.Fatalf("Assemble returned %d, but sink has %d bytes", n, buf.Len())
	}
	if buf.Len() < 8 {
		t.Fatalf("output too short to be a framed message: %d bytes", buf.Len())
	}
	out := buf.Bytes()
	if out[0] != 0xFF || out[1] != 0xFF || out[2] != 0xFF || out[3] != 0xFF {
		t.Fatalf("missing continuation indicator: %x", out[:4])
	}
	if buf.Len()%8 != 0 {
		t.Fatalf("total length %d is not 8-byte aligned", buf.Len())
	}
}

func TestAssembleRejectsMultiValuedBlock(t *testing.T) {
	cols := []column.Column{mustColumn(t, "integer", "a")}
	blocks := []column.Block{&column.MultiBlock{N: 3}}
	page, err := column.NewPage(cols, blocks)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	var buf bytes.Buffer
	if _, err := Assemble(page, &buf); err == nil {
		t.Fatal("expected an error for a multi-valued block")
	}
}

func TestAssembleEmptyPage(t *testing.T) {
	page, err := column.NewPage(nil, nil)
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	var buf bytes.Buffer
	n, err := Assemble(page, &buf)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if n == 0 {
		t.Fatal("expected a non-zero framed header even for zero columns")
	}
}
