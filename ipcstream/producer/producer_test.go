package producer

import (
	"testing"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
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

func TestChunkedResponseEmptyHasSchemaThenEnd(t *testing.T) {
	cols := []column.Column{mustColumn(t, "integer", "a")}
	schema := column.Schema(cols)

	resp := NewChunkedResponse(schema, nil)
	recycler := ipcstream.NewSinkRecycler()

	var chunks [][]byte
	for !resp.IsDone() {
		chunk, err := resp.Next(recycler)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if chunk == nil {
			break
		}
		body := append([]byte(nil), chunk.Bytes...)
		chunks = append(chunks, body)
		chunk.Release()
	}
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks (schema, end) for an empty response, got %d", len(chunks))
	}
	end := chunks[1]
	if len(end) != 8 || end[4] != 0 || end[5] != 0 || end[6] != 0 || end[7] != 0 {
		t.Fatalf("end chunk = %x, want an 8-byte zero-length marker", end)
	}
}

func TestChunkedResponseWithPages(t *testing.T) {
	cols := []column.Column{mustColumn(t, "integer", "a")}
	schema := column.Schema(cols)

	page1, err := column.NewPage(cols, []column.Block{column.NewI32Block([]int32{1, 2}, nil)})
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}
	page2, err := column.NewPage(cols, []column.Block{column.NewI32Block([]int32{3, 4, 5}, nil)})
	if err != nil {
		t.Fatalf("NewPage: %v", err)
	}

	resp := NewChunkedResponse(schema, []*column.Page{page1, page2})
	recycler := ipcstream.NewSinkRecycler()

	count := 0
	for !resp.IsDone() {
		chunk, err := resp.Next(recycler)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if chunk == nil {
			break
		}
		count++
		chunk.Release()
	}
	if count != 4 {
		t.Fatalf("expected 4 chunks (schema, page, page, end), got %d", count)
	}
}

func TestProducerRejectsSecondEncodeChunk(t *testing.T) {
	cols := []column.Column{mustColumn(t, "integer", "a")}
	schema := column.Schema(cols)
	p := NewSchemaProducer(schema)
	recycler := ipcstream.NewSinkRecycler()

	if _, err := p.EncodeChunk(0, recycler); err != nil {
		t.Fatalf("first EncodeChunk: %v", err)
	}
	if _, err := p.EncodeChunk(0, recycler); err == nil {
		t.Fatal("expected an error on a second EncodeChunk call")
	}
}
