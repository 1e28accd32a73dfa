package httpstream

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/producer"
)

func mustColumn(t *testing.T, logicalType, name string) column.Column {
	t.Helper()
	c, err := column.NewColumn(logicalType, name, false)
	if err != nil {
		t.Fatalf("NewColumn(%q): %v", logicalType, err)
	}
	return c
}

func TestHandlerServesEmptyResponse(t *testing.T) {
	cols := []column.Column{mustColumn(t, "integer", "a")}
	schema := column.Schema(cols)

	h := NewHandler(func(*http.Request) (*producer.ChunkedResponse, error) {
		return producer.NewChunkedResponse(schema, nil), nil
	})
	h.Metrics = NewMetrics("ipcstream_test_empty")

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != producer.ContentType {
		t.Fatalf("Content-Type = %q, want %q", ct, producer.ContentType)
	}
	body := rr.Body.Bytes()
	if len(body) == 0 {
		t.Fatal("expected a non-empty body (schema + end-of-stream)")
	}
}

func TestHandlerServesPages(t *testing.T) {
	cols := []column.Column{mustColumn(t, "keyword", "name")}
	schema := column.Schema(cols)

	h := NewHandler(func(*http.Request) (*producer.ChunkedResponse, error) {
		page, err := column.NewPage(cols, []column.Block{
			column.NewBytesBlock([][]byte{[]byte("foo"), []byte("bar")}, nil),
		})
		if err != nil {
			return nil, err
		}
		return producer.NewChunkedResponse(schema, []*column.Page{page}), nil
	})
	h.Metrics = NewMetrics("ipcstream_test_pages")

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body, err := io.ReadAll(rr.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	if len(body) < 8 {
		t.Fatalf("body too short: %d bytes", len(body))
	}
	tail := body[len(body)-8:]
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 0}
	for i := range want {
		if tail[i] != want[i] {
			t.Fatalf("body does not end in the end-of-stream marker: tail=%x", tail)
		}
	}
}

func TestHandlerSourceErrorReturns500(t *testing.T) {
	h := NewHandler(func(*http.Request) (*producer.ChunkedResponse, error) {
		return nil, io.ErrUnexpectedEOF
	})
	h.Metrics = NewMetrics("ipcstream_test_error")

	req := httptest.NewRequest(http.MethodGet, "/stream", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
