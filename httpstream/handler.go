// Package httpstream exposes an ipcstream.producer.ChunkedResponse over
// plain net/http chunked transfer encoding, mirroring the connection-loop
// shape of the teacher's Arrow TCP server (hierachain-engine/api's
// ArrowServer/handleConnection) but driven by http.ResponseWriter's
// implicit chunking instead of a raw net.Conn.
package httpstream

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/producer"
)

// ResponseSource builds the ChunkedResponse for one request. It runs once
// per request, so the schema and pages can be built per request; every page
// is handed to the ChunkedResponse when it is constructed.
type ResponseSource func(r *http.Request) (*producer.ChunkedResponse, error)

// Handler serves one ipcstream.producer.ChunkedResponse per request over
// HTTP chunked transfer encoding.
type Handler struct {
	Source   ResponseSource
	Metrics  *Metrics
	Recycler *ipcstream.SinkRecycler
	Logger   *log.Logger
}

// NewHandler builds a Handler with a fresh recycler and default metrics.
func NewHandler(source ResponseSource) *Handler {
	return &Handler{
		Source:   source,
		Metrics:  DefaultMetrics,
		Recycler: ipcstream.NewSinkRecycler(),
		Logger:   log.Default(),
	}
}

// ServeHTTP writes one chunk per producer pull until the response is
// exhausted or the client disconnects. Each write is followed by a flush so
// the client observes chunks as they are produced rather than buffered
// until the handler returns.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := h.Source(r)
	if err != nil {
		h.Metrics.ResponsesFailed.Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	flusher, _ := w.(http.Flusher)
	w.Header().Set("Content-Type", resp.ContentType())
	w.WriteHeader(http.StatusOK)

	ctx := r.Context()
	for !resp.IsDone() {
		select {
		case <-ctx.Done():
			h.Metrics.ResponsesCancelled.Inc()
			return
		default:
		}

		start := time.Now()
		chunk, err := resp.Next(h.Recycler)
		if err != nil {
			h.Metrics.ResponsesFailed.Inc()
			h.Logger.Printf("httpstream: encoding chunk: %v", err)
			return
		}
		if chunk == nil {
			break
		}

		n, writeErr := w.Write(chunk.Bytes)
		chunk.Release()
		h.Metrics.ChunkEncodeLatency.Observe(time.Since(start).Seconds())
		if writeErr != nil {
			h.Metrics.ResponsesFailed.Inc()
			if !errors.Is(writeErr, http.ErrHandlerTimeout) {
				h.Logger.Printf("httpstream: writing chunk: %v", writeErr)
			}
			return
		}
		h.Metrics.ChunksEmitted.Inc()
		h.Metrics.BytesEmitted.Add(float64(n))
		if flusher != nil {
			flusher.Flush()
		}
	}
	h.Metrics.ResponsesCompleted.Inc()
}
