// Command ipc-stream-server runs a demo HTTP server that streams a
// synthetic query result as an Apache Arrow IPC stream, exercising the
// httpstream.Handler and the full ipcstream encoder pipeline end to end.
package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VanDung-dev/HieraChain-Engine/httpstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/column"
	"github.com/VanDung-dev/HieraChain-Engine/ipcstream/producer"
)

func demoSource(cfg ipcstream.Config) httpstream.ResponseSource {
	cols := []column.Column{
		mustColumn(cfg, "keyword", "host"),
		mustColumn(cfg, "ip", "client_ip"),
		mustColumn(cfg, "long", "bytes_sent"),
		mustColumn(cfg, "date", "@timestamp"),
	}
	schema := column.Schema(cols)

	return func(_ *http.Request) (*producer.ChunkedResponse, error) {
		hosts := column.NewBytesBlock([][]byte{[]byte("web-1"), []byte("web-2"), []byte("web-3")}, nil)
		ips := column.NewBytesBlock([][]byte{
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 192, 0, 2, 1},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 192, 0, 2, 2},
			{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0xff, 0xff, 192, 0, 2, 3},
		}, nil)
		bytesSent := column.NewI64Block([]int64{512, 2048, 1024}, nil)
		timestamps := column.NewI64Block([]int64{1700000000000, 1700000001000, 1700000002000}, nil)

		page, err := column.NewPage(cols, []column.Block{hosts, ips, bytesSent, timestamps})
		if err != nil {
			return nil, err
		}
		return producer.NewChunkedResponse(schema, []*column.Page{page}), nil
	}
}

func mustColumn(cfg ipcstream.Config, logicalType, name string) column.Column {
	c, err := column.NewColumn(logicalType, name, cfg.StrictValueTransform)
	if err != nil {
		log.Fatalf("ipc-stream-server: binding column %q: %v", name, err)
	}
	return c
}

func main() {
	cfg := ipcstream.NewConfigFromEnv()

	addr := os.Getenv("IPCSTREAM_ADDR")
	if addr == "" {
		addr = ":8089"
	}

	handler := httpstream.NewHandler(demoSource(cfg))
	auth := httpstream.NewAuthenticatorFromEnv()

	mux := http.NewServeMux()
	mux.Handle("/stream", auth.Middleware(handler))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	log.Printf("Starting ipc-stream-server on %s...", addr)
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ipc-stream-server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down ipc-stream-server...")
	if err := server.Close(); err != nil {
		log.Printf("ipc-stream-server: shutdown error: %v", err)
	}
	log.Println("ipc-stream-server stopped.")
}
