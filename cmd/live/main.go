// Command live runs one chasebench measurement and streams each Sample to
// connected browser clients over a WebSocket as it is produced, for a
// live-updating latency/size chart. It is the "plotting tool" collaborator
// kept outside the measurement core.
package main

import (
	"flag"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/cachelab/chasebench"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newHub() *hub {
	return &hub{clients: make(map[*websocket.Conn]struct{})}
}

func (h *hub) add(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *hub) remove(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.Close()
}

func (h *hub) broadcast(sample chasebench.Sample) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteJSON(sample); err != nil {
			log.Printf("live: write to client failed: %v", err)
			delete(h.clients, c)
			c.Close()
		}
	}
}

func main() {
	addr := flag.String("addr", ":8089", "HTTP listen address")
	pattern := flag.String("pattern", "random", "visitation pattern to measure")
	flag.Parse()

	h := newHub()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("live: upgrade failed: %v", err)
			return
		}
		h.add(conn)
		go func() {
			defer h.remove(conn)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	})

	http.HandleFunc("/run", func(w http.ResponseWriter, r *http.Request) {
		cfg := chasebench.DefaultConfig()
		cfg.Pattern = chasebench.ParsePattern(*pattern)
		cfg.PrintTable = false
		cfg.OnSample = h.broadcast

		report, err := chasebench.Run(cfg)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write([]byte(report.Summary()))
	})

	log.Printf("live: listening on %s (POST /run to start a measurement, GET /ws to stream samples)", *addr)
	log.Fatal(http.ListenAndServe(*addr, nil))
}
