package ws

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single write to a watcher.
	writeWait = 10 * time.Second
	// sendBuffer is how many messages may queue for a watcher before it
	// is dropped as too slow.
	sendBuffer = 256
)

// client is one watcher connection. Only its writer goroutine writes to
// conn; everyone else goes through send.
type client struct {
	conn *websocket.Conn
	send chan message
}

func (cl *client) writeLoop() {
	defer cl.conn.Close()
	for msg := range cl.send {
		cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := cl.conn.WriteJSON(msg); err != nil {
			log.Printf("ws send: %v", err)
			return
		}
	}
}

// Hub fans render updates out to every connection watching a session
// and feeds commands read from those connections back to the manager.
// Broadcast never waits on the network.
type Hub struct {
	mu       sync.Mutex
	sessions map[string]map[*client]struct{}
	manager  SessionManager
}

func NewHub(manager SessionManager) *Hub {
	return &Hub{
		sessions: make(map[string]map[*client]struct{}),
		manager:  manager,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

type message struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

func (h *Hub) HandleWS(c *gin.Context) {
	code := c.Query("session")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return
	}
	if _, err := h.manager.Frame(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	cl := &client{conn: conn, send: make(chan message, sendBuffer)}
	go cl.writeLoop()
	h.register(code, cl)
	log.Printf("ws watcher joined session %s", code)

	defer func() {
		h.unregister(code, cl)
		log.Printf("ws watcher left session %s", code)
	}()

	// registered first so no render between the read and the send is lost
	frame, err := h.manager.Frame(code)
	if err != nil {
		return
	}
	h.enqueue(code, cl, message{Action: "frame", Data: frame})

	for {
		var msg struct {
			Action string `json:"action"`
			Data   string `json:"data"`
		}
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("ws read: %v", err)
			break
		}

		switch msg.Action {
		case "command":
			if _, err := h.manager.Command(code, msg.Data); err != nil {
				h.enqueue(code, cl, message{Action: "error", Data: err.Error()})
			}
		default:
			log.Printf("ws unknown action %q", msg.Action)
		}
	}
}

func (h *Hub) register(code string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[code]; !ok {
		h.sessions[code] = make(map[*client]struct{})
	}
	h.sessions[code][cl] = struct{}{}
}

func (h *Hub) unregister(code string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(code, cl)
}

// dropLocked removes cl and stops its writer. Safe to call twice.
func (h *Hub) dropLocked(code string, cl *client) {
	clients, ok := h.sessions[code]
	if !ok {
		return
	}
	if _, ok := clients[cl]; !ok {
		return
	}
	delete(clients, cl)
	if len(clients) == 0 {
		delete(h.sessions, code)
	}
	close(cl.send)
	// unblocks both a stuck write and the read loop
	cl.conn.Close()
}

func (h *Hub) enqueue(code string, cl *client, msg message) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.sessions[code][cl]; !ok {
		return
	}
	h.offerLocked(code, cl, msg)
}

func (h *Hub) offerLocked(code string, cl *client, msg message) {
	select {
	case cl.send <- msg:
	default:
		log.Printf("ws watcher of session %s too slow, dropping", code)
		h.dropLocked(code, cl)
	}
}

// Broadcast queues one {action,data} envelope for every watcher of code.
// A watcher whose queue is full is disconnected.
func (h *Hub) Broadcast(code string, action string, data interface{}) {
	if h == nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	msg := message{Action: action, Data: data}
	for cl := range h.sessions[code] {
		h.offerLocked(code, cl, msg)
	}
}

// Watchers reports how many connections follow code.
func (h *Hub) Watchers(code string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions[code])
}
