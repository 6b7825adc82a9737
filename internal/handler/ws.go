package handler

import (
	"net/http"
	"sync"

	"github.com/arkv-lms/library-service/pkg/kafka"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub fans change events out to WebSocket subscribers, keyed by resource
// table. Each view holds its own subscription; closing the socket is the
// unsubscribe.
type Hub struct {
	mu          sync.Mutex
	subscribers map[string][]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string][]*websocket.Conn),
	}
}

func (h *Hub) add(table string, conn *websocket.Conn) {
	h.mu.Lock()
	h.subscribers[table] = append(h.subscribers[table], conn)
	h.mu.Unlock()
}

func (h *Hub) remove(table string, conn *websocket.Conn) {
	h.mu.Lock()
	conns := h.subscribers[table]
	newList := make([]*websocket.Conn, 0, len(conns))
	for _, c := range conns {
		if c != conn {
			newList = append(newList, c)
		}
	}
	h.subscribers[table] = newList
	h.mu.Unlock()
}

// Broadcast writes the payload to every subscriber of the table, dropping
// connections that fail.
func (h *Hub) Broadcast(table string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns := h.subscribers[table]
	newList := conns[:0]
	for _, conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err == nil {
			newList = append(newList, conn)
		} else {
			conn.Close() //nolint:errcheck
		}
	}
	h.subscribers[table] = newList
}

var feedTables = map[string]struct{}{
	kafka.TableBooks:         {},
	kafka.TableLibraryTables: {},
	kafka.TableReservations:  {},
}

// ChangeFeed upgrades the connection and streams change events for one
// resource table until the client disconnects.
func (h *Handler) ChangeFeed(c echo.Context) error {
	table := c.Param("table")
	if _, ok := feedTables[table]; !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown table")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "WebSocket upgrade failed")
	}
	h.hub.add(table, conn)
	h.log.Debug("change feed subscribed", zap.String("table", table))

	// keep the connection alive until the client goes away
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.hub.remove(table, conn)
	conn.Close() //nolint:errcheck
	return nil
}
