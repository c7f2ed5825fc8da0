package realtime

import (
	"encoding/json"
	"net/http"
	"sync"

	"garage-backend/internal/api/response"
	"garage-backend/internal/auth"
	"garage-backend/internal/database/models"
	apperrors "garage-backend/internal/errors"
	"garage-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MessageTypeNotification tags pushed notifications
const MessageTypeNotification = "notification"

// Message is the envelope written to websocket clients
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub keeps the live websocket connections of each user and pushes new
// notifications to them. A user may hold several connections.
type Hub struct {
	tokens   auth.TokenValidator
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[recipient]map[*client]struct{}

	connections prometheus.Gauge
	pushed      prometheus.Counter
	dropped     prometheus.Counter
}

// NewHub creates a hub that authenticates connections with tokens. Metrics are
// registered with reg when it is not nil.
func NewHub(tokens auth.TokenValidator, allowedOrigins []string, reg prometheus.Registerer) *Hub {
	factory := promauto.With(reg)
	h := &Hub{
		tokens:  tokens,
		clients: make(map[recipient]map[*client]struct{}),
		connections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "garage_websocket_connections",
			Help: "Open websocket connections",
		}),
		pushed: factory.NewCounter(prometheus.CounterOpts{
			Name: "garage_notifications_pushed_total",
			Help: "Notifications written to websocket clients",
		}),
		dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "garage_notifications_dropped_total",
			Help: "Notifications dropped because a client was too slow",
		}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, o := range allowed {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}

// ServeWS upgrades GET /ws?token=<jwt> into a notification stream for the token's user
// @Summary Notification stream
// @Description Websocket carrying {type:"notification", data} messages for the caller
// @Tags notifications
// @Param token query string true "JWT access token"
// @Success 101 {string} string "Switching protocols"
// @Failure 401 {object} response.ErrorResponse "Missing or invalid token"
// @Router /ws [get]
func (h *Hub) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, apperrors.ErrMissingToken)
		return
	}

	claims, err := h.tokens.ValidateJWT(token)
	if err != nil {
		response.Error(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithContext(c).WithError(err).Warn("Websocket upgrade failed")
		return
	}

	cl := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, sendBuffer),
		who:  recipient{tenantID: claims.TenantID, username: claims.Username},
	}
	h.register(cl)

	go cl.writePump()
	go cl.readPump()
}

func (h *Hub) register(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[c.who] == nil {
		h.clients[c.who] = make(map[*client]struct{})
	}
	h.clients[c.who][c] = struct{}{}
	h.connections.Inc()

	logger.New().WithFields(map[string]interface{}{
		"tenant_id": c.who.tenantID,
		"user":      c.who.username,
	}).Debug("Websocket client connected")
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.remove(c)
}

// remove must be called with mu held
func (h *Hub) remove(c *client) {
	clients, ok := h.clients[c.who]
	if !ok {
		return
	}
	if _, exists := clients[c]; !exists {
		return
	}

	delete(clients, c)
	close(c.send)
	h.connections.Dec()
	if len(clients) == 0 {
		delete(h.clients, c.who)
	}
}

// Push delivers n to every live connection of the user. It never blocks;
// a client whose buffer is full is disconnected.
func (h *Hub) Push(tenantID int64, username string, n *models.Notification) {
	payload, err := json.Marshal(Message{Type: MessageTypeNotification, Data: n})
	if err != nil {
		logger.New().WithError(err).Error("Failed to encode notification")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients[recipient{tenantID: tenantID, username: username}] {
		select {
		case c.send <- payload:
			h.pushed.Inc()
		default:
			h.dropped.Inc()
			h.remove(c)
		}
	}
}

// Connections reports how many live connections the user holds
func (h *Hub) Connections(tenantID int64, username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[recipient{tenantID: tenantID, username: username}])
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, clients := range h.clients {
		for c := range clients {
			h.remove(c)
		}
	}
}
