package realtime

import (
	"log"
	"sync"
)

// Server-emitted event names.
const (
	EventNewOrder          = "newOrder"
	EventOrderUpdate       = "orderUpdate"
	EventOrderStatusUpdate = "orderStatusUpdate"
)

// Client is a connected websocket peer. Delivery is fire-and-forget and
// at-most-once: a client connecting after an event misses it permanently.
type Client interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Event is the wire envelope for server-emitted messages.
type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub owns the group membership table for notification fan-out: the full
// connection set, the admin audience, and per-order-number rooms.
type Hub struct {
	mu      sync.Mutex
	clients map[Client]bool
	admins  map[Client]bool
	orders  map[string]map[Client]bool
}

// NewHub constructs an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[Client]bool),
		admins:  make(map[Client]bool),
		orders:  make(map[string]map[Client]bool),
	}
}

// Register adds a newly connected client.
func (h *Hub) Register(c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = true
}

// Unregister removes a client from every audience and closes it.
func (h *Hub) Unregister(c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(c)
}

// JoinAdmin adds the client to the admin audience.
func (h *Hub) JoinAdmin(c Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.admins[c] = true
}

// TrackOrder subscribes the client to a specific order's room.
func (h *Hub) TrackOrder(c Client, orderNumber string) {
	if orderNumber == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.orders[orderNumber] == nil {
		h.orders[orderNumber] = make(map[Client]bool)
	}
	h.orders[orderNumber][c] = true
}

// LeaveOrder removes the client from an order room.
func (h *Hub) LeaveOrder(c Client, orderNumber string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if room := h.orders[orderNumber]; room != nil {
		delete(room, c)
		if len(room) == 0 {
			delete(h.orders, orderNumber)
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sendLocked(h.clients, event, data)
}

// ToAdmins sends an event to the admin audience.
func (h *Hub) ToAdmins(event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sendLocked(h.admins, event, data)
}

// ToOrder sends an event to the clients tracking the given order number.
func (h *Hub) ToOrder(orderNumber, event string, data interface{}) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sendLocked(h.orders[orderNumber], event, data)
}

func (h *Hub) sendLocked(audience map[Client]bool, event string, data interface{}) {
	payload := Event{Event: event, Data: data}
	for c := range audience {
		if err := c.WriteJSON(payload); err != nil {
			log.Printf("[ws] write failed, dropping client: %v", err)
			h.dropLocked(c)
		}
	}
}

func (h *Hub) dropLocked(c Client) {
	delete(h.clients, c)
	delete(h.admins, c)
	for number, room := range h.orders {
		delete(room, c)
		if len(room) == 0 {
			delete(h.orders, number)
		}
	}
	_ = c.Close()
}
