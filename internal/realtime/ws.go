package realtime

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// clientAction is a message sent by a connected client. Joining the admin
// audience carries no authorization check.
type clientAction struct {
	Action      string `json:"action"`
	OrderNumber string `json:"orderNumber"`
}

// Upgrade gates a route to websocket upgrade requests.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler returns the websocket connection handler for the hub. It reads
// client actions until the connection drops.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		hub.Register(conn)
		defer hub.Unregister(conn)

		for {
			var action clientAction
			if err := conn.ReadJSON(&action); err != nil {
				return
			}

			switch action.Action {
			case "joinAdmin":
				hub.JoinAdmin(conn)
			case "trackOrder":
				hub.TrackOrder(conn, action.OrderNumber)
			case "leaveOrder":
				hub.LeaveOrder(conn, action.OrderNumber)
			default:
				log.Printf("[ws] unknown action %q", action.Action)
			}
		}
	})
}
