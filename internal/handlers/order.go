package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/config"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/database"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/middleware"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/models"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/realtime"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/services"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/utils"
)

// OrderHandler manages order placement, tracking and status transitions.
type OrderHandler struct {
	db    *gorm.DB
	cfg   *config.Config
	hub   *realtime.Hub
	email *services.EmailService
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(db *gorm.DB, cfg *config.Config, hub *realtime.Hub, email *services.EmailService) *OrderHandler {
	return &OrderHandler{db: db, cfg: cfg, hub: hub, email: email}
}

type orderItemRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type createOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	DeliveryAddress string             `json:"delivery_address"`
	DeliveryLat     *float64           `json:"delivery_lat"`
	DeliveryLng     *float64           `json:"delivery_lng"`
	Items           []orderItemRequest `json:"items"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
}

// Create places a new order. Works for guests; a valid bearer token
// attributes the order to the requesting user.
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req createOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.CustomerName == "" || req.CustomerPhone == "" || req.DeliveryAddress == "" {
		return fiber.NewError(fiber.StatusBadRequest, "missing required fields")
	}
	if len(req.Items) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "order must contain at least one item")
	}

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.PaymentCash
	}
	if !models.ValidPaymentMethod(paymentMethod) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payment method")
	}

	order := models.Order{
		OrderNumber:     utils.GenerateOrderNumber(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryLat:     req.DeliveryLat,
		DeliveryLng:     req.DeliveryLng,
		DeliveryFee:     h.cfg.DeliveryFee,
		Status:          models.StatusPending,
		PaymentMethod:   paymentMethod,
		Notes:           req.Notes,
	}

	if user, ok := middleware.GetCurrentUser(c); ok {
		order.UserID = &user.ID
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "item quantity must be positive")
		}
		line := models.OrderItem{
			MenuItemName: item.Name,
			Quantity:     item.Quantity,
			Price:        item.Price,
			Subtotal:     item.Price * float64(item.Quantity),
		}
		if item.ID != "" {
			if id, err := uuid.Parse(item.ID); err == nil {
				line.MenuItemID = &id
			}
		}
		order.Items = append(order.Items, line)
	}

	order.Subtotal = models.CalculateSubtotal(order.Items)
	order.Total = order.Subtotal + order.DeliveryFee

	// Header and line items go in one transaction so a failed item insert
	// rolls the whole order back.
	if err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return err
	}

	complete, err := h.aggregatedOrder("id = ?", order.ID)
	if err != nil {
		return err
	}

	h.hub.ToAdmins(realtime.EventNewOrder, complete)

	if complete.CustomerEmail != "" {
		if err := h.email.SendOrderConfirmation(complete); err != nil {
			log.Printf("order confirmation email failed for %s: %v", complete.OrderNumber, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": complete})
}

// List returns all orders for the admin dashboard, newest first, optionally
// filtered by status.
func (h *OrderHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}

	status := c.Query("status")

	orders, err := database.Retry(func() ([]models.Order, error) {
		query := h.db.Preload("Items").Order("created_at desc").Limit(limit)
		if status != "" {
			query = query.Where("status = ?", status)
		}
		var out []models.Order
		err := query.Find(&out).Error
		return out, err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

// Get returns a single aggregated order. Customers may only read their own
// orders; a mismatch is forbidden, not hidden.
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	order, err := h.aggregatedOrder("id = ?", id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}
	if !user.IsAdmin() && (order.UserID == nil || *order.UserID != user.ID) {
		return fiber.NewError(fiber.StatusForbidden, "not authorized")
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// Track returns an order by its public order number. No authentication:
// knowing the number is the capability.
func (h *OrderHandler) Track(c *fiber.Ctx) error {
	orderNumber := c.Params("orderNumber")

	order, err := h.aggregatedOrder("order_number = ?", orderNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "order not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// MyOrders returns the requesting user's orders, newest first.
func (h *OrderHandler) MyOrders(c *fiber.Ctx) error {
	user, ok := middleware.GetCurrentUser(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	var orders []models.Order
	if err := h.db.Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": orders})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus moves an order to a new status and fans the change out to
// everyone watching. Targets outside the fixed enum are rejected without
// touching the row. Which transitions are legal is deliberately not
// restricted here.
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if !models.ValidStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "invalid status")
	}

	result := h.db.Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"status": req.Status, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "order not found")
	}

	order, err := h.aggregatedOrder("id = ?", id)
	if err != nil {
		return err
	}

	h.hub.ToOrder(order.OrderNumber, realtime.EventOrderUpdate, fiber.Map{"order": order})

	statusPayload := fiber.Map{"orderId": id, "status": req.Status, "order": order}
	h.hub.Broadcast(realtime.EventOrderStatusUpdate, statusPayload)
	h.hub.ToAdmins(realtime.EventOrderStatusUpdate, statusPayload)

	return c.JSON(fiber.Map{"success": true, "data": order})
}

// Stats returns the admin dashboard aggregates.
func (h *OrderHandler) Stats(c *fiber.Ctx) error {
	var totalOrders int64
	if err := h.db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
		return err
	}

	var pendingOrders int64
	if err := h.db.Model(&models.Order{}).
		Where("status = ?", models.StatusPending).
		Count(&pendingOrders).Error; err != nil {
		return err
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var todayRevenue float64
	if err := h.db.Model(&models.Order{}).
		Where("created_at >= ?", midnight).
		Select("COALESCE(SUM(total), 0)").
		Scan(&todayRevenue).Error; err != nil {
		return err
	}

	var recentOrders []models.Order
	if err := h.db.Order("created_at desc").Limit(5).Find(&recentOrders).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"totalOrders":   totalOrders,
			"pendingOrders": pendingOrders,
			"todayRevenue":  todayRevenue,
			"recentOrders":  recentOrders,
		},
	})
}

// aggregatedOrder loads one order header together with its full line item
// set, retrying transient database failures.
func (h *OrderHandler) aggregatedOrder(condition string, value interface{}) (*models.Order, error) {
	return database.Retry(func() (*models.Order, error) {
		var order models.Order
		if err := h.db.Preload("Items").First(&order, condition, value).Error; err != nil {
			return nil, err
		}
		return &order, nil
	})
}
