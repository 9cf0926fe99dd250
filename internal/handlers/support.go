package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/services"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/utils"
)

// SupportHandler accepts contact form submissions.
type SupportHandler struct {
	email *services.EmailService
}

// NewSupportHandler constructs SupportHandler.
func NewSupportHandler(email *services.EmailService) *SupportHandler {
	return &SupportHandler{email: email}
}

type supportMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SendMessage validates a contact form submission and forwards it to the
// admin inbox.
func (h *SupportHandler) SendMessage(c *fiber.Ctx) error {
	var req supportMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		return fiber.NewError(fiber.StatusBadRequest, "please provide name, email, subject, and message")
	}

	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "please provide a valid email address")
	}

	err := h.email.SendSupportMessage(services.SupportMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		log.Printf("support email failed: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to send message, please try again later")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "your message has been sent successfully, we will get back to you soon",
	})
}
