package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/resend/resend-go/v2"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/models"
)

// EmailService sends transactional email through Resend.
type EmailService struct {
	client     *resend.Client
	from       string
	adminEmail string
}

// NewEmailService constructs an EmailService. An empty API key leaves the
// service disabled and sends become no-ops that log.
func NewEmailService(apiKey, from, adminEmail string) *EmailService {
	svc := &EmailService{from: from, adminEmail: adminEmail}
	if apiKey == "" {
		log.Println("[Email] RESEND_API_KEY not configured, email disabled")
		return svc
	}
	svc.client = resend.NewClient(apiKey)
	return svc
}

// SupportMessage carries a contact form submission.
type SupportMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SendSupportMessage forwards a contact form submission to the admin inbox
// with Reply-To set to the sender.
func (s *EmailService) SendSupportMessage(msg SupportMessage) error {
	if s.client == nil {
		return errors.New("email service is not configured")
	}

	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}

	var body strings.Builder
	body.WriteString("<h2>New Support Message from Hood Eatery</h2>")
	fmt.Fprintf(&body, "<p><strong>Name:</strong> %s</p>", msg.Name)
	fmt.Fprintf(&body, "<p><strong>Email:</strong> %s</p>", msg.Email)
	fmt.Fprintf(&body, "<p><strong>Phone:</strong> %s</p>", phone)
	fmt.Fprintf(&body, "<p><strong>Subject:</strong> %s</p>", msg.Subject)
	fmt.Fprintf(&body, "<p><strong>Message:</strong></p><p>%s</p>", msg.Message)
	body.WriteString("<hr><p><em>This message was sent from the Hood Eatery contact form.</em></p>")

	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: "Support Message: " + msg.Subject,
		ReplyTo: msg.Email,
		Html:    body.String(),
	})
	return err
}

// SendOrderConfirmation emails the customer a summary of their new order.
// Orders without a customer email are skipped.
func (s *EmailService) SendOrderConfirmation(order *models.Order) error {
	if s.client == nil {
		return errors.New("email service is not configured")
	}
	if order.CustomerEmail == "" {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>Thank you for your order, %s!</h2>", order.CustomerName)
	body.WriteString("<p>Your order has been received and is being prepared.</p>")
	fmt.Fprintf(&body, "<h3>Order Details</h3><p><strong>Order Number:</strong> %s</p>", order.OrderNumber)
	body.WriteString("<h4>Items:</h4><ul>")
	for _, item := range order.Items {
		fmt.Fprintf(&body, "<li>%s x %d - $%.2f</li>", item.MenuItemName, item.Quantity, item.Subtotal)
	}
	body.WriteString("</ul>")
	fmt.Fprintf(&body, "<p><strong>Total:</strong> $%.2f</p>", order.Total)
	fmt.Fprintf(&body, "<p>You can track your order status using your order number: %s</p>", order.OrderNumber)
	body.WriteString("<hr><p><em>Hood Eatery - Where passion meets flavor</em></p>")

	_, err := s.client.Emails.Send(&resend.SendEmailRequest{
		From:    s.from,
		To:      []string{order.CustomerEmail},
		Subject: "Order Confirmation - " + order.OrderNumber,
		Html:    body.String(),
	})
	return err
}
