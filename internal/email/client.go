package email

import (
	"crypto/tls"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/wneessen/go-mail"
)

// Client sends transactional emails over SMTP
type Client struct {
	host      string
	port      int
	user      string
	password  string
	fromName  string
	fromEmail string
}

// NewClient creates a new email client
func NewClient(host, portStr, user, password, fromName, fromEmail string) (*Client, error) {
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port: %w", err)
	}

	return &Client{
		host:      host,
		port:      port,
		user:      user,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}, nil
}

// SendEmail sends a single HTML email
func (c *Client) SendEmail(to, subject, htmlBody string) error {
	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.fromName, c.fromEmail)); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(mail.TypeTextHTML, htmlBody)

	log.Printf("SMTP: connecting to %s:%d as user=%s", c.host, c.port, c.user)

	client, err := mail.NewClient(c.host,
		mail.WithPort(c.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.user),
		mail.WithPassword(c.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{
			ServerName: c.host,
		}),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client (host=%s port=%d): %w", c.host, c.port, err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("sending email (host=%s port=%d): %w", c.host, c.port, err)
	}

	return nil
}

// StaySummary is one stay line inside a confirmation email
type StaySummary struct {
	RoomName string
	CheckIn  time.Time
	CheckOut time.Time
	Amount   float64
}

// BookingConfirmation carries the booking data for a confirmation email
type BookingConfirmation struct {
	GroupCode   string
	ClientName  string
	ClientEmail string
	BookingDate time.Time
	Total       float64
	Stays       []StaySummary
}

// SendBookingConfirmation sends the booking confirmation email
func (c *Client) SendBookingConfirmation(conf BookingConfirmation) error {
	subject := fmt.Sprintf("Booking confirmation %s - %s", conf.GroupCode, c.fromName)
	return c.SendEmail(conf.ClientEmail, subject, buildConfirmationHTML(conf, c.fromName))
}

// buildConfirmationHTML renders the confirmation email body
func buildConfirmationHTML(conf BookingConfirmation, hotelName string) string {
	var stayRows strings.Builder
	for _, stay := range conf.Stays {
		stayRows.WriteString(fmt.Sprintf(`
			<div class="details">
				<p><strong>Room:</strong> %s</p>
				<p><strong>Check-in:</strong> %s</p>
				<p><strong>Check-out:</strong> %s</p>
				<p><strong>Amount:</strong> %.0f FCFA</p>
			</div>`,
			stay.RoomName,
			stay.CheckIn.Format("02/01/2006 15:04"),
			stay.CheckOut.Format("02/01/2006 15:04"),
			stay.Amount,
		))
	}

	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<style>
				body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
				.container { max-width: 600px; margin: 0 auto; padding: 20px; }
				.header { background-color: #4CAF50; color: white; padding: 20px; text-align: center; }
				.content { padding: 20px; background-color: #f9f9f9; }
				.footer { text-align: center; padding: 20px; font-size: 12px; color: #666; }
				.details { background-color: white; padding: 15px; margin: 10px 0; border-radius: 5px; }
				.total { font-size: 18px; font-weight: bold; color: #4CAF50; }
			</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>%s</h1>
					<h2>Booking confirmation</h2>
				</div>
				<div class="content">
					<p>Dear %s,</p>
					<p>Your booking has been confirmed. Here are the details:</p>

					<div class="details">
						<h3>Booking</h3>
						<p><strong>Reference:</strong> %s</p>
						<p><strong>Booking date:</strong> %s</p>
					</div>
					%s
					<p class="total">Total: %.0f FCFA</p>

					<p>Thank you for choosing %s. We look forward to welcoming you.</p>
				</div>
				<div class="footer">
					<p>%s - Reservations</p>
					<p>This is an automated email, please do not reply.</p>
				</div>
			</div>
		</body>
		</html>`,
		hotelName,
		conf.ClientName,
		conf.GroupCode,
		conf.BookingDate.Format("02/01/2006"),
		stayRows.String(),
		conf.Total,
		hotelName,
		hotelName,
	)
}
