package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"

	"solbooking/internal/entities"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #222;">
    <h2>Your booking is confirmed</h2>
    <p>Hello {{.ToName}},</p>
    <p>Your appointment has been booked. Reference: <strong>{{.BookingID}}</strong></p>
    <table cellpadding="4">
      <tr><td>Service</td><td>{{.ServiceName}} - {{.PackageDetails}}</td></tr>
      <tr><td>Price</td><td>{{.Price}} - by invoice</td></tr>
      <tr><td>Solicitor</td><td>{{.SolicitorName}}</td></tr>
      <tr><td>Date</td><td>{{.AppointmentDate}}</td></tr>
      <tr><td>Time</td><td>{{.AppointmentTime}}</td></tr>
      <tr><td>Lender</td><td>{{.Lender}}</td></tr>
    </table>
    <p>No payment is taken until after your appointment. Fully cancellable at any time.</p>
    <p>ILA Connect</p>
  </body>
</html>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))

// NotificationService sends the booking confirmation by email, with an
// optional SMS nudge. Every failure is downgraded to a log line plus an
// error the caller may surface as an informational notice; a booking is
// never rolled back because a message did not go out.
type NotificationService struct {
	// SMSEnabled turns on the text message alongside the email.
	SMSEnabled bool
}

func NewNotificationService(smsEnabled bool) *NotificationService {
	return &NotificationService{SMSEnabled: smsEnabled}
}

// SendBookingConfirmation dispatches the confirmation for one booking.
func (s *NotificationService) SendBookingConfirmation(ctx context.Context, c entities.Confirmation) error {
	subject := fmt.Sprintf("Your booking is confirmed - %s", c.BookingID)
	plainBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been booked. Reference: %s\n\n"+
			"Service: %s - %s\n"+
			"Price: %s - by invoice\n"+
			"Solicitor: %s\n"+
			"Date: %s\n"+
			"Time: %s\n"+
			"Lender: %s\n\n"+
			"No payment is taken until after your appointment. Fully cancellable at any time.\n\n"+
			"ILA Connect",
		c.ToName, c.BookingID, c.ServiceName, c.PackageDetails, c.Price,
		c.SolicitorName, c.AppointmentDate, c.AppointmentTime, c.Lender,
	)

	var htmlBody bytes.Buffer
	if err := confirmationTmpl.Execute(&htmlBody, c); err != nil {
		log.Printf("WARNING: failed to render confirmation template for booking %s: %v", c.BookingID, err)
	}

	if err := SendEmailWithSendGrid(c.ToEmail, c.ToName, subject, plainBody, htmlBody.String()); err != nil {
		return fmt.Errorf("confirmation email for booking %s: %w", c.BookingID, err)
	}

	if s.SMSEnabled && c.Phone != "" {
		sms := fmt.Sprintf("ILA Connect: your booking %s is confirmed for %s, %s. Details are in your email.",
			c.BookingID, c.AppointmentDate, c.AppointmentTime)
		if err := SendSMS(c.Phone, sms); err != nil {
			log.Printf("WARNING: booking %s confirmed, but the confirmation SMS to %s failed: %v", c.BookingID, c.Phone, err)
		}
	}
	return nil
}
