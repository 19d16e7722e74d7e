package services

import (
	"fmt"
	"log"
	"os"
)

// Mailer sends the transactional confirmation emails. Every send is
// fire-and-forget: failures are logged and never propagated, so a
// broken SMTP relay cannot fail a registration or a payment.
type Mailer struct {
	email      *EmailService
	adminEmail string
}

func NewMailer(email *EmailService) *Mailer {
	return &Mailer{
		email:      email,
		adminEmail: os.Getenv("ADMIN_NOTIFY_EMAIL"),
	}
}

func (m *Mailer) send(to, subject, body string) {
	if err := m.email.SendHTML(to, subject, body); err != nil {
		log.Printf("Failed to send %q to %s: %v", subject, to, err)
	}
}

// wrap puts the shared site header and footer around an email body
func wrap(heading, inner string) string {
	return fmt.Sprintf(`<html><body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
<div style="background-color: #2563eb; padding: 20px; text-align: center;"><h1 style="color: white; margin: 0;">NIGERLAND CONSULT LIMITED</h1></div>
<div style="padding: 30px; background-color: #f9fafb;"><h2 style="color: #2563eb;">%s</h2>%s
<p>Best regards,<br>Nigerland Consult Limited Team</p></div>
<div style="background-color: #1f2937; padding: 20px; text-align: center; color: white; font-size: 12px;"><p>&copy; Nigerland Consult Limited. All rights reserved.</p></div>
</div></body></html>`, heading, inner)
}

// SendRegistrationConfirmation is sent when a conference registration is created
func (m *Mailer) SendRegistrationConfirmation(to, name, conference, registrationID string) {
	body := wrap("Registration Confirmation", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for registering for <strong>%s</strong>.</p>
<p>Your registration ID is: <strong>%s</strong></p>
<p>We will send you payment instructions shortly.</p>`, name, conference, registrationID))
	m.send(to, "Registration Confirmation - "+conference, body)
}

// SendPaymentConfirmation is sent when a conference payment is verified
func (m *Mailer) SendPaymentConfirmation(to, name, conference string, amount float64, reference string) {
	body := wrap("Payment Confirmed!", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>We have received your payment for <strong>%s</strong>.</p>
<div style="background-color: white; padding: 15px; border-left: 4px solid #2563eb; margin: 20px 0;">
<p style="margin: 5px 0;"><strong>Amount Paid:</strong> &#8358;%.2f</p>
<p style="margin: 5px 0;"><strong>Reference:</strong> %s</p></div>
<p>You will receive further details about the conference closer to the date.</p>`, name, conference, amount, reference))
	m.send(to, "Payment Confirmed - "+conference, body)
}

// SendBookPurchaseConfirmation carries the download link once a book payment settles
func (m *Mailer) SendBookPurchaseConfirmation(to, name, bookTitle, downloadURL string) {
	if downloadURL == "" {
		downloadURL = "Contact support for download"
	}
	body := wrap("Thank You for Your Purchase!", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Your payment for <strong>%s</strong> has been confirmed.</p>
<p>Download your copy here: <a href="%s">%s</a></p>`, name, bookTitle, downloadURL, downloadURL))
	m.send(to, "Your Book Purchase - "+bookTitle, body)
}

// SendTrainingEnrollmentConfirmation is sent when an enrollment is created
func (m *Mailer) SendTrainingEnrollmentConfirmation(to, name, programTitle, enrollmentID string) {
	body := wrap("Enrollment Received", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for enrolling in <strong>%s</strong>.</p>
<p>Your enrollment ID is: <strong>%s</strong></p>
<p>Complete your payment to confirm your seat.</p>`, name, programTitle, enrollmentID))
	m.send(to, "Enrollment Confirmation - "+programTitle, body)
}

// SendTrainingPaymentConfirmation is sent when a training payment is verified
func (m *Mailer) SendTrainingPaymentConfirmation(to, name, programTitle string, amount float64) {
	body := wrap("Payment Confirmed!", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>We have received your payment of <strong>&#8358;%.2f</strong> for <strong>%s</strong>.</p>
<p>Your seat is confirmed. Programme details will follow by email.</p>`, name, amount, programTitle))
	m.send(to, "Payment Confirmed - "+programTitle, body)
}

// SendMoreLifeAssessmentConfirmation is sent when an assessment is submitted
func (m *Mailer) SendMoreLifeAssessmentConfirmation(to, name, assessmentID string) {
	body := wrap("Assessment Received", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for completing the MoreLife assessment.</p>
<p>Your assessment ID is: <strong>%s</strong></p>
<p>Our team will review your submission and be in touch.</p>`, name, assessmentID))
	m.send(to, "MoreLife Assessment Received", body)
}

// SendMoreLifePaymentConfirmation is sent when a session payment is verified
func (m *Mailer) SendMoreLifePaymentConfirmation(to, name, sessionType string, amount float64) {
	body := wrap("Payment Confirmed!", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>We have received your payment of <strong>&#8358;%.2f</strong> for your MoreLife session (%s).</p>
<p>We will contact you to schedule your sessions.</p>`, name, amount, sessionType))
	m.send(to, "MoreLife Payment Confirmed", body)
}

// SendContactConfirmation acknowledges a contact-form submission
func (m *Mailer) SendContactConfirmation(to, name, subject string) {
	body := wrap("Message Received", fmt.Sprintf(
		`<p>Dear %s,</p>
<p>Thank you for contacting us regarding: <strong>%s</strong></p>
<p>We have received your message and will respond shortly.</p>`, name, subject))
	m.send(to, "We Received Your Message", body)
}

// SendAdminContactNotification forwards a contact message to the office inbox
func (m *Mailer) SendAdminContactNotification(name, email, subject, message string) {
	if m.adminEmail == "" {
		return
	}
	body := wrap("New Contact Message", fmt.Sprintf(
		`<p><strong>From:</strong> %s (%s)</p>
<p><strong>Subject:</strong> %s</p>
<p>%s</p>`, name, email, subject, message))
	m.send(m.adminEmail, "New Contact Message: "+subject, body)
}
