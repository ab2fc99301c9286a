package domain

import "errors"

var ErrRateLimited = errors.New("too many contact requests")
var ErrMailNotConfigured = errors.New("mail delivery not configured")

// ContactSubmission carries the public contact form. Website is a honeypot:
// humans never see the field, so a non-empty value marks a bot.
type ContactSubmission struct {
	Company    string
	Name       string
	Email      string
	Phone      string
	Message    string
	Location   string
	Revenue    string
	Employees  string
	Industry   string
	Years      string
	Interest   string
	CompanyURL string
	Website    string
}

// MailMessage is a composed outbound email ready for delivery.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}
