package email

import (
	"bytes"
	"html/template"
	"time"
)

// ContactNotificationData feeds the business-inbox email for a contact submission.
type ContactNotificationData struct {
	Name        string
	Email       string
	Phone       string
	Service     string
	Message     string
	SubmittedAt string
}

// ContactConfirmationData feeds the acknowledgement email sent back to the submitter.
type ContactConfirmationData struct {
	Name    string
	Service string
	Message string
}

// QuoteNotificationData feeds the business-inbox email for a quote request.
// Amount, Currency and AdditionalInfo are optional; absent values render no line.
type QuoteNotificationData struct {
	Name           string
	Email          string
	Phone          string
	Service        string
	Amount         *float64
	Currency       string
	AdditionalInfo string
	RequestedAt    string
}

// InquiryNotificationData feeds the business-inbox email for a service inquiry.
type InquiryNotificationData struct {
	Name       string
	Email      string
	Phone      string
	Service    string
	InquiredAt string
}

var (
	contactNotificationTmpl = template.Must(template.New("contactNotification").Parse(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Service Interested In:</strong> {{.Service}}</p>
<p><strong>Message:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>Submitted on: {{.SubmittedAt}}</small></p>
`))

	contactConfirmationTmpl = template.Must(template.New("contactConfirmation").Parse(`
<h2>Thank you for contacting Vallabh Forex!</h2>
<p>Dear {{.Name}},</p>
<p>We have received your inquiry about <strong>{{.Service}}</strong> and will get back to you within 24 hours.</p>
<p>Here's a copy of your message:</p>
<blockquote>{{.Message}}</blockquote>
<p>If you have any urgent queries, please call us at <strong>+91 9913647948</strong>.</p>
<br>
<p>Best regards,<br>Team Vallabh Forex</p>
<hr>
<p><small>Vallabh Forex Pvt Ltd<br>Ahmedabad, Gujarat</small></p>
`))

	quoteNotificationTmpl = template.Must(template.New("quoteNotification").Parse(`
<h2>New Quote Request</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Service:</strong> {{.Service}}</p>
{{if .Amount}}<p><strong>Amount:</strong> {{.Amount}} {{.Currency}}</p>
{{end}}{{if .AdditionalInfo}}<p><strong>Additional Info:</strong> {{.AdditionalInfo}}</p>
{{end}}<hr>
<p><small>Requested on: {{.RequestedAt}}</small></p>
`))

	inquiryNotificationTmpl = template.Must(template.New("inquiryNotification").Parse(`
<h2>New Service Inquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Service:</strong> {{.Service}}</p>
<hr>
<p><small>Inquired on: {{.InquiredAt}}</small></p>
`))
)

func render(tmpl *template.Template, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContactNotificationHTML renders the business notification for a contact submission.
func ContactNotificationHTML(data ContactNotificationData) (string, error) {
	return render(contactNotificationTmpl, data)
}

// ContactConfirmationHTML renders the acknowledgement sent to the submitter.
func ContactConfirmationHTML(data ContactConfirmationData) (string, error) {
	return render(contactConfirmationTmpl, data)
}

// QuoteNotificationHTML renders the business notification for a quote request.
func QuoteNotificationHTML(data QuoteNotificationData) (string, error) {
	return render(quoteNotificationTmpl, data)
}

// InquiryNotificationHTML renders the business notification for a service inquiry.
func InquiryNotificationHTML(data InquiryNotificationData) (string, error) {
	return render(inquiryNotificationTmpl, data)
}

var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// TimestampIST formats a time as a human-readable Indian Standard Time string.
// Cosmetic only; never parsed back.
func TimestampIST(t time.Time) string {
	return t.In(istLocation).Format("02/01/2006, 3:04:05 PM") + " IST"
}
