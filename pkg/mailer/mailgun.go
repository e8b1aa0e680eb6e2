package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"
)

// Mailer sends transactional emails through Mailgun.
type Mailer struct {
	mg     *mailgun.MailgunImpl
	domain string
	from   string
}

func NewMailer(domain, apiKey, from string) *Mailer {
	return &Mailer{
		mg:     mailgun.NewMailgun(domain, apiKey),
		domain: domain,
		from:   from,
	}
}

// Send renders the job into a message and dispatches it.
func (m *Mailer) Send(ctx context.Context, job EmailJob) error {
	subject, html := render(job)
	msg := m.mg.NewMessage(m.from, subject, "", job.To)
	msg.SetHtml(html)

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, _, err := m.mg.Send(ctx, msg)
	return err
}

func render(job EmailJob) (subject, html string) {
	switch job.Kind {
	case JobVerifyAccount:
		subject = "Verify your account"
		html = fmt.Sprintf(`<h2>Hi %s,</h2>
<p>Welcome to Electrical Car Blog! Please verify your account by clicking the link below. The link expires in 30 minutes.</p>
<p><a href="%s">Verify account</a></p>`, job.Name, job.ActionURL)
	case JobResetPassword:
		subject = "Reset your password"
		html = fmt.Sprintf(`<h2>Hi %s,</h2>
<p>We received a request to reset your password. The link below expires in 10 minutes. If you did not ask for this, you can ignore this email.</p>
<p><a href="%s">Reset password</a></p>`, job.Name, job.ActionURL)
	case JobAdminMessage:
		subject = job.Subject
		html = fmt.Sprintf(`<h2>Hi %s,</h2><p>%s</p>`, job.Name, job.Message)
	default:
		subject = job.Subject
		html = fmt.Sprintf("<p>%s</p>", job.Message)
	}
	return subject, html
}
