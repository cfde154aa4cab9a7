package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/url"
	"strings"
	texttemplate "text/template"
	"time"

	"gopkg.in/gomail.v2"
)

type IMailService interface {
	SendInvitation(ctx context.Context, to, inviteeName, holidayName, inviterName string) error
}

type SMTPConfig struct {
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AppName    string
	AppBaseURL string
}

type smtpMailService struct {
	cfg      SMTPConfig
	dialer   *gomail.Dialer
	htmlTpl  *template.Template
	plainTpl *texttemplate.Template
}

func NewSMTPMailService(cfg SMTPConfig) IMailService {
	return &smtpMailService{
		cfg:      cfg,
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		htmlTpl:  template.Must(template.New("invitationHTML").Parse(invitationHTMLTemplate)),
		plainTpl: texttemplate.Must(texttemplate.New("invitationText").Parse(invitationTextTemplate)),
	}
}

type invitationEmail struct {
	Invitee   string
	Inviter   string
	Holiday   string
	ButtonURL string
	AppName   string
	Year      int
}

func (s *smtpMailService) SendInvitation(ctx context.Context, to, inviteeName, holidayName, inviterName string) error {
	data := invitationEmail{
		Invitee:   inviteeName,
		Inviter:   inviterName,
		Holiday:   holidayName,
		ButtonURL: strings.TrimRight(s.cfg.AppBaseURL, "/") + "/invitations?holiday=" + url.QueryEscape(holidayName),
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	}

	var html, text bytes.Buffer
	if err := s.htmlTpl.Execute(&html, data); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if err := s.plainTpl.Execute(&text, data); err != nil {
		return fmt.Errorf("render text: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, s.cfg.AppName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("%s invited you to %s", inviterName, holidayName))
	m.SetBody("text/plain", text.String())
	m.AddAlternative("text/html", html.String())

	return s.dialer.DialAndSend(m)
}

// noopMailService is wired when SMTP is not configured.
type noopMailService struct{}

func NewNoopMailService() IMailService { return noopMailService{} }

func (noopMailService) SendInvitation(context.Context, string, string, string, string) error {
	return nil
}

const invitationHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Holiday}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f8fafc; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 16px; padding: 32px; }
    .brand { font-weight: 700; font-size: 22px; color: #2563eb; text-transform: uppercase; }
    .btn { display: inline-block; padding: 14px 28px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 12px; font-weight: 600; }
    .footer { color: #64748b; font-size: 13px; text-align: center; margin-top: 32px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="brand">{{.AppName}}</div>
    <h1>You're invited to {{.Holiday}}</h1>
    <p>Hi {{.Invitee}}, {{.Inviter}} would like you to join the holiday <strong>{{.Holiday}}</strong>.</p>
    <p><a class="btn" href="{{.ButtonURL}}">See my invitations</a></p>
    <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const invitationTextTemplate = `Hi {{.Invitee}},

{{.Inviter}} would like you to join the holiday "{{.Holiday}}".
Open your invitations: {{.ButtonURL}}

{{.AppName}}
`
