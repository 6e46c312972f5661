package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/xavierca1/lead-engine/internal/infra/queue"
)

// Template embutido de propósito: alerta de lead quente não pode falhar
// por arquivo ausente no deploy.
const hotLeadTemplate = `New hot lead detected!

Name: {{.Name}}
Email: {{if .Email}}{{.Email}}{{else}}N/A{{end}}
Phone: {{if .Phone}}{{.Phone}}{{else}}N/A{{end}}
Score: {{.Score}}
Source: {{.Source}}

---
Lead Engine
`

var hotLeadTmpl = template.Must(template.New("hot_lead").Parse(hotLeadTemplate))

func NewEmailSender(host string, port int, user, password, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		To:       to,
	}
}

func (s *EmailSender) SendHotLeadAlert(payload queue.HotLeadPayload) error {
	data := HotLeadAlertData{
		Name:   payload.Name,
		Email:  payload.Email,
		Phone:  payload.Phone,
		Score:  payload.Score,
		Source: payload.Source,
	}
	if data.Name == "" {
		data.Name = "Unknown"
	}

	var body bytes.Buffer
	if err := hotLeadTmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "alertas@lead-engine.local")
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("Hot Lead Alert: %s", data.Name))
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
