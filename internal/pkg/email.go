package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// EmailCodeHTML renders the reset-code mail body in the user's language.
func EmailCodeHTML(lang, code string, ttl time.Duration) string {
	mins := int(ttl.Minutes())
	if lang == "fr" {
		return fmt.Sprintf(`<p>Bonjour,</p><p>Votre code de réinitialisation est : <b style="font-size:18px;">%s</b>.</p><p>Valable %d minutes, ne le partagez pas.</p>`, code, mins)
	}
	return fmt.Sprintf(`<p>Hola,</p><p>Tu código de restablecimiento es: <b style="font-size:18px;">%s</b>.</p><p>Válido durante %d minutos, no lo compartas.</p>`, code, mins)
}
