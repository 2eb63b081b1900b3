package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"matricula/config"
)

// SendEmail is the generic SMTP sender behind the notification triggers.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: API Matricula <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Erro ao enviar e-mail para %s: %v", strings.Join(to, ","), err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #d7b56d; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>API MATRICULA</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				Secretaria Acadêmica &mdash; não responda este e-mail.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail notifies the aluno after a matrícula is registered.
// Fire and forget: the HTTP response never waits on SMTP, and a send
// failure is only logged. No-op when EMAIL_SENDER is not configured.
func SendWelcomeEmail(email, nome, matricula string) {
	if config.AppConfig == nil || config.AppConfig.EmailSender == "" {
		return
	}

	subject := "Matrícula confirmada"
	body := fmt.Sprintf(`
		<p>Olá, %s!</p>
		<p>Sua matrícula <strong>%s</strong> foi registrada com sucesso.</p>
		<div class="info-box">
			Guarde este número: ele é a sua referência para consultas e atualizações de cadastro.
		</div>
	`, nome, matricula)

	go SendEmail([]string{email}, subject, getEmailTemplate("Bem vindo!", body))
}
