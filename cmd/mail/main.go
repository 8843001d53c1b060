package main

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/smallbiz-dev/business-manager/backend/internal/config"
	"github.com/smallbiz-dev/business-manager/backend/internal/domain"
	"github.com/wneessen/go-mail"
)

//go:embed templates/*.html
var templateFS embed.FS

type mailKind struct {
	template string
	subject  string
}

var mailKinds = map[string]mailKind{
	domain.MailTypeEmployeeOnboarded: {template: "employee_onboarded_email.html", subject: "Welcome aboard"},
	domain.MailTypePayslip:           {template: "payslip_email.html", subject: "Your payslip"},
}

// buildMessage turns a queued message into an email ready to send.
func buildMessage(cfg *config.Config, templates *template.Template, mm domain.MailMessage) (*mail.Msg, error) {
	kind, ok := mailKinds[mm.Type]
	if !ok {
		return nil, fmt.Errorf("unsupported mail type %q", mm.Type)
	}

	tmpl := templates.Lookup(kind.template)
	if tmpl == nil {
		return nil, fmt.Errorf("missing template %s", kind.template)
	}

	m := mail.NewMsg()
	if err := m.From(cfg.Email.SMTP.Username); err != nil {
		return nil, fmt.Errorf("set sender: %w", err)
	}
	if err := m.To(mm.To); err != nil {
		return nil, fmt.Errorf("set recipient: %w", err)
	}
	if err := m.SetBodyHTMLTemplate(tmpl, mm.Data); err != nil {
		return nil, fmt.Errorf("render body: %w", err)
	}
	m.Subject(fmt.Sprintf("%s - %s", cfg.Business.Name, kind.subject))

	return m, nil
}

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * config
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		return
	}

	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		logger.Error("failed to parse mail templates", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * smtp client
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("failed to create mail client", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("failed to connect to mail server", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * rabbitmq
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("failed to connect to rabbitmq", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("failed to open channel", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.Queue,
		true,  // durable
		false, // keep the queue when no consumer is attached
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		logger.Error("failed to declare queue", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",    // let the broker name the consumer
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("failed to consume queue", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					logger.Warn("delivery channel closed")
					return
				}

				mm := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mm); err != nil {
					logger.Error("failed to decode mail message", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				logger.Info("mail received", slog.String("type", mm.Type), slog.String("to", mm.To))

				m, err := buildMessage(cfg, templates, mm)
				if err != nil {
					logger.Error("failed to build mail", slog.String("type", mm.Type), slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("failed to send mail", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // requeue
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("waiting for mail (CTRL+C to quit)", slog.String("queue", q.Name))
	<-sigChan

	logger.Info("shutting down mail worker")
	cancel()
	wg.Wait()
	logger.Info("mail worker stopped")
}
