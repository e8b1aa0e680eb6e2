package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/zigac9/ElectricalCarBlog-backend/config"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/mailer"
)

// The email worker drains the email queue and delivers through Mailgun.
// Malformed payloads are dropped; transient send failures are requeued once.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		log.Println("MAIL_SEND_ENABLED=false; email worker disabled (no real emails will be sent)")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		log.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		log.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// fair dispatch
	if err := ch.Qos(16, 0, false); err != nil {
		log.Fatalf("qos: %v", err)
	}
	if _, err := ch.QueueDeclare(cfg.RabbitMQEmailQueue, true, false, false, false, nil); err != nil {
		log.Fatalf("queue declare: %v", err)
	}

	deliveries, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		log.Fatalf("consume: %v", err)
	}

	sender := mailer.NewMailer(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof("email worker consuming queue %q", cfg.RabbitMQEmailQueue)
	for {
		select {
		case <-ctx.Done():
			logger.Info("email worker shutting down")
			return
		case d, ok := <-deliveries:
			if !ok {
				logger.Warn("delivery channel closed")
				return
			}
			handle(ctx, sender, logger, d)
		}
	}
}

func handle(ctx context.Context, sender *mailer.Mailer, logger *logrus.Logger, d amqp.Delivery) {
	var job mailer.EmailJob
	if err := json.Unmarshal(d.Body, &job); err != nil {
		logger.Errorf("drop malformed email job: %v", err)
		_ = d.Nack(false, false)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := sender.Send(sendCtx, job); err != nil {
		logger.Errorf("send %s email to %s: %v", job.Kind, job.To, err)
		// requeue only on the first failure
		_ = d.Nack(false, !d.Redelivered)
		return
	}
	_ = d.Ack(false)
}
