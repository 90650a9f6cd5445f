// Package notification pushes budget alerts through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"adpulse/config"
	"adpulse/internal/domain/entity"
	"adpulse/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const defaultTopicPrefix = "adpulse-client-"

// messageSender is the part of *messaging.Client the notifier uses.
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// NotifierParams holds dependencies for the FCM notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type fcmNotifier struct {
	sender      messageSender
	topicPrefix string
}

// NewAlertNotifier returns nil when Firebase is not configured.
func NewAlertNotifier(params NotifierParams) (service.AlertNotifier, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		params.Logger.Info("Firebase not configured, alert pushes disabled")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFCMNotifier(client, cfg.TopicPrefix), nil
}

func newFCMNotifier(sender messageSender, topicPrefix string) *fcmNotifier {
	if topicPrefix == "" {
		topicPrefix = defaultTopicPrefix
	}

	return &fcmNotifier{sender: sender, topicPrefix: topicPrefix}
}

// NotifyAlert sends the alert to the topic of its client.
func (n *fcmNotifier) NotifyAlert(ctx context.Context, alert *entity.Alert) error {
	priority := "normal"
	if alert.Severity == entity.AlertSeverityCritical {
		priority = "high"
	}

	message := &messaging.Message{
		Topic: n.topicPrefix + alert.ClientID.String(),
		Notification: &messaging.Notification{
			Title: "Budget alert",
			Body:  alert.Message,
		},
		Data: map[string]string{
			"alert_id": alert.ID.String(),
			"type":     string(alert.Type),
			"severity": string(alert.Severity),
		},
		Android: &messaging.AndroidConfig{Priority: priority},
	}

	if _, err := n.sender.Send(ctx, message); err != nil {
		return errors.Wrap(err, "failed to send alert notification")
	}

	return nil
}
