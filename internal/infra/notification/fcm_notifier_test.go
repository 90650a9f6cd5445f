package notification

import (
	"context"
	"testing"

	"adpulse/internal/domain/entity"

	"firebase.google.com/go/v4/messaging"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	messages []*messaging.Message
	err      error
}

func (s *recordingSender) Send(_ context.Context, message *messaging.Message) (string, error) {
	s.messages = append(s.messages, message)

	return "projects/p/messages/1", s.err
}

func TestFCMNotifier_NotifyAlert(t *testing.T) {
	sender := &recordingSender{}
	notifier := newFCMNotifier(sender, "")

	alert := &entity.Alert{
		ID:       uuid.New(),
		ClientID: uuid.New(),
		Type:     entity.AlertTypeBudget100,
		Severity: entity.AlertSeverityCritical,
		Message:  "Budget exceeded: MYR1000 / MYR1000",
	}

	require.NoError(t, notifier.NotifyAlert(context.Background(), alert))
	require.Len(t, sender.messages, 1)

	msg := sender.messages[0]
	assert.Equal(t, "adpulse-client-"+alert.ClientID.String(), msg.Topic)
	assert.Equal(t, "Budget exceeded: MYR1000 / MYR1000", msg.Notification.Body)
	assert.Equal(t, "BUDGET_100", msg.Data["type"])
	assert.Equal(t, "high", msg.Android.Priority)
}

func TestFCMNotifier_NotifyAlert_Error(t *testing.T) {
	sender := &recordingSender{err: errors.New("unavailable")}
	notifier := newFCMNotifier(sender, "agency-")

	err := notifier.NotifyAlert(context.Background(), &entity.Alert{ClientID: uuid.New(), Severity: entity.AlertSeverityMedium})

	require.Error(t, err)
	assert.Equal(t, "normal", sender.messages[0].Android.Priority)
	assert.Contains(t, sender.messages[0].Topic, "agency-")
}
