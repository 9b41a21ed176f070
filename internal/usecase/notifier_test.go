package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNotifier_Delivers(t *testing.T) {
	mailer := newFakeMailer()
	notifier := NewNotifier(mailer, zap.NewNop())
	notifier.Start(context.Background())

	notifier.Enqueue(Notification{To: "u@test.com", Subject: "hi", Body: "<p>hello</p>"})
	<-mailer.gotIt
	notifier.Close()

	deliveries := mailer.deliveries()
	require.Len(t, deliveries, 1)
	assert.Equal(t, "u@test.com", deliveries[0].To)
	assert.Equal(t, "hi", deliveries[0].Subject)
}

func TestNotifier_FailureIsSwallowed(t *testing.T) {
	mailer := newFakeMailer()
	mailer.fail = true

	notifier := NewNotifier(mailer, zap.NewNop())
	notifier.Start(context.Background())

	notifier.Enqueue(Notification{To: "u@test.com", Subject: "hi", Body: "x"})
	<-mailer.gotIt
	notifier.Close()

	assert.Empty(t, mailer.deliveries())
}
