package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/yudhapratama/userhub/internal/domain/event"
	"github.com/yudhapratama/userhub/pkg/helpers"
	"github.com/yudhapratama/userhub/pkg/mailer"
)

// UserEventListener holds the follow-up work triggered by user events:
// the welcome email, registration statistics and the search index. Each
// handler runs on its own goroutine inside the dispatcher and contains
// its own failures; none of them can affect the registration result.
type UserEventListener struct {
	Rabbit       *helpers.RabbitPublisher
	Redis        *redis.Client
	ES           *elasticsearch.Client
	ESUsersIndex string
	Logger       *logrus.Logger
}

// Register subscribes the listener's handlers on the dispatcher.
func (l *UserEventListener) Register(d *event.Dispatcher) {
	d.Subscribe(event.KindUserCreated, l.handleUserCreated)
}

func (l *UserEventListener) handleUserCreated(e event.Event) error {
	ev, ok := e.(event.UserCreated)
	if !ok {
		return fmt.Errorf("unexpected event type %T", e)
	}

	l.Logger.WithFields(logrus.Fields{
		"user_id":  ev.UserID,
		"username": ev.Username,
	}).Info("handling user created event")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Errors are logged per concern so one failing collaborator does not
	// starve the others.
	if err := l.sendWelcomeEmail(ctx, ev); err != nil {
		l.Logger.WithError(err).WithField("user_id", ev.UserID).Warn("welcome email enqueue failed")
	}
	if err := l.recordRegistration(ctx, ev); err != nil {
		l.Logger.WithError(err).WithField("user_id", ev.UserID).Warn("registration stats failed")
	}
	if err := l.indexUser(ctx, ev); err != nil {
		l.Logger.WithError(err).WithField("user_id", ev.UserID).Warn("search index failed")
	}
	return nil
}

// sendWelcomeEmail queues an email job; the email worker delivers it.
func (l *UserEventListener) sendWelcomeEmail(ctx context.Context, ev event.UserCreated) error {
	if l.Rabbit == nil || ev.Email == "" {
		return nil
	}
	job := mailer.EmailJob{
		To:       ev.Email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"username": ev.Username,
		},
	}
	return l.Rabbit.PublishJSON(ctx, job)
}

// recordRegistration bumps the daily signup counter.
func (l *UserEventListener) recordRegistration(ctx context.Context, ev event.UserCreated) error {
	if l.Redis == nil {
		return nil
	}
	key := "stats:registrations:" + ev.OccurredAt.Format("2006-01-02")
	pipe := l.Redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 35*24*time.Hour)
	_, err := pipe.Exec(ctx)
	return err
}

// indexUser mirrors the new user into Elasticsearch for /users/search.
func (l *UserEventListener) indexUser(ctx context.Context, ev event.UserCreated) error {
	if l.ES == nil || l.ESUsersIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         ev.UserID,
		"username":   ev.Username,
		"email":      ev.Email,
		"created_at": ev.OccurredAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: l.ESUsersIndex, DocumentID: ev.UserID, Body: strings.NewReader(string(b)), Refresh: "false"}
	res, err := req.Do(ctx, l.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index response: %s", res.Status())
	}
	return nil
}
