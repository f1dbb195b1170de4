// Package trigger keeps a Jobber webhook subscription registered for one url and
// topic, and turns incoming deliveries into output items.
package trigger

import (
	"context"
	"errors"

	gql "github.com/lukaszraczylo/go-jobber-graphql"
	"github.com/lukaszraczylo/go-jobber-graphql/jobber"
	logging "github.com/lukaszraczylo/go-jobber-graphql/logging"
	libpack_store "github.com/lukaszraczylo/go-jobber-graphql/store"
)

var ErrNoWebhookID = errors.New("webhook created without an id")

// Lifecycle registers, finds and removes the subscription for URL and Topic. The
// subscription id is kept in Store between runs.
type Lifecycle struct {
	Node   *jobber.Node
	Store  libpack_store.Store
	Logger *logging.Logger
	URL    string
	Topic  jobber.Topic
}

func NewLifecycle(node *jobber.Node, store libpack_store.Store, url string, topic jobber.Topic) *Lifecycle {
	return &Lifecycle{Node: node, Store: store, URL: url, Topic: topic, Logger: node.Logger}
}

func (l *Lifecycle) storeKey() string {
	return "webhook:" + string(l.Topic) + ":" + l.URL
}

// WebhookID returns the stored subscription id, if any.
func (l *Lifecycle) WebhookID(ctx context.Context) (string, bool, error) {
	return l.Store.Get(ctx, l.storeKey())
}

// CheckExists looks for a subscription with the same url and topic and remembers
// its id when found.
func (l *Lifecycle) CheckExists(ctx context.Context) (bool, error) {
	hooks, err := l.Node.GetAllWebhooks(ctx, struct{}{})
	if err != nil {
		return false, l.fail("Unable to list webhooks", err)
	}
	for _, hook := range hooks {
		if hook["url"] == l.URL && hook["topic"] == string(l.Topic) {
			id, _ := hook["id"].(string)
			if err := l.Store.Set(ctx, l.storeKey(), id); err != nil {
				return false, l.fail("Unable to store webhook id", err)
			}
			return true, nil
		}
	}
	return false, nil
}

// Create registers the subscription and remembers its id.
func (l *Lifecycle) Create(ctx context.Context) (bool, error) {
	hook, err := l.Node.CreateWebhook(ctx, jobber.CreateWebhookParams{URL: l.URL, Topic: l.Topic})
	if err != nil {
		return false, l.fail("Unable to create webhook", err)
	}
	id, _ := hook["id"].(string)
	if id == "" {
		return false, l.fail("Unable to create webhook", ErrNoWebhookID)
	}
	if err := l.Store.Set(ctx, l.storeKey(), id); err != nil {
		return false, l.fail("Unable to store webhook id", err)
	}
	l.Logger.Info(&logging.LogMessage{
		Message: "Webhook registered",
		Pairs:   map[string]any{"id": id, "topic": string(l.Topic), "url": l.URL},
	})
	return true, nil
}

// Delete removes the remembered subscription. Without a stored id there is nothing
// to remove and it succeeds.
func (l *Lifecycle) Delete(ctx context.Context) (bool, error) {
	id, ok, err := l.Store.Get(ctx, l.storeKey())
	if err != nil {
		return false, l.fail("Unable to read webhook id", err)
	}
	if !ok || id == "" {
		return true, nil
	}
	if _, err := l.Node.DeleteWebhook(ctx, jobber.WebhookIDParams{WebhookID: id}); err != nil {
		return false, l.fail("Unable to delete webhook", err)
	}
	if err := l.Store.Delete(ctx, l.storeKey()); err != nil {
		return false, l.fail("Unable to clear webhook id", err)
	}
	l.Logger.Info(&logging.LogMessage{
		Message: "Webhook removed",
		Pairs:   map[string]any{"id": id, "topic": string(l.Topic)},
	})
	return true, nil
}

func (l *Lifecycle) fail(message string, err error) error {
	pairs := map[string]any{"topic": string(l.Topic), "error": err.Error()}
	var terr *gql.TransportError
	if errors.As(err, &terr) {
		pairs["status"] = terr.StatusCode
	}
	l.Logger.Error(&logging.LogMessage{Message: message, Pairs: pairs})
	return err
}
