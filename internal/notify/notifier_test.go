package notify

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureGateway records every email for assertions.
type captureGateway struct {
	mu   sync.Mutex
	sent []sentEmail
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

func (g *captureGateway) SendEmail(to, subject, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, sentEmail{To: to, Subject: subject, Body: body})
}

// staticDirectory is a fixed-map Directory for tests.
type staticDirectory struct {
	emails map[string]string
	titles map[string]string
}

func (d staticDirectory) ReaderEmail(readerID string) string { return d.emails[readerID] }
func (d staticDirectory) BookTitle(bookID string) string     { return d.titles[bookID] }

func newTestNotifier() *Notifier {
	return NewNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testDirectory() Directory {
	return staticDirectory{
		emails: map[string]string{
			"R1": "alice@example.com",
			"R2": "bob@example.com",
		},
		titles: map[string]string{"B1": "Software Engineering"},
	}
}

func TestNotifyAvailable_SendsToEverySubscriber(t *testing.T) {
	n := newTestNotifier()
	gw := &captureGateway{}
	n.SetGateway(gw)

	n.Subscribe("B1", "R1")
	n.Subscribe("B1", "R2")

	n.NotifyAvailable("B1", testDirectory())

	require.Len(t, gw.sent, 2)
	recipients := []string{gw.sent[0].To, gw.sent[1].To}
	assert.ElementsMatch(t, []string{"alice@example.com", "bob@example.com"}, recipients)
	for _, e := range gw.sent {
		assert.Equal(t, "Disponible: Software Engineering", e.Subject)
		assert.Equal(t, "Ya puedes solicitarlo", e.Body)
	}
}

func TestSubscribe_Idempotent(t *testing.T) {
	n := newTestNotifier()
	gw := &captureGateway{}
	n.SetGateway(gw)

	n.Subscribe("B1", "R1")
	n.Subscribe("B1", "R1")
	n.Subscribe("B1", "R1")

	n.NotifyAvailable("B1", testDirectory())

	assert.Len(t, gw.sent, 1)
}

func TestNotifyAvailable_NoGatewayIsNoop(t *testing.T) {
	n := newTestNotifier()
	n.Subscribe("B1", "R1")

	// Must not panic and must not require a gateway.
	n.NotifyAvailable("B1", testDirectory())
}

func TestNotifyAvailable_KeepsSubscriptions(t *testing.T) {
	n := newTestNotifier()
	gw := &captureGateway{}
	n.SetGateway(gw)

	n.Subscribe("B1", "R1")

	n.NotifyAvailable("B1", testDirectory())
	n.NotifyAvailable("B1", testDirectory())

	assert.Len(t, gw.sent, 2, "a reader stays subscribed across availability events")
}

func TestNotifyAvailable_NoSubscribers(t *testing.T) {
	n := newTestNotifier()
	gw := &captureGateway{}
	n.SetGateway(gw)

	n.NotifyAvailable("B1", testDirectory())

	assert.Empty(t, gw.sent)
}

func TestReset(t *testing.T) {
	n := newTestNotifier()
	gw := &captureGateway{}
	n.SetGateway(gw)
	n.Subscribe("B1", "R1")

	n.Reset()

	assert.Empty(t, n.Subscribers("B1"))

	// Gateway was unset too: notification after reset delivers nothing even
	// with a new subscription.
	n.Subscribe("B1", "R1")
	n.NotifyAvailable("B1", testDirectory())
	assert.Empty(t, gw.sent)
}
