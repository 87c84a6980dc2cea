// Package notify lets readers register interest in a book and fan-outs an
// email once that book becomes available again.
package notify

import (
	"log/slog"
	"sync"
)

// Directory resolves the reader emails and book titles a notification
// needs. The store implements it; keeping it an interface decouples the
// notifier from the store's internal structure.
type Directory interface {
	ReaderEmail(readerID string) string
	BookTitle(bookID string) string
}

// Notifier maps a book id to the set of readers waiting for it and
// dispatches through a pluggable gateway. Construct one per application or
// test; there is no process-wide instance.
type Notifier struct {
	mu      sync.RWMutex
	subs    map[string]map[string]struct{}
	gateway Gateway
	logger  *slog.Logger
}

// NewNotifier creates an empty notifier with no gateway configured.
func NewNotifier(logger *slog.Logger) *Notifier {
	return &Notifier{
		subs:   make(map[string]map[string]struct{}),
		logger: logger,
	}
}

// Subscribe registers a reader's interest in a book. Idempotent.
func (n *Notifier) Subscribe(bookID, readerID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	set, ok := n.subs[bookID]
	if !ok {
		set = make(map[string]struct{})
		n.subs[bookID] = set
	}
	set[readerID] = struct{}{}
}

// SetGateway replaces the delivery sink. A nil gateway disables delivery.
func (n *Notifier) SetGateway(g Gateway) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.gateway = g
}

// Subscribers returns the readers currently waiting for a book.
func (n *Notifier) Subscribers(bookID string) []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ids := make([]string, 0, len(n.subs[bookID]))
	for rid := range n.subs[bookID] {
		ids = append(ids, rid)
	}
	return ids
}

// NotifyAvailable sends one email to every reader subscribed to the book.
// No-op without a gateway. Subscriptions are kept, so a reader keeps being
// notified across repeated availability events. Iteration order over the
// subscriber set is unspecified.
func (n *Notifier) NotifyAvailable(bookID string, dir Directory) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.gateway == nil {
		return
	}

	title := dir.BookTitle(bookID)
	for rid := range n.subs[bookID] {
		n.gateway.SendEmail(dir.ReaderEmail(rid), SubjectPrefix+title, Body)
	}

	if count := len(n.subs[bookID]); count > 0 {
		n.logger.Debug("availability notified", "book_id", bookID, "subscribers", count)
	}
}

// Reset clears all subscriptions and unsets the gateway. Equivalent to
// fresh construction; kept for test isolation.
func (n *Notifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.subs = make(map[string]map[string]struct{})
	n.gateway = nil
}
