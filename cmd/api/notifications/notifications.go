package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bookstore-inventory/cmd/api/book"
)

const (
	topicBookCreated  = "_book_created"
	topicCountUpdated = "_count_updated"
)

var _ book.Notifier = (*Ntfy)(nil)

// Ntfy publishes inventory events to ntfy topics derived from baseURL.
type Ntfy struct {
	baseURL string
	enabled bool
	timeout time.Duration
	client  *http.Client
}

func NewNtfy(enableNotifications bool, notificationsTimeout time.Duration, notificationsBaseURL string, client *http.Client) *Ntfy {
	if client == nil {
		client = &http.Client{}
	}
	return &Ntfy{
		baseURL: strings.TrimSuffix(notificationsBaseURL, "/"),
		enabled: enableNotifications,
		timeout: notificationsTimeout,
		client:  client,
	}
}

func (ntf *Ntfy) BookCreated(ctx context.Context, b book.Book) error {
	message := fmt.Sprintf("New book created:\nTitle: %s\nAuthor: %s\nISBN: %s", b.Title, b.Author, b.ISBN)
	return ntf.publish(ctx, topicBookCreated, "New book created", message)
}

func (ntf *Ntfy) CountUpdated(ctx context.Context, b book.Book) error {
	message := fmt.Sprintf("Book count updated:\nTitle: %s\nISBN: %s\nCount: %d", b.Title, b.ISBN, b.Count)
	return ntf.publish(ctx, topicCountUpdated, "Book count updated", message)
}

/* Posts message to the topic. Disabled notifications are a silent no-op. */
func (ntf *Ntfy) publish(ctx context.Context, topic, title, message string) error {
	if !ntf.enabled {
		return nil
	}

	if ntf.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ntf.timeout)
		defer cancel()
	}

	topicURL := ntf.baseURL + topic
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, topicURL, strings.NewReader(message))
	if err != nil {
		return fmt.Errorf("error delivering message to topic (%s): %w", topicURL, err)
	}
	req.Header.Set("Title", title)

	resp, err := ntf.client.Do(req)
	if err != nil {
		return fmt.Errorf("error delivering message to topic (%s): %w", topicURL, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("error delivering message to topic (%s): %w", topicURL, book.NewErrNotificationFailed(resp.StatusCode))
	}
	return nil
}
