package observability

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/admiralsuez/shakshuka/pkg/models"
)

// Notifier delivers one-shot celebration and recap payloads to an external
// channel. Implementations are best-effort; delivery failures never reach
// the user-visible layer.
type Notifier interface {
	NotifyCelebration(c models.Celebration) error
	NotifyRecap(r models.RecapSummary) error
}

// webhookNotifier posts JSON payloads to a configured webhook URL.
type webhookNotifier struct {
	url    string
	client *http.Client
}

// NewWebhookNotifier creates a Notifier posting to the given URL.
func NewWebhookNotifier(url string) Notifier {
	return &webhookNotifier{url: url, client: &http.Client{}}
}

type webhookPayload struct {
	Kind        string               `json:"kind"` // "celebration" or "recap"
	Celebration *models.Celebration  `json:"celebration,omitempty"`
	Recap       *models.RecapSummary `json:"recap,omitempty"`
}

// NotifyCelebration posts an all-cleared payload.
func (n *webhookNotifier) NotifyCelebration(c models.Celebration) error {
	return n.post(webhookPayload{Kind: "celebration", Celebration: &c})
}

// NotifyRecap posts a previous-day recap payload.
func (n *webhookNotifier) NotifyRecap(r models.RecapSummary) error {
	return n.post(webhookPayload{Kind: "recap", Recap: &r})
}

func (n *webhookNotifier) post(payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	resp, err := n.client.Post(n.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("posting to webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
