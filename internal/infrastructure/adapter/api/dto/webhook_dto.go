package dto

// WebhookPayload is the notification body posted by the WhatsApp Cloud API
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry groups the changes of one business account
type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

// WebhookChange carries one changed field
type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

// WebhookValue holds inbound messages; delivery status updates carry none
type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Messages         []WebhookMessage `json:"messages"`
}

// WebhookMessage is a single inbound message
type WebhookMessage struct {
	From      string       `json:"from"`
	ID        string       `json:"id"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *WebhookText `json:"text,omitempty"`
}

// WebhookText is the content of a text message
type WebhookText struct {
	Body string `json:"body"`
}

// FirstMessage returns entry[0].changes[0].value.messages[0], if present
func (p *WebhookPayload) FirstMessage() (*WebhookMessage, bool) {
	if len(p.Entry) == 0 || len(p.Entry[0].Changes) == 0 {
		return nil, false
	}
	messages := p.Entry[0].Changes[0].Value.Messages
	if len(messages) == 0 {
		return nil, false
	}
	return &messages[0], true
}

// Body returns the text body, empty for non-text messages
func (m *WebhookMessage) Body() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}

// WebhookResponse acknowledges a webhook delivery
type WebhookResponse struct {
	Status string `json:"status"`
	Code   int    `json:"code,omitempty"`
	Error  string `json:"error,omitempty"`
}
