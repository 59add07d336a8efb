package inbox

import "time"

// WebhookPayload is the provider's event batch as delivered to POST /webhook.
// The shape is loosely typed on the wire; everything below an Entry is treated
// as a tagged variant and unrecognized sub-events are skipped, never trusted.
type WebhookPayload struct {
	Object  string         `json:"object"`
	Entries []WebhookEntry `json:"entry"`
}

// WebhookEntry is one page's slice of the batch.
type WebhookEntry struct {
	PageID    string           `json:"id"`
	Time      int64            `json:"time"`
	Messaging []MessagingEvent `json:"messaging"`
}

// MessagingEvent is a single sub-event. Message is nil for non-message events
// (postbacks, delivery receipts, reads); those are not inbox material.
type MessagingEvent struct {
	Sender    Endpoint          `json:"sender"`
	Recipient Endpoint          `json:"recipient"`
	Timestamp int64             `json:"timestamp"`
	Message   *MessageEventBody `json:"message"`
}

// Endpoint identifies one side of a messaging event.
type Endpoint struct {
	ID string `json:"id"`
}

// MessageEventBody is the message part of a messaging sub-event.
type MessageEventBody struct {
	MID    string `json:"mid"`
	Text   string `json:"text"`
	IsEcho bool   `json:"is_echo"`
}

// IsPageBatch reports whether the payload is a page event batch at all.
func (p WebhookPayload) IsPageBatch() bool {
	return p.Object == "page"
}

// IsInboundMessage reports whether the event is a genuine inbound user
// message: it must carry a message body, not be a page echo, and identify
// both endpoints.
func (e MessagingEvent) IsInboundMessage() bool {
	return e.Message != nil && !e.Message.IsEcho && e.Sender.ID != "" && e.Recipient.ID != ""
}

// SentAt converts the provider's millisecond epoch to a time.Time.
func (e MessagingEvent) SentAt() time.Time {
	return time.UnixMilli(e.Timestamp).UTC()
}
