package auditlog

import "time"

// Message заметка аудита в очереди subscription.audit
type Message struct {
	ID             string    `json:"id"`
	SubscriptionID int64     `json:"subscription_id"`
	AuthorID       int64     `json:"author_id"`
	Body           string    `json:"body"`
	CreatedAt      time.Time `json:"created_at"`
}
