package entities

import "time"

// Customer is the gateway-side payer record, keyed by email.
//
// One ExternalID per distinct email; created lazily on the first charge or
// tokenization for that email. The application stores only ExternalID as a
// foreign attribute on its own user record.
//
// Storage model (DynamoDB):
//   - PK: external_id
//   - GSI1 (email-index): email

type Customer struct {
	ExternalID string    `json:"external_id"`
	Email      string    `json:"email"`
	CreatedAt  time.Time `json:"created_at"`
}
