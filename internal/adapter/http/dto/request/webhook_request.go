package request

// WebhookRequest is the gateway's notification body: {type, data:{id}}.
// It carries no trustworthy status; the handler re-resolves it.
type WebhookRequest struct {
	Type string `json:"type" binding:"required"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
