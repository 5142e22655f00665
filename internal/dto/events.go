package dto

// StatusChangedEvent is published on every effective lifecycle transition.
// Consumers (the spreadsheet mirror) are external and may process it
// asynchronously and unreliably; the service never depends on delivery.
type StatusChangedEvent struct {
	EventID       string `json:"event_id"`
	ApplicationID uint   `json:"application_id"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	Note          string `json:"note,omitempty"`
	OccurredAt    string `json:"occurred_at"`
}
