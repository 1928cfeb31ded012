package models

// Transaction lifecycle event types
const (
	EventTransactionCreated   = "transaction.created"
	EventTransactionUpdated   = "transaction.updated"
	EventTransactionCompleted = "transaction.completed"
	EventTransactionCancelled = "transaction.cancelled"
)

// TransactionEvent is published to the event stream whenever a transaction changes.
type TransactionEvent struct {
	EventID     string      `json:"event_id"`    // EventID is a unique identifier of the event.
	Type        string      `json:"type"`        // Type is one of the transaction.* event types.
	Timestamp   int64       `json:"timestamp"`   // Timestamp is the Unix time (in seconds) the event was produced.
	Transaction Transaction `json:"transaction"` // Transaction is the state after the change.
}

// ScanEvent tells a QR display that its code was opened on a customer's device.
// swagger:model ScanEvent
type ScanEvent struct {
	// Scanned transaction
	// example: 3f6c1d0e-8a55-4c1b-9f0e-2b7c4c2a9d11
	TransactionID string `json:"transactionId"`
}
