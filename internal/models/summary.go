package models

// Summary aggregates all transactions for the cashier dashboard
// swagger:model Summary
type Summary struct {
	// Sum of completed amounts
	// example: 225000
	TotalRevenue int64 `json:"totalRevenue"`

	// Number of transactions
	// example: 4
	TotalTransactions int `json:"totalTransactions"`

	// Number of completed transactions
	// example: 2
	CompletedTransactions int `json:"completedTransactions"`

	// Number of cancelled transactions
	// example: 1
	CancelledTransactions int `json:"cancelledTransactions"`

	// Number of pending transactions
	// example: 1
	PendingTransactions int `json:"pendingTransactions"`

	// completed / (completed + cancelled) * 100, zero when nothing is finalized
	// example: 66.67
	CompletionRate float64 `json:"completionRate"`
}

// Summarize computes a Summary over txs.
func Summarize(txs []Transaction) Summary {
	var s Summary
	s.TotalTransactions = len(txs)
	for _, tx := range txs {
		switch tx.Status {
		case StatusCompleted:
			s.CompletedTransactions++
			s.TotalRevenue += tx.Amount
		case StatusCancelled:
			s.CancelledTransactions++
		case StatusPending:
			s.PendingTransactions++
		}
	}

	if finalized := s.CompletedTransactions + s.CancelledTransactions; finalized > 0 {
		s.CompletionRate = float64(s.CompletedTransactions) / float64(finalized) * 100
	}
	return s
}
