package models

// BankAttempt is one recorded attempt to close an account at a bank.
type BankAttempt struct {
	CommentID string  `json:"comment_id"`
	Method    string  `json:"method"`
	Success   bool    `json:"success"`
	Timestamp float64 `json:"timestamp"` // unix seconds of the source comment; any JSON number
}

// BankData maps a bank name to its attempts.
type BankData map[string][]BankAttempt
