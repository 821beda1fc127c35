package models

const (
	MethodChat          = "chat"
	MethodPhone         = "phone"
	MethodInBranch      = "in-branch"
	MethodZeroBalance   = "0-balance"
	MethodSecureMessage = "secure-message"
)

// ClosureMethods lists the methods an extraction may report.
var ClosureMethods = []string{
	MethodChat,
	MethodPhone,
	MethodInBranch,
	MethodZeroBalance,
	MethodSecureMessage,
}

func IsClosureMethod(method string) bool {
	for _, m := range ClosureMethods {
		if m == method {
			return true
		}
	}
	return false
}

type ClosureAttempt struct {
	Success  bool   `firestore:"success" json:"success"`
	BankName string `firestore:"bankName" json:"bank_name"`
	Method   string `firestore:"method" json:"method"`
}

type ClosureData struct {
	ClosureAttempts []ClosureAttempt `firestore:"closureAttempts" json:"closure_attempts"`
}

// Extraction is the model output for a single comment. A comment with no
// attempts still has an Extraction so it is not sent to the model again.
type Extraction struct {
	CommentID     string      `firestore:"commentId" json:"commentId"`
	Date          int64       `firestore:"date" json:"date"` // unix seconds
	ExtractedData ClosureData `firestore:"extractedData" json:"extracted_data"`
}
