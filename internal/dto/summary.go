package dto

// MethodSummary counts attempts for one closure method at one bank.
type MethodSummary struct {
	Method    string
	Succeeded int
	Failed    int
}

// BankSummary is the per-bank view rendered on the page.
type BankSummary struct {
	Bank      string
	Attempts  int
	Succeeded int
	Methods   []MethodSummary
	LastSeen  float64 // unix seconds of the newest attempt
}
