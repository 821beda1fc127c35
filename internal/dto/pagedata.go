package dto

import "github.com/GregMSThompson/bank-closures/internal/models"

// PageDataOptions selects which static documents a page load fetches.
type PageDataOptions struct {
	IncludeMetadata bool
}

// PageData is what the rendering layer receives. Metadata is nil when it
// was not requested.
type PageData struct {
	Banks    models.BankData  `json:"banks"`
	Metadata *models.Metadata `json:"metadata,omitempty"`
}
