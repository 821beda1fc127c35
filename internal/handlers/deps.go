package handlers

import (
	"log/slog"

	"github.com/GregMSThompson/bank-closures/internal/response"
)

type Deps struct {
	Log             *slog.Logger
	ResponseHandler response.ResponseHandler
	PageDataSvc     PageDataService
}
