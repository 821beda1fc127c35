package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/response"
)

type PageDataService interface {
	Load(ctx context.Context, opts dto.PageDataOptions) (dto.PageData, error)
}

type pageDataHandlers struct {
	ResponseHandler response.ResponseHandler
	PageDataSvc     PageDataService
}

func NewPageDataHandlers(deps *Deps) *pageDataHandlers {
	return &pageDataHandlers{
		ResponseHandler: deps.ResponseHandler,
		PageDataSvc:     deps.PageDataSvc,
	}
}

func (h *pageDataHandlers) PageDataRoutes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.GetPageData)
	return r
}

// GetPageData returns the loader result. ?metadata=false skips metadata.json.
func (h *pageDataHandlers) GetPageData(w http.ResponseWriter, r *http.Request) {
	opts := dto.PageDataOptions{IncludeMetadata: true}
	if raw := r.URL.Query().Get("metadata"); raw != "" {
		include, err := strconv.ParseBool(raw)
		if err != nil {
			h.ResponseHandler.HandleError(w, r, errs.NewValidationError("metadata must be true or false"))
			return
		}
		opts.IncludeMetadata = include
	}

	data, err := h.PageDataSvc.Load(r.Context(), opts)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, data)
}
