package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"time"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/response"
	"github.com/GregMSThompson/bank-closures/internal/services"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.New("").Funcs(template.FuncMap{
	"unixDate": func(sec float64) string {
		if sec == 0 {
			return ""
		}
		return fromMillis(sec * 1000).Format("Jan 2, 2006")
	},
}).ParseFS(templateFS, "templates/*.html"))

type pageView struct {
	Banks       []dto.BankSummary
	Attempts    int
	LastUpdated string
}

type errorView struct {
	Status  int
	Message string
}

type pageHandlers struct {
	PageDataSvc PageDataService
}

func NewPageHandlers(deps *Deps) *pageHandlers {
	return &pageHandlers{PageDataSvc: deps.PageDataSvc}
}

// RenderPage renders the bank listing with metadata included.
func (h *pageHandlers) RenderPage(w http.ResponseWriter, r *http.Request) {
	data, err := h.PageDataSvc.Load(r.Context(), dto.PageDataOptions{IncludeMetadata: true})
	if err != nil {
		status, _, message := response.Classify(r, err)
		// loader failures are upstream failures from the page's point of view
		if status < http.StatusBadGateway {
			status = http.StatusBadGateway
		}
		h.render(w, r, status, "error.html", errorView{Status: status, Message: message})
		return
	}

	view := pageView{Banks: services.SummarizeBanks(data.Banks)}
	for _, b := range view.Banks {
		view.Attempts += b.Attempts
	}
	if data.Metadata != nil {
		view.LastUpdated = fromMillis(data.Metadata.LastUpdated).Format(time.RFC1123)
	}
	h.render(w, r, http.StatusOK, "page.html", view)
}

// fromMillis converts a published JSON number to a UTC time. Fractions and
// exponent forms are valid there, so rounding happens here.
func fromMillis(ms float64) time.Time {
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

func (h *pageHandlers) render(w http.ResponseWriter, r *http.Request, status int, name string, view any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		logger.FromContext(r.Context()).Error("failed to render template", "template", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.FromContext(r.Context()).Warn("failed to write page", "error", err)
	}
}
