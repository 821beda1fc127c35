package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/GregMSThompson/bank-closures/internal/dto"
	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/internal/models"
)

type stubPageDataService struct {
	data     dto.PageData
	err      error
	lastOpts dto.PageDataOptions
	calls    int
}

func (s *stubPageDataService) Load(_ context.Context, opts dto.PageDataOptions) (dto.PageData, error) {
	s.calls++
	s.lastOpts = opts
	return s.data, s.err
}

type stubResponseHandler struct {
	writeSuccessCalled bool
	writeSuccessStatus int
	writeSuccessData   any

	handleErrorCalled bool
	handleError       error

	writeErrorCalled bool
	writeErrorStatus int
}

func (s *stubResponseHandler) WriteSuccess(w http.ResponseWriter, _ *http.Request, status int, data any) {
	s.writeSuccessCalled = true
	s.writeSuccessStatus = status
	s.writeSuccessData = data

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"success":true}`))
}

func (s *stubResponseHandler) WriteError(w http.ResponseWriter, _ *http.Request, status int, _, _ string) {
	s.writeErrorCalled = true
	s.writeErrorStatus = status
	w.WriteHeader(status)
}

func (s *stubResponseHandler) HandleError(w http.ResponseWriter, _ *http.Request, err error) {
	s.handleErrorCalled = true
	s.handleError = err
	w.WriteHeader(http.StatusInternalServerError)
}

func acmeData() dto.PageData {
	return dto.PageData{
		Banks: models.BankData{
			"Acme Bank": {{CommentID: "c1", Method: models.MethodPhone, Success: true, Timestamp: 1000}},
		},
		Metadata: &models.Metadata{LastUpdated: 2000},
	}
}

func TestGetPageDataIncludesMetadataByDefault(t *testing.T) {
	svc := &stubPageDataService{data: acmeData()}
	resp := &stubResponseHandler{}
	h := NewPageDataHandlers(&Deps{ResponseHandler: resp, PageDataSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/page-data", nil)
	rr := httptest.NewRecorder()
	h.GetPageData(rr, req)

	if !resp.writeSuccessCalled || resp.writeSuccessStatus != http.StatusOK {
		t.Fatalf("expected WriteSuccess with 200, got called=%v status=%d", resp.writeSuccessCalled, resp.writeSuccessStatus)
	}
	if !svc.lastOpts.IncludeMetadata {
		t.Fatal("IncludeMetadata = false, want true")
	}
	if !reflect.DeepEqual(resp.writeSuccessData, acmeData()) {
		t.Fatalf("data = %+v, want %+v", resp.writeSuccessData, acmeData())
	}
}

func TestGetPageDataBanksOnly(t *testing.T) {
	svc := &stubPageDataService{data: dto.PageData{Banks: acmeData().Banks}}
	resp := &stubResponseHandler{}
	h := NewPageDataHandlers(&Deps{ResponseHandler: resp, PageDataSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/page-data?metadata=false", nil)
	rr := httptest.NewRecorder()
	h.GetPageData(rr, req)

	if svc.lastOpts.IncludeMetadata {
		t.Fatal("IncludeMetadata = true, want false")
	}
	if !resp.writeSuccessCalled {
		t.Fatal("expected WriteSuccess")
	}
}

func TestGetPageDataInvalidFlag(t *testing.T) {
	svc := &stubPageDataService{}
	resp := &stubResponseHandler{}
	h := NewPageDataHandlers(&Deps{ResponseHandler: resp, PageDataSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/page-data?metadata=maybe", nil)
	rr := httptest.NewRecorder()
	h.GetPageData(rr, req)

	var verr *errs.ValidationError
	if !resp.handleErrorCalled || !errors.As(resp.handleError, &verr) {
		t.Fatalf("handleError = %v, want ValidationError", resp.handleError)
	}
	if svc.calls != 0 {
		t.Fatalf("Load calls = %d, want 0", svc.calls)
	}
}

func TestGetPageDataLoadError(t *testing.T) {
	loadErr := errs.NewExternalServiceError("site", http.StatusNotFound, false, nil)
	svc := &stubPageDataService{err: loadErr}
	resp := &stubResponseHandler{}
	h := NewPageDataHandlers(&Deps{ResponseHandler: resp, PageDataSvc: svc})

	req := httptest.NewRequest(http.MethodGet, "/api/page-data", nil)
	rr := httptest.NewRecorder()
	h.GetPageData(rr, req)

	if !resp.handleErrorCalled || resp.handleError != loadErr {
		t.Fatalf("handleError = %v, want %v", resp.handleError, loadErr)
	}
	if resp.writeSuccessCalled {
		t.Fatal("WriteSuccess should not be called on load failure")
	}
}
