package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"focusquote/internal/adapter/http/handlers/mocks"
	"focusquote/internal/document"
	"focusquote/internal/domain/entities"
	"focusquote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPublicRouter(h *PublicQuoteHandler) *gin.Engine {
	r := gin.New()
	r.GET("/v1/public/quote", h.ViewQuote)
	r.GET("/v1/public/quote/pdf", h.DownloadQuotePDF)
	r.POST("/v1/public/quote/approve", h.ApproveQuote)
	return r
}

func TestPublicQuoteHandler_ViewQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=admin&q=q-1&u=owner-1", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().ResolveDocument(gomock.Any(), usecase.PublicRef{QuoteID: "X", OwnerID: "Y"}).Return(usecase.PublicDocument{}, usecase.ErrOwnerDataNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=public&q=X&u=Y", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["message"] != "Orçamento não encontrado" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("missing client is reported as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().ResolveDocument(gomock.Any(), gomock.Any()).Return(usecase.PublicDocument{}, usecase.ErrClientNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=public&q=q-1&u=owner-1", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "QUOTE_NOT_FOUND" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("invalid token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().ResolveDocument(gomock.Any(), usecase.PublicRef{QuoteID: "q-1", OwnerID: "owner-1", Token: "bad"}).Return(usecase.PublicDocument{}, usecase.ErrInvalidLinkToken)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=public&q=q-1&u=owner-1&t=bad", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		q := sampleQuote(entities.QuoteStatusViewed)
		client := entities.Client{ID: "c-1", Name: "Maria Silva"}
		uc.EXPECT().ResolveDocument(gomock.Any(), usecase.PublicRef{QuoteID: "q-1", OwnerID: "owner-1"}).Return(usecase.PublicDocument{
			Resolution: usecase.Resolution{Quote: q, Client: client, MarkedViewed: true},
			Document:   document.Render(q, nil, &client),
		}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote?view=public&q=q-1&u=owner-1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["status"] != "viewed" || body["can_approve"] != true {
			t.Fatalf("unexpected body %v", body)
		}
		doc, _ := body["document"].(map[string]any)
		client2, _ := doc["client"].(map[string]any)
		if client2["name"] != "Maria Silva" {
			t.Fatalf("unexpected document %v", doc)
		}
	})
}

func TestPublicQuoteHandler_DownloadQuotePDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIPublicLinkUseCase(ctrl)
	r := newPublicRouter(NewPublicQuoteHandler(uc))

	uc.EXPECT().ResolvePDF(gomock.Any(), usecase.PublicRef{QuoteID: "q-1", OwnerID: "owner-1"}).Return(usecase.PDFFile{Filename: "Orcamento_1001.pdf", Content: []byte("%PDF-")}, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/public/quote/pdf?q=q-1&u=owner-1", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="Orcamento_1001.pdf"` {
		t.Fatalf("unexpected content disposition %s", cd)
	}
}

func TestPublicQuoteHandler_ApproveQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), usecase.PublicRef{QuoteID: "q-1", OwnerID: "ghost"}).Return(entities.Quote{}, usecase.ErrOwnerDataNotFound)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/public/quote/approve?view=public&q=q-1&u=ghost", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPublicLinkUseCase(ctrl)
		r := newPublicRouter(NewPublicQuoteHandler(uc))

		uc.EXPECT().Approve(gomock.Any(), usecase.PublicRef{QuoteID: "q-1", OwnerID: "owner-1", Token: "tok"}).Return(sampleQuote(entities.QuoteStatusApproved), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/public/quote/approve?view=public&q=q-1&u=owner-1&t=tok", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["status"] != "approved" || body["status_label"] != "Aprovado" {
			t.Fatalf("unexpected body %v", body)
		}
	})
}
