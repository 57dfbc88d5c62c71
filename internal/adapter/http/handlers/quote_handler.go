package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	request "focusquote/internal/adapter/http/dto/request"
	response "focusquote/internal/adapter/http/dto/response"
	"focusquote/internal/domain/entities"
	"focusquote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OwnerHeader carries the authenticated photographer id. Session handling
// happens in front of this service.
const OwnerHeader = "X-Owner-ID"

// QuoteHandler handles the photographer's side of quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ListQuotes godoc
// @Summary      List quotes
// @Description  Most recent first, optionally filtered by status and by quote number or client name.
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header  string  true   "Owner id"
// @Param        status      query   string  false  "draft|sent|viewed|approved|declined"
// @Param        search      query   string  false  "Quote number or client name"
// @Success      200  {array}   response.QuoteSummaryResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	var query request.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, errInvalidQuery, err)
		return
	}

	quotes, err := h.usecase.List(c.Request.Context(), ownerID, query.ToFilter())
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSummaries(quotes))
}

// CreateQuote godoc
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string                true  "Owner id"
// @Param        payload     body    request.QuoteRequest  true  "Quote"
// @Success      201  {object}  response.CommitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	in, ok := bindQuote(c)
	if !ok {
		return
	}

	res, err := h.usecase.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCommit(res))
}

// GetQuote godoc
// @Summary      Get a quote
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	q, err := h.usecase.GetByID(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuote godoc
// @Summary      Update a quote
// @Description  Replaces the editable state. The status is kept; editing an approved quote returns a warning.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        X-Owner-ID  header  string                true  "Owner id"
// @Param        id          path    string                true  "Quote id"
// @Param        payload     body    request.QuoteRequest  true  "Quote"
// @Success      200  {object}  response.CommitResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [put]
func (h *QuoteHandler) UpdateQuote(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	in, ok := bindQuote(c)
	if !ok {
		return
	}

	res, err := h.usecase.Update(c.Request.Context(), ownerID, c.Param("id"), in)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCommit(res))
}

// DeleteQuote godoc
// @Summary      Delete a quote
// @Tags         quotes
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id} [delete]
func (h *QuoteHandler) DeleteQuote(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), ownerID, c.Param("id")); err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// SendQuote godoc
// @Summary      Mark a quote as sent
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      200  {object}  response.QuoteResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/send [patch]
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Send)
}

// ApproveQuote is the owner recording an approval received outside the
// public link.
func (h *QuoteHandler) ApproveQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Approve)
}

func (h *QuoteHandler) DeclineQuote(c *gin.Context) {
	h.patchQuoteStatus(c, h.usecase.Decline)
}

func (h *QuoteHandler) patchQuoteStatus(
	c *gin.Context,
	transition func(ctx context.Context, ownerID, quoteID string) (entities.Quote, error),
) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	q, err := transition(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// GetQuoteDocument godoc
// @Summary      Rendered quote document
// @Description  Missing client or profile data renders as blank blocks.
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      200  {object}  document.Document
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/document [get]
func (h *QuoteHandler) GetQuoteDocument(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	doc, err := h.usecase.RenderDocument(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, doc)
}

// DownloadQuotePDF godoc
// @Summary      Download the quote as PDF
// @Tags         quotes
// @Produce      application/pdf
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /quotes/{id}/pdf [get]
func (h *QuoteHandler) DownloadQuotePDF(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	file, err := h.usecase.ExportPDF(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	writePDF(c, file)
}

// ShareQuote godoc
// @Summary      Public link and WhatsApp message for a quote
// @Tags         quotes
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Param        id          path    string  true  "Quote id"
// @Success      200  {object}  response.ShareResponse
// @Failure      404  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /quotes/{id}/share [get]
func (h *QuoteHandler) ShareQuote(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	share, err := h.usecase.Share(c.Request.Context(), ownerID, c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromShare(share))
}

// GetDashboard godoc
// @Summary      Quote statistics and monthly goal progress
// @Tags         dashboard
// @Produce      json
// @Param        X-Owner-ID  header  string  true  "Owner id"
// @Success      200  {object}  response.DashboardResponse
// @Router       /dashboard [get]
func (h *QuoteHandler) GetDashboard(c *gin.Context) {
	ownerID, ok := requireOwner(c)
	if !ok {
		return
	}
	stats, err := h.usecase.Dashboard(c.Request.Context(), ownerID)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(stats))
}

func requireOwner(c *gin.Context) (string, bool) {
	ownerID := strings.TrimSpace(c.GetHeader(OwnerHeader))
	if ownerID == "" {
		writeError(c, errOwnerRequired)
		return "", false
	}
	return ownerID, true
}

func bindQuote(c *gin.Context) (usecase.QuoteInput, bool) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeBindError(c, errInvalidQuotePayload, err)
		return usecase.QuoteInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		writeError(c, errInvalidQuotePayload.WithDetails(map[string]any{"reason": err.Error()}))
		return usecase.QuoteInput{}, false
	}
	return in, true
}

func writePDF(c *gin.Context, file usecase.PDFFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, "application/pdf", file.Content)
}
