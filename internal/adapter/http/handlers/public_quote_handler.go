package handlers

import (
	"net/http"

	request "focusquote/internal/adapter/http/dto/request"
	response "focusquote/internal/adapter/http/dto/response"
	"focusquote/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PublicQuoteHandler serves quotes to clients through public links. There is
// no owner header here; the link itself identifies the quote.
type PublicQuoteHandler struct {
	usecase usecase.IPublicLinkUseCase
}

func NewPublicQuoteHandler(uc usecase.IPublicLinkUseCase) *PublicQuoteHandler {
	return &PublicQuoteHandler{usecase: uc}
}

// ViewQuote godoc
// @Summary      Open a quote through its public link
// @Description  A draft or sent quote becomes viewed.
// @Tags         public
// @Produce      json
// @Param        view  query  string  false  "public"
// @Param        q     query  string  true   "Quote id"
// @Param        u     query  string  true   "Owner id"
// @Param        t     query  string  false  "Link token"
// @Success      200  {object}  response.PublicQuoteResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /public/quote [get]
func (h *PublicQuoteHandler) ViewQuote(c *gin.Context) {
	ref, ok := bindPublicRef(c)
	if !ok {
		return
	}
	pd, err := h.usecase.ResolveDocument(c.Request.Context(), ref)
	if err != nil {
		writeError(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicDocument(pd))
}

// DownloadQuotePDF godoc
// @Summary      Download a quote through its public link
// @Tags         public
// @Produce      application/pdf
// @Param        q  query  string  true   "Quote id"
// @Param        u  query  string  true   "Owner id"
// @Param        t  query  string  false  "Link token"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /public/quote/pdf [get]
func (h *PublicQuoteHandler) DownloadQuotePDF(c *gin.Context) {
	ref, ok := bindPublicRef(c)
	if !ok {
		return
	}
	file, err := h.usecase.ResolvePDF(c.Request.Context(), ref)
	if err != nil {
		writeError(c, mapPublicError(err))
		return
	}
	writePDF(c, file)
}

// ApproveQuote godoc
// @Summary      Approve a quote through its public link
// @Description  Approving twice succeeds.
// @Tags         public
// @Produce      json
// @Param        q  query  string  true   "Quote id"
// @Param        u  query  string  true   "Owner id"
// @Param        t  query  string  false  "Link token"
// @Success      200  {object}  response.PublicApprovalResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /public/quote/approve [post]
func (h *PublicQuoteHandler) ApproveQuote(c *gin.Context) {
	ref, ok := bindPublicRef(c)
	if !ok {
		return
	}
	q, err := h.usecase.Approve(c.Request.Context(), ref)
	if err != nil {
		writeError(c, mapPublicError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPublicApproval(q))
}

func bindPublicRef(c *gin.Context) (usecase.PublicRef, bool) {
	var query request.PublicQuoteQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		writeBindError(c, errInvalidQuery, err)
		return usecase.PublicRef{}, false
	}
	return query.ToRef(), true
}
