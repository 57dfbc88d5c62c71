package routes

import (
	"focusquote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes      = "/quotes"
	PathDashboard   = "/dashboard"
	PathPublicQuote = "/public/quote"
)

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", h.ListQuotes)
		quotes.POST("", h.CreateQuote)
		quotes.GET("/:id", h.GetQuote)
		quotes.PUT("/:id", h.UpdateQuote)
		quotes.DELETE("/:id", h.DeleteQuote)
		quotes.PATCH("/:id/send", h.SendQuote)
		quotes.PATCH("/:id/approve", h.ApproveQuote)
		quotes.PATCH("/:id/decline", h.DeclineQuote)
		quotes.GET("/:id/document", h.GetQuoteDocument)
		quotes.GET("/:id/pdf", h.DownloadQuotePDF)
		quotes.GET("/:id/share", h.ShareQuote)
	}

	rg.GET(PathDashboard, h.GetDashboard)
}

// Public links carry everything in the query string:
// ?view=public&q=<quoteId>&u=<ownerId>[&t=<token>].
func addPublicQuoteRoutes(rg *gin.RouterGroup, h *handlers.PublicQuoteHandler) {
	public := rg.Group(PathPublicQuote)
	{
		public.GET("", h.ViewQuote)
		public.GET("/pdf", h.DownloadQuotePDF)
		public.POST("/approve", h.ApproveQuote)
	}
}
