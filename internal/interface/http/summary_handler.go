package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// Summarize handles POST /Ai/summary with either raw text or a product id.
func (h *Handler) Summarize(c *gin.Context) {
	var req summarizer.Request
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		abortWithAppError(c, err)
		return
	}

	resp, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SummarizeProduct handles GET /Ai/:id/summary. focus selects the whole
// product (default), only its description, or only its reviews.
func (h *Handler) SummarizeProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var (
		summary string
		err     error
		ctx     = c.Request.Context()
	)
	switch focus := c.DefaultQuery("focus", "all"); focus {
	case "all":
		summary, err = h.summarizerSvc.SummarizeProduct(ctx, id)
	case "description":
		summary, err = h.summarizerSvc.SummarizeProductDescription(ctx, id)
	case "reviews":
		summary, err = h.summarizerSvc.SummarizeProductReviews(ctx, id)
	default:
		err = apperrors.Wrap(apperrors.CodeInvalidInput, `focus must be one of "all", "description", "reviews"`, nil)
	}
	if err != nil {
		abortWithAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, summarizer.Response{Summary: summary})
}
