package http

import (
	"log/slog"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/product-reviews/internal/domain/catalog"
	"github.com/yanqian/product-reviews/internal/domain/review"
	"github.com/yanqian/product-reviews/internal/domain/summarizer"
	"github.com/yanqian/product-reviews/internal/domain/user"
	apperrors "github.com/yanqian/product-reviews/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	catalogSvc    catalog.Service
	reviewSvc     review.Service
	userSvc       user.Service
	summarizerSvc summarizer.Service
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(catalogSvc catalog.Service, reviewSvc review.Service, userSvc user.Service, summarizerSvc summarizer.Service, logger *slog.Logger) *Handler {
	return &Handler{
		catalogSvc:    catalogSvc,
		reviewSvc:     reviewSvc,
		userSvc:       userSvc,
		summarizerSvc: summarizerSvc,
		logger:        logger.With("component", "http.handler"),
	}
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		abortWithAppError(c, apperrors.Wrap(apperrors.CodeInvalidInput, name+" must be a positive integer", err))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the body into dst, rejecting unknown fields.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		abortWithError(c, badRequest(err))
		return false
	}
	return true
}
