package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/clan-api/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/clan-api/internal/clans/domain"
	"github.com/GoSim-25-26J-441/clan-api/internal/storage/postgres"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatusFor maps an error to the HTTP status and client-visible message.
// Anything that is not a validation or not-found error is reported as a
// generic storage failure.
func StatusFor(err error) (int, string) {
	var e *domain.Error
	if errors.As(err, &e) {
		switch e.Kind {
		case domain.KindValidation:
			return http.StatusBadRequest, e.Msg
		case domain.KindNotFound:
			return http.StatusNotFound, domain.ErrNotFound.Msg
		}
	}
	return http.StatusInternalServerError, "db error"
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	status, msg := StatusFor(err)
	if status >= http.StatusInternalServerError {
		h.log.Error("clan operation failed",
			zap.String("request_id", middleware.GetRequestID(c.Request.Context())),
			zap.String("op", op),
			zap.String("kind", domain.KindOf(err).String()),
			zap.String("sqlstate", postgres.SQLState(err)),
			zap.Error(err),
		)
	}
	c.AbortWithStatusJSON(status, errorResponse{Error: msg})
}
