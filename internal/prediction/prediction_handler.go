package prediction

import (
	"net/http"

	"github.com/mirak10/PeopleIQ/internal/shared/apperror"
	"github.com/mirak10/PeopleIQ/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("prediction.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("prediction.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("prediction request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message)
}

func (h *Handler) respond(c *gin.Context, data any, err error) {
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, data, nil)
}

func (h *Handler) Summary(c *gin.Context) {
	data, err := h.service.Summary(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) Alerts(c *gin.Context) {
	data, err := h.service.Alerts(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) Turnover(c *gin.Context) {
	data, err := h.service.Turnover(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) Performance(c *gin.Context) {
	data, err := h.service.Performance(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) Absenteeism(c *gin.Context) {
	data, err := h.service.Absenteeism(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) Recommendations(c *gin.Context) {
	data, err := h.service.Recommendations(c.Request.Context())
	h.respond(c, data, err)
}

func (h *Handler) ByDepartment(c *gin.Context) {
	data, err := h.service.ByDepartment(c.Request.Context(), c.Param("dept"))
	h.respond(c, data, err)
}

func (h *Handler) ByEmployeeCode(c *gin.Context) {
	data, err := h.service.ByEmployeeCode(c.Request.Context(), c.Param("employeeCode"))
	h.respond(c, data, err)
}

func (h *Handler) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	items, meta, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, items, &meta)
}
