package response

import (
	"github.com/gin-gonic/gin"
)

type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		// ceil(total / limit)
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

type ApiEnvelope struct {
	Success    bool            `json:"success"`
	Data       any             `json:"data,omitempty"`
	Pagination *PaginationMeta `json:"pagination,omitempty"`
	Message    string          `json:"message,omitempty"`
	Code       string          `json:"code,omitempty"`
}

func Success(c *gin.Context, status int, data any, pagination *PaginationMeta) {
	c.JSON(status, ApiEnvelope{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

func Error(c *gin.Context, status int, code string, message string) {
	c.JSON(status, ApiEnvelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}

// Abort writes an error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, code string, message string) {
	c.AbortWithStatusJSON(status, ApiEnvelope{
		Success: false,
		Message: message,
		Code:    code,
	})
}
