package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"communityhub/internal/app/portal/entity"
	"communityhub/internal/app/portal/service"

	"github.com/gin-gonic/gin"
)

const triagePatchHint = "patch may only contain status, priority, admin_notes, admin_response"

// bindTriageRequest декодирует patch триажа строго:
// любое поле вне списка разрешённых отклоняется, администратор
// не может переписать пользовательский контент через PATCH
func bindTriageRequest(c *gin.Context) (*entity.TriageRequest, error) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req entity.TriageRequest
	if err := decoder.Decode(&req); err != nil {
		return nil, err
	}

	// Тело должно содержать ровно один JSON-объект
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return nil, errors.New("unexpected data after patch object")
	}

	return &req, nil
}

// respondServiceError переводит ошибки сервисного слоя в HTTP-ответы:
// ValidationError -> 400 со всеми нарушенными полями, NotFound -> 404,
// остальное -> 500 с общим сообщением
func respondServiceError(c *gin.Context, err error, fallback string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, entity.ErrorResponse{
			Error:  "Validation failed",
			Fields: validationErr.Fields,
		})
		return
	}

	if errors.Is(err, service.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
}
