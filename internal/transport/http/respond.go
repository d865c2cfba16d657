package rest

import (
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/gin-gonic/gin"
)

// errorBody — тело ошибки поверхности: {type, message}.
type errorBody struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// writeError — классифицированная ошибка → статус и тело по её виду;
// неклассифицированная → 500 с нейтральным сообщением.
func writeError(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	c.AbortWithStatusJSON(kind.HTTPStatus(), errorBody{
		Type:    kind.String(),
		Message: apperr.MessageOf(err),
	})
}

func writeBadRequest(c *gin.Context, message string) {
	writeError(c, apperr.New(apperr.KindBadRequest, "%s", message))
}

// isServerSide — ошибки, за которые отвечает сервис, а не вызывающий.
func isServerSide(err error) bool {
	switch apperr.KindOf(err) {
	case apperr.KindInternal, apperr.KindUnavailable:
		return true
	default:
		return false
	}
}
