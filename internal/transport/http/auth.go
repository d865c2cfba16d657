package rest

import (
	"github.com/Gunvolt24/marketplace_vendor/pkg/apperr"
	"github.com/Gunvolt24/marketplace_vendor/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// Заголовок с актором аутентификации; проставляется шлюзом
// после проверки сессии/токена.
const actorIDHeader = "X-Auth-Actor-Id"

// authRequired — кладёт actor_id в контекст запроса;
// без заголовка запрос не проходит дальше (401).
func authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		actorID := c.GetHeader(actorIDHeader)
		if actorID == "" {
			writeError(c, apperr.New(apperr.KindUnauthenticated, "authentication is required"))
			return
		}

		ctx := ctxmeta.WithActorID(c.Request.Context(), actorID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
