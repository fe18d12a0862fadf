package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"weddy/internal/services"
	"weddy/pkg/middleware"
)

// ViewSessionHeader identifies one client screen. Requests of the same screen
// supersede each other; without the header the user id is used.
const ViewSessionHeader = "X-View-Session"

// actorFrom reads the identity JWTAuthMiddleware stored on the context.
// Unparsable ids are left as uuid.Nil and rejected by the services.
func actorFrom(c *gin.Context) services.Actor {
	userID, _ := uuid.Parse(c.GetString(middleware.CtxUserID))
	groupID, _ := uuid.Parse(c.GetString(middleware.CtxGroupID))
	return services.Actor{
		UserID:  userID,
		GroupID: groupID,
		Role:    c.GetString(middleware.CtxRole),
	}
}

func viewerKey(c *gin.Context) string {
	if v := c.GetHeader(ViewSessionHeader); v != "" {
		return c.GetString(middleware.CtxUserID) + "/" + v
	}
	return c.GetString(middleware.CtxUserID)
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	return id, err == nil
}
