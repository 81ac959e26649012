package middleware

import (
	"github.com/SscSPs/sales_commissions_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	// personIDKey stores the authenticated person's ID.
	personIDKey = contextKey("personID")
	// actorKey stores the loaded domain.Actor.
	actorKey = contextKey("actor")
)

// GetPersonIDFromContext retrieves the authenticated person ID from the Gin context.
// It returns the person ID and a boolean indicating if it was found.
func GetPersonIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(personIDKey)); exists {
		personID, ok := val.(string)
		return personID, ok
	}
	personID, ok := c.Request.Context().Value(personIDKey).(string)
	return personID, ok
}

// SetActor stores the acting person for the rest of the request.
func SetActor(c *gin.Context, actor domain.Actor) {
	c.Set(string(actorKey), actor)
}

// GetActorFromContext retrieves the actor loaded by ActorMiddleware.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	val, exists := c.Get(string(actorKey))
	if !exists {
		return domain.Actor{}, false
	}
	actor, ok := val.(domain.Actor)
	return actor, ok
}
