package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseIDParam parses a :id path parameter as a UUID
func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// optionalUUIDQuery parses an optional UUID query parameter. Returns nil
// when the parameter is absent and an error when it is present but invalid.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
