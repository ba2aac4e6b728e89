package server

import (
	"errors"

	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper.  Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// currentUserID reads the authenticated user's ID stored by AuthRequired.
func currentUserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}

// parseID extracts a route parameter by name as a positive uint. A
// malformed value is treated as a lookup miss: the route names a
// resource that cannot exist, so a 404 with the given message is
// written and errResponseWritten returned.
func (s *Server) parseID(c *fiber.Ctx, param, missingMsg string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(missingMsg))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondAppError renders an application error with the status derived
// from its code.
func respondAppError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}
