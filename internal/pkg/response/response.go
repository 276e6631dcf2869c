package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "Bad request"
	MessageUnauthorized        = "User not authorized"
	MessageForbidden           = "You do not have permission to perform this action."
	MessageNotFound            = "Resource not found"
	MessageInternalServerError = "Internal Server Error"
)

// Success writes the `{"success": true, ...}` envelope. Extra fields
// (jobs, job, categories, message, ...) are merged into the body.
func Success(c fiber.Ctx, status int, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(status).JSON(body)
}

// Error writes the `{"success": false, "message": ...}` envelope.
func Error(c fiber.Ctx, status int, message string) error {
	if message == "" {
		message = defaultMessageForStatus(status)
	}
	return c.Status(status).JSON(fiber.Map{"success": false, "message": message})
}

func defaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageBadRequest
	}
}
