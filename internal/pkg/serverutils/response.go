package serverutils

import "github.com/gofiber/fiber/v2"

// Every endpoint answers with the {success, message?, ...payload} envelope.
// SuccessResponse/ErrorResponse build the two base shapes; controllers merge
// extra payload keys on top via Merge.

func SuccessResponse(message string) fiber.Map {
	return fiber.Map{
		"success": true,
		"message": message,
	}
}

func ErrorResponse(message string) fiber.Map {
	return fiber.Map{
		"success": false,
		"message": message,
	}
}

// Merge copies the given payload keys into the envelope and returns it.
func Merge(envelope fiber.Map, payload fiber.Map) fiber.Map {
	for k, v := range payload {
		envelope[k] = v
	}
	return envelope
}
