// Package response defines the JSON envelope every handler replies
// with. Success and error payloads share one shape so clients check
// the success flag before anything else.
package response

import "github.com/gofiber/fiber/v2"

// Response is the envelope for every API reply
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func send(c *fiber.Ctx, statusCode int, body Response) error {
	return c.Status(statusCode).JSON(body)
}

// Success replies 200 with data inside the envelope
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusOK, Response{Success: true, Message: message, Data: data})
}

// Created replies 201 for newly stored records
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// Error replies with the given status and an error message
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return send(c, statusCode, Response{Error: message})
}

// Shorthands for the statuses the handlers raise.

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
