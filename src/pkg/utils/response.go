package utils

import (
	"encoding/json"
	"fmt"

	httpError "dispatch-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

// Result is the value every usecase returns: either Data or Error is set.
type Result struct {
	Data  interface{}
	Error error
}

type baseResponse struct {
	Success bool        `json:"success"`
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Response writes a success envelope.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(baseResponse{
		Success: true,
		Code:    code,
		Message: message,
		Data:    data,
	})
}

// ResponseError writes an error envelope, defaulting to 500 for unknown errors.
func ResponseError(err error, ctx *fiber.Ctx) error {
	if commonErr, ok := err.(*httpError.CommonError); ok {
		return ctx.Status(commonErr.Code).JSON(baseResponse{
			Success: false,
			Code:    commonErr.Code,
			Message: commonErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(baseResponse{
		Success: false,
		Code:    fiber.StatusInternalServerError,
		Message: err.Error(),
	})
}

// ConvertString renders any value as a string for log metadata.
func ConvertString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case error:
		return v.Error()
	default:
		marshaled, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(marshaled)
	}
}
