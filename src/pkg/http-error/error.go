package httperror

import "github.com/gofiber/fiber/v2"

// CommonError is the transport-facing error shape carried inside utils.Result.
type CommonError struct {
	Code         int    `json:"code"`
	ResponseCode string `json:"responseCode"`
	Message      string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:         fiber.StatusBadRequest,
		ResponseCode: "BAD_REQUEST",
		Message:      "bad request",
	}
}

func NewUnauthorized() *CommonError {
	return &CommonError{
		Code:         fiber.StatusUnauthorized,
		ResponseCode: "UNAUTHORIZED",
		Message:      "unauthorized",
	}
}

func NewForbidden() *CommonError {
	return &CommonError{
		Code:         fiber.StatusForbidden,
		ResponseCode: "FORBIDDEN",
		Message:      "forbidden",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:         fiber.StatusNotFound,
		ResponseCode: "NOT_FOUND",
		Message:      "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:         fiber.StatusConflict,
		ResponseCode: "CONFLICT",
		Message:      "conflict",
	}
}

func NewUnprocessableEntity() *CommonError {
	return &CommonError{
		Code:         fiber.StatusUnprocessableEntity,
		ResponseCode: "UNPROCESSABLE_ENTITY",
		Message:      "unprocessable entity",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:         fiber.StatusInternalServerError,
		ResponseCode: "INTERNAL_SERVER_ERROR",
		Message:      "internal server error",
	}
}
