package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/taskhub/backend/internal/model"
)

func respond(c *gin.Context, status int, data any, message string) {
	c.JSON(status, model.Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondList(c *gin.Context, status int, data any, count int, message string) {
	c.JSON(status, model.ListResponse{
		Success: true,
		Count:   count,
		Data:    data,
		Message: message,
	})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, model.Response{
		Success: false,
		Data:    nil,
		Message: message,
	})
}

// bindingMessage turns a ShouldBindJSON error into the message the API
// contract promises for that field and rule.
func bindingMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		switch typeErr.Field {
		case "completed":
			return "Completed must be a boolean value"
		case "title":
			return "Title must be a string"
		}
		return fmt.Sprintf("Invalid type for field '%s'", typeErr.Field)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fieldMessage(fieldErrs[0])
	}

	return "Invalid request body"
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch field {
	case "name":
		if fe.Tag() == "required" {
			return "Name is required"
		}
		return "Name must be between 2 and 50 characters"
	case "email":
		if fe.Tag() == "required" {
			return "Email is required"
		}
		return "Please provide a valid email"
	case "password":
		if fe.Tag() == "required" {
			return "Password is required"
		}
		return "Password must be at least 6 characters long"
	case "title":
		if fe.Tag() == "required" {
			return "Title is required"
		}
		return "Title must be between 1 and 200 characters"
	}
	return fmt.Sprintf("Invalid value for field '%s'", field)
}
