package models

import (
	"fmt"
	"sort"
	"strings"
)

// ErrorValidation reports missing or malformed request fields.
type ErrorValidation struct {
	Message string
	Fields  map[string]string
}

func (e ErrorValidation) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, e.Fields[name])
	}
	return strings.Join(parts, "; ")
}

// ErrorInvalidID is returned for identifiers that are not UUIDs.
type ErrorInvalidID struct {
	Value string
}

func (e ErrorInvalidID) Error() string {
	if e.Value == "" {
		return "id is required"
	}
	return fmt.Sprintf("invalid id %q", e.Value)
}

type ErrorMissingToken struct{}

func (ErrorMissingToken) Error() string { return "authorization token required" }

type ErrorInvalidToken struct{}

func (ErrorInvalidToken) Error() string { return "invalid or expired token" }

type ErrorForbiddenRole struct {
	Required UserRole
}

func (e ErrorForbiddenRole) Error() string {
	return fmt.Sprintf("%s role required", e.Required)
}

// ErrorUnauthorized is returned for bad credentials.
type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string { return e.Message }

type ErrorNotFound struct {
	Resource string
}

func (e ErrorNotFound) Error() string {
	return e.Resource + " not found"
}

type ErrorNoAdminUser struct{}

func (ErrorNoAdminUser) Error() string { return "no admin user found" }

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string { return e.Message }

type ErrorTooManyRequests struct{}

func (ErrorTooManyRequests) Error() string { return "too many requests, try again later" }
