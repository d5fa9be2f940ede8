package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"inn/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "BadRequest wraps an error",
			err:     failure.BadRequest(errors.New("invalid date range")),
			code:    http.StatusBadRequest,
			message: "invalid date range",
		},
		{
			name:    "BadRequestFromString",
			err:     failure.BadRequestFromString("invalid room type"),
			code:    http.StatusBadRequest,
			message: "invalid room type",
		},
		{
			name:    "Unauthorized",
			err:     failure.Unauthorized("invalid admin key"),
			code:    http.StatusUnauthorized,
			message: "invalid admin key",
		},
		{
			name:    "NotFound",
			err:     failure.NotFound("room not found"),
			code:    http.StatusNotFound,
			message: "room not found",
		},
		{
			name:    "Conflict",
			err:     failure.Conflict("room is not available"),
			code:    http.StatusConflict,
			message: "room is not available",
		},
		{
			name:    "Forbidden",
			err:     failure.Forbidden("admin only"),
			code:    http.StatusForbidden,
			message: "admin only",
		},
		{
			name:    "InternalError wraps an error",
			err:     failure.InternalError(errors.New("connection refused")),
			code:    http.StatusInternalServerError,
			message: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, f.Message)
			}
		})
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "failure error",
			err:  failure.NotFound("booking not found"),
			want: http.StatusNotFound,
		},
		{
			name: "wrapped failure error",
			err:  fmt.Errorf("service call: %w", failure.Conflict("reservation id already exists")),
			want: http.StatusConflict,
		},
		{
			name: "plain error defaults to internal",
			err:  errors.New("database error"),
			want: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.want {
				t.Errorf("expected code to be %d, got %d", tt.want, got)
			}
		})
	}
}
