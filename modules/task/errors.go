package task

import (
	"errors"
	"fmt"

	domain "github.com/example/task-tracker/domain/task"
)

// toServiceError converts domain errors into a reply payload.
// Any other error is returned unchanged so the service call fails.
func toServiceError(err error) (*ServiceError, error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return &ServiceError{Code: CodeInvalid, Message: ve.Message}, nil
	case errors.Is(err, domain.ErrNotFound):
		return &ServiceError{Code: CodeNotFound, Message: domain.ErrNotFound.Error()}, nil
	default:
		return nil, err
	}
}

// fromServiceError rebuilds the domain error carried in a reply.
func fromServiceError(se *ServiceError) error {
	if se == nil {
		return nil
	}
	switch se.Code {
	case CodeNotFound:
		return domain.ErrNotFound
	case CodeInvalid:
		return &domain.ValidationError{Message: se.Message}
	default:
		return fmt.Errorf("task service error %s: %s", se.Code, se.Message)
	}
}
