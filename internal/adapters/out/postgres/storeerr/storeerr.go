// Package storeerr classifies gorm errors for the postgres repositories.
package storeerr

import (
	"context"
	"errors"

	"pickup/internal/pkg/errs"

	"gorm.io/gorm"
)

// Wrap turns a gorm error raised during operation into an error of the errs
// taxonomy. Context cancellation passes through unchanged; not-found must be
// handled by the caller, which knows the looked-up id.
//
// Example:
//
//	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
//	    return storeerr.Wrap("add order", err)
//	}
func Wrap(operation string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return errs.NewValueIsInvalidErrorWithCause(operation, err)
	default:
		return errs.NewStoreUnavailableError(operation, err)
	}
}

// NotFound maps gorm.ErrRecordNotFound to errs.ObjectNotFoundError and
// everything else through Wrap.
func NotFound(operation, param string, id any, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError(param, id)
	}
	return Wrap(operation, err)
}
