package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Guyuepp/portfolio-cms/domain"
)

const errWriteConflict = 112

// translateError maps driver failures onto the domain error set
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return domain.ErrConflict
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceUnavailable, err)
	}

	var se mongo.ServerError
	if errors.As(err, &se) && (se.HasErrorCode(errWriteConflict) || se.HasErrorLabel("TransientTransactionError")) {
		return fmt.Errorf("%w: %v", domain.ErrPersistenceConflict, err)
	}
	return err
}
