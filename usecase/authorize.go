package usecase

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"videotube/domain/model"
)

// ensureOwner is the single authorization gate every mutating operation goes
// through. Ownership checks live here at the service boundary, not scattered
// across handlers.
func ensureOwner(owner, caller bson.ObjectID, resource string) error {
	if owner != caller {
		return model.Forbidden("caller does not own this " + resource)
	}
	return nil
}

// asNotFound converts the store's no-document result into the NotFound
// taxonomy entry; other errors become Internal.
func asNotFound(err error, resource string) error {
	if err == nil {
		return nil
	}
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.NotFound(resource)
	}
	return model.Internal("store operation failed", err)
}
