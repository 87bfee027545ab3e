package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	domainerrors "campus-hub.backend/internal/domain/errors"
)

// storeErr wraps a driver/connectivity failure so callers can distinguish
// backend outages from policy denials without inspecting gorm internals.
func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domainerrors.ErrStoreUnavailable, err)
}

func toStringArray(ids []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// toUUIDs drops values that do not parse as UUIDs; the original store was
// schema-less about array contents and a single bad element must not make
// the whole row unreadable.
func toUUIDs(arr pq.StringArray) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(arr))
	for _, s := range arr {
		id, err := uuid.Parse(s)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
