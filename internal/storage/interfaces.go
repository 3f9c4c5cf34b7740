package storage

import (
	"context"

	"github.com/ytget/habit-tracker/internal/model"
)

// Store defines the contract shared by all persistence back-ends.
type Store interface {
	// Load reads the whole table. Errors wrap ErrSourceUnavailable or
	// model.ErrFormat.
	Load(ctx context.Context) (model.Table, error)

	// Save replaces the stored table. Errors wrap ErrDestinationUnavailable.
	Save(ctx context.Context, t model.Table) error
}
