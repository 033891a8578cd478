package interfaces

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/model"
)

// ErrNotFound is returned by repositories when a record does not exist
var ErrNotFound = goerr.New("not found")

// Repository defines the interface for register storage
type Repository interface {
	Register() RegisterRepository
}

// RegisterRepository stores completed register-generation runs
type RegisterRepository interface {
	// Put stores a register keyed by its run ID
	Put(ctx context.Context, register *model.Register) error

	// Get retrieves a register by run ID
	Get(ctx context.Context, runID string) (*model.Register, error)

	// List retrieves all stored registers, newest first
	List(ctx context.Context) ([]*model.Register, error)
}
