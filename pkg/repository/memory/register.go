package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/chent01/riskreg/pkg/domain/interfaces"
	"github.com/chent01/riskreg/pkg/domain/model"
)

type registerRepository struct {
	mu        sync.RWMutex
	registers map[string]*model.Register
}

func newRegisterRepository() *registerRepository {
	return &registerRepository{
		registers: make(map[string]*model.Register),
	}
}

func (r *registerRepository) Put(ctx context.Context, register *model.Register) error {
	if register == nil {
		return goerr.New("register is nil")
	}
	if register.RunID == "" {
		return goerr.New("register run ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.registers[register.RunID] = register.Clone()
	return nil
}

func (r *registerRepository) Get(ctx context.Context, runID string) (*model.Register, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	register, ok := r.registers[runID]
	if !ok {
		return nil, goerr.Wrap(interfaces.ErrNotFound, "register not found", goerr.V("runID", runID))
	}
	return register.Clone(), nil
}

func (r *registerRepository) List(ctx context.Context) ([]*model.Register, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*model.Register, 0, len(r.registers))
	for _, register := range r.registers {
		out = append(out, register.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].GeneratedAt.After(out[j].GeneratedAt)
	})
	return out, nil
}
