// Package memory provides an in-memory Repository implementation used by
// the CLI and in tests. All reads return deep copies so callers can never
// mutate stored state.
package memory

import (
	"github.com/chent01/riskreg/pkg/domain/interfaces"
)

type Memory struct {
	register *registerRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		register: newRegisterRepository(),
	}
}

func (m *Memory) Register() interfaces.RegisterRepository {
	return m.register
}
