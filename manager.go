package halo2base

import (
	"github.com/consensys/gnark/logger"
)

// CoreManager owns every [Context] of one challenge phase of a circuit build.
// It mints contexts with sequential ids, all sharing one copy constraint
// manager, and reports assembly statistics once the phase is done.
//
// Contexts must be created from the coordinating goroutine before workers
// start; each context is then driven by exactly one worker.
type CoreManager struct {
	witnessGenOnly bool
	phase          int
	copyManager    *CopyConstraintManager
	contexts       []*Context
}

// NewCoreManager creates a manager for one phase with a fresh copy constraint
// manager.
func NewCoreManager(witnessGenOnly bool, phase int) *CoreManager {
	return NewCoreManagerWithCopyManager(witnessGenOnly, phase, NewCopyConstraintManager())
}

// NewCoreManagerWithCopyManager creates a manager sharing an existing copy
// constraint manager, for builds whose phases contribute to one global set of
// equalities.
func NewCoreManagerWithCopyManager(witnessGenOnly bool, phase int, cm *CopyConstraintManager) *CoreManager {
	return &CoreManager{
		witnessGenOnly: witnessGenOnly,
		phase:          phase,
		copyManager:    cm,
	}
}

// WitnessGenOnly reports whether contexts of this manager skip constraint
// bookkeeping.
func (m *CoreManager) WitnessGenOnly() bool {
	return m.witnessGenOnly
}

// Phase returns the challenge phase of this manager.
func (m *CoreManager) Phase() int {
	return m.phase
}

// CopyManager returns the shared copy constraint manager.
func (m *CoreManager) CopyManager() *CopyConstraintManager {
	return m.copyManager
}

// NewThread creates a context of the given region kind. The context id is
// reserved through the copy manager so it is unique across every manager of
// the build.
func (m *CoreManager) NewThread(typeID string) *Context {
	ctx := NewContext(m.witnessGenOnly, m.phase, typeID, m.copyManager.NextContextID(), m.copyManager)
	m.contexts = append(m.contexts, ctx)
	return ctx
}

// Contexts returns every context created so far, in creation order.
func (m *CoreManager) Contexts() []*Context {
	return m.contexts
}

// Stats summarizes the assembled state of one manager.
type Stats struct {
	Phase              int
	Contexts           int
	AdviceCells        int
	EnabledGates       int
	AdviceEqualities   int
	ConstantEqualities int
}

// Stats gathers totals over all contexts and the copy manager. Call only
// after every worker has finished.
func (m *CoreManager) Stats() Stats {
	s := Stats{
		Phase:              m.phase,
		Contexts:           len(m.contexts),
		AdviceEqualities:   m.copyManager.NumAdviceEqualities(),
		ConstantEqualities: m.copyManager.NumConstantEqualities(),
	}
	for _, ctx := range m.contexts {
		s.AdviceCells += len(ctx.Advice)
		for _, on := range ctx.Selector {
			if on {
				s.EnabledGates++
			}
		}
	}
	return s
}

// LogStats logs the manager's statistics through the gnark logger.
func (m *CoreManager) LogStats() {
	log := logger.Logger()
	s := m.Stats()
	log.Info().
		Int("phase", s.Phase).
		Int("contexts", s.Contexts).
		Int("adviceCells", s.AdviceCells).
		Int("enabledGates", s.EnabledGates).
		Int("adviceEqualities", s.AdviceEqualities).
		Int("constantEqualities", s.ConstantEqualities).
		Msg("virtual regions assembled")
}
