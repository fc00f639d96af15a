// Package shutdown coordinates orderly teardown of application resources.
package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"netlab-designer/internal/logger"
)

// Component is a named resource released during shutdown.
type Component struct {
	Name  string
	Close func()
}

// Manager releases registered components in reverse registration order,
// once, whether shutdown comes from the window closing or a signal.
type Manager struct {
	components []Component
	log        logger.Logger
	mu         sync.Mutex
	done       chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		log:  log,
		done: make(chan struct{}),
	}
}

func (m *Manager) Register(name string, close func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.components = append(m.components, Component{Name: name, Close: close})
}

// Listen triggers shutdown on SIGINT/SIGTERM, then runs onDone (used to
// quit the UI event loop).
func (m *Manager) Listen(onDone func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		sig := <-sigChan
		m.log.Info("shutdown", "signal received", map[string]interface{}{"signal": sig.String()})
		m.Shutdown()
		if onDone != nil {
			onDone()
		}
	}()
}

// Shutdown releases all components. Safe to call more than once.
func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	for i := len(m.components) - 1; i >= 0; i-- {
		component := m.components[i]
		finished := make(chan struct{})
		go func() {
			defer close(finished)
			component.Close()
		}()

		select {
		case <-finished:
		case <-time.After(10 * time.Second):
			m.log.Warning("shutdown", "component close timeout", map[string]interface{}{
				"component": component.Name,
			})
		}
	}
	m.log.Info("shutdown", "complete", nil)
}
