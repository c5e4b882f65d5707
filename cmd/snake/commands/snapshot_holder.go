package commands

import (
	"sync"

	"github.com/battlesnakeio/arcade/controller"
)

// snapshotHolder publishes the last rendered snapshot from the loop goroutine
// to the event pump.
type snapshotHolder struct {
	sync.RWMutex
	current controller.Snapshot
	frames  int
}

func (sh *snapshotHolder) store(s controller.Snapshot) {
	sh.Lock()
	defer sh.Unlock()

	sh.current = s
	sh.frames++
}

func (sh *snapshotHolder) get() (controller.Snapshot, bool) {
	sh.RLock()
	defer sh.RUnlock()

	return sh.current, sh.frames > 0
}

func (sh *snapshotHolder) phase() controller.Phase {
	s, ok := sh.get()
	if !ok {
		return controller.PhaseReady
	}
	return s.Phase
}

func (sh *snapshotHolder) count() int {
	sh.RLock()
	defer sh.RUnlock()

	return sh.frames
}
