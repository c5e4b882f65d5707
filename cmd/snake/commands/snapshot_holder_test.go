package commands

import (
	"sync"
	"testing"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/stretchr/testify/require"
)

func TestSnapshotHolder_DefaultsToReady(t *testing.T) {
	sh := &snapshotHolder{}
	_, ok := sh.get()
	require.False(t, ok)
	require.Equal(t, controller.PhaseReady, sh.phase())
	require.Equal(t, 0, sh.count())
}

func TestSnapshotHolder_Store(t *testing.T) {
	sh := &snapshotHolder{}
	sh.store(controller.Snapshot{Phase: controller.PhaseGameOver, Score: 4})

	s, ok := sh.get()
	require.True(t, ok)
	require.Equal(t, 4, s.Score)
	require.Equal(t, controller.PhaseGameOver, sh.phase())
	require.Equal(t, 1, sh.count())
}

func TestSnapshotHolder_Concurrent(t *testing.T) {
	sh := &snapshotHolder{}
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sh.store(controller.Snapshot{Phase: controller.PhasePlaying})
		}()
		go func() {
			defer wg.Done()
			sh.phase()
		}()
	}
	wg.Wait()
	require.Equal(t, 10, sh.count())
}
