package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedRepository blocks inside Save until released, so tests can pile up
// snapshots behind an in-flight write.
type gatedRepository struct {
	mu      sync.Mutex
	saves   []Items
	entered chan struct{}
	release chan struct{}
}

func newGatedRepository() *gatedRepository {
	return &gatedRepository{
		entered: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
}

func (g *gatedRepository) Save(_ context.Context, items Items) error {
	g.entered <- struct{}{}
	<-g.release
	g.mu.Lock()
	defer g.mu.Unlock()
	g.saves = append(g.saves, items.clone())
	return nil
}

func (g *gatedRepository) Load(context.Context) (Items, bool, error) {
	return nil, false, nil
}

func TestWriter_FlushesLatestSnapshot(t *testing.T) {
	repo := &fakeRepository{}
	writer := NewWriter(repo)

	writer.Enqueue(Items{item(1, 1000, 1)})
	writer.Enqueue(Items{item(1, 1000, 2)})
	writer.Enqueue(Items{item(1, 1000, 3)})
	writer.Close()

	last, ok := repo.lastSave()
	require.True(t, ok)
	it, _ := last.Find(1)
	assert.Equal(t, 3, it.Quantity)
}

func TestWriter_CoalescesWhileWriteInFlight(t *testing.T) {
	repo := newGatedRepository()
	writer := NewWriter(repo)

	writer.Enqueue(Items{item(1, 1000, 1)})
	<-repo.entered // first write is now in flight

	// these arrive while the write is running and must coalesce
	writer.Enqueue(Items{item(1, 1000, 2)})
	writer.Enqueue(Items{item(1, 1000, 3)})
	writer.Enqueue(Items{item(1, 1000, 4)})

	close(repo.release)
	writer.Close()

	repo.mu.Lock()
	defer repo.mu.Unlock()
	require.Len(t, repo.saves, 2)
	first, _ := repo.saves[0].Find(1)
	last, _ := repo.saves[1].Find(1)
	assert.Equal(t, 1, first.Quantity)
	assert.Equal(t, 4, last.Quantity)
}

func TestWriter_SaveFailureIsSwallowed(t *testing.T) {
	repo := &fakeRepository{saveErr: errors.New("disk full")}
	writer := NewWriter(repo)

	assert.NotPanics(t, func() {
		writer.Enqueue(Items{item(1, 1000, 1)})
		writer.Close()
	})
}

func TestWriter_CloseIsIdempotent(t *testing.T) {
	writer := NewWriter(&fakeRepository{})

	writer.Close()
	assert.NotPanics(t, writer.Close)
}
