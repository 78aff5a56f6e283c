package memory

import (
	"fmt"
	"sync"
	"testing"

	"ai-subject-explorer-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_SaveAndGet(t *testing.T) {
	repo := NewSessionRepository(0)

	session := &store.Session{ID: "s1", Topic: "Volcanoes"}
	repo.Save(session)

	got, found := repo.Get("s1")
	require.True(t, found)
	assert.Same(t, session, got)
}

func TestSessionRepository_GetMissing(t *testing.T) {
	repo := NewSessionRepository(0)

	_, found := repo.Get("missing")
	assert.False(t, found)
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := NewSessionRepository(0)
	repo.Save(&store.Session{ID: "s1"})

	repo.Delete("s1")

	_, found := repo.Get("s1")
	assert.False(t, found)
}

func TestSessionRepository_ConcurrentAccess(t *testing.T) {
	repo := NewSessionRepository(0)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n)
			repo.Save(&store.Session{ID: id})
			_, found := repo.Get(id)
			assert.True(t, found)
		}(i)
	}
	wg.Wait()
}
