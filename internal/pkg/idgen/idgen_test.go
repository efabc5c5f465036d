package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("inv")
	assert.Equal(t, "inv_1", g.Generate())
	assert.Equal(t, "inv_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialConcurrent(t *testing.T) {
	g := idgen.NewSequential("")
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, dup := seen.LoadOrStore(g.Generate(), true)
				assert.False(t, dup)
			}
		}()
	}
	wg.Wait()
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("inv").Generate()
	require.True(t, strings.HasPrefix(id, "inv_"))
	assert.Len(t, strings.TrimPrefix(id, "inv_"), 36)

	assert.NotEqual(t, idgen.NewUUID("").Generate(), idgen.NewUUID("").Generate())
}
