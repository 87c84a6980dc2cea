package id

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Format(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
	}{
		{"book", "book"},
		{"copy", "copy"},
		{"reader", "reader"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Generate(tt.prefix)
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(id, tt.prefix+"-"))

			// NanoID default is 21 characters after the prefix and hyphen.
			assert.Equal(t, len(tt.prefix)+1+21, len(id), "ID: %s", id)
		})
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	ids := make(map[string]bool)
	count := 1000

	for i := 0; i < count; i++ {
		id, err := Generate("test")
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}

	assert.Len(t, ids, count)
}

func TestSequence_StrictlyIncreasing(t *testing.T) {
	seq := NewSequence("L")

	assert.Equal(t, "L1", seq.Next())
	assert.Equal(t, "L2", seq.Next())
	assert.Equal(t, "L3", seq.Next())
}

func TestSequence_ConcurrentNoCollisions(t *testing.T) {
	seq := NewSequence("L")

	const workers = 8
	const perWorker = 200

	var mu sync.Mutex
	seen := make(map[string]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				id := seq.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
