package hodaun_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaikalii/hodaun"
)

func TestShared(t *testing.T) {
	cell := hodaun.NewShared(0.25)
	assert.Equal(t, 0.25, cell.Get())
	cell.Set(0.5)
	assert.Equal(t, 0.5, cell.Get())
	cell.With(func(v *float64) { *v *= 2 })
	assert.Equal(t, 1.0, cell.Get())
}

func TestSharedConcurrent(t *testing.T) {
	const (
		writers    = 8
		increments = 1000
	)
	cell := hodaun.NewShared(0)
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < increments; j++ {
				cell.With(func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, writers*increments, cell.Get())
}
