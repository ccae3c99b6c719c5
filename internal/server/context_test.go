package server

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerContextProbedConcurrentAccess(t *testing.T) {
	sc := &ServerContext{}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sc.SetProbed(true)
		}()
		go func() {
			defer wg.Done()
			_ = sc.Probed()
		}()
	}
	wg.Wait()

	assert.True(t, sc.Probed())

	sc.SetProbed(false)
	assert.False(t, sc.Probed())
}
