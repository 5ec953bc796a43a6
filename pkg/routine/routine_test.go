package routine

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoRecovers(t *testing.T) {
	assert.NotPanics(t, func() {
		Go(context.TODO(), func() {
			panic("boom")
		})
	})
}

func TestGoSafe(t *testing.T) {
	wg := sync.WaitGroup{}
	wg.Add(1)
	ran := false
	GoSafe(context.TODO(), func() {
		ran = true
		wg.Done()
	})
	wg.Wait()
	assert.True(t, ran)
}
