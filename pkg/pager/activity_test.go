package pager_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/rmbrowse/pkg/pager"
)

type transitions struct {
	mu     sync.Mutex
	events []string
}

func (tr *transitions) record(ev string) func() {
	return func() {
		tr.mu.Lock()
		defer tr.mu.Unlock()
		tr.events = append(tr.events, ev)
	}
}

func (tr *transitions) list() []string {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([]string(nil), tr.events...)
}

func TestActivity_Transitions(t *testing.T) {
	a := pager.NewActivity()
	tr := &transitions{}
	a.OnStarted(tr.record("started"))
	a.OnFinished(tr.record("finished"))

	a.Begin()
	a.Begin()
	assert.True(t, a.Loading())
	assert.Equal(t, 2, a.Count())
	a.End()
	assert.Equal(t, []string{"started"}, tr.list())
	a.End()
	assert.False(t, a.Loading())
	assert.Equal(t, []string{"started", "finished"}, tr.list())

	a.End()
	assert.Zero(t, a.Count())
	assert.Equal(t, []string{"started", "finished"}, tr.list())
}

func TestActivity_Track(t *testing.T) {
	a := pager.NewActivity()
	var during int
	err := a.Track(func() error {
		during = a.Count()
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, during)
	assert.Zero(t, a.Count())
}

func TestActivity_SharedAcrossCursors(t *testing.T) {
	a := pager.NewActivity()
	tr := &transitions{}
	a.OnStarted(tr.record("started"))
	a.OnFinished(tr.record("finished"))

	chars := newListing(2, 3)
	eps := newListing(2, 3)
	charGate := chars.hold(1)
	epGate := eps.hold(1)

	c1 := pager.New(chars.fetch, pager.WithActivity(a))
	c2 := pager.New(eps.fetch, pager.WithActivity(a))
	ctx := context.Background()

	require.True(t, c1.FetchNext(ctx))
	require.True(t, c2.FetchNext(ctx))
	assert.Equal(t, 2, a.Count())
	assert.Same(t, a, c1.Activity())

	close(charGate)
	c1.Wait()
	assert.Equal(t, 1, a.Count())
	assert.Equal(t, []string{"started"}, tr.list())

	close(epGate)
	c2.Wait()
	assert.Zero(t, a.Count())
	assert.Equal(t, []string{"started", "finished"}, tr.list())
}

func TestActivity_StaleCompletionStillBalances(t *testing.T) {
	a := pager.NewActivity()
	src := newListing(3, 1)
	c := pager.New(src.fetch, pager.WithActivity(a))
	ctx := context.Background()

	_, err := c.Next(ctx)
	require.NoError(t, err)

	stale := src.hold(2)
	fresh := src.hold(1)
	require.True(t, c.FetchNext(ctx))
	require.True(t, c.Reload(ctx))
	assert.Equal(t, 2, a.Count())

	close(stale)
	require.Eventually(t, func() bool { return a.Count() == 1 }, time.Second, time.Millisecond)
	assert.Empty(t, c.Items())

	close(fresh)
	c.Wait()
	assert.Zero(t, a.Count())
	assert.Equal(t, []int{100}, c.Items())
}
