package portrait

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTracker_PrimaryImageSkipsFallback(t *testing.T) {
	tr := NewTracker("https://ik.imagekit.io/hpapi/harry.jpg")
	assert.Equal(t, UsingPrimary, tr.State())
	assert.False(t, tr.CanTrigger())
	assert.Equal(t, "https://ik.imagekit.io/hpapi/harry.jpg", tr.Result().URL)

	_, ok := tr.Begin(context.Background())
	assert.False(t, ok)

	tr = NewTracker("https://elsewhere/x.png")
	assert.Equal(t, Unresolved, tr.State())
	assert.True(t, tr.CanTrigger())
}

func TestTracker_SecondTriggerWhileInFlightIsNoop(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, wikiPage)
	r := NewResolver(Options{ProxyBase: server.URL, HTTPClient: server.Client()})

	tr := NewTracker("")
	ctx, ok := tr.Begin(context.Background())
	require.True(t, ok)
	assert.Equal(t, Loading, tr.State())

	// Second trigger while the first is in flight.
	assert.False(t, tr.Run(context.Background(), r, "Harry Potter"))

	res, err := r.Resolve(ctx, "Harry Potter")
	require.True(t, tr.Finish(res, err))
	assert.Equal(t, Resolved, tr.State())
	assert.EqualValues(t, 1, hits.Load())

	// Triggering after success is also a no-op.
	assert.False(t, tr.Run(context.Background(), r, "Harry Potter"))
	assert.EqualValues(t, 1, hits.Load())
	assert.Equal(t, "https://static.wikia.nocookie.net/harrypotter/images/9/97/Harry.jpg", tr.Result().URL)
}

func TestTracker_FailureIsTerminal(t *testing.T) {
	var hits atomic.Int32
	server := countingServer(t, &hits, "<html>no preview</html>")
	r := NewResolver(Options{ProxyBase: server.URL, HTTPClient: server.Client()})

	tr := NewTracker("")
	require.True(t, tr.Run(context.Background(), r, "Nobody"))
	assert.Equal(t, Failed, tr.State())
	assert.Equal(t, "image not found", tr.Message())
	assert.False(t, tr.CanTrigger())

	assert.False(t, tr.Run(context.Background(), r, "Nobody"))
	assert.EqualValues(t, 1, hits.Load())
}

// blockingTransport answers only after release is closed, then reports the
// request's context error if it was cancelled meanwhile.
type blockingTransport struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	close(b.started)
	select {
	case <-req.Context().Done():
		<-b.release
		return nil, req.Context().Err()
	case <-b.release:
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(wikiPage)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}

func TestTracker_TeardownDuringFlightCommitsNothing(t *testing.T) {
	bt := &blockingTransport{started: make(chan struct{}), release: make(chan struct{})}
	r := NewResolver(Options{HTTPClient: &http.Client{Transport: bt}})

	tr := NewTracker("")
	done := make(chan bool, 1)
	go func() {
		done <- tr.Run(context.Background(), r, "Harry Potter")
	}()

	select {
	case <-bt.started:
	case <-time.After(2 * time.Second):
		t.Fatal("lookup never started")
	}

	tr.Teardown()
	tr.Teardown()
	close(bt.release)

	select {
	case committed := <-done:
		assert.False(t, committed)
	case <-time.After(2 * time.Second):
		t.Fatal("lookup did not return after teardown")
	}
	assert.Equal(t, Loading, tr.State())
	assert.Empty(t, tr.Result().URL)
	assert.Empty(t, tr.Message())
	assert.False(t, tr.CanTrigger())
}

func TestTracker_LateResultAfterTeardownIsDiscarded(t *testing.T) {
	tr := NewTracker("")
	_, ok := tr.Begin(context.Background())
	require.True(t, ok)
	tr.Teardown()

	assert.False(t, tr.Finish(Result{URL: "https://late/x.png"}, nil))
	assert.False(t, tr.Finish(Result{}, errors.New("boom")))
	assert.Empty(t, tr.Result().URL)
}

func TestTracker_AbortWithoutTeardownAllowsNewTrigger(t *testing.T) {
	tr := NewTracker("")
	_, ok := tr.Begin(context.Background())
	require.True(t, ok)
	assert.False(t, tr.Finish(Result{}, ErrAborted))
	assert.Equal(t, Unresolved, tr.State())
	assert.True(t, tr.CanTrigger())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "unresolved", Unresolved.String())
	assert.Equal(t, "using-primary", UsingPrimary.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "failed", Failed.String())
}
