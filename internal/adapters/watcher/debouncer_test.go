package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/starview/internal/adapters/watcher"
)

type recorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *recorder) callback(paths []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, paths)
}

func (r *recorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(100*time.Millisecond, rec.callback)

		d.Add("/data/starview.yaml")
		time.Sleep(50 * time.Millisecond)
		d.Add("/data/starview.yaml")
		d.Add("/data/notes.txt")

		time.Sleep(99 * time.Millisecond)
		synctest.Wait()
		assert.Empty(t, rec.snapshot(), "window restarts on every event")

		time.Sleep(2 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, [][]string{{"/data/notes.txt", "/data/starview.yaml"}}, rec.snapshot())
	})
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(10*time.Millisecond, rec.callback)

		d.Add("a")
		time.Sleep(20 * time.Millisecond)
		d.Add("b")
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.Equal(t, [][]string{{"a"}, {"b"}}, rec.snapshot())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(time.Hour, rec.callback)

		d.Add("a")
		d.Flush()
		assert.Equal(t, [][]string{{"a"}}, rec.snapshot())

		d.Flush()
		assert.Len(t, rec.snapshot(), 1, "flush without pending paths does nothing")
	})
}

func TestDebouncer_Stop(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var rec recorder
		d := watcher.NewDebouncer(10*time.Millisecond, rec.callback)

		d.Add("a")
		d.Stop()
		time.Sleep(20 * time.Millisecond)
		synctest.Wait()

		assert.Empty(t, rec.snapshot())
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(time.Millisecond, nil)
		d.Add("a")
		time.Sleep(5 * time.Millisecond)
		synctest.Wait()
		d.Flush()
	})
}
