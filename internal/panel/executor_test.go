package panel

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestExecutorSingleFlight(t *testing.T) {
	e := NewExecutor[testRecord]("mem")
	s := newTestState("a")

	calls := 0
	fn := func(context.Context) (string, error) {
		calls++
		return "ok", nil
	}

	s, cmd := e.Do(s, 1, "reindex", fn)
	if cmd == nil {
		t.Fatal("expected command for first action")
	}
	if !s.Busy {
		t.Fatal("expected busy while action in flight")
	}

	// Second dispatch while busy: dropped before any network call.
	next, cmd2 := e.Do(s, 1, "delete", fn)
	if cmd2 != nil {
		t.Fatal("expected second dispatch dropped")
	}
	if !reflect.DeepEqual(s, next) {
		t.Fatal("expected state unchanged by dropped dispatch")
	}

	msg := cmd()
	done, ok := msg.(ActionDoneMsg)
	if !ok {
		t.Fatalf("expected ActionDoneMsg, got %#v", msg)
	}
	if done.Panel != "mem" || done.Gen != 1 || done.Action != "reindex" {
		t.Fatalf("unexpected envelope %#v", done)
	}
	if done.Message != "ok" || done.Err != nil {
		t.Fatalf("unexpected outcome %#v", done)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one daemon call, got %d", calls)
	}
}

func TestExecutorPropagatesActionError(t *testing.T) {
	e := NewExecutor[testRecord]("mem")
	s := newTestState("a")

	rejected := errors.New("memory is pinned")
	_, cmd := e.Do(s, 3, "delete", func(context.Context) (string, error) {
		return "", rejected
	})

	done := cmd().(ActionDoneMsg)
	if !errors.Is(done.Err, rejected) {
		t.Fatalf("expected daemon error verbatim, got %v", done.Err)
	}
	if done.Gen != 3 {
		t.Fatalf("expected generation carried through, got %d", done.Gen)
	}
}

func TestExecutorClearsPriorFeedback(t *testing.T) {
	e := NewExecutor[testRecord]("mem")
	s := newTestState("a")
	s.Feedback = &Feedback{Message: "old", Kind: FeedbackError}

	s, _ = e.Do(s, 1, "reindex", func(context.Context) (string, error) {
		return "ok", nil
	})
	if s.Feedback != nil {
		t.Fatalf("expected prior feedback cleared on action start, got %#v", s.Feedback)
	}
}
