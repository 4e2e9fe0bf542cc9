package reveal

import "testing"

func TestNeverVisibleStaysHidden(t *testing.T) {
	tr := NewTracker[string]()
	tr.Register("card", nil)
	for i := 0; i < 5; i++ {
		if tr.Observe("card", false) {
			t.Fatalf("invisible observation revealed the element")
		}
	}
	if tr.State("card") != Hidden {
		t.Fatalf("state = %s, want hidden", tr.State("card"))
	}
}

func TestRevealIsOneWay(t *testing.T) {
	tr := NewTracker[string]()
	calls := 0
	tr.Register("card", func(string) { calls++ })

	if !tr.Observe("card", true) {
		t.Fatalf("first visible observation should reveal")
	}
	if tr.Observe("card", false) {
		t.Fatalf("leaving the viewport must not report a reveal")
	}
	if tr.Observe("card", true) {
		t.Fatalf("re-entering the viewport must not reveal again")
	}
	if tr.State("card") != Revealed {
		t.Fatalf("state reverted to %s", tr.State("card"))
	}
	if calls != 1 {
		t.Fatalf("callback fired %d times, want 1", calls)
	}
}

func TestUnregisterDropsCallback(t *testing.T) {
	tr := NewTracker[int]()
	fired := false
	tr.Register(1, func(int) { fired = true })
	tr.Unregister(1)

	if tr.Len() != 0 {
		t.Fatalf("tracker still holds %d keys", tr.Len())
	}
	tr.Observe(1, true)
	if fired {
		t.Fatalf("callback fired after unregister")
	}
}

func TestRegisterKeepsRevealedState(t *testing.T) {
	tr := NewTracker[int]()
	tr.Observe(3, true)

	fired := false
	tr.Register(3, func(int) { fired = true })
	tr.Observe(3, true)
	if fired || !tr.Revealed(3) {
		t.Fatalf("re-registering a revealed element must not reset it")
	}
}

func TestObserveVisible(t *testing.T) {
	tr := NewTracker[int]()
	for i := 0; i < 6; i++ {
		tr.Register(i, nil)
	}

	got := tr.ObserveVisible([]int{0, 1, 2})
	if len(got) != 3 {
		t.Fatalf("revealed %v, want [0 1 2]", got)
	}
	got = tr.ObserveVisible([]int{2, 3})
	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("revealed %v, want [3]", got)
	}
	for i := 0; i < 4; i++ {
		if !tr.Revealed(i) {
			t.Errorf("key %d should be revealed", i)
		}
	}
	for i := 4; i < 6; i++ {
		if tr.Revealed(i) {
			t.Errorf("key %d should still be hidden", i)
		}
	}
}

func TestStateString(t *testing.T) {
	if Hidden.String() != "hidden" || Revealed.String() != "revealed" {
		t.Fatalf("unexpected state names")
	}
}
