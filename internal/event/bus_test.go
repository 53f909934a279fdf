package event

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBusDeliversInOrder(t *testing.T) {
	var b Bus[int]
	var got []int
	b.Subscribe(func(v int) { got = append(got, v) })

	b.Post(1)
	b.Post(2)
	b.Flush()
	b.Publish(3)

	if diff := cmp.Diff([]int{1, 2, 3}, got); diff != "" {
		t.Errorf("delivery order mismatch (-want +got):\n%s", diff)
	}
}

func TestBusReentrantPublish(t *testing.T) {
	var b Bus[string]
	var got []string
	b.Subscribe(func(v string) {
		got = append(got, "a:"+v)
		if v == "first" {
			b.Publish("second")
		}
	})
	b.Subscribe(func(v string) { got = append(got, "b:"+v) })

	b.Publish("first")

	want := []string{"a:first", "b:first", "a:second", "b:second"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("reentrant delivery mismatch (-want +got):\n%s", diff)
	}
}

func TestBusUnsubscribe(t *testing.T) {
	var b Bus[int]
	calls := 0
	cancel := b.Subscribe(func(int) { calls++ })

	b.Publish(1)
	cancel()
	b.Publish(2)

	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
	if b.Len() != 0 {
		t.Errorf("Len = %d, want 0", b.Len())
	}
}

func TestBusRecoversFromPanickingSubscriber(t *testing.T) {
	var b Bus[int]
	var got []int
	b.Subscribe(func(v int) {
		if v == 1 {
			panic("boom")
		}
		got = append(got, v)
	})

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected the subscriber panic to propagate")
			}
		}()
		b.Publish(1)
	}()

	b.Publish(2)
	if diff := cmp.Diff([]int{2}, got); diff != "" {
		t.Errorf("delivery after panic mismatch (-want +got):\n%s", diff)
	}
}
