package observable

import (
	"sync"
	"testing"
)

func TestValue_GetSet(t *testing.T) {
	v := New(1)
	if got := v.Get(); got != 1 {
		t.Fatalf("Get() = %d, want 1", got)
	}
	v.Set(5)
	if got := v.Get(); got != 5 {
		t.Errorf("Get() = %d, want 5", got)
	}
}

func TestValue_SubscribeOrder(t *testing.T) {
	v := New("")
	var calls []string

	v.Subscribe(func(s string) { calls = append(calls, "a:"+s) })
	v.Subscribe(func(s string) { calls = append(calls, "b:"+s) })

	v.Set("x")
	v.Set("y")

	want := []string{"a:x", "b:x", "a:y", "b:y"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, calls[i], want[i])
		}
	}
}

func TestValue_SubscribeNotCalledWithCurrent(t *testing.T) {
	v := New(10)
	called := false
	v.Subscribe(func(int) { called = true })
	if called {
		t.Error("subscriber should not be called on Subscribe")
	}
}

func TestValue_Unsubscribe(t *testing.T) {
	v := New(0)
	count := 0
	unsub := v.Subscribe(func(int) { count++ })

	v.Set(1)
	unsub()
	unsub() // second call is a no-op
	v.Set(2)

	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
	if v.Len() != 0 {
		t.Errorf("Len() = %d, want 0", v.Len())
	}
}

func TestValue_SubscriberCanGet(t *testing.T) {
	v := New(0)
	var seen int
	v.Subscribe(func(int) { seen = v.Get() })
	v.Set(7)
	if seen != 7 {
		t.Errorf("seen = %d, want 7", seen)
	}
}

func TestValue_Update(t *testing.T) {
	v := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()
	if got := v.Get(); got != 100 {
		t.Errorf("Get() = %d, want 100", got)
	}
}

func TestValue_NoCoalescing(t *testing.T) {
	v := New(0)
	var got []int
	v.Subscribe(func(n int) { got = append(got, n) })
	for i := 1; i <= 5; i++ {
		v.Set(i)
	}
	if len(got) != 5 {
		t.Fatalf("got %d notifications, want 5", len(got))
	}
	for i, n := range got {
		if n != i+1 {
			t.Errorf("got[%d] = %d, want %d", i, n, i+1)
		}
	}
}
