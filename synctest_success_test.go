package xgxresult

import (
	"reflect"
	"testing"
	"testing/synctest"
)

// onceCode belongs to a trait no other test touches, so the first Success call
// for it happens inside the bubble below.
type onceCode int8

type onceTrait struct{}

func (onceTrait) Success() onceCode            { return 0 }
func (onceTrait) DefaultError() onceCode       { return 1 }
func (onceTrait) CodeToString(onceCode) string { return "once" }

// TestSuccess_ConcurrentFirstUse_Synctest races many goroutines on the first
// Success call of a fresh trait and checks every caller sees the same,
// fully-built success value.
func TestSuccess_ConcurrentFirstUse_Synctest(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		const N = 64
		start := make(chan struct{})
		results := make(chan Result[onceTrait, onceCode], N)

		for i := 0; i < N; i++ {
			go func() {
				<-start
				results <- Success[onceTrait, onceCode]()
			}()
		}
		close(start)
		synctest.Wait()

		for i := 0; i < N; i++ {
			r := <-results
			if !r.IsSuccess() || r.Message() != "" {
				t.Fatalf("goroutine observed %+v", r)
			}
		}

		if _, ok := successes.Load(reflect.TypeFor[onceTrait]()); !ok {
			t.Fatalf("no registry entry for onceTrait")
		}
	})
}
