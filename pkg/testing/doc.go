// Package testing provides deterministic helpers for testing animations.
//
// # Quick Start
//
// Create a harness, start an animation on its driver, and pump frames:
//
//	func TestFade(t *testing.T) {
//	    h := motiontest.NewHarness()
//	    a := animation.New(animation.Linear(), time.Second, animation.Vec(0), animation.Vec(1))
//	    rec := motiontest.Record(a)
//	    a.Start(h.Driver(), 0)
//
//	    if err := h.PumpAndSettle(10 * time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if rec.FinishedCount() != 1 {
//	        t.Error("expected one finished event")
//	    }
//	}
//
// The harness owns a [FakeClock], so delayed starts fire only when the test
// advances time.
package testing
