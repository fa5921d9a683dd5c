// Package testing provides deterministic frame driving for easelab motion.
//
// # Quick Start
//
// Wrap a controller in a tester, advance the fake clock, and assert on the
// published positions:
//
//	func TestBounce(t *testing.T) {
//	    c, _ := animation.NewController(policy, easing.MustLookup("backOut"))
//	    c.SetTargetDistance(100)
//
//	    tester := easetest.NewMotionTesterWithT(t, c)
//	    tester.Pump()
//	    frame := tester.Advance(500 * time.Millisecond)
//	    if frame.Position <= 50 {
//	        t.Errorf("expected backOut ahead of linear, got %v", frame.Position)
//	    }
//	}
//
// # Trace Snapshots
//
// Record every frame and compare against a golden file:
//
//	tester.PumpFrames(8, 125*time.Millisecond)
//	tester.Trace().MatchesFile(t, "testdata/bounce.trace.json")
//
// Update traces with:
//
//	EASELAB_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import easetest "github.com/go-drift/easelab/pkg/testing"
package testing
