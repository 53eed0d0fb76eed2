// Package testing provides helpers for testing scene widgets through their
// render trees.
//
// # Quick Start
//
// Wrap a widget in a tester, then find, tap and assert:
//
//	func TestOkPrompt(t *testing.T) {
//	    p := prompt.NewOkPrompt(prompt.OkConfig{Text: "Confirm?"})
//	    p.Show()
//	    st := scenetest.NewSceneTester(t, p)
//
//	    if err := st.Tap(scenetest.ByText("Ok")); err != nil {
//	        t.Fatal(err)
//	    }
//	    st.ExpectVisible(scenetest.ByText("Confirm?"))
//	}
//
// Finders such as [ByKey], [ByText] and [ByKind] can be combined with
// [Descendant] and restricted to displayed nodes with [Visible].
//
// # Time
//
// Attach a frame loop to the tester's [FakeClock] to drive timers:
//
//	st.Clock().Attach(loop)
//	st.Advance(3 * time.Second)
//
// # Snapshots
//
// Compare a render tree against a YAML golden file:
//
//	st.Snapshot().MatchesFile(t, "testdata/ok_prompt.yaml")
//
// Update golden files with:
//
//	SCENEUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import scenetest "github.com/go-drift/sceneui/pkg/testing"
package testing
