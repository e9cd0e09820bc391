package tt

import (
	"fmt"
	"strings"
	"testing"
)

// testT implements the T interface and is used to verify the error messages
// written by testInner.
type testT []string

func (t *testT) Helper() {}

func (t *testT) Errorf(format string, args ...any) {
	*t = append(*t, fmt.Sprintf(format, args...))
}

// Simple functions to test.

func add(x, y int) int {
	return x + y
}

func addsub(x int, y int) (int, int) {
	return x + y, x - y
}

func TestPass(t *testing.T) {
	var testT testT
	testInner(&testT, addsub,
		Args(1, 10).Rets(11, -9),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestPassWithAnyMatcher(t *testing.T) {
	var testT testT
	testInner(&testT, addsub,
		Args(1, 10).Rets(Any, Any),
	)
	if len(testT) > 0 {
		t.Errorf("Test errors when test should pass")
	}
}

func TestFailOneReturn(t *testing.T) {
	var testT testT
	testInner(&testT, add,
		Args(1, 10).Rets(12),
	)
	assertOneError(t, testT, "add(1, 10) returns (-Wanted +Actual):\n")
}

func TestFailMultiReturn(t *testing.T) {
	var testT testT
	testInner(&testT, addsub,
		Args(1, 10).Rets(11, -90),
	)
	assertOneError(t, testT, "addsub(1, 10) returns (-Wanted +Actual):\n")
}

func assertOneError(t *testing.T, testT testT, wantPrefix string) {
	t.Helper()
	switch len(testT) {
	case 0:
		t.Errorf("Test didn't error when it should have done so")
	case 1:
		if !strings.HasPrefix(testT[0], wantPrefix) {
			t.Errorf("Test wrote message:\nWanted: %q...\nActual: %q", wantPrefix, testT[0])
		}
	default:
		t.Errorf("Test wrote too many error messages")
	}
}
