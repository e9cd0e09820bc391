package diag

import "testing"

type aRanger struct {
	Ranging
}

func TestEmbeddingRangingImplementsRanger(t *testing.T) {
	r := Ranging{1, 10}
	s := Ranger(aRanger{Ranging{1, 10}})
	if s.Range() != r {
		t.Errorf("s.Range() = %v, want %v", s.Range(), r)
	}
}

func TestPointRanging(t *testing.T) {
	want := Ranging{3, 3}
	if got := PointRanging(3); got != want {
		t.Errorf("PointRanging(3) = %v, want %v", got, want)
	}
}

func TestMixedRanging(t *testing.T) {
	want := Ranging{1, 10}
	if got := MixedRanging(Ranging{1, 5}, Ranging{7, 10}); got != want {
		t.Errorf("MixedRanging(...) = %v, want %v", got, want)
	}
}
