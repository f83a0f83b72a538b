package field

import "testing"

func TestHashDeterministic(t *testing.T) {
	for _, tc := range []struct{ x, z int }{{0, 0}, {-50, 50}, {250, -250}, {7, 13}} {
		a := Hash(tc.x, tc.z, OffsetDiversity, 42.5)
		b := Hash(tc.x, tc.z, OffsetDiversity, 42.5)
		if a != b {
			t.Errorf("Hash(%d, %d) not deterministic: %v vs %v", tc.x, tc.z, a, b)
		}
	}
}

func TestHashRange(t *testing.T) {
	for x := -40; x <= 40; x += 3 {
		for z := -40; z <= 40; z += 3 {
			v := Hash(x, z, OffsetPick, 17.25)
			if v < 0 || v >= 1 {
				t.Fatalf("Hash(%d, %d) = %v, want [0, 1)", x, z, v)
			}
		}
	}
}

func TestHashSeedChangesValues(t *testing.T) {
	same := 0
	total := 0
	for x := -20; x <= 20; x += 2 {
		for z := -20; z <= 20; z += 2 {
			total++
			if Hash(x, z, OffsetRare, 1.0) == Hash(x, z, OffsetRare, 2.0) {
				same++
			}
		}
	}
	// A different seed should move essentially every value.
	if same > total/10 {
		t.Errorf("%d of %d values unchanged across seeds", same, total)
	}
}

func TestHashRoughlyUniform(t *testing.T) {
	sum := 0.0
	n := 0
	for x := -50; x <= 50; x++ {
		for z := -50; z <= 50; z++ {
			sum += Hash(x, z, OffsetElevation, 3.75)
			n++
		}
	}
	mean := sum / float64(n)
	if mean < 0.4 || mean > 0.6 {
		t.Errorf("mean of %d draws = %v, want near 0.5", n, mean)
	}
}
