package kdtree

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/viant/kdtree/index"
	"github.com/viant/kdtree/index/bruteforce"
)

// buildPair fills a tree and a brute-force oracle with the same random
// points, uids 0..n-1.
func buildPair(t *testing.T, rng *rand.Rand, dims, n, spread int) (*Tree, *bruteforce.Index) {
	t.Helper()
	tr, err := New(dims)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	oracle, err := bruteforce.New(dims)
	if err != nil {
		t.Fatalf("bruteforce.New failed: %v", err)
	}
	for i := 0; i < n; i++ {
		c := randomCoords(rng, dims, spread)
		if ok, err := tr.Insert(c, int32(i), true); err != nil || !ok {
			t.Fatalf("Insert(%v) = %v, %v; want true, nil", c, ok, err)
		}
		if ok, err := oracle.Insert(c, int32(i), true); err != nil || !ok {
			t.Fatalf("oracle Insert(%v) = %v, %v; want true, nil", c, ok, err)
		}
	}
	return tr, oracle
}

// assertExactKNN checks a kNN result against the oracle's full ascending
// scan: same length, identical distance sequence, and every returned uid
// reported at its true distance. Equal-distance ties may order differently
// between the two implementations, so uids are checked by membership.
func assertExactKNN(t *testing.T, got, scan []index.Neighbor, k int) {
	t.Helper()
	want := scan
	if len(want) > k {
		want = want[:k]
	}
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors, want %d", len(got), len(want))
	}
	trueDist := make(map[int32]float64, len(scan))
	for _, n := range scan {
		trueDist[n.UID] = n.Distance
	}
	seen := make(map[int32]bool, len(got))
	for i, n := range got {
		if n.Distance != want[i].Distance {
			t.Fatalf("neighbor %d at squared distance %v, want %v", i, n.Distance, want[i].Distance)
		}
		if seen[n.UID] {
			t.Fatalf("uid %d returned twice", n.UID)
		}
		seen[n.UID] = true
		d, ok := trueDist[n.UID]
		if !ok || d != n.Distance {
			t.Fatalf("uid %d reported at %v, scan has %v (present: %v)", n.UID, n.Distance, d, ok)
		}
	}
}

func TestKNNAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tr, oracle := buildPair(t, rng, 3, 400, 100)
	for _, k := range []int{1, 3, 10, 50, 400} {
		for q := 0; q < 25; q++ {
			query := randomCoords(rng, 3, 100)
			got, err := tr.KNN(query, k, nil)
			if err != nil {
				t.Fatalf("KNN(%v, %d) failed: %v", query, k, err)
			}
			scan, err := oracle.KNN(query, oracle.Len(), nil)
			if err != nil {
				t.Fatalf("oracle KNN failed: %v", err)
			}
			assertExactKNN(t, got, scan, k)
		}
	}
}

func TestWithinAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	tr, oracle := buildPair(t, rng, 2, 300, 60)
	for _, radius := range []float64{0, 4.5, 15.3, 40, 200} {
		for q := 0; q < 25; q++ {
			query := randomCoords(rng, 2, 60)
			got, err := tr.Within(query, radius, nil)
			if err != nil {
				t.Fatalf("Within(%v, %v) failed: %v", query, radius, err)
			}
			want, err := oracle.Within(query, radius, nil)
			if err != nil {
				t.Fatalf("oracle Within failed: %v", err)
			}
			byDistUID := func(s []index.Neighbor) func(i, j int) bool {
				return func(i, j int) bool {
					if s[i].Distance != s[j].Distance {
						return s[i].Distance < s[j].Distance
					}
					return s[i].UID < s[j].UID
				}
			}
			gotSorted := append([]index.Neighbor(nil), got...)
			wantSorted := append([]index.Neighbor(nil), want...)
			sort.Slice(gotSorted, byDistUID(gotSorted))
			sort.Slice(wantSorted, byDistUID(wantSorted))
			if len(gotSorted) != len(wantSorted) {
				t.Fatalf("Within(%v, %v) found %d points, oracle found %d", query, radius, len(gotSorted), len(wantSorted))
			}
			for i := range gotSorted {
				if gotSorted[i] != wantSorted[i] {
					t.Fatalf("Within hit %d = %+v, oracle has %+v", i, gotSorted[i], wantSorted[i])
				}
			}
			// Ascending order of the returned slice itself.
			for i := 1; i < len(got); i++ {
				if got[i].Distance < got[i-1].Distance {
					t.Fatalf("Within result not ascending at %d: %+v", i, got)
				}
			}
		}
	}
}

func TestKNNSkip(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, c := range [][]float32{{0, 0}, {1, 0}, {0, 1}, {3, 3}} {
		if ok, err := tr.Insert(c, int32(i), false); err != nil || !ok {
			t.Fatalf("Insert(%v) = %v, %v; want true, nil", c, ok, err)
		}
	}
	// Neighbors of the stored point (0,0)/uid 0, excluding itself.
	skip := int32(0)
	got, err := tr.KNN([]float32{0, 0}, 2, &skip)
	if err != nil {
		t.Fatalf("KNN with skip failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("KNN with skip returned %d neighbors, want 2", len(got))
	}
	for _, n := range got {
		if n.UID == 0 {
			t.Fatalf("skipped uid 0 returned: %+v", got)
		}
		if n.Distance != 1 {
			t.Fatalf("neighbor %+v at squared distance %v, want 1", n, n.Distance)
		}
	}

	skip = 3
	within, err := tr.Within([]float32{3, 3}, 10, &skip)
	if err != nil {
		t.Fatalf("Within with skip failed: %v", err)
	}
	for _, n := range within {
		if n.UID == 3 {
			t.Fatalf("skipped uid 3 returned: %+v", within)
		}
	}
}

func TestKNNFewerThanK(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		if ok, err := tr.Insert([]float32{float32(i), 0}, int32(i), false); err != nil || !ok {
			t.Fatalf("Insert %d = %v, %v; want true, nil", i, ok, err)
		}
	}
	got, err := tr.KNN([]float32{0, 0}, 10, nil)
	if err != nil {
		t.Fatalf("KNN failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("KNN(k=10) over 3 points returned %d neighbors, want 3", len(got))
	}
}

func TestSearchEmptyTree(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if got, err := tr.KNN([]float32{0, 0}, 1, nil); err != nil || len(got) != 0 {
		t.Fatalf("KNN on empty tree = %+v, %v; want empty, nil", got, err)
	}
	if got, err := tr.Within([]float32{0, 0}, 5, nil); err != nil || len(got) != 0 {
		t.Fatalf("Within on empty tree = %+v, %v; want empty, nil", got, err)
	}
}

func TestKNNValidation(t *testing.T) {
	tr, err := New(2)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := tr.KNN([]float32{0, 0}, 0, nil); err == nil {
		t.Fatalf("KNN with k=0 succeeded, want error")
	}
	if _, err := tr.Within([]float32{0, 0}, -1, nil); err == nil {
		t.Fatalf("Within with negative radius succeeded, want error")
	}
}

func BenchmarkKNN(b *testing.B) {
	tr, err := New(3)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		c := []float32{rng.Float32() * 1000, rng.Float32() * 1000, rng.Float32() * 1000}
		if _, err := tr.Insert(c, int32(i), true); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
	tr.Optimize(LevelFull)
	query := []float32{500, 500, 500}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.KNN(query, 10, nil); err != nil {
			b.Fatalf("KNN failed: %v", err)
		}
	}
}

func BenchmarkWithin(b *testing.B) {
	tr, err := New(3)
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		c := []float32{rng.Float32() * 1000, rng.Float32() * 1000, rng.Float32() * 1000}
		if _, err := tr.Insert(c, int32(i), true); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
	query := []float32{500, 500, 500}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tr.Within(query, 50, nil); err != nil {
			b.Fatalf("Within failed: %v", err)
		}
	}
}
