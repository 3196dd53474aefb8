package veciter

import (
	"slices"
	"testing"
)

func TestSliceAndCollect(t *testing.T) {
	items := []int{3, 1, 2}
	got := Collect(Slice(items))
	if !slices.Equal(got, items) {
		t.Fatalf("Collect(Slice()) = %v, want %v", got, items)
	}
}

func TestCount(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	if got, want := Count(Slice(items)), 4; got != want {
		t.Fatalf("Count() = %d, want %d", got, want)
	}
}

func TestMap(t *testing.T) {
	input := []int{1, 2, 3}
	got := Collect(Map(Slice(input), func(v int) int { return v * v }))
	want := []int{1, 4, 9}
	if !slices.Equal(got, want) {
		t.Fatalf("Map() = %v, want %v", got, want)
	}
}

func TestFilter(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}
	got := Collect(Filter(Slice(input), func(v int) bool { return v%2 == 0 }))
	want := []int{2, 4, 6}
	if !slices.Equal(got, want) {
		t.Fatalf("Filter() = %v, want %v", got, want)
	}
}

func TestPairs(t *testing.T) {
	input := []int{1, 2, 3, 4}
	var got [][2]int
	for a, b := range Pairs(Slice(input)) {
		got = append(got, [2]int{a, b})
	}
	want := [][2]int{{1, 2}, {2, 3}, {3, 4}}
	if !slices.Equal(got, want) {
		t.Fatalf("Pairs() = %v, want %v", got, want)
	}
}

func TestPairsShortSequences(t *testing.T) {
	for _, input := range [][]int{nil, {7}} {
		for range Pairs(Slice(input)) {
			t.Fatalf("Pairs(%v) yielded a pair, want none", input)
		}
	}
}

func TestRangeOverFuncEarlyStop(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}
	seq := Slice(input)

	sum := 0
	for item := range seq {
		sum += item
		if item == 3 {
			break
		}
	}

	if got, want := sum, 6; got != want {
		t.Fatalf("early stop sum = %d, want %d", got, want)
	}
}
