package pathops

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("path%d", i)
	}
	return ids
}

func TestChunkPartitionArithmetic(t *testing.T) {
	cases := []struct {
		total, max int
		sizes      []int
	}{
		{1050, 500, []int{500, 500, 50}},
		{1000, 500, []int{500, 500}},
		{3, 500, []int{3}},
		{500, 500, []int{500}},
		{5, 2, []int{2, 2, 1}},
		{5, 1, []int{1, 1, 1, 1, 1}},
		{0, 500, nil},
	}
	for _, tc := range cases {
		ids := makeIDs(tc.total)
		batches := Chunk(ids, tc.max)

		if len(batches) != len(tc.sizes) {
			t.Errorf("Chunk(%d, %d): got %d batches, want %d",
				tc.total, tc.max, len(batches), len(tc.sizes))
			continue
		}
		var rejoined []string
		for i, b := range batches {
			if len(b) != tc.sizes[i] {
				t.Errorf("Chunk(%d, %d): batch %d has size %d, want %d",
					tc.total, tc.max, i, len(b), tc.sizes[i])
			}
			rejoined = append(rejoined, b...)
		}
		if diff := cmp.Diff(ids, rejoined, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Chunk(%d, %d): batches do not rebuild the input (-want +got):\n%s",
				tc.total, tc.max, diff)
		}
	}
}

func TestChunkRejectsNonPositiveMax(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Chunk with max 0 should panic")
		}
	}()
	Chunk(makeIDs(3), 0)
}
