package svg

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDocumentOrderIndependentOfSelectionOrder(t *testing.T) {
	doc := parseTestDoc(t)

	// Document preorder of these ids is a, b, star, t1, c.
	want := []string{"a", "b", "star", "t1", "c"}

	selections := [][]string{
		{"c", "a", "star", "t1", "b"},
		{"b", "c", "a", "t1", "star"},
		{"a", "b", "star", "t1", "c"},
	}
	for _, sel := range selections {
		got := DocumentOrder(doc.Root, sel)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("selection %v: order mismatch (-want +got):\n%s", sel, diff)
		}
	}
}

func TestDocumentOrderDropsUnknownIDs(t *testing.T) {
	doc := parseTestDoc(t)

	got := DocumentOrder(doc.Root, []string{"a", "nope", "c"})
	if diff := cmp.Diff([]string{"a", "c"}, got); diff != "" {
		t.Errorf("unknown ids should be dropped (-want +got):\n%s", diff)
	}
}

func TestSplitTop(t *testing.T) {
	doc := parseTestDoc(t)

	// Selection [c, a, b] against preorder a, b, c.
	top, operands, err := SplitTop(doc.Root, []string{"c", "a", "b"})
	if err != nil {
		t.Fatalf("SplitTop failed: %v", err)
	}
	if top != "c" {
		t.Errorf("Expected top 'c', got %q", top)
	}
	if diff := cmp.Diff([]string{"a", "b"}, operands); diff != "" {
		t.Errorf("operand mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitTopTooFew(t *testing.T) {
	doc := parseTestDoc(t)

	for _, ids := range [][]string{nil, {"a"}, {"a", "missing"}} {
		_, _, err := SplitTop(doc.Root, ids)
		if !errors.Is(err, ErrTooFewOperands) {
			t.Errorf("ids %v: expected ErrTooFewOperands, got %v", ids, err)
		}
	}
}

func TestDocumentOrderScatteredAcrossGroups(t *testing.T) {
	// A deeper document than the shared fixture, with operable
	// elements scattered across nesting levels.
	var sb strings.Builder
	sb.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" id="root">`)
	var want []string
	for g := 0; g < 5; g++ {
		fmt.Fprintf(&sb, `<g id="g%d">`, g)
		for p := 0; p < 20; p++ {
			id := fmt.Sprintf("p%d_%d", g, p)
			fmt.Fprintf(&sb, `<path id=%q d="M 0,0"/>`, id)
			want = append(want, id)
		}
		sb.WriteString(`</g>`)
	}
	sb.WriteString(`</svg>`)

	doc, err := Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	shuffled := append([]string(nil), want...)
	rand.New(rand.NewSource(1)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	got := DocumentOrder(doc.Root, shuffled)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("scattered order mismatch (-want +got):\n%s", diff)
	}
}
