package gamearena

import (
	"slices"
	"testing"

	"github.com/gogpu/gg"
)

type stubDrawable struct {
	layer int
}

func (s *stubDrawable) Layer() int          { return s.layer }
func (s *stubDrawable) Draw(dc *gg.Context) {}

type insertCase struct {
	Layers []int
	Want   []int
}

var insertTests = []insertCase{
	{
		Layers: []int{3, 1, 2, 1},
		Want:   []int{1, 1, 2, 3},
	},
	{
		Layers: []int{},
		Want:   []int{},
	},
	{
		Layers: []int{5},
		Want:   []int{5},
	},
	{
		Layers: []int{1, 2, 3},
		Want:   []int{1, 2, 3},
	},
	{
		Layers: []int{3, 2, 1},
		Want:   []int{1, 2, 3},
	},
	{
		Layers: []int{2, 2, 2},
		Want:   []int{2, 2, 2},
	},
	{
		Layers: []int{0, -1, 7, 0, -1},
		Want:   []int{-1, -1, 0, 0, 7},
	},
}

func TestInsertKeepsLayerOrder(t *testing.T) {
	for _, test := range insertTests {
		var list drawList
		for _, layer := range test.Layers {
			list.insert(&stubDrawable{layer: layer})
		}
		got := make([]int, 0, list.len())
		for _, d := range list.items {
			got = append(got, d.Layer())
		}
		if !slices.Equal(got, test.Want) {
			t.Errorf("inserting layers %v: got order %v, want %v", test.Layers, got, test.Want)
		}
	}
}

// Drawables on the same layer must keep their arrival order, so newer
// ones paint over older ones.
func TestInsertTiesKeepArrivalOrder(t *testing.T) {
	a := &stubDrawable{layer: 1}
	b := &stubDrawable{layer: 1}
	c := &stubDrawable{layer: 1}
	under := &stubDrawable{layer: 0}
	over := &stubDrawable{layer: 2}

	var list drawList
	list.insert(a)
	list.insert(b)
	list.insert(over)
	list.insert(c)
	list.insert(under)

	want := []Drawable{under, a, b, c, over}
	if list.len() != len(want) {
		t.Fatalf("got %d items, want %d", list.len(), len(want))
	}
	for i := range want {
		if list.items[i] != want[i] {
			t.Errorf("position %d holds the wrong drawable", i)
		}
	}
}

func TestRemoveKeepsOrder(t *testing.T) {
	items := []*stubDrawable{
		{layer: 1}, {layer: 2}, {layer: 3}, {layer: 4},
	}
	var list drawList
	for _, d := range items {
		list.insert(d)
	}

	list.remove(items[1])

	want := []Drawable{items[0], items[2], items[3]}
	if list.len() != len(want) {
		t.Fatalf("got %d items, want %d", list.len(), len(want))
	}
	for i := range want {
		if list.items[i] != want[i] {
			t.Errorf("position %d holds the wrong drawable after remove", i)
		}
	}
}

func TestRemoveAbsentIsNoOp(t *testing.T) {
	var list drawList
	list.insert(&stubDrawable{layer: 1})
	list.remove(&stubDrawable{layer: 1})
	if list.len() != 1 {
		t.Errorf("removing an absent drawable changed the list, len = %d", list.len())
	}
}

func TestRemoveDropsFirstOccurrenceOnly(t *testing.T) {
	x := &stubDrawable{layer: 1}
	var list drawList
	list.insert(x)
	list.insert(x)
	list.remove(x)
	if list.len() != 1 {
		t.Errorf("got %d items, want 1", list.len())
	}
}

func TestClear(t *testing.T) {
	var list drawList
	for i := 0; i < 3; i++ {
		list.insert(&stubDrawable{layer: i})
	}
	list.clear()
	if list.len() != 0 {
		t.Errorf("got %d items after clear, want 0", list.len())
	}
	list.clear()
	if list.len() != 0 {
		t.Errorf("clearing an empty list changed it, len = %d", list.len())
	}
}
