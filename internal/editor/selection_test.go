package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectReplaceAndToggle(t *testing.T) {
	var s Selection
	s.Select("a", false)
	assert.Equal(t, []string{"a"}, s.IDs())

	s.Select("b", false)
	assert.Equal(t, []string{"b"}, s.IDs())

	s.Select("a", true)
	assert.Equal(t, []string{"b", "a"}, s.IDs())

	s.Select("b", true)
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestSelectKeepsGroupWhenClickingMember(t *testing.T) {
	var s Selection
	s.SelectAll([]string{"a", "b", "c"})
	s.Select("b", false)
	assert.Equal(t, []string{"a", "b", "c"}, s.IDs())

	s.Select("d", false)
	assert.Equal(t, []string{"d"}, s.IDs())
}

func TestSelectAllDedupes(t *testing.T) {
	var s Selection
	s.SelectAll([]string{"a", "a", "b"})
	assert.Equal(t, 2, s.Len())
	s.Clear()
	assert.Equal(t, 0, s.Len())
}

func TestMarqueeContainment(t *testing.T) {
	els := []Element{
		{ID: "inside", X: 20, Y: 20, W: 10, H: 10},
		{ID: "outside", X: 200, Y: 200, W: 10, H: 10},
		{ID: "touch-right", X: 100, Y: 20, W: 10, H: 10},
		{ID: "touch-bottom", X: 20, Y: 100, W: 10, H: 10},
		{ID: "touch-left", X: -10, Y: 20, W: 10, H: 10},
		{ID: "partial", X: 90, Y: 90, W: 50, H: 50},
	}
	var s Selection
	s.MarqueeSelect(els, RectFrom(100, 100, 0, 0), false)
	assert.ElementsMatch(t, []string{"inside", "partial"}, s.IDs())
}

func TestMarqueeAdditiveUnion(t *testing.T) {
	els := []Element{
		{ID: "a", X: 0, Y: 0, W: 10, H: 10},
		{ID: "b", X: 50, Y: 0, W: 10, H: 10},
	}
	var s Selection
	s.Set([]string{"b", "x"})
	s.MarqueeSelect(els, RectFrom(-5, -5, 60, 5), true)
	assert.Equal(t, []string{"b", "x", "a"}, s.IDs())

	s.MarqueeSelect(els, RectFrom(-5, -5, 5, 5), false)
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestMarqueeClickIsNoop(t *testing.T) {
	els := []Element{{ID: "a", X: 0, Y: 0, W: 10, H: 10}}
	var s Selection
	s.Set([]string{"z"})
	s.MarqueeSelect(els, RectFrom(1, 1, 3, 3), false)
	assert.Equal(t, []string{"z"}, s.IDs())

	// One side over the threshold is a real box.
	s.MarqueeSelect(els, RectFrom(1, 1, 4, 2), false)
	assert.Equal(t, []string{"a"}, s.IDs())
}

func TestPrune(t *testing.T) {
	var s Selection
	s.Set([]string{"a", "b", "c"})
	s.Prune(func(id string) bool { return id != "b" })
	assert.Equal(t, []string{"a", "c"}, s.IDs())
}
