package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, -5, 10, 10)
	if diff := cmp.Diff(NewRect(0, -5, 15, 15), a.Union(b)); diff != "" {
		t.Errorf("Union mismatch (-want +got):\n%s", diff)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(NewPoint2D(95, 30), 10, 10)
	assert.Equal(t, NewRect(90, 25, 10, 10), r)
	assert.Equal(t, 100.0, r.Right())
	assert.Equal(t, 35.0, r.Bottom())
}

func TestContainsRect(t *testing.T) {
	outer := NewSize(300, 200).Rect()
	assert.True(t, outer.ContainsRect(NewRect(10, 10, 50, 50)))
	assert.False(t, outer.ContainsRect(NewRect(280, 10, 50, 50)))
	assert.Equal(t, NewRect(2, 2, 296, 196), outer.Inset(2))
}
