package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/calculator"
)

func TestInsertOperator(t *testing.T) {
	s := NewState(calculator.Options{})
	var events []string
	s.On(EventInputChanged, func(data interface{}) { events = append(events, data.(string)) })

	s.SetInput("x2")
	cur := s.InsertOperator("^", 1)
	assert.Equal(t, "x^2", s.Input())
	assert.Equal(t, 2, cur)

	cur = s.InsertOperator("π", 99)
	assert.Equal(t, "x^2π", s.Input())
	assert.Equal(t, 4, cur)

	cur = s.InsertOperator("f(x)", 0)
	assert.Equal(t, "f(x)x^2π", s.Input())
	assert.Equal(t, 4, cur)

	cur = s.InsertOperator(OperatorClear, 3)
	assert.Empty(t, s.Input())
	assert.Equal(t, 0, cur)

	assert.Equal(t, []string{"x2", "x^2", "x^2π", "f(x)x^2π", ""}, events)
}

func TestSettersEmitOnChange(t *testing.T) {
	s := NewState(calculator.Options{})
	counts := map[EventType]int{}
	for _, ev := range []EventType{EventKindChanged, EventBoundsChanged, EventVariableChanged} {
		ev := ev
		s.On(ev, func(interface{}) { counts[ev]++ })
	}

	s.SetKind(Definite)
	s.SetKind(Definite)
	s.SetBounds("0", "1")
	s.SetBounds("0", "1")
	s.SetVariable("t")
	s.SetVariable("")

	assert.Equal(t, 1, counts[EventKindChanged])
	assert.Equal(t, 1, counts[EventBoundsChanged])
	assert.Equal(t, 1, counts[EventVariableChanged])
	assert.Equal(t, Definite, s.Kind())
	assert.Equal(t, "t", s.Variable())
	lo, hi := s.Bounds()
	assert.Equal(t, [2]string{"0", "1"}, [2]string{lo, hi})
}

func TestKindNames(t *testing.T) {
	assert.Equal(t, Definite, ParseKind(Definite.String()))
	assert.Equal(t, Indefinite, ParseKind("bogus"))
}

func TestCalculateIndefinite(t *testing.T) {
	s := NewState(calculator.Options{})
	var got interface{}
	s.On(EventResultReady, func(data interface{}) { got = data })

	s.SetInput("x^2")
	require.NoError(t, s.Calculate(context.Background()))

	res, ok := got.(*calculator.Result)
	require.True(t, ok)
	assert.Equal(t, "x^3/3 + C", res.String())
	assert.Same(t, res, s.Result())
	assert.Nil(t, s.DefiniteResult())
}

func TestCalculateOtherVariable(t *testing.T) {
	s := NewState(calculator.Options{})
	s.SetVariable("t")
	s.SetInput("t^2")
	require.NoError(t, s.Calculate(context.Background()))
	assert.Equal(t, "t^3/3 + C", s.Result().String())
}

func TestCalculateDefinite(t *testing.T) {
	s := NewState(calculator.Options{})
	var got interface{}
	s.On(EventResultReady, func(data interface{}) { got = data })

	s.SetInput("x^2")
	s.SetKind(Definite)
	s.SetBounds("0", "2")
	require.NoError(t, s.Calculate(context.Background()))

	res, ok := got.(*calculator.DefiniteResult)
	require.True(t, ok)
	assert.Equal(t, "2.6667", res.Formatted())
	assert.Same(t, res, s.DefiniteResult())
}

func TestCalculateFailure(t *testing.T) {
	s := NewState(calculator.Options{})
	var failed error
	s.On(EventCalculationFailed, func(data interface{}) { failed = data.(error) })

	err := s.Calculate(context.Background())
	assert.ErrorIs(t, err, calculator.ErrEmptyInput)
	assert.ErrorIs(t, failed, calculator.ErrEmptyInput)

	s.SetInput("x")
	s.SetKind(Definite)
	err = s.Calculate(context.Background())
	assert.ErrorIs(t, err, calculator.ErrMissingBounds)
}
