// Package app provides the calculator's interaction state and events.
package app

import (
	"context"
	"log"
	"sync"

	"integral-calculator/internal/calculator"
)

// Kind selects an indefinite or a definite integral.
type Kind int

const (
	Indefinite Kind = iota
	Definite
)

func (k Kind) String() string {
	if k == Definite {
		return "Definite"
	}
	return "Indefinite"
}

// ParseKind is the inverse of Kind.String; unknown names are Indefinite.
func ParseKind(s string) Kind {
	if s == Definite.String() {
		return Definite
	}
	return Indefinite
}

// Operators are the button labels above the input, in display order.
var Operators = []string{"CLR", "+", "-", "×", "÷", "^", "√", "f(x)", "π", "(", ")"}

// OperatorClear empties the input.
const OperatorClear = "CLR"

// Examples are sample integrands offered by the Examples menu.
var Examples = []string{
	"x^2",
	"sin(x)*cos(x)",
	"x*exp(x)",
	"1/(x^2+1)",
	"tanh(x)",
	"x*log(x)",
	"exp(x)*sin(x)",
}

// Variables are the integration variables offered by the Options menu.
var Variables = []string{"x", "t", "u", "y"}

// State holds the input being edited, the integral settings and the last
// result.
type State struct {
	mu sync.RWMutex

	input    string
	kind     Kind
	lower    string
	upper    string
	variable string

	opts calculator.Options
	calc *calculator.Calculator

	result   *calculator.Result
	definite *calculator.DefiniteResult

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different application events.
type EventType int

const (
	EventInputChanged EventType = iota
	EventKindChanged
	EventBoundsChanged
	EventVariableChanged
	EventResultReady
	EventCalculationFailed
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a state that integrates with opts.
func NewState(opts calculator.Options) *State {
	calc := calculator.New(opts)
	return &State{
		variable:  calc.Variable(),
		opts:      opts,
		calc:      calc,
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

func (s *State) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input
}

// SetInput replaces the integrand text. Setting the same text is a no-op.
func (s *State) SetInput(text string) {
	s.mu.Lock()
	if s.input == text {
		s.mu.Unlock()
		return
	}
	s.input = text
	s.mu.Unlock()
	s.Emit(EventInputChanged, text)
}

// InsertOperator applies an operator button at rune offset cursor and
// returns the new cursor. CLR clears the input.
func (s *State) InsertOperator(op string, cursor int) int {
	if op == OperatorClear {
		s.SetInput("")
		return 0
	}
	rs := []rune(s.Input())
	cursor = max(0, min(cursor, len(rs)))
	text := string(rs[:cursor]) + op + string(rs[cursor:])
	s.SetInput(text)
	return cursor + len([]rune(op))
}

func (s *State) Kind() Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.kind
}

func (s *State) SetKind(k Kind) {
	s.mu.Lock()
	if s.kind == k {
		s.mu.Unlock()
		return
	}
	s.kind = k
	s.mu.Unlock()
	s.Emit(EventKindChanged, k)
}

// Bounds returns the lower and upper limits as typed.
func (s *State) Bounds() (lower, upper string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lower, s.upper
}

func (s *State) SetBounds(lower, upper string) {
	s.mu.Lock()
	if s.lower == lower && s.upper == upper {
		s.mu.Unlock()
		return
	}
	s.lower, s.upper = lower, upper
	s.mu.Unlock()
	s.Emit(EventBoundsChanged, [2]string{lower, upper})
}

func (s *State) Variable() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.variable
}

// SetVariable changes the integration variable. An empty name is ignored.
func (s *State) SetVariable(name string) {
	if name == "" {
		return
	}
	s.mu.Lock()
	if s.variable == name {
		s.mu.Unlock()
		return
	}
	s.opts.Variable = name
	s.calc = calculator.New(s.opts)
	s.variable = name
	s.mu.Unlock()
	log.Printf("Calculator: integration variable is now %s", name)
	s.Emit(EventVariableChanged, name)
}

// Result returns the last indefinite result, or nil.
func (s *State) Result() *calculator.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.result
}

// DefiniteResult returns the last definite result, or nil.
func (s *State) DefiniteResult() *calculator.DefiniteResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.definite
}

// Calculate integrates the current input according to the selected kind.
// It emits EventResultReady with a *calculator.Result or
// *calculator.DefiniteResult, or EventCalculationFailed with the error.
func (s *State) Calculate(ctx context.Context) error {
	s.mu.RLock()
	input, kind, lower, upper, calc := s.input, s.kind, s.lower, s.upper, s.calc
	s.mu.RUnlock()

	if kind == Definite {
		res, err := calc.Definite(ctx, input, lower, upper)
		if err != nil {
			return s.fail(input, err)
		}
		s.mu.Lock()
		s.result, s.definite = res.Result, res
		s.mu.Unlock()
		log.Printf("Calculator: %s = %s (%s)", input, res.Formatted(), res.Method)
		s.Emit(EventResultReady, res)
		return nil
	}

	res, err := calc.Integrate(ctx, input)
	if err != nil {
		return s.fail(input, err)
	}
	s.mu.Lock()
	s.result, s.definite = res, nil
	s.mu.Unlock()
	log.Printf("Calculator: %s -> %s (%s, %s)", input, res, res.Method, res.Verification)
	s.Emit(EventResultReady, res)
	return nil
}

func (s *State) fail(input string, err error) error {
	log.Printf("Calculator: %q failed: %v", input, err)
	s.Emit(EventCalculationFailed, err)
	return err
}
