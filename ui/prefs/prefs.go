// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"integral-calculator/internal/app"
)

const (
	prefsDir  = "integral-calculator"
	prefsFile = "preferences.json"
)

// Preference keys.
const (
	KeyLastInput    = "lastInput"
	KeyKind         = "integralKind"
	KeyLowerBound   = "lowerBound"
	KeyUpperBound   = "upperBound"
	KeyVariable     = "variable"
	KeyWindowWidth  = "windowWidth"
	KeyWindowHeight = "windowHeight"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from the user config directory, e.g.
// ~/.config/integral-calculator/preferences.json.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return LoadFrom(filepath.Join(configDir, prefsDir, prefsFile))
}

// LoadFrom reads preferences from path. A missing or unreadable file
// yields empty preferences that will be written to path on Save.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		log.Printf("Prefs: ignoring %s: %v", path, err)
		p.values = make(map[string]interface{})
	}
	return p
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Restore applies the saved input, kind, bounds and variable to s.
func (p *Prefs) Restore(s *app.State) {
	s.SetVariable(p.String(KeyVariable))
	s.SetKind(app.ParseKind(p.String(KeyKind)))
	s.SetBounds(p.String(KeyLowerBound), p.String(KeyUpperBound))
	s.SetInput(p.String(KeyLastInput))
}

// Capture records the current state of s and reports whether anything
// differs from what was stored.
func (p *Prefs) Capture(s *app.State) bool {
	lower, upper := s.Bounds()
	next := map[string]string{
		KeyLastInput:  s.Input(),
		KeyKind:       s.Kind().String(),
		KeyLowerBound: lower,
		KeyUpperBound: upper,
		KeyVariable:   s.Variable(),
	}
	changed := false
	for k, v := range next {
		if p.String(k) != v {
			p.SetString(k, v)
			changed = true
		}
	}
	return changed
}
