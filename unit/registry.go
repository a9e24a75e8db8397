package unit

import "sync"

var registry = struct {
	sync.RWMutex
	bySI map[SICoefficients]*Unit
}{
	bySI: make(map[SICoefficients]*Unit),
}

func register(u *Unit) {
	registry.Lock()
	defer registry.Unlock()

	if _, ok := registry.bySI[u.si]; !ok {
		registry.bySI[u.si] = u
	}
}

// ForSI returns the canonical standard unit for c, creating an unnamed SI
// unit when none is registered. Equal coefficients always yield the same *Unit.
func ForSI(c SICoefficients) *Unit {
	registry.RLock()
	u, ok := registry.bySI[c]
	registry.RUnlock()
	if ok {
		return u
	}

	registry.Lock()
	defer registry.Unlock()

	if u, ok := registry.bySI[c]; ok {
		return u
	}
	symbol := c.String()
	u = &Unit{
		name:   symbol,
		symbol: symbol,
		scale:  1,
		si:     c,
	}
	registry.bySI[c] = u
	return u
}
