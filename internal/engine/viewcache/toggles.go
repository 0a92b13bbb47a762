package viewcache

import "go.trai.ch/starview/internal/core/domain"

func defaultToggles() [domain.NumPlotToggles]bool {
	var t [domain.NumPlotToggles]bool
	for i := range t {
		t[i] = true
	}
	t[domain.ToggleDomainAxisInversion] = false
	return t
}

// Toggle flips a plot display preference and returns its new state.
// Unknown toggles are ignored and report false.
func (c *Cache) Toggle(t domain.PlotToggle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if int(t) >= domain.NumPlotToggles {
		return false
	}
	c.toggles[t] = !c.toggles[t]
	return c.toggles[t]
}

// Enabled reports the state of a plot display preference.
func (c *Cache) Enabled(t domain.PlotToggle) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if int(t) >= domain.NumPlotToggles {
		return false
	}
	return c.toggles[t]
}
