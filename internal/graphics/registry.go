package graphics

import "sort"

var registry = map[string]Component{
	"celestial-harmonies": CelestialHarmonies,
	"whispering-woods":    WhisperingWoods,
	"ephemeral-glyphs":    EphemeralGlyphs,
	"dreamscapes-ui":      DreamscapesUI,
	"hero":                HeroAnimation,
}

// Lookup returns the scene registered under name
func Lookup(name string) (Component, bool) {
	c, ok := registry[name]
	return c, ok
}

// Names returns every registered scene name, sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
