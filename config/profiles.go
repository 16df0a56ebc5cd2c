package config

import (
	"fmt"
	"sort"
)

// profiles are named presets layered over the defaults.
var profiles = map[string]func(*Options){
	"standard": func(*Options) {},
	"practice": func(o *Options) {
		o.NoteSpeed = 6
		o.AutoSFX = true
	},
	"watch": func(o *Options) {
		o.WatchMode = true
		o.AutoSFX = true
	},
	"hidden": func(o *Options) {
		o.StageCover = 0.2
		o.Hidden = 0.3
	},
}

// Profile returns the defaults with a named preset applied.
func Profile(name string) (Options, error) {
	apply, ok := profiles[name]
	if !ok {
		return Options{}, ValidationError{Field: "profile", Reason: fmt.Sprintf("unknown profile %q", name)}
	}
	opts := NewOptions()
	apply(&opts)
	return opts, nil
}

// ProfileNames lists the built-in presets in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
