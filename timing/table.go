package timing

import (
	"fmt"

	"github.com/robmorgan/judgeline/kind"
)

type windowPair struct {
	normal   Window
	critical Window
}

// The table is built once and never mutated; notes copy the entry for their kind.
var windows = map[kind.WindowGroup]windowPair{
	kind.TapWindows: {
		normal:   Build(Sym(2.5), Sym(5), Sym(7.5), Pair(10, 7.5)),
		critical: Build(Sym(3.3), Sym(4.5), Sym(7.5), Pair(10, 7.5)),
	},
	kind.FlickWindows: {
		normal:   Build(Sym(2.5), Sym(6.5), Sym(7.5), nil),
		critical: Build(Sym(3.5), Sym(6.5), Sym(7.5), nil),
	},
	kind.TraceWindows: {
		normal:   Build(Sym(3.5), Sym(3.5), Sym(3.5), nil),
		critical: Build(Sym(3.5), Sym(3.5), Sym(3.5), nil),
	},
	kind.TraceFlickWindows: {
		normal:   Build(Pair(6.5, 7.5), Pair(6.5, 7.5), Pair(6.5, 7.5), nil),
		critical: Build(Pair(6.5, 7.5), Pair(6.5, 7.5), Pair(6.5, 7.5), nil),
	},
	kind.ReleaseWindows: {
		normal:   Build(Pair(2.5, 4), Pair(5, 8), Pair(7.5, 8.5), nil),
		critical: Build(Pair(3.3, 4.3), Pair(4.5, 7.5), Pair(7.5, 8.5), nil),
	},
	kind.TailFlickWindows: {
		normal:   Build(Pair(2.5, 4), Pair(6.5, 8), Pair(7.5, 8.5), nil),
		critical: Build(Pair(3.5, 4), Pair(6.5, 8), Pair(7.5, 8.5), nil),
	},
	kind.TickWindows: {
		normal:   Build(Sym(3.5), nil, nil, nil),
		critical: Build(Sym(3.5), nil, nil, nil),
	},
	kind.DamageWindows: {
		normal:   Build(Pair(0, 2), nil, nil, nil),
		critical: Build(Pair(0, 2), nil, nil, nil),
	},
	kind.AnchorWindows: {},
}

// ForKind returns the judgment window for a note kind.
func ForKind(k kind.Kind) Window {
	pair, ok := windows[k.Windows()]
	if !ok {
		panic(fmt.Sprintf("timing: no window for %v", k))
	}
	if k.Critical {
		return pair.critical
	}
	return pair.normal
}
