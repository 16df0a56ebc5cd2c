package note

import (
	"fmt"
	"strings"

	"github.com/fogleman/ease"
)

// Ease is the interpolation curve of a slide segment.
type Ease uint8

const (
	Linear Ease = iota
	EaseIn
	EaseOut
	EaseInOut
)

var easeNames = map[string]Ease{
	"":       Linear,
	"linear": Linear,
	"in":     EaseIn,
	"out":    EaseOut,
	"in-out": EaseInOut,
}

// ParseEase maps a chart tag to an Ease.
func ParseEase(s string) (Ease, error) {
	if e, ok := easeNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return e, nil
	}
	return 0, fmt.Errorf("unknown ease %q", s)
}

// Func returns the easing function over [0, 1].
func (e Ease) Func() ease.Function {
	switch e {
	case Linear:
		return ease.Linear
	case EaseIn:
		return ease.InQuad
	case EaseOut:
		return ease.OutQuad
	case EaseInOut:
		return ease.InOutQuad
	default:
		panic(fmt.Sprintf("note: unhandled ease %d", e))
	}
}
