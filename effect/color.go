package effect

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/robmorgan/judgeline/timing"
)

var judgmentHex = map[timing.Judgment]string{
	timing.Perfect: "#ffd447",
	timing.Great:   "#ff6ad5",
	timing.Good:    "#4fc3f7",
	timing.Bad:     "#66bb6a",
	timing.Miss:    "#9e9e9e",
	timing.Auto:    "#b39ddb",
}

var judgmentColors = func() map[timing.Judgment]colorful.Color {
	m := make(map[timing.Judgment]colorful.Color, len(judgmentHex))
	for j, hex := range judgmentHex {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		m[j] = c
	}
	return m
}()

var white = colorful.Color{R: 1, G: 1, B: 1}

// JudgmentColor returns the display colour of a judgment. Unresolved judgments are white.
func JudgmentColor(j timing.Judgment) colorful.Color {
	if c, ok := judgmentColors[j]; ok {
		return c
	}
	return white
}

// AccuracyColor fades the judgment colour towards white as the error approaches zero, over
// a span of spread seconds.
func AccuracyColor(j timing.Judgment, accuracy, spread float64) colorful.Color {
	c := JudgmentColor(j)
	if spread <= 0 {
		return c
	}
	t := math.Min(math.Abs(accuracy)/spread, 1)
	return white.BlendLab(c, t).Clamped()
}
