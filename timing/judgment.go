package timing

import "fmt"

// Judgment is the terminal quality assigned to a note. The zero value means unresolved.
type Judgment uint8

const (
	None Judgment = iota
	Perfect
	Great
	Good
	Bad
	Miss
	// Auto substitutes for Bad when the caller's pass check fails, e.g. while watching a replay.
	Auto
)

var judgmentNames = [...]string{
	None:    "none",
	Perfect: "perfect",
	Great:   "great",
	Good:    "good",
	Bad:     "bad",
	Miss:    "miss",
	Auto:    "auto",
}

func (j Judgment) String() string {
	if int(j) < len(judgmentNames) {
		return judgmentNames[j]
	}
	return fmt.Sprintf("judgment(%d)", j)
}

// Resolved reports whether a judgment has been assigned.
func (j Judgment) Resolved() bool {
	return j != None
}

// KeepsCombo reports whether the judgment continues a combo.
func (j Judgment) KeepsCombo() bool {
	return j == Perfect || j == Great || j == Auto
}

// Judgments lists every resolved judgment, strictest first.
func Judgments() []Judgment {
	return []Judgment{Perfect, Great, Good, Bad, Miss, Auto}
}
