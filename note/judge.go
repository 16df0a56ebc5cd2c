package note

import (
	"fmt"

	"github.com/robmorgan/judgeline/timing"
)

// resolve records the outcome and despawns the note. Each note resolves exactly once;
// callers gate on Despawned, so a second call is a programming error.
func (n *Note) resolve(r Result) {
	if n.despawn {
		panic(fmt.Sprintf("note: %v (handle %d) resolved twice", n.Kind, n.handle))
	}
	n.result = r
	n.despawn = true
}

func (n *Note) classify(err float64) timing.Judgment {
	pass := func() bool { return !n.level.WatchMode }
	return n.window.Classify(err, n.Kind.HasBadTier(), pass)
}

// judge grades a hit at the given raw time.
func (n *Note) judge(actual float64) {
	err := n.level.adjusted(actual) - n.Target
	n.resolve(Result{
		Judgment:    n.classify(err),
		Accuracy:    n.window.Bad.Clamp(err),
		PlayEffects: true,
	})
}

// judgeWrongWay grades a flick in the wrong direction: Perfect is capped to Great and the
// accuracy is pushed out to the nearest perfect boundary.
func (n *Note) judgeWrongWay(actual float64) {
	err := n.level.adjusted(actual) - n.Target
	j := n.classify(err)
	if j == timing.Perfect {
		j = timing.Great
	}
	acc := n.window.Bad.Clamp(err)
	if n.window.Perfect.Contains(acc) {
		if err < 0 {
			acc = n.window.Perfect.Start
		} else {
			acc = n.window.Perfect.End
		}
	}
	n.resolve(Result{Judgment: j, Accuracy: acc, PlayEffects: true, WrongWay: true})
}

func (n *Note) complete() {
	n.resolve(Result{Judgment: timing.Perfect, PlayEffects: true})
}

func (n *Note) completeSilent() {
	n.resolve(Result{Judgment: timing.Perfect})
}

func (n *Note) completeWrongWay() {
	n.resolve(Result{Judgment: timing.Great, Accuracy: n.window.Perfect.End, PlayEffects: true, WrongWay: true})
}

func (n *Note) fail(accuracy float64) {
	n.resolve(Result{Judgment: timing.Miss, Accuracy: accuracy, PlayEffects: true})
}

// failLate misses the note without hit effects.
func (n *Note) failLate(accuracy float64) {
	n.resolve(Result{Judgment: timing.Miss, Accuracy: accuracy})
}

// judgeBest resolves with the recorded best candidate.
func (n *Note) judgeBest() {
	if n.bestDirOK {
		n.judge(n.bestTime)
	} else {
		n.judgeWrongWay(n.bestTime)
	}
}
