package input

// Arbiter resolves touch contention between notes.
//
// A touch id is claimed by at most one tap-seeking note and at most one release-seeking note;
// the first registrant wins, so callers must register in spawn order. The not-empty marks are
// advisory and order independent; they only suppress stage-level empty touch effects.
type Arbiter struct {
	tapClaims     map[int]int
	releaseClaims map[int]int
	notEmpty      map[int]struct{}
}

func NewArbiter() *Arbiter {
	return &Arbiter{
		tapClaims:     make(map[int]int),
		releaseClaims: make(map[int]int),
		notEmpty:      make(map[int]struct{}),
	}
}

// ClaimTap registers claimant for a freshly started touch. It returns false if another claimant
// already owns the touch.
func (a *Arbiter) ClaimTap(touchID, claimant int) bool {
	return claim(a.tapClaims, touchID, claimant)
}

// ClaimRelease registers claimant for a touch that ended.
func (a *Arbiter) ClaimRelease(touchID, claimant int) bool {
	return claim(a.releaseClaims, touchID, claimant)
}

func claim(claims map[int]int, touchID, claimant int) bool {
	if owner, ok := claims[touchID]; ok {
		return owner == claimant
	}
	claims[touchID] = claimant
	return true
}

// TapClaimant returns the note that claimed the touch for tap input.
func (a *Arbiter) TapClaimant(touchID int) (int, bool) {
	owner, ok := a.tapClaims[touchID]
	return owner, ok
}

// ReleaseClaimant returns the note that claimed the touch for release input.
func (a *Arbiter) ReleaseClaimant(touchID int) (int, bool) {
	owner, ok := a.releaseClaims[touchID]
	return owner, ok
}

// MarkNotEmpty records that the touch landed on a note this frame.
func (a *Arbiter) MarkNotEmpty(touchID int) {
	a.notEmpty[touchID] = struct{}{}
}

// IsEmpty reports whether no note marked the touch this frame.
func (a *Arbiter) IsEmpty(touchID int) bool {
	_, ok := a.notEmpty[touchID]
	return !ok
}

// EndFrame drops the per-frame marks and forgets claims on touches that ended this frame.
func (a *Arbiter) EndFrame(f *Frame) {
	for id := range a.notEmpty {
		delete(a.notEmpty, id)
	}
	for _, t := range f.Touches {
		if t.Ended {
			delete(a.tapClaims, t.ID)
			delete(a.releaseClaims, t.ID)
		}
	}
}
