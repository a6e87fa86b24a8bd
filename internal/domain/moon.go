package domain

import (
	"math"
	"time"
)

// referenceNewMoon is a known new moon instant (2000-01-06 18:14 UTC)
// used as the epoch for phase calculation.
var referenceNewMoon = time.Date(2000, time.January, 6, 18, 14, 0, 0, time.UTC)

// synodicMonth is the mean length of one lunation, in days.
const synodicMonth = 29.53058867

// MoonPhase is the lunar context computed for a single request.
type MoonPhase struct {
	PhaseName    string  `json:"phase_name"`
	Illumination float64 `json:"illumination"`
	Influence    string  `json:"influence"`
}

// phaseBucket names the slice of the lunation below an upper bound (in days).
type phaseBucket struct {
	upTo      float64
	name      string
	influence string
}

// Buckets partition [0, synodicMonth) contiguously; the tail past the
// last bound wraps back to New Moon.
var phaseBuckets = []phaseBucket{
	{1.84566, "New Moon", "Seeds, introspection, beginnings."},
	{5.53699, "Waxing Crescent", "Intentions, gentle momentum."},
	{9.22831, "First Quarter", "Action, decisions, friction becomes fuel."},
	{12.91963, "Waxing Gibbous", "Refinement, adjustment, anticipation."},
	{16.61096, "Full Moon", "Culmination, illumination, vivid recall."},
	{20.30228, "Waning Gibbous", "Integration, gratitude, sharing."},
	{23.99361, "Last Quarter", "Release, reevaluation, boundaries."},
	{27.68493, "Waning Crescent", "Rest, closure, surrender."},
}

// MoonPhaseAt computes the lunar phase for t. Pure function: the result
// depends only on t, never on the wall clock.
func MoonPhaseAt(t time.Time) MoonPhase {
	days := t.Sub(referenceNewMoon).Hours() / 24
	phase := math.Mod(days, synodicMonth)
	if phase < 0 {
		phase += synodicMonth
	}

	mp := MoonPhase{
		PhaseName: "New Moon",
		Influence: "Seeds, introspection, beginnings.",
	}
	for _, b := range phaseBuckets {
		if phase < b.upTo {
			mp.PhaseName = b.name
			mp.Influence = b.influence
			break
		}
	}

	illum := (1 - math.Cos(2*math.Pi*phase/synodicMonth)) / 2
	mp.Illumination = math.Round(illum*1000) / 10

	return mp
}
