package model

// DefaultNearLimitPercent is the share of a limit above which a metric is
// shown as approaching that limit.
const DefaultNearLimitPercent = 80.0

// Status is the overall verdict for a tray evaluation.
type Status int

const (
	StatusOK                 Status = iota // Within structural and fill limits
	StatusNoCables                         // Nothing to evaluate
	StatusOverloaded                       // Structural and fill limits exceeded
	StatusStructuralOverload               // Structural limit exceeded
	StatusFillWarning                      // Area fill above the recommendation
)

func (s Status) String() string {
	switch s {
	case StatusNoCables:
		return "no cables defined"
	case StatusOverloaded:
		return "overloaded: structural + fill"
	case StatusStructuralOverload:
		return "overloaded: structural"
	case StatusFillWarning:
		return "warning: area fill above recommendation"
	default:
		return "ok"
	}
}

// Description returns the sentence used in reports and the status banner.
func (s Status) Description() string {
	switch s {
	case StatusNoCables:
		return "No cables defined."
	case StatusOverloaded:
		return "OVERLOADED: structural + fill limits exceeded"
	case StatusStructuralOverload:
		return "OVERLOADED: structural limit exceeded"
	case StatusFillWarning:
		return "WARNING: area fill above recommended limit"
	default:
		return "OK: within structural and fill limits"
	}
}

// Failing reports whether the status flags an exceeded limit.
func (s Status) Failing() bool {
	return s == StatusOverloaded || s == StatusStructuralOverload || s == StatusFillWarning
}

// Level grades a single metric for colour coding.
type Level int

const (
	LevelOK   Level = iota // Comfortably inside the limit
	LevelNear              // Inside the limit but above the near-limit share
	LevelOver              // Limit exceeded
)

func (l Level) String() string {
	switch l {
	case LevelNear:
		return "near"
	case LevelOver:
		return "over"
	default:
		return "ok"
	}
}

// Assessment is the decision derived from one TrayStats.
type Assessment struct {
	OverloadedStructural bool   `json:"overloaded_structural"`
	OverloadedArea       bool   `json:"overloaded_area"`
	Status               Status `json:"status"`
}

// Classify applies the status policy to a stats result. empty must be true
// when the evaluated cable list had no entries.
func Classify(stats TrayStats, empty bool) Assessment {
	a := Assessment{
		OverloadedStructural: stats.AllowableLoad > 0 && stats.TotalCableWeight > stats.AllowableLoad,
		OverloadedArea:       stats.AreaFillPercent > stats.RecommendedMaxAreaFillPercent,
	}

	switch {
	case empty:
		a.Status = StatusNoCables
	case a.OverloadedStructural && a.OverloadedArea:
		a.Status = StatusOverloaded
	case a.OverloadedStructural:
		a.Status = StatusStructuralOverload
	case a.OverloadedArea:
		a.Status = StatusFillWarning
	default:
		a.Status = StatusOK
	}
	return a
}

// StructuralLevel grades structural utilisation. nearLimit is a percentage
// of the allowable load.
func (a Assessment) StructuralLevel(stats TrayStats, nearLimit float64) Level {
	switch {
	case a.OverloadedStructural:
		return LevelOver
	case stats.StructuralUtilisationPercent < nearLimit:
		return LevelOK
	default:
		return LevelNear
	}
}

// FillLevel grades area fill. nearLimit is a percentage of the recommended
// maximum fill.
func (a Assessment) FillLevel(stats TrayStats, nearLimit float64) Level {
	switch {
	case a.OverloadedArea:
		return LevelOver
	case stats.AreaFillPercent < stats.RecommendedMaxAreaFillPercent*nearLimit/100.0:
		return LevelOK
	default:
		return LevelNear
	}
}
