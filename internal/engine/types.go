package engine

// Status is the mission lifecycle state. Transitions only move forward:
// needs -> progress -> cleaned.
type Status string

const (
	StatusNeeds    Status = "needs"
	StatusProgress Status = "progress"
	StatusCleaned  Status = "cleaned"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusNeeds, StatusProgress, StatusCleaned:
		return true
	default:
		return false
	}
}

// CanAdvanceTo reports whether next is the legal forward step from s.
// No backward or skip transitions exist.
func (s Status) CanAdvanceTo(next Status) bool {
	switch {
	case s == StatusNeeds && next == StatusProgress:
		return true
	case s == StatusProgress && next == StatusCleaned:
		return true
	default:
		return false
	}
}

type TrashType string

const (
	TrashTypeBags         TrashType = "bags"
	TrashTypeConstruction TrashType = "construction"
	TrashTypeIllegalDump  TrashType = "illegal_dump"
	TrashTypeMisc         TrashType = "misc"
)

func (t TrashType) IsValid() bool {
	switch t {
	case TrashTypeBags, TrashTypeConstruction, TrashTypeIllegalDump, TrashTypeMisc:
		return true
	default:
		return false
	}
}

// DefaultTrashType is used when user input is missing/invalid.
const DefaultTrashType TrashType = TrashTypeBags

// XP awarded per action. XPUpvoteBonus goes to the reporter when a
// mission's cheer count first reaches UpvoteBonusAt.
const (
	XPReport      = 5
	XPClaim       = 10
	XPComplete    = 25
	XPUpvoteBonus = 3
)

const UpvoteBonusAt = 5

// DailyReportLimit caps quest reports per user per calendar date.
const DailyReportLimit = 5
