package engine

import "strings"

// ParseTrashType parses user input to a TrashType.
// Supported: bags, construction, illegal_dump, misc (plus a few aliases).
// If input is empty or unrecognized, returns DefaultTrashType.
func ParseTrashType(input string) TrashType {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultTrashType
	case "bags", "bag":
		return TrashTypeBags
	case "construction", "rubble":
		return TrashTypeConstruction
	case "illegal_dump", "illegal-dump", "dump":
		return TrashTypeIllegalDump
	case "misc", "other":
		return TrashTypeMisc
	default:
		return DefaultTrashType
	}
}

// ParseStatus parses a stored or user-supplied mission status.
func ParseStatus(input string) (Status, bool) {
	s := Status(strings.TrimSpace(strings.ToLower(input)))
	if !s.IsValid() {
		return "", false
	}
	return s, true
}
