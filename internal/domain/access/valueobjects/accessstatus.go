package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AccessStatus is the controlled vocabulary describing an object's
// effective access condition.
type AccessStatus string

const (
	StatusOpenAccess    AccessStatus = "openaccess"
	StatusEmbargo       AccessStatus = "embargo"
	StatusAdministrator AccessStatus = "administrator"
	StatusRestricted    AccessStatus = "restricted"
	// StatusMixed only results from aggregating several files.
	StatusMixed   AccessStatus = "mixed"
	StatusUnknown AccessStatus = "unknown"
)

var ValidStatuses = map[AccessStatus]bool{
	StatusOpenAccess:    true,
	StatusEmbargo:       true,
	StatusAdministrator: true,
	StatusRestricted:    true,
	StatusMixed:         true,
	StatusUnknown:       true,
}

func (s AccessStatus) String() string {
	return string(s)
}

func (s AccessStatus) IsValid() bool {
	return ValidStatuses[s]
}

// IsRestrictive reports whether the status keeps anonymous users away
// from the content right now.
func (s AccessStatus) IsRestrictive() bool {
	return s == StatusEmbargo || s == StatusAdministrator || s == StatusRestricted
}

// NormalizeLabel trims and lower-cases a policy name or metadata value.
func NormalizeLabel(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

// Classify maps a raw policy name or metadata value to the vocabulary.
// Unrecognized labels, custom ones included, are restricted. It never
// returns StatusMixed or StatusUnknown.
func Classify(raw string) AccessStatus {
	switch NormalizeLabel(raw) {
	case "openaccess":
		return StatusOpenAccess
	case "administrator":
		return StatusAdministrator
	case "embargo":
		return StatusEmbargo
	default:
		return StatusRestricted
	}
}
