package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// USNPattern matches a 10-character university serial number,
	// e.g. "4VV21CS042": uppercase letters and digits only.
	USNPattern = `^[A-Z0-9]{10}$`

	// Semester bounds for CIA exams
	SemesterMin = 1
	SemesterMax = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	USN *regexp.Regexp
}{
	USN: regexp.MustCompile(USNPattern),
}

// IsValidUSN reports whether usn is a well-formed university serial number.
// Lowercase input is accepted and normalized before matching.
func IsValidUSN(usn string) bool {
	return CompiledPatterns.USN.MatchString(strings.ToUpper(strings.TrimSpace(usn)))
}

// NormalizeUSN trims and uppercases a university serial number for storage.
func NormalizeUSN(usn string) string {
	return strings.ToUpper(strings.TrimSpace(usn))
}

// IsValidSemester reports whether semester falls in the CIA exam range.
func IsValidSemester(semester int) bool {
	return semester >= SemesterMin && semester <= SemesterMax
}

// IsValidName reports whether a person's name has an acceptable length.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
