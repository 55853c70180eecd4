package crt

// NoRecordFound - Custom error to inform that no record was found for a key
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// Is - Matches any NoRecordFound regardless of message, so errors.Is(err, crt.NoRecordFound{}) works
// also for errors created with a custom message.
func (E NoRecordFound) Is(target error) bool {
	_, ok := target.(NoRecordFound)
	return ok
}

// NewNoRecordFound - Returns a NoRecordFound error carrying a custom message
func NewNoRecordFound(msg string) NoRecordFound {
	return NoRecordFound{msg: msg}
}

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	msg string
}

// Error - Used to notify that the collision resolution technique is unknown
func (U UnknownTechnique) Error() string {
	if U.msg == "" {
		return "unknown collision resolution technique"
	}
	return U.msg
}
