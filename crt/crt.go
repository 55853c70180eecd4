package crt

import (
	"fmt"
	"strings"
)

const (
	// SeparateChaining - Each bucket holds a chain of records, colliding keys are appended to the chain
	SeparateChaining = iota + 1
	// LinearProbing - Each bucket holds at most one record, colliding keys probe forward one bucket at a time
	LinearProbing
)

// Name - Returns the configuration name of a collision resolution technique
func Name(technique int) string {
	switch technique {
	case SeparateChaining:
		return "chaining"
	case LinearProbing:
		return "linear"
	default:
		return "unknown"
	}
}

// Parse - Returns the collision resolution technique given its configuration name.
// An empty name gives SeparateChaining.
func Parse(name string) (technique int, err error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "chaining", "separate-chaining", "separatechaining":
		technique = SeparateChaining
	case "linear", "linear-probing", "linearprobing":
		technique = LinearProbing
	default:
		err = UnknownTechnique{msg: fmt.Sprintf("unknown collision resolution technique %q, use chaining or linear", name)}
	}

	return
}
