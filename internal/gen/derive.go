package gen

import (
	"fmt"
	"strings"
)

// Derive is the set of optional capabilities generated for a record.
type Derive uint8

const (
	// DeriveClone generates Clone, ExtendWith, Resize and Slice.ToVec.
	DeriveClone Derive = 1 << iota
	// DeriveEqual generates Equal on the container and its slice view.
	DeriveEqual
	// DeriveDebug generates String on the container and its slice view.
	DeriveDebug
)

var deriveNames = []struct {
	name string
	flag Derive
}{
	{"Clone", DeriveClone},
	{"Equal", DeriveEqual},
	{"Debug", DeriveDebug},
}

// Has reports whether every flag in f is set in d.
func (d Derive) Has(f Derive) bool { return d&f == f }

func (d Derive) String() string {
	var names []string
	for _, dn := range deriveNames {
		if d.Has(dn.flag) {
			names = append(names, dn.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseDerive parses a comma or space separated list of capability names.
// Names are case-insensitive; "Debug" may also be spelled "String".
func ParseDerive(s string) (Derive, error) {
	var d Derive
	for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		f, err := parseDeriveName(tok)
		if err != nil {
			return 0, err
		}
		d |= f
	}
	return d, nil
}

// ParseDeriveList is ParseDerive for names that are already split.
func ParseDeriveList(names []string) (Derive, error) {
	var d Derive
	for _, n := range names {
		f, err := parseDeriveName(strings.TrimSpace(n))
		if err != nil {
			return 0, err
		}
		d |= f
	}
	return d, nil
}

func parseDeriveName(name string) (Derive, error) {
	if strings.EqualFold(name, "String") {
		return DeriveDebug, nil
	}
	for _, dn := range deriveNames {
		if strings.EqualFold(name, dn.name) {
			return dn.flag, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDerive, name)
}
