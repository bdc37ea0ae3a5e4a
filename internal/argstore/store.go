package argstore

// occurrence is a single instance of a named option together with the
// argument tokens that followed it on the command line.
type occurrence struct {
	args []string
}

// optionSet is an ordered multi-value collection of option occurrences.
// Occurrences of the same name are never coalesced; they are kept in the
// order the option name appeared on the command line.
type optionSet struct {
	order  []string
	byName map[string][]*occurrence
}

func newOptionSet() *optionSet {
	return &optionSet{byName: map[string][]*occurrence{}}
}

// add starts a new occurrence of the given name and returns it so that
// subsequent tokens can be appended to its argument list.
func (s *optionSet) add(name string) *occurrence {
	if _, seen := s.byName[name]; !seen {
		s.order = append(s.order, name)
	}
	occ := &occurrence{}
	s.byName[name] = append(s.byName[name], occ)
	return occ
}

func (s *optionSet) count(name string) int {
	return len(s.byName[name])
}

// get returns the argument list of the ordinal-th occurrence of name.
// Ordinal addressing is a direct slice index, not a rescan.
func (s *optionSet) get(name string, ordinal int) ([]string, bool) {
	occs := s.byName[name]
	if ordinal < 0 || ordinal >= len(occs) {
		return nil, false
	}
	return occs[ordinal].args, true
}

// names returns the distinct option names in first-appearance order.
func (s *optionSet) names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Store is an ordered multi-value option store recovered from a raw
// argument vector. It holds single-dashed and double-dashed options
// separately, plus the bucket of top-level arguments that were not
// attached to any option. A Store knows nothing about option semantics;
// it is immutable once built.
type Store struct {
	single     *optionSet
	double     *optionSet
	positional []string
}

// Build tokenizes a raw argument vector into a Store. It walks the tokens
// one at a time, tracking the argument list of the most recently started
// option occurrence:
//
//   - an empty string, a lone "-" or any token not starting with "-" is an
//     argument of the current occurrence (or a top-level argument if no
//     occurrence is current);
//   - "-x" starts a new single-dashed occurrence named "x";
//   - a bare "--" resets the current occurrence, so following tokens become
//     top-level arguments until another option starts;
//   - "--name" starts a new double-dashed occurrence named "name";
//   - three or more leading dashes make the token a literal argument.
func Build(tokens []string) *Store {
	s := &Store{
		single: newOptionSet(),
		double: newOptionSet(),
	}

	var current *occurrence
	appendArg := func(arg string) {
		if current != nil {
			current.args = append(current.args, arg)
			return
		}
		s.positional = append(s.positional, arg)
	}

	for _, tok := range tokens {
		switch {
		case tok == "" || tok[0] != '-' || len(tok) == 1:
			appendArg(tok)
		case tok[1] != '-':
			current = s.single.add(tok[1:])
		case len(tok) == 2:
			current = nil
		case tok[2] != '-':
			current = s.double.add(tok[2:])
		default:
			appendArg(tok)
		}
	}

	return s
}

// CountSingle returns how many single-dashed occurrences of name were seen.
func (s *Store) CountSingle(name string) int {
	return s.single.count(name)
}

// CountDouble returns how many double-dashed occurrences of name were seen.
func (s *Store) CountDouble(name string) int {
	return s.double.count(name)
}

// Count returns the total occurrence count of name, single or double dashed.
func (s *Store) Count(name string) int {
	return s.CountSingle(name) + s.CountDouble(name)
}

// Single returns the argument list of the ordinal-th single-dashed
// occurrence of name. The second return is false when no such occurrence
// exists.
func (s *Store) Single(name string, ordinal int) ([]string, bool) {
	return s.single.get(name, ordinal)
}

// Double returns the argument list of the ordinal-th double-dashed
// occurrence of name. The second return is false when no such occurrence
// exists.
func (s *Store) Double(name string, ordinal int) ([]string, bool) {
	return s.double.get(name, ordinal)
}

// SingleNames returns the distinct single-dashed option names in
// first-appearance order.
func (s *Store) SingleNames() []string {
	return s.single.names()
}

// DoubleNames returns the distinct double-dashed option names in
// first-appearance order.
func (s *Store) DoubleNames() []string {
	return s.double.names()
}

// Positional returns the top-level arguments that were not attached to any
// option occurrence.
func (s *Store) Positional() []string {
	return s.positional
}
