package client

// Operation names a caller-visible use case
type Operation int

const (
	OpSearchVacancies Operation = iota + 1
	OpVacancyDetail
	OpIndustries
	OpAreas
	OpAreasByID
)

var allOperations = []Operation{OpSearchVacancies, OpVacancyDetail, OpIndustries, OpAreas, OpAreasByID}

func (o Operation) String() string {
	switch o {
	case OpSearchVacancies:
		return "search_vacancies"
	case OpVacancyDetail:
		return "vacancy_detail"
	case OpIndustries:
		return "industries"
	case OpAreas:
		return "areas"
	case OpAreasByID:
		return "areas_by_id"
	default:
		return "unknown"
	}
}

// Policy marks operations that must short-circuit to NetworkUnavailable when
// the probe reports no connectivity. The zero value checks nothing.
type Policy struct {
	checked map[Operation]bool
}

// DefaultPolicy checks search and detail only. Lookups skip the probe and
// go straight to the gateway.
// TODO: confirm with product whether lookups should be checked too and drop
// the asymmetry if so.
func DefaultPolicy() Policy {
	return Policy{}.With(OpSearchVacancies, true).With(OpVacancyDetail, true)
}

// StrictPolicy checks every operation
func StrictPolicy() Policy {
	p := Policy{}
	for _, op := range allOperations {
		p = p.With(op, true)
	}
	return p
}

// With returns a copy of p with op's flag set
func (p Policy) With(op Operation, checked bool) Policy {
	next := make(map[Operation]bool, len(p.checked)+1)
	for k, v := range p.checked {
		next[k] = v
	}
	next[op] = checked
	return Policy{checked: next}
}

// Checks reports whether op is connectivity-sensitive
func (p Policy) Checks(op Operation) bool {
	return p.checked[op]
}
