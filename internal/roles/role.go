package roles

// Role identifies the part a model family plays in a debate.
type Role int

const (
	RoleStrategist Role = iota
	RoleCritic
	RoleJudge
)

// Label returns a lowercase label for the role.
func (r Role) Label() string {
	switch r {
	case RoleStrategist:
		return "strategist"
	case RoleCritic:
		return "critic"
	case RoleJudge:
		return "judge"
	default:
		return "unknown"
	}
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return r.Label()
}
