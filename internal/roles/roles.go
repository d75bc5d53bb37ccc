// Package roles resolves which model family plays which part in an
// adversarial critique session.
//
// The strategist proposes and defends a plan, every other available family
// critiques it, and the judge scores the critics' arguments. The judge is
// always the strategist's family, run by the caller as an isolated instance
// with no memory of authoring the plan. It grades the critique exchange,
// never the plan itself.
package roles

import (
	"os"
	"slices"
	"strings"
)

// EnvStrategist is the environment variable consulted when the configuration
// does not name a strategist.
const EnvStrategist = "ADVERSARIAL_CRITIQUE_STRATEGIST"

// DefaultStrategist is used when neither the configuration nor the
// environment names a strategist.
const DefaultStrategist = "claude"

// Source is the configuration consumed by the resolver.
type Source interface {
	// AvailableModels returns the configured model families in priority order.
	AvailableModels() []string
	// StrategistOverride returns the explicitly configured strategist, or "".
	StrategistOverride() string
}

// LookupFunc reads a single environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// OSLookup reads the process environment.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

// Origin records which rule produced the strategist.
type Origin string

const (
	OriginConfig  Origin = "config"
	OriginEnv     Origin = "env"
	OriginDefault Origin = "default"
)

// Assignment is the resolved set of roles for one debate.
type Assignment struct {
	Strategist string   `json:"strategist" yaml:"strategist"`
	Critics    []string `json:"critics" yaml:"critics"`
	Judge      string   `json:"judge" yaml:"judge"`
}

// DetectStrategistFamily returns the model family acting as strategist.
// A nil env behaves like an empty environment.
func DetectStrategistFamily(src Source, env LookupFunc) string {
	family, _ := DetectStrategist(src, env)
	return family
}

// DetectStrategist is DetectStrategistFamily that also reports which rule
// matched. Priority: config override, then EnvStrategist (lowercased), then
// DefaultStrategist.
func DetectStrategist(src Source, env LookupFunc) (string, Origin) {
	if override := src.StrategistOverride(); override != "" {
		return override, OriginConfig
	}

	if env != nil {
		if v, ok := env(EnvStrategist); ok && v != "" {
			return strings.ToLower(v), OriginEnv
		}
	}

	return DefaultStrategist, OriginDefault
}

// Assign resolves the strategist and derives critics and judge from the
// available model families.
//
// It returns a *ConfigurationError when the strategist is not available and
// an *InsufficientCriticsError when the strategist is the only family.
func Assign(src Source, env LookupFunc) (Assignment, error) {
	strategist := DetectStrategistFamily(src, env)
	return assignFor(strategist, src.AvailableModels())
}

func assignFor(strategist string, available []string) (Assignment, error) {
	if !slices.Contains(available, strategist) {
		return Assignment{}, &ConfigurationError{
			Strategist: strategist,
			Available:  slices.Clone(available),
		}
	}

	critics := make([]string, 0, len(available)-1)
	for _, family := range available {
		if family != strategist {
			critics = append(critics, family)
		}
	}

	if len(critics) < 1 {
		return Assignment{}, &InsufficientCriticsError{
			Strategist: strategist,
			Available:  slices.Clone(available),
			Critics:    critics,
			Required:   1,
		}
	}

	return Assignment{
		Strategist: strategist,
		Critics:    critics,
		Judge:      strategist,
	}, nil
}

// CriticPair returns the first two critics, in order, for a two-party debate.
// The pair follows the order of the available models list.
func CriticPair(a Assignment) (string, string, error) {
	if len(a.Critics) < 2 {
		return "", "", &InsufficientCriticsError{
			Strategist: a.Strategist,
			Available:  a.Families(),
			Critics:    slices.Clone(a.Critics),
			Required:   2,
		}
	}
	return a.Critics[0], a.Critics[1], nil
}

// Families returns the strategist followed by the critics.
func (a Assignment) Families() []string {
	families := make([]string, 0, len(a.Critics)+1)
	if a.Strategist != "" {
		families = append(families, a.Strategist)
	}
	return append(families, a.Critics...)
}

// RolesOf reports every role the given family plays in the assignment.
func (a Assignment) RolesOf(family string) []Role {
	var out []Role
	if family == a.Strategist {
		out = append(out, RoleStrategist)
	}
	if slices.Contains(a.Critics, family) {
		out = append(out, RoleCritic)
	}
	if family == a.Judge {
		out = append(out, RoleJudge)
	}
	return out
}

// Equal reports whether two assignments name the same families in the same order.
func (a Assignment) Equal(b Assignment) bool {
	return a.Strategist == b.Strategist &&
		a.Judge == b.Judge &&
		slices.Equal(a.Critics, b.Critics)
}
