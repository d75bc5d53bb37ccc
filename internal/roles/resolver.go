package roles

import (
	"github.com/Iron-Ham/adversarial-critique/internal/logging"
)

// Resolver binds an environment and a logger to role resolution.
// It holds no mutable state and may be shared between goroutines.
type Resolver struct {
	env    LookupFunc
	logger *logging.Logger
}

// NewResolver creates a Resolver. A nil env means no environment; a nil
// logger discards output.
func NewResolver(env LookupFunc, logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Resolver{
		env:    env,
		logger: logger.WithComponent("roles"),
	}
}

// Resolve assigns roles for src and reports where the strategist came from.
func (r *Resolver) Resolve(src Source) (Assignment, Origin, error) {
	strategist, origin := DetectStrategist(src, r.env)
	available := src.AvailableModels()

	a, err := assignFor(strategist, available)
	if err != nil {
		r.logger.Debug("role assignment failed",
			"strategist", strategist,
			"origin", string(origin),
			"available", available,
			"error", err.Error(),
		)
		return Assignment{}, origin, err
	}

	r.logger.Debug("roles assigned",
		"strategist", a.Strategist,
		"origin", string(origin),
		"critics", a.Critics,
		"judge", a.Judge,
	)
	return a, origin, nil
}

// Pair resolves roles for src and selects the critic pair.
func (r *Resolver) Pair(src Source) (Assignment, [2]string, error) {
	a, _, err := r.Resolve(src)
	if err != nil {
		return Assignment{}, [2]string{}, err
	}
	first, second, err := CriticPair(a)
	if err != nil {
		r.logger.Debug("critic pair unavailable", "critics", a.Critics, "error", err.Error())
		return a, [2]string{}, err
	}
	return a, [2]string{first, second}, nil
}
