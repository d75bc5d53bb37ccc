package roles

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrStrategistUnavailable matches a *ConfigurationError.
	ErrStrategistUnavailable = errors.New("strategist not available")
	// ErrInsufficientCritics matches an *InsufficientCriticsError.
	ErrInsufficientCritics = errors.New("insufficient critics")
)

// ConfigurationError is returned when the resolved strategist is not one of
// the available model families.
type ConfigurationError struct {
	Strategist string
	Available  []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"strategist model %q not in available models: %s. Add it to models.available or change the strategist.",
		e.Strategist, formatList(e.Available),
	)
}

// Is makes errors.Is(err, ErrStrategistUnavailable) succeed.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrStrategistUnavailable
}

// InsufficientCriticsError is returned when too few critic families remain
// after removing the strategist. Required is 1 when raised by Assign and 2
// when raised by CriticPair.
type InsufficientCriticsError struct {
	Strategist string
	// Available is the configured models list in its original order when
	// raised by Assign. CriticPair only sees the Assignment, so there it is
	// Assignment.Families(): the strategist first, then the critics.
	Available []string
	Critics   []string
	Required  int
}

func (e *InsufficientCriticsError) Error() string {
	if e.Required > 1 {
		return fmt.Sprintf("need at least %d critics for debate, got %d: %s",
			e.Required, len(e.Critics), formatList(e.Critics))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Only one model family configured (%s), so no critics are left once %q takes the strategist role.\n",
		formatList(e.Available), e.Strategist)
	sb.WriteString("Adversarial critique needs at least 2 different model families: one strategist and one or more critics.\n")
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Fix: keep %q and add at least one other model family to models.available in your config.\n", e.Strategist)
	fmt.Fprintf(&sb, "Tip: the strategist (%s) also judges, so it never critiques its own plan; every other family becomes a critic.", e.Strategist)
	return sb.String()
}

// Is makes errors.Is(err, ErrInsufficientCritics) succeed.
func (e *InsufficientCriticsError) Is(target error) bool {
	return target == ErrInsufficientCritics
}

func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
