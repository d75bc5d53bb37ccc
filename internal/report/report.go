// Package report renders role assignments for humans and machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/Iron-Ham/adversarial-critique/internal/roles"
	"gopkg.in/yaml.v3"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ValidFormats returns the supported output formats.
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML)}
}

// ParseFormat validates a format name. Empty means text.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(s))
	if !slices.Contains(ValidFormats(), string(f)) {
		return "", fmt.Errorf("unknown output format %q (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
	return f, nil
}

// Report is the serializable view of a resolution.
type Report struct {
	Strategist string       `json:"strategist" yaml:"strategist"`
	Origin     roles.Origin `json:"origin" yaml:"origin"`
	Critics    []string     `json:"critics" yaml:"critics"`
	Judge      string       `json:"judge" yaml:"judge"`
	// Pair is empty when fewer than two critics are available.
	Pair []string `json:"pair,omitempty" yaml:"pair,omitempty"`
	// Families lists every participating family with the roles it plays,
	// strategist first.
	Families []FamilyRoles `json:"families" yaml:"families"`
}

// FamilyRoles is one family's row in a Report.
type FamilyRoles struct {
	Family string   `json:"family" yaml:"family"`
	Roles  []string `json:"roles" yaml:"roles"`
}

// New builds a Report, filling Pair when the assignment supports one.
func New(a roles.Assignment, origin roles.Origin) Report {
	r := Report{
		Strategist: a.Strategist,
		Origin:     origin,
		Critics:    slices.Clone(a.Critics),
		Judge:      a.Judge,
	}
	if first, second, err := roles.CriticPair(a); err == nil {
		r.Pair = []string{first, second}
	}
	for _, family := range a.Families() {
		var labels []string
		for _, role := range a.RolesOf(family) {
			labels = append(labels, role.Label())
		}
		r.Families = append(r.Families, FamilyRoles{Family: family, Roles: labels})
	}
	return r
}

// Renderer writes reports in a fixed format.
type Renderer struct {
	format  Format
	palette palette
}

// NewRenderer creates a Renderer. styled only affects FormatText.
func NewRenderer(format Format, styled bool) *Renderer {
	p := plainPalette()
	if styled {
		p = styledPalette()
	}
	return &Renderer{format: format, palette: p}
}

// Structured reports whether the renderer emits JSON or YAML.
func (rd *Renderer) Structured() bool {
	return rd.format == FormatJSON || rd.format == FormatYAML
}

// Render writes r to w.
func (rd *Renderer) Render(w io.Writer, r Report) error {
	switch rd.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := io.WriteString(w, rd.text(r)+"\n")
		return err
	}
}

func (rd *Renderer) text(r Report) string {
	p := rd.palette

	critics := make([]string, len(r.Critics))
	for i, c := range r.Critics {
		critics[i] = p.critic.Render(c)
	}

	lines := []string{
		p.title.Render("Adversarial critique roles"),
		"",
		p.label.Render("strategist") + p.strategist.Render(r.Strategist) + " " + p.muted.Render("("+string(r.Origin)+")"),
		p.label.Render("critics") + strings.Join(critics, ", "),
		p.label.Render("judge") + p.judge.Render(r.Judge) + " " + p.muted.Render("(isolated instance, grades critics only)"),
	}
	if len(r.Pair) == 2 {
		lines = append(lines, p.label.Render("pair")+p.critic.Render(r.Pair[0])+" vs "+p.critic.Render(r.Pair[1]))
	} else {
		lines = append(lines, p.label.Render("pair")+p.muted.Render("unavailable (need at least 2 critics)"))
	}

	if len(r.Families) > 0 {
		lines = append(lines, "", p.title.Render("By family"))
		for _, f := range r.Families {
			lines = append(lines, p.label.Render(f.Family)+strings.Join(f.Roles, ", "))
		}
	}

	return p.box.Render(strings.Join(lines, "\n"))
}

// RenderError writes a resolution error as text. Structured formats get
// {"error": ...} so scripts can detect failure without parsing prose.
func (rd *Renderer) RenderError(w io.Writer, err error) error {
	payload := map[string]string{"error": err.Error()}
	switch rd.format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case FormatYAML:
		out, mErr := yaml.Marshal(payload)
		if mErr != nil {
			return fmt.Errorf("failed to encode yaml: %w", mErr)
		}
		_, wErr := w.Write(out)
		return wErr
	default:
		_, wErr := io.WriteString(w, rd.palette.errorText.Render(err.Error())+"\n")
		return wErr
	}
}
