// Package wizard is the legacy step-by-step selection flow: a fixed linear
// sequence of questions. Unlike the old implementation it keeps no
// server-side session; the full {step, filters} state travels with every
// request and each submission produces a new state value.
package wizard

import (
	"fmt"

	"github.com/hydroshield/specbuilder-backend/internal/catalog"
	"github.com/hydroshield/specbuilder-backend/internal/selection"
)

// Step indexes the fixed wizard sequence.
type Step int

const (
	StepSystem Step = iota
	StepArea
	StepType
	StepSubstrate
	StepMembrane
	StepInsulation
	StepExposure
	StepInstallation
	StepResult
)

var stepNames = [...]string{
	StepSystem:       "system",
	StepArea:         "area",
	StepType:         "type",
	StepSubstrate:    "substrate",
	StepMembrane:     "membrane",
	StepInsulation:   "insulation",
	StepExposure:     "exposure",
	StepInstallation: "installation",
	StepResult:       "result",
}

// stepFields maps wizard steps onto catalog attribute names. The "type"
// step is resolved per area at submission time.
var stepFields = map[Step]string{
	StepSystem:       "distributor",
	StepArea:         "area_type",
	StepSubstrate:    "substrate",
	StepMembrane:     "material",
	StepInsulation:   "insulated",
	StepExposure:     "exposure",
	StepInstallation: "attachment",
}

func (s Step) String() string {
	if s < 0 || int(s) >= len(stepNames) {
		return "unknown"
	}
	return stepNames[s]
}

// ParseStep maps a wire step name back to its index.
func ParseStep(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return 0, fmt.Errorf("unknown wizard step: %q", name)
}

// State is the wizard's whole conversation state. It is a value: Advance
// returns a new one and never mutates its input.
type State struct {
	Step    string         `json:"step"`
	Filters map[string]any `json:"filters"`
}

// NewState starts the wizard at its first step.
func NewState() State {
	return State{Step: StepSystem.String(), Filters: map[string]any{}}
}

// Field returns the catalog attribute the step writes, given the filters so
// far. The "type" step resolves to the subtype attribute of the chosen area;
// for an area without subtypes it has no field and the submission is skipped.
func (s Step) Field(filters map[string]any) (catalog.Attribute, bool) {
	name, ok := stepFields[s]
	if s == StepType {
		area, _ := filters["area_type"].(string)
		switch area {
		case "roof":
			name, ok = "roof_subtype", true
		case "foundation":
			name, ok = "foundation_subtype", true
		case "civil_work":
			name, ok = "civil_work_subtype", true
		default:
			return catalog.Attribute{}, false
		}
	}
	if !ok {
		return catalog.Attribute{}, false
	}
	attr, found := catalog.ByName(name)
	return attr, found
}

// Advance applies one form submission: it writes the step's field into a
// copy of the filters and moves to the next step in the sequence. A "type"
// step for an area without subtypes stores nothing and just advances.
func Advance(state State, value string) (State, error) {
	step, err := ParseStep(state.Step)
	if err != nil {
		return State{}, err
	}
	if step >= StepResult {
		return State{}, fmt.Errorf("wizard already complete")
	}

	next := State{Step: (step + 1).String(), Filters: make(map[string]any, len(state.Filters)+1)}
	for k, v := range state.Filters {
		next.Filters[k] = v
	}

	attr, ok := step.Field(state.Filters)
	if !ok {
		return next, nil
	}
	// A blank submission skips the step; the exact-match lookup then simply
	// does not constrain this field.
	if value == "" {
		return next, nil
	}
	parsed, err := attr.ParseValue(value)
	if err != nil {
		return State{}, err
	}
	next.Filters[attr.Name] = parsed
	return next, nil
}

// Result runs the terminal exact-match lookup. A nil record with a nil
// error means no system matches the collected answers; the caller renders
// that as a failure message, not an error.
func Result(state State, match func(selection.Filters, int) ([]selection.SystemRecord, error)) (*selection.SystemRecord, error) {
	step, err := ParseStep(state.Step)
	if err != nil {
		return nil, err
	}
	if step != StepResult {
		return nil, fmt.Errorf("wizard not complete: at step %s", step)
	}

	records, err := match(selection.Filters(state.Filters), 1)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}
