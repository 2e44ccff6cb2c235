package model

import (
	"fmt"

	"github.com/quantpoints/hawkes-diagnostics/common"
)

// ResidualSet holds one residual sequence per event type.
type ResidualSet [][]float64

func (s ResidualSet) Dim() int {
	return len(s)
}

func (s ResidualSet) IsEmpty() bool {
	return len(s) == 0
}

// ModelResiduals is one model's residual set together with the label used to
// identify the model in legends.
type ModelResiduals struct {
	Label string
	Set   ResidualSet
}

// ResidualInput is either a single residual set or an ordered sequence of
// per-model sets. Build it with SingleModel or MultiModel; transforms resolve
// it once through Sets and never inspect element types at runtime.
type ResidualInput struct {
	single ResidualSet
	models []ModelResiduals
	multi  bool
}

func SingleModel(set ResidualSet) ResidualInput {
	return ResidualInput{single: set}
}

func MultiModel(models []ModelResiduals) ResidualInput {
	return ResidualInput{models: models, multi: true}
}

func (in ResidualInput) Multi() bool {
	return in.multi
}

// Sets returns one entry per model. A single-model input yields one entry
// with an empty label.
func (in ResidualInput) Sets() []ModelResiduals {
	if in.multi {
		return in.models
	}
	return []ModelResiduals{{Set: in.single}}
}

// Labels returns the model labels in plot order, empty strings included.
func (in ResidualInput) Labels() []string {
	sets := in.Sets()
	labels := make([]string, len(sets))
	for i, s := range sets {
		labels[i] = s.Label
	}
	return labels
}

// Validate checks that at least one non-empty set is present and that all
// models agree on the number of event types. It returns that number.
func (in ResidualInput) Validate() (int, error) {
	sets := in.Sets()
	if len(sets) == 0 || sets[0].Set.IsEmpty() {
		return 0, common.ErrorInvalidInput
	}
	dim := sets[0].Set.Dim()
	for _, s := range sets[1:] {
		if s.Set.Dim() != dim {
			return 0, fmt.Errorf("%w: model %q has %d event types, want %d",
				common.ErrorShapeMismatch, s.Label, s.Set.Dim(), dim)
		}
	}
	return dim, nil
}
