package catalog

import (
	"errors"
	"fmt"
)

// validate checks the structural invariants of a question bank:
//   - IDs are non-empty and unique
//   - type and category are known values
//   - rating-scale questions carry a scale and no options
//   - choice questions carry options and no scale
//   - every category with questions has a section header
func validate(questions []Question, sections []SectionInfo) error {
	var errs []error

	if len(questions) == 0 {
		errs = append(errs, fmt.Errorf("catalog has no questions"))
	}

	seen := make(map[string]bool, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Errorf("question %d has an empty ID", i))
			continue
		}
		if seen[q.ID] {
			errs = append(errs, fmt.Errorf("duplicate question ID: %q", q.ID))
		}
		seen[q.ID] = true

		if !knownCategory(q.Category) {
			errs = append(errs, fmt.Errorf("question %q has unknown category %q", q.ID, q.Category))
		}

		switch q.Type {
		case TypeRatingScale:
			if q.Scale == nil {
				errs = append(errs, fmt.Errorf("rating-scale question %q has no scale", q.ID))
				break
			}
			if len(q.Options) > 0 {
				errs = append(errs, fmt.Errorf("rating-scale question %q must not have options", q.ID))
			}
			if q.Scale.Min < 1 || q.Scale.Max < q.Scale.Min {
				errs = append(errs, fmt.Errorf("question %q has invalid scale %d..%d", q.ID, q.Scale.Min, q.Scale.Max))
			} else if len(q.Scale.Labels) != q.Scale.Max-q.Scale.Min+1 {
				errs = append(errs, fmt.Errorf("question %q has %d scale labels, want %d",
					q.ID, len(q.Scale.Labels), q.Scale.Max-q.Scale.Min+1))
			}
		case TypeMultipleChoice, TypeSituational:
			if q.Scale != nil {
				errs = append(errs, fmt.Errorf("%s question %q must not have a scale", q.Type, q.ID))
			}
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Errorf("%s question %q needs at least 2 options, has %d", q.Type, q.ID, len(q.Options)))
			}
		default:
			errs = append(errs, fmt.Errorf("question %q has unknown type %q", q.ID, q.Type))
		}
	}

	headers := make(map[Category]bool, len(sections))
	for _, s := range sections {
		headers[s.Category] = true
	}
	for _, q := range questions {
		if knownCategory(q.Category) && !headers[q.Category] {
			errs = append(errs, fmt.Errorf("category %q has no section header", q.Category))
			headers[q.Category] = true
		}
	}

	return errors.Join(errs...)
}

func knownCategory(c Category) bool {
	for _, k := range AllCategories() {
		if k == c {
			return true
		}
	}
	return false
}
