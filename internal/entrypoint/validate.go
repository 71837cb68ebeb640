package entrypoint

import (
	"fmt"
)

// Validate checks the structural invariants of the entrypoint file, in order:
// the entrypoint class exists exactly once, method names are unique within
// each marker kind, and at least one task and one agent method exist. The
// first failing check short-circuits with a specific reason. Intermediate
// states during a mutation session are allowed to be transiently invalid;
// callers run Validate as a pre-flight check or after a session completes.
func (d *Document) Validate() error {
	if d.closed {
		return ErrClosed
	}

	classes := d.entrypointClasses()
	switch {
	case len(classes) == 0:
		return &ValidationError{
			Reason: fmt.Sprintf("`@%s` decorated class not found in %s", d.shape.ClassDecorator, d.path),
		}
	case len(classes) > 1:
		return &ValidationError{
			Reason: fmt.Sprintf("multiple `@%s` decorated classes found in %s; expected exactly one", d.shape.ClassDecorator, d.path),
		}
	}
	class := classes[0]

	for _, kind := range []Kind{KindTask, KindAgent} {
		if err := checkUniqueNames(d.classMethods(class, kind), kind); err != nil {
			return err
		}
	}

	for _, kind := range []Kind{KindTask, KindAgent} {
		if len(d.classMethods(class, kind)) == 0 {
			return &ValidationError{
				Reason: fmt.Sprintf("`@%s` decorated method not found in %s", kind, d.path),
			}
		}
	}
	return nil
}

func checkUniqueNames(methods []Method, kind Kind) error {
	lines := make(map[string][]int)
	for _, m := range methods {
		lines[m.Name] = append(lines[m.Name], m.Line)
	}
	for _, m := range methods {
		if locs := lines[m.Name]; len(locs) > 1 {
			return &DuplicateNameError{Kind: kind, Name: m.Name, Lines: locs}
		}
	}
	return nil
}
