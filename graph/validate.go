package graph

import "fmt"

// validate runs the shape checks described in spec §4.2, in order, and
// returns the first failure. No partial state is retained by the caller
// regardless of outcome.
func validate(passes []*Pass) error {
	if err := validateDepthFormats(passes); err != nil {
		return err
	}
	return validatePassNameCollisions(passes)
}

func validateDepthFormats(passes []*Pass) error {
	for _, p := range passes {
		if p.DepthInput != nil && !p.DepthInput.Format.IsDepthFormat() {
			return fmt.Errorf("%w: pass %q depth input %q has format %s", ErrNonDepthFormatInDepthSlot, p.Name, p.DepthInput.Name, p.DepthInput.Format)
		}
		if p.DepthOutput != nil && !p.DepthOutput.Format.IsDepthFormat() {
			return fmt.Errorf("%w: pass %q depth output %q has format %s", ErrNonDepthFormatInDepthSlot, p.Name, p.DepthOutput.Name, p.DepthOutput.Format)
		}
	}
	return nil
}

func validatePassNameCollisions(passes []*Pass) error {
	seen := make(map[string]bool, len(passes))
	for _, p := range passes {
		if seen[p.Name] {
			return fmt.Errorf("%w: %q", ErrPassNameCollision, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}
