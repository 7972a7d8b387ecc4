package discovery

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// CheckAPICompatibility checks a gateway's declared host API version against
// the host's supported constraint (e.g. "^1.0").
func CheckAPICompatibility(constraint, apiVersion string) error {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid API version constraint %q: %w", constraint, err)
	}

	v, err := semver.NewVersion(apiVersion)
	if err != nil {
		return fmt.Errorf("invalid gateway API version %q: %w", apiVersion, err)
	}

	if !c.Check(v) {
		return fmt.Errorf("gateway API version %s does not satisfy host constraint %s", apiVersion, constraint)
	}
	return nil
}

// ResolveVersion converts a version constraint to an exact version from the
// available options. It returns the highest version that satisfies the
// constraint. The keyword "latest" means the highest available version.
func ResolveVersion(constraint string, available []string) (string, error) {
	var c *semver.Constraints
	var err error

	if constraint == "latest" {
		c, err = semver.NewConstraint(">= 0")
	} else {
		c, err = semver.NewConstraint(constraint)
	}
	if err != nil {
		return "", fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}

	var valid []*semver.Version
	for _, vStr := range available {
		v, err := semver.NewVersion(vStr)
		if err != nil {
			continue // Skip invalid versions in availability list
		}
		if c.Check(v) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return "", fmt.Errorf("no version satisfies constraint %q from available options", constraint)
	}

	// Collection sorts ascending, so the last element is the highest.
	sort.Sort(semver.Collection(valid))
	highest := valid[len(valid)-1]

	return highest.Original(), nil
}
