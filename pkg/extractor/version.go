package extractor

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// ProtocolVersion defines the current extractor API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "1.0.0"

	// MinCompatibleVersion is the oldest protocol version this madder version can work with.
	MinCompatibleVersion = "1.0.0"
)

// Version represents a parsed protocol version.
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a version string in "MAJOR.MINOR.PATCH" format.
func ParseVersion(version string) (Version, error) {
	parts := strings.Split(version, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", parts[0])
	}

	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %s", parts[1])
	}

	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %s", parts[2])
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}

// String returns the string representation of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsCompatible checks if an extractor protocol version is compatible with this madder version.
// Rules:
// - Major version must match exactly (breaking changes).
// - Minor version can be higher (backward compatible).
// - Patch version can be any value (bug fixes only).
func IsCompatible(extractorVersionStr string) (bool, error) {
	extractorVersion, err := ParseVersion(extractorVersionStr)
	if err != nil {
		return false, fmt.Errorf("failed to parse extractor version: %w", err)
	}

	currentVersion, err := ParseVersion(ProtocolVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse current protocol version: %w", err)
	}

	minVersion, err := ParseVersion(MinCompatibleVersion)
	if err != nil {
		return false, fmt.Errorf("failed to parse minimum compatible version: %w", err)
	}

	// Major version must match exactly
	if extractorVersion.Major != currentVersion.Major {
		return false, fmt.Errorf(
			"incompatible major version: extractor is %s, madder requires %d.x.x",
			extractorVersion.String(),
			currentVersion.Major,
		)
	}

	// Check if version is below minimum compatible version
	if extractorVersion.Major == minVersion.Major {
		if extractorVersion.Minor < minVersion.Minor {
			return false, fmt.Errorf(
				"extractor version %s is too old, minimum required is %s",
				extractorVersion.String(),
				MinCompatibleVersion,
			)
		}
		if extractorVersion.Minor == minVersion.Minor && extractorVersion.Patch < minVersion.Patch {
			return false, fmt.Errorf(
				"extractor version %s is too old, minimum required is %s",
				extractorVersion.String(),
				MinCompatibleVersion,
			)
		}
	}

	// Extractor can have higher minor/patch version (forward compatible)
	return true, nil
}

// CurrentVersion returns the current protocol version as a Version struct.
func CurrentVersion() Version {
	v, err := ParseVersion(ProtocolVersion)
	if err != nil {
		// This should never happen since ProtocolVersion is a constant with valid format.
		panic(fmt.Sprintf("invalid ProtocolVersion constant: %v", err))
	}
	return v
}
