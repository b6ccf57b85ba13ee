package tailwind

import (
	"fmt"
	"os"
)

const (
	PROFILE_ENV = "PROFILE"
	OUT_DIR_ENV = "OUT_DIR"
)

type Profile int

const (
	ProfileDebug Profile = iota
	ProfileRelease
	ProfileUnknown
)

func (p Profile) String() string {
	switch p {
	case ProfileDebug:
		return "debug"
	case ProfileRelease:
		return "release"
	}

	return "unknown"
}

// Environment is a snapshot of the process environment taken once at the
// start of a build, so the whole decision procedure works on plain values
type Environment struct {
	Profile    string
	HasProfile bool
	OutDir     string
	HasOutDir  bool
}

// Capture reads the build profile and the output directory from the
// process environment
func Capture() Environment {
	profile, hasProfile := os.LookupEnv(PROFILE_ENV)
	outDir, hasOutDir := os.LookupEnv(OUT_DIR_ENV)

	return Environment{
		Profile:    profile,
		HasProfile: hasProfile,
		OutDir:     outDir,
		HasOutDir:  hasOutDir,
	}
}

// DetectProfile normalizes the profile value, an unrecognized or missing
// profile never fails the build, it returns a warning instead and the
// orchestrator falls back to debug behaviour
func (e Environment) DetectProfile() (Profile, string) {
	if !e.HasProfile {
		return ProfileDebug, "'" + PROFILE_ENV + "' was not defined, defaulting to debug"
	}

	switch e.Profile {
	case "release":
		return ProfileRelease, ""
	case "debug":
		return ProfileDebug, ""
	}

	return ProfileUnknown, fmt.Sprintf("'%s' was neither release nor debug (%q)", PROFILE_ENV, e.Profile)
}
