package compiler

import "fmt"

// Profile selects which builtin operations a Compiler accepts. ProfileFull is
// the whole catalogue; ProfileCore is the reduced set without the file and
// dictionary operations.
type Profile int

const (
	ProfileFull Profile = iota
	ProfileCore
)

func (p Profile) String() string {
	switch p {
	case ProfileFull:
		return "full"
	case ProfileCore:
		return "core"
	}
	return fmt.Sprintf("Profile(%d)", int(p))
}

// ParseProfile maps a manifest/flag spelling to a Profile.
func ParseProfile(s string) (Profile, error) {
	switch s {
	case "", "full":
		return ProfileFull, nil
	case "core":
		return ProfileCore, nil
	}
	return ProfileFull, fmt.Errorf("unknown profile %q (want \"full\" or \"core\")", s)
}
