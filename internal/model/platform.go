package model

import "fmt"

// Platform identifies one of the tracked social-media destinations.
type Platform int

const (
	Facebook Platform = iota
	Instagram
	XTwitter
	Threads
	Pinterest
	TikTok
	YouTube
	LinkedIn
	Fanbase
	FacebookGroups
)

// PlatformCount is the number of tracked platforms.
const PlatformCount = 10

var platformNames = [PlatformCount]string{
	"Facebook",
	"Instagram",
	"X (Twitter)",
	"Threads",
	"Pinterest",
	"TikTok",
	"YouTube",
	"LinkedIn",
	"Fanbase",
	"Facebook Groups",
}

// Platforms returns all platforms in column order.
func Platforms() []Platform {
	out := make([]Platform, PlatformCount)
	for i := range out {
		out[i] = Platform(i)
	}
	return out
}

// PlatformNames returns the column names in column order.
func PlatformNames() []string {
	names := make([]string, PlatformCount)
	copy(names, platformNames[:])
	return names
}

// String returns the column name of the platform.
func (p Platform) String() string {
	if !p.Valid() {
		return fmt.Sprintf("Platform(%d)", int(p))
	}
	return platformNames[p]
}

// Valid reports whether p is one of the tracked platforms.
func (p Platform) Valid() bool {
	return p >= 0 && int(p) < PlatformCount
}

// ParsePlatform resolves a column name to a platform.
func ParsePlatform(name string) (Platform, error) {
	for i, n := range platformNames {
		if n == name {
			return Platform(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown platform %q", ErrInvalidReference, name)
}
