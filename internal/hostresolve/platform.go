package hostresolve

import "strings"

// Platform identifies the mobile platform the app bundle runs on. Only
// Android is special-cased: its emulator cannot reach the host machine
// via 127.0.0.1 and uses the 10.0.2.2 alias instead.
type Platform string

// Recognized platforms.
const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// ParsePlatform normalizes a platform string. Unrecognized values are
// passed through lowercased; every non-Android platform shares the same
// loopback fallback, so an unknown platform is not an error.
func ParsePlatform(s string) Platform {
	return Platform(strings.ToLower(strings.TrimSpace(s)))
}

// LoopbackHost returns the host the platform uses to reach a server
// bound to the developer machine's loopback interface.
func (p Platform) LoopbackHost() string {
	if p == PlatformAndroid {
		return "10.0.2.2"
	}
	return "127.0.0.1"
}
