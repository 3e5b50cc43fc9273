// Package version holds build metadata. BuildDate is set with
// -ldflags "-X github.com/felosidev/avatar-bot/internal/version.BuildDate=...".
package version

import "runtime"

const (
	AppName        = "Avatar Bot"
	AppDescription = "Set a bot's profile picture from an image URL, straight from Discord."
)

var (
	BuildDate = ""
	GoVersion = runtime.Version()
)
