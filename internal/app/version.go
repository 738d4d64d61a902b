package app

import "fmt"

// Version, Commit and BuildTime are set via ldflags at build time:
//
//	go build -ldflags "-X github.com/heartmarshall/crmhub-backend/internal/app.Version=1.4.0" ./cmd/server
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported in startup logs and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
