// Package version holds the build version, set with
// -ldflags "-X github.com/statisticsnorway/dapla-start-api/pkg/version.Version=x.y.z".
package version

const Name = "dapla-start-api"

var Version = "dev"
