package version

// Version is the build version, set at link time with
// -ldflags "-X github.com/battlesnakeio/arcade/version.Version=...".
var Version = "dev"
