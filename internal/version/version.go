// internal/version/version.go
package version

// Version is the released tool version; overridden at build time with
// -ldflags "-X hmmassign/internal/version.Version=...".
var Version = "0.1.0"
