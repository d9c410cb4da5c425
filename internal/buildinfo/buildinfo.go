package buildinfo

// Version and Commit are set at build time via -ldflags "-X mandelview/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
)

// Short returns a compact build identifier for the viewer header and metadata.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}
