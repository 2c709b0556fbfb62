// Package build holds build metadata injected via ldflags.
package build

// AppName is the binary name.
const AppName = "clonecfg"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/clonecfg"
}
