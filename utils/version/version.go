package version

// version is overwritten at link time with
// -ldflags "-X baseconv/utils/version.version=<tag>".
var version = "v0.1.0"

// GetVersion returns the string printed by --version.
func GetVersion() string {
	return version
}
