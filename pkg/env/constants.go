// pkg/env/constants.go
package env

import "runtime"

// GetLibraryExtensions returns file extensions to look for based on OS
func GetLibraryExtensions() []string {
	return libraryExtensions(runtime.GOOS)
}

// GetSharedLibraryExtensions returns only shared library extensions
func GetSharedLibraryExtensions() []string {
	return sharedExtensions(runtime.GOOS)
}

// GetStaticLibraryExtensions returns only static library extensions
func GetStaticLibraryExtensions() []string {
	return staticExtensions(runtime.GOOS)
}

func libraryExtensions(goos string) []string {
	return append(sharedExtensions(goos), staticExtensions(goos)...)
}

func sharedExtensions(goos string) []string {
	switch goos {
	case "darwin":
		return []string{".dylib"}
	case "windows":
		return []string{".dll"}
	default:
		return []string{".so"}
	}
}

func staticExtensions(goos string) []string {
	switch goos {
	case "windows":
		return []string{".lib"} // Can be import lib or static lib
	default:
		return []string{".a"}
	}
}
