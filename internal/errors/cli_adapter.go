package errors

// ExitCodeFor determines the process exit code for an error.
func ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}

	switch GetCategory(err) {
	case CategoryMetadata:
		return 2 // Bad content file
	case CategoryTemplate:
		return 3 // Template set failed to load/compile
	case CategoryRender:
		return 4 // Template engine failed during rendering
	case CategoryConfig:
		return 7 // Configuration error
	case CategoryFilesystem:
		return 11 // Read/write/mkdir failure
	default:
		return 1 // General error
	}
}
