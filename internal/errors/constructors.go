package errors

// Convenience functions for common error patterns

// Config errors

func ConfigInvalid(path string, cause error) *NavError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file invalid").
		WithContext("path", path)
}

// Menu authoring errors

func ValidationFailed(field, reason string) *NavError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

func DuplicateKey(key string, first, second int) *NavError {
	return New(CategoryValidation, SeverityFatal, "duplicate menu key").
		WithContext("key", key).
		WithContext("first", first).
		WithContext("second", second)
}

func InvalidKey(key string, position int, reason string) *NavError {
	return New(CategoryValidation, SeverityFatal, "invalid menu key").
		WithContext("key", key).
		WithContext("position", position).
		WithContext("reason", reason)
}

func MalformedSource(path string, cause error) *NavError {
	return Wrap(cause, CategoryValidation, SeverityFatal, "malformed menu source").
		WithContext("path", path)
}

// Output errors

func UnknownFormat(format string) *NavError {
	return New(CategoryValidation, SeverityFatal, "unknown output format").
		WithContext("format", format)
}

func RenderFailed(format string, cause error) *NavError {
	return Wrap(cause, CategoryRender, SeverityFatal, "menu rendering failed").
		WithContext("format", format)
}

func FileSystemError(operation, path string, cause error) *NavError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "filesystem operation failed").
		WithContext("operation", operation).
		WithContext("path", path)
}

// Watch errors

func WatchFailed(path string, cause error) *NavError {
	return Wrap(cause, CategoryWatch, SeverityFatal, "menu source watch failed").
		WithContext("path", path)
}
