package common

// UnknownStr is the fallback representation for enum values outside the
// defined range.
const UnknownStr = "unknown"
