package enums

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"
	ErrorCodeAlreadyEnrolled       ErrorCode = "REL_001"
	ErrorCodeNotEnrolled           ErrorCode = "REL_002"
	ErrorCodeMaxEnrollment         ErrorCode = "REL_003"
	ErrorCodeCourseFull            ErrorCode = "REL_004"
	ErrorCodeLoadComplete          ErrorCode = "REL_005"
	ErrorCodeAlreadyTeaching       ErrorCode = "REL_006"
	ErrorCodeNotTeaching           ErrorCode = "REL_007"
	ErrorCodeValidationFailed      ErrorCode = "VAL_001"
	ErrorCodeInternal              ErrorCode = "SRV_001"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityInfo     ErrorSeverity = "INFO"
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)
