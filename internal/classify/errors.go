package classify

// ErrorKind is the structured taxonomy for classifier failures.
type ErrorKind string

const (
	KindTimeout            ErrorKind = "timeout"
	KindPermissionHardware ErrorKind = "permission_hardware"
	KindModelResource      ErrorKind = "model_resource"
	KindOther              ErrorKind = "other"
)

// Recoverable reports whether a failure of this kind is expected to clear on
// its own. Permission/hardware and model/resource failures need user action.
func (k ErrorKind) Recoverable() bool {
	switch k {
	case KindPermissionHardware, KindModelResource:
		return false
	}
	return true
}

// ScanError is a classifier failure with a structured kind. The message text
// still follows the legacy substring conventions (timeout/camera/model/memory)
// so free-text consumers keep working.
type ScanError struct {
	Kind    ErrorKind
	Message string
}

func (e *ScanError) Error() string {
	return e.Message
}
