package wisdom

import "fmt"

// MissingIndicatorError reports a required regime-classification input
// absent from the snapshot. Fatal for the call; retrying without new data
// cannot help.
type MissingIndicatorError struct {
	Key string
}

func (e *MissingIndicatorError) Error() string {
	return fmt.Sprintf("required indicator %q missing from snapshot", e.Key)
}

// InvalidRiskRatioError reports a computed reward:risk ratio below the
// configured floor. It is a policy rejection: the analysis still returns a
// well-formed FLAT decision carrying the reason in its reasoning trace.
type InvalidRiskRatioError struct {
	Ratio   float64
	Minimum float64
}

func (e *InvalidRiskRatioError) Error() string {
	return fmt.Sprintf("reward:risk ratio %.2f below configured minimum %.2f", e.Ratio, e.Minimum)
}

// ConflictingConfigurationError reports mutually inconsistent options.
// Raised at configuration load, never mid-analysis.
type ConflictingConfigurationError struct {
	Option string
	Reason string
}

func (e *ConflictingConfigurationError) Error() string {
	return fmt.Sprintf("conflicting configuration: %s %s", e.Option, e.Reason)
}
