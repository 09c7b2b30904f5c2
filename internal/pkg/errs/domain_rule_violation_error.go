package errs

import "fmt"

// DomainRuleViolationError is raised by aggregates when a business invariant or
// a lifecycle transition rule does not hold. The aggregate is left untouched.
type DomainRuleViolationError struct {
	Rule  string
	Cause error
}

func NewDomainRuleViolationError(rule string) *DomainRuleViolationError {
	return &DomainRuleViolationError{Rule: rule}
}

func NewDomainRuleViolationErrorWithCause(rule string, cause error) *DomainRuleViolationError {
	return &DomainRuleViolationError{
		Rule:  rule,
		Cause: cause,
	}
}

func (e *DomainRuleViolationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrDomainRuleViolation, e.Rule, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrDomainRuleViolation, e.Rule)
}

func (e *DomainRuleViolationError) Unwrap() error {
	return ErrDomainRuleViolation
}
