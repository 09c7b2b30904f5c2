// Package errs holds the error vocabulary shared by the domain, the use cases
// and the adapters of the ordering service.
//
// Every typed error unwraps to one sentinel, so callers classify failures with
// errors.Is and inspect details with errors.As:
//
//	ErrValueIsRequired     ValueIsRequiredError
//	ErrValueIsInvalid      ValueIsInvalidError
//	ErrValueIsOutOfRange   ValueIsOutOfRangeError
//	ErrObjectNotFound      ObjectNotFoundError
//	ErrVersionIsInvalid    VersionIsInvalidError (lost optimistic lock on save)
//	ErrDomainRuleViolation DomainRuleViolationError (broken order invariant or
//	                       illegal status transition)
//
// The HTTP adapter maps these sentinels to status codes and the Kafka consumers
// use them to decide whether a saga response is retried or acknowledged.
package errs
