// Package order implements the Order aggregate of the ordering service and the
// state machine that drives it through the payment and restaurant approval saga.
//
// The package includes:
//   - Order: the aggregate root owning items, pricing invariants and status
//   - OrderItem: a line item, identified by (order id, item id)
//   - Product: the id and quoted price an item refers to
//   - Status: Pending -> Paid -> Approved, with the compensating
//     Pending -> Cancelled and Paid -> Cancelling -> Cancelled paths
//
// Key business rules:
//   - An order is initialized once; initialization assigns ids and numbers items 1..N
//   - Total price is positive and equals the sum of item subtotals
//   - Each item price is positive, matches the product price, and times quantity
//     equals the subtotal
//   - Illegal transitions fail with errs.ErrDomainRuleViolation and change nothing
package order
