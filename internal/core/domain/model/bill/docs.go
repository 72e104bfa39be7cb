// Package bill provides the billing side of the order lifecycle: the Bill
// aggregate raised once per order at the ready-for-pickup point, its
// append-only payment trail and the Unpaid/Partial/Paid status derived from
// the recorded amounts.
package bill
