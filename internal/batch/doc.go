// Package batch computes readings for many birth records with a fixed pool
// of workers. Records are independent: a malformed record yields a failed
// result for that record and never aborts the rest of the batch. Results
// are returned in input order.
package batch
