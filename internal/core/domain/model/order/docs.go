// Package order contains the supply-order aggregate and its two lifecycle
// state machines.
//
// An order moves along two independent axes. The primary Status covers the
// path from registration through order-file creation to the partner's
// response (Registered, Created, Processing, Processed) plus the terminal
// failure states (Stopped, Error, Canceled). The secondary FtpStatus covers
// delivery of the confirmation package to the client's FTP directory and is
// only meaningful once the primary status reaches Processing or Processed.
//
// Both axes are value types whose transition methods return the new state
// or an error; the aggregate's Mark*/Cancel/Apply methods are the only way
// to mutate an order, so an illegal transition is rejected at the domain
// boundary instead of being trusted to callers.
//
// The package also defines Response, the parsed snapshot of an inbound
// partner response file, which ingestion validates against the persisted
// order before applying.
package order
