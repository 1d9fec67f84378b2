package order

import (
	"fmt"

	"supplyorders/internal/pkg/errs"
)

// Status represents the primary lifecycle state of a supply order.
// It implements a state machine with guarded transitions; every status
// change goes through one of the transition methods below, which reject
// anything outside the allowed table.
//
// State transitions:
//
//	Registered ──┬──> Created ──────┐
//	             ├──> Stopped       ├──> Processing/Processed/Error (response)
//	             ├──> Error         │
//	             ├──> Processed     └ Processing/Processed ──> Canceled
//	             └──> Canceled
//
// The numeric values are part of the persisted contract and must not be
// reordered: the database rows and the partner tooling both rely on them.
type Status int

const (
	// Registered is the initial status assigned by the upstream system.
	// Orders in this status are waiting to be materialized as order files.
	Registered Status = iota

	// Created indicates the outbound order file has been written.
	Created

	// Processing indicates the partner acknowledged the order but has not
	// closed it yet (partial response).
	Processing

	// Processed indicates the order is complete: either closed by the
	// partner's response or administratively closed with nothing to ship.
	Processed

	// Stopped indicates the order positions could not be loaded. The row
	// stays out of further selection until an operator intervenes.
	Stopped

	// Error indicates a failure while producing the order file, or an
	// unrecognized response file convention.
	Error

	// Canceled indicates the order had no usable positions and never
	// produced (or will never confirm) a shipment.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Registered: "Registered",
		Created:    "Created",
		Processing: "Processing",
		Processed:  "Processed",
		Stopped:    "Stopped",
		Error:      "Error",
		Canceled:   "Canceled",
	}
}

// Validate checks that the Status value is one of the defined lifecycle
// states. Used when reconstructing orders from external sources.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Create transitions the status to Created after the outbound order file
// has been written. Only valid from Registered.
func (s Status) Create() (Status, error) {
	if s != Registered {
		return 0, invalidTransition(s, "create")
	}
	return Created, nil
}

// Stop transitions the status to Stopped when order positions failed to
// load. Only valid from Registered.
func (s Status) Stop() (Status, error) {
	if s != Registered {
		return 0, invalidTransition(s, "stop")
	}
	return Stopped, nil
}

// Fail transitions the status to Error when the order file could not be
// produced. Only valid from Registered.
func (s Status) Fail() (Status, error) {
	if s != Registered {
		return 0, invalidTransition(s, "fail")
	}
	return Error, nil
}

// CloseWithoutShipment transitions the status to Processed when every
// position on the order is unresolved (unknown to the downstream catalog).
// Such an order is considered fulfilled with nothing to ship and never
// produces an outbound file. Only valid from Registered.
func (s Status) CloseWithoutShipment() (Status, error) {
	if s != Registered {
		return 0, invalidTransition(s, "close without shipment")
	}
	return Processed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Registered -> Canceled (no positions with a non-zero quantity)
//   - Processing/Processed -> Canceled (no confirmed positions at delivery time)
func (s Status) Cancel() (Status, error) {
	if s != Registered && s != Processing && s != Processed {
		return 0, invalidTransition(s, "cancel")
	}
	return Canceled, nil
}

// ApplyResponse transitions the status according to an ingested partner
// response. The current status must be Created or Processing (the
// eligibility gate that makes response ingestion idempotent), and the
// response may only carry Processing, Processed or Error.
func (s Status) ApplyResponse(target Status) (Status, error) {
	if s != Created && s != Processing {
		return 0, invalidTransition(s, "apply a response to")
	}
	if target != Processing && target != Processed && target != Error {
		return 0, errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%s is not a valid response status", target.String()))
	}
	return target, nil
}

// CanConfirm reports whether the order may still advance its FTP
// confirmation sub-state. Confirmation is only meaningful once the
// partner has acknowledged the order.
func (s Status) CanConfirm() bool {
	return s == Processing || s == Processed
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
