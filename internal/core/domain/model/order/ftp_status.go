package order

import (
	"fmt"

	"supplyorders/internal/pkg/errs"
)

// FtpStatus tracks the delivery of the confirmation package to the client's
// FTP directory. It is a sub-state independent of the order Status and only
// meaningful once the order reached Processing or Processed.
//
// The numeric values match the persisted contract: 0 NotSent, 1 Sent,
// 2 SendFailed. Rows are selected for confirmation while the value is
// NotSent; both Sent and SendFailed take the order out of selection.
type FtpStatus int

const (
	// NotSent means no delivery attempt has completed for this order yet.
	NotSent FtpStatus = iota

	// Sent means the control artifact and the payload archive were both
	// uploaded successfully.
	Sent

	// SendFailed means a delivery step failed; the row keeps the failure
	// until an operator intervenes.
	SendFailed
)

func getFtpStatusStrings() map[FtpStatus]string {
	return map[FtpStatus]string{
		NotSent:    "NotSent",
		Sent:       "Sent",
		SendFailed: "SendFailed",
	}
}

// Validate checks that the FtpStatus value is one of the defined states.
func (s FtpStatus) Validate() error {
	if _, ok := getFtpStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("ftp status is invalid",
			fmt.Errorf("%d is not a valid ftp status", s))
	}
	return nil
}

// String returns the human-readable name of the FTP status.
func (s FtpStatus) String() string {
	if str, ok := getFtpStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Send transitions the FTP status to Sent. Only valid from NotSent.
func (s FtpStatus) Send() (FtpStatus, error) {
	if s != NotSent {
		return 0, invalidFtpTransition(s, "send")
	}
	return Sent, nil
}

// Fail transitions the FTP status to SendFailed. Only valid from NotSent.
func (s FtpStatus) Fail() (FtpStatus, error) {
	if s != NotSent {
		return 0, invalidFtpTransition(s, "fail")
	}
	return SendFailed, nil
}

func invalidFtpTransition(s FtpStatus, action string) error {
	return errs.NewValueIsInvalidErrorWithCause("ftp status is invalid",
		fmt.Errorf("%s is not a valid ftp status to %s", s.String(), action))
}
