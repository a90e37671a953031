package driver

import (
	"errors"
	"strings"

	"fastereats/internal/pkg/errs"
)

// BankDetails is where a driver's earnings are paid out.
type BankDetails struct {
	bankName      string
	accountNumber string
}

func NewBankDetails(bankName, accountNumber string) (BankDetails, error) {
	var nameErr, accountErr error
	if strings.TrimSpace(bankName) == "" {
		nameErr = errs.NewValueIsRequiredError("bankName")
	}
	if strings.TrimSpace(accountNumber) == "" {
		accountErr = errs.NewValueIsRequiredError("accountNumber")
	}
	if err := errors.Join(nameErr, accountErr); err != nil {
		return BankDetails{}, err
	}
	return BankDetails{
		bankName:      strings.TrimSpace(bankName),
		accountNumber: strings.TrimSpace(accountNumber),
	}, nil
}

func (b BankDetails) BankName() string      { return b.bankName }
func (b BankDetails) AccountNumber() string { return b.accountNumber }

// MaskedAccountNumber hides all but the last four characters.
func (b BankDetails) MaskedAccountNumber() string {
	const visible = 4
	n := len(b.accountNumber)
	if n <= visible {
		return b.accountNumber
	}
	return strings.Repeat("*", n-visible) + b.accountNumber[n-visible:]
}

func (b BankDetails) isZero() bool {
	return b == BankDetails{}
}
