package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/okatiev/banking_api/internal/models"
	"github.com/shopspring/decimal"
)

// accountPattern is the only accepted account identifier shape: the ACC-
// prefix followed by exactly five uppercase alphanumeric characters.
var accountPattern = regexp.MustCompile(`^ACC-[A-Z0-9]{5}$`)

// validCurrencies is the ISO 4217 whitelist; codes are matched upper-cased.
var validCurrencies = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "AUD": {},
	"CAD": {}, "CHF": {}, "CNY": {}, "INR": {}, "MXN": {},
	"BRL": {}, "KRW": {}, "SGD": {}, "HKD": {}, "NOK": {},
	"SEK": {}, "DKK": {}, "NZD": {}, "ZAR": {}, "RUB": {},
}

// sortedCurrencies feeds the currency error message.
var sortedCurrencies = []string{
	"AUD", "BRL", "CAD", "CHF", "CNY", "DKK", "EUR", "GBP", "HKD", "INR",
	"JPY", "KRW", "MXN", "NOK", "NZD", "RUB", "SEK", "SGD", "USD", "ZAR",
}

// ValidateTransaction checks a proposed transaction against all business
// rules and collects every violation instead of stopping at the first one.
// An empty error list yields a Validated value, the only input the ledger
// commit path accepts.
func ValidateTransaction(params models.CreateTransactionParams) (Validated, []models.ValidationError) {
	errs := []models.ValidationError{}

	if err := validateAmount(params.Amount); err != nil {
		errs = append(errs, *err)
	}

	if err := validateCurrency(params.Currency); err != nil {
		errs = append(errs, *err)
	}

	errs = append(errs, validateAccounts(params)...)

	if len(errs) > 0 {
		return Validated{}, errs
	}

	return newValidated(params), nil
}

// ValidAccountID reports whether the identifier matches the account format.
// Account-scoped endpoints use it to reject malformed path parameters.
func ValidAccountID(accountID string) bool {
	return accountPattern.MatchString(accountID)
}

// AccountFormatMessage is the error text for a malformed account identifier.
func AccountFormatMessage(accountID string) string {
	return fmt.Sprintf("Account must follow format ACC-XXXXX (5 alphanumeric characters). Got: %s", accountID)
}

func validateAmount(amount decimal.Decimal) *models.ValidationError {
	if !amount.IsPositive() {
		return &models.ValidationError{Field: "amount", Message: "Amount must be a positive number"}
	}

	if amount.Exponent() < -2 {
		return &models.ValidationError{Field: "amount", Message: "Amount must have maximum 2 decimal places"}
	}

	return nil
}

func validateCurrency(currency string) *models.ValidationError {
	if _, ok := validCurrencies[strings.ToUpper(currency)]; !ok {
		return &models.ValidationError{
			Field:   "currency",
			Message: fmt.Sprintf("Invalid currency code. Valid codes: %s", strings.Join(sortedCurrencies, ", ")),
		}
	}

	return nil
}

func validateAccounts(params models.CreateTransactionParams) []models.ValidationError {
	errs := []models.ValidationError{}

	switch params.Type {
	case models.TypeDeposit:
		if err := requireAccount(params.ToAccount, "toAccount", "deposit"); err != nil {
			errs = append(errs, *err)
		}
	case models.TypeWithdrawal:
		if err := requireAccount(params.FromAccount, "fromAccount", "withdrawal"); err != nil {
			errs = append(errs, *err)
		}
	case models.TypeTransfer:
		if err := requireAccount(params.FromAccount, "fromAccount", "transfer"); err != nil {
			errs = append(errs, *err)
		}
		if err := requireAccount(params.ToAccount, "toAccount", "transfer"); err != nil {
			errs = append(errs, *err)
		}

		// The equality check only fires when both accounts were supplied.
		if params.FromAccount != "" && params.ToAccount != "" && params.FromAccount == params.ToAccount {
			errs = append(errs, models.ValidationError{
				Field:   "toAccount",
				Message: "fromAccount and toAccount must be different for transfers",
			})
		}
	}

	return errs
}

func requireAccount(accountID, field, txType string) *models.ValidationError {
	if accountID == "" {
		return &models.ValidationError{
			Field:   field,
			Message: fmt.Sprintf("%s is required for %s transactions", field, txType),
		}
	}

	if !accountPattern.MatchString(accountID) {
		return &models.ValidationError{Field: field, Message: AccountFormatMessage(accountID)}
	}

	return nil
}
