// Package txform drives a single in-progress transaction draft from field
// composition through validation to exactly one remote call. The draft lives
// only in memory and dies with the controller.
package txform

import (
	"context"
	"strings"

	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/model"
	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindTransfer Kind = "TRANSFER"
	KindDeposit  Kind = "DEPOSIT"
	KindWithdraw Kind = "WITHDRAW"
	KindPayment  Kind = "PAYMENT"
)

type State int

const (
	StateComposing State = iota
	StateSubmitting
	StateSucceeded
)

// Draft is the composition surface. Amount stays a string until submit so
// partial input never has to round-trip through a number.
type Draft struct {
	Kind          Kind
	SourceAccount string
	TargetAccount string
	Amount        string
	Currency      string
	Description   string
	ServiceName   string
	SupplyCode    string
}

// Gateway is the slice of remote operations the controller dispatches to.
type Gateway interface {
	Transfer(ctx context.Context, userID int64, req gateway.TransferRequest) error
	Deposit(ctx context.Context, req gateway.DepositRequest) error
	Withdraw(ctx context.Context, userID int64, req gateway.WithdrawRequest) error
	PayService(ctx context.Context, userID int64, req gateway.PayServiceRequest) error
}

type Controller struct {
	gw     Gateway
	userID int64

	draft   Draft
	state   State
	failure error

	accounts      []model.Account
	beneficiaries []model.Beneficiary
}

// NewController starts a controller in COMPOSING with the given kind. The
// account and beneficiary lists are supplied by the caller and only feed
// target selection; they never change validation rules.
func NewController(gw Gateway, userID int64, kind Kind, accounts []model.Account, beneficiaries []model.Beneficiary) *Controller {
	c := &Controller{
		gw:            gw,
		userID:        userID,
		accounts:      accounts,
		beneficiaries: beneficiaries,
	}
	c.draft.Kind = kind
	c.draft.Currency = "USD"
	if len(accounts) > 0 {
		c.draft.SourceAccount = accounts[0].AccountNumber
	}
	return c
}

func (c *Controller) State() State { return c.state }

func (c *Controller) Draft() Draft { return c.draft }

// LastFailure reports the most recent submission failure, carrying the
// server or transport message verbatim. Nil once a submission succeeds.
func (c *Controller) LastFailure() error { return c.failure }

// SetKind switches the draft kind while composing. Amount, currency and
// description carry over as a convenience; target semantics do not: a
// transfer target never silently becomes a payment's, and service details
// never leak into non-payment kinds.
func (c *Controller) SetKind(kind Kind) {
	if c.state != StateComposing || kind == c.draft.Kind {
		return
	}

	if kind == KindPayment {
		c.draft.TargetAccount = ""
	} else {
		c.draft.ServiceName = ""
		c.draft.SupplyCode = ""
	}

	c.draft.Kind = kind
}

func (c *Controller) SetSourceAccount(accountNumber string) { c.draft.SourceAccount = accountNumber }
func (c *Controller) SetTargetAccount(accountNumber string) { c.draft.TargetAccount = accountNumber }
func (c *Controller) SetAmount(amount string)               { c.draft.Amount = amount }
func (c *Controller) SetCurrency(currency string)           { c.draft.Currency = currency }
func (c *Controller) SetDescription(description string)     { c.draft.Description = description }

func (c *Controller) SetServiceDetails(serviceName, supplyCode string) {
	c.draft.ServiceName = serviceName
	c.draft.SupplyCode = supplyCode
}

// SelectBeneficiary writes the beneficiary's account number as the target.
func (c *Controller) SelectBeneficiary(b model.Beneficiary) {
	c.draft.TargetAccount = b.AccountNumber
}

// SelectOwnAccount writes one of the identity's own accounts as the target
// (deposits to self).
func (c *Controller) SelectOwnAccount(accountNumber string) {
	c.draft.TargetAccount = accountNumber
}

func (c *Controller) Accounts() []model.Account          { return c.accounts }
func (c *Controller) Beneficiaries() []model.Beneficiary { return c.beneficiaries }

// CurrencyWarning reports a mismatch between the source account's currency
// and the draft's. It is informational only: the server converts, so this
// never blocks Submit.
func (c *Controller) CurrencyWarning() (accountCurrency string, mismatch bool) {
	if c.draft.Kind == KindDeposit || c.draft.SourceAccount == "" {
		return "", false
	}
	for _, acc := range c.accounts {
		if acc.AccountNumber == c.draft.SourceAccount {
			if acc.Currency != c.draft.Currency {
				return acc.Currency, true
			}
			return "", false
		}
	}
	return "", false
}

// Validate runs the submission checks in order without dispatching.
func (c *Controller) Validate() (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(c.draft.Amount))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}

	if strings.TrimSpace(c.draft.Description) == "" {
		return decimal.Zero, ErrMissingDescription
	}

	switch c.draft.Kind {
	case KindTransfer:
		if c.draft.SourceAccount == "" || c.draft.TargetAccount == "" {
			return decimal.Zero, ErrMissingAccount
		}
	case KindDeposit:
		if c.draft.TargetAccount == "" {
			return decimal.Zero, ErrMissingAccount
		}
	case KindWithdraw:
		if c.draft.SourceAccount == "" {
			return decimal.Zero, ErrMissingAccount
		}
	case KindPayment:
		if c.draft.SourceAccount == "" {
			return decimal.Zero, ErrMissingAccount
		}
		if strings.TrimSpace(c.draft.ServiceName) == "" || strings.TrimSpace(c.draft.SupplyCode) == "" {
			return decimal.Zero, ErrMissingServiceDetails
		}
	}

	return amount, nil
}

// Submit validates the draft and dispatches exactly one remote call for its
// kind. On success the draft is discarded and the controller terminates in
// SUCCEEDED; on failure the draft stays intact, the failure is recorded, and
// control returns to COMPOSING so the user can correct and resubmit.
func (c *Controller) Submit(ctx context.Context) error {
	if c.state != StateComposing {
		return ErrSubmissionInFlight
	}

	amount, err := c.Validate()
	if err != nil {
		return err
	}

	c.state = StateSubmitting
	err = c.dispatch(ctx, amount.InexactFloat64())
	if err != nil {
		c.failure = err
		c.state = StateComposing
		return err
	}

	c.failure = nil
	c.draft = Draft{}
	c.state = StateSucceeded
	return nil
}

func (c *Controller) dispatch(ctx context.Context, amount float64) error {
	d := c.draft
	switch d.Kind {
	case KindTransfer:
		return c.gw.Transfer(ctx, c.userID, gateway.TransferRequest{
			SourceAccount: d.SourceAccount,
			TargetAccount: d.TargetAccount,
			Amount:        amount,
			Currency:      d.Currency,
			Description:   d.Description,
		})
	case KindDeposit:
		return c.gw.Deposit(ctx, gateway.DepositRequest{
			TargetAccount: d.TargetAccount,
			Amount:        amount,
			Currency:      d.Currency,
			Description:   d.Description,
		})
	case KindWithdraw:
		return c.gw.Withdraw(ctx, c.userID, gateway.WithdrawRequest{
			SourceAccount: d.SourceAccount,
			Amount:        amount,
			Currency:      d.Currency,
			Description:   d.Description,
		})
	default:
		return c.gw.PayService(ctx, c.userID, gateway.PayServiceRequest{
			SourceAccount: d.SourceAccount,
			ServiceName:   d.ServiceName,
			SupplyCode:    d.SupplyCode,
			Amount:        amount,
			Currency:      d.Currency,
			Description:   d.Description,
		})
	}
}
