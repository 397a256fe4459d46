package transaction

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/renzovm/bancli/internal/app"
	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/constants"
	"github.com/renzovm/bancli/internal/model"
	"github.com/renzovm/bancli/internal/txform"
	"github.com/renzovm/bancli/internal/ui/prompts"
	"github.com/renzovm/bancli/internal/ui/views"
	"github.com/renzovm/bancli/internal/validation"
	"github.com/spf13/cobra"
)

type newFlags struct {
	Kind        string
	From        string
	To          string
	Amount      string
	Currency    string
	Desc        string
	ServiceName string
	SupplyCode  string
	Yes         bool
}

type newRunner struct {
	app   *app.App
	cfg   *config.Config
	flags *newFlags
	cmd   *cobra.Command
}

func NewNewCmd(a *app.App, cfg *config.Config) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a new transaction",
		Long: `Create a transfer, deposit, withdrawal or service payment.

Examples:
  # Interactive mode (recommended)
  bancli transaction new

  # Quick transfer with flags
  bancli transaction new --type TRANSFER --from 100-200-300 --to 400-500-600 \
      --amount 100.50 --currency USD --desc "rent" --yes

  # Pay a utility bill
  bancli transaction new --type PAYMENT --from 100-200-300 --service "Luz del Sur" \
      --code 1234567 --amount 80 --desc "electricity"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &newRunner{
				app:   a,
				cfg:   cfg,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Kind, "type", "t", "", "Transaction type: TRANSFER, DEPOSIT, WITHDRAW or PAYMENT")
	cmd.Flags().StringVarP(&flags.From, "from", "f", "", "Source account number")
	cmd.Flags().StringVar(&flags.To, "to", "", "Target account number")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount (e.g. 150 or 150.50)")
	cmd.Flags().StringVar(&flags.Currency, "currency", "", "Transaction currency")
	cmd.Flags().StringVarP(&flags.Desc, "desc", "d", "", "Description / reference")
	cmd.Flags().StringVar(&flags.ServiceName, "service", "", "Service name (PAYMENT only)")
	cmd.Flags().StringVar(&flags.SupplyCode, "code", "", "Supply code (PAYMENT only)")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *newRunner) Run() error {
	identity := r.app.Session.Current()
	ctx := r.cmd.Context()

	// The form needs the identity's accounts and beneficiaries up front so
	// targets can be picked instead of typed.
	accounts, err := r.app.Gateway.AccountsByUser(ctx, identity.ID)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}

	beneficiaries, err := r.app.Gateway.Beneficiaries(ctx, identity.ID)
	if err != nil {
		return fmt.Errorf("failed to load beneficiaries: %w", err)
	}

	hasFlags := r.cmd.Flags().Changed("type") || r.cmd.Flags().Changed("amount") ||
		r.cmd.Flags().Changed("from") || r.cmd.Flags().Changed("to")

	var form *txform.Controller
	if hasFlags {
		form, err = r.flagsMode(identity.ID, accounts, beneficiaries)
	} else {
		form, err = r.interactiveMode(identity.ID, accounts, beneficiaries)
	}
	if err != nil {
		return err
	}

	if currency, mismatch := form.CurrencyWarning(); mismatch {
		pterm.Warning.Printf("Your source account is in %s; the bank will apply its exchange rate.\n", currency)
	}

	draft := form.Draft()
	views.RenderOperationSummary(draft)

	if !r.flags.Yes {
		confirmed, err := prompts.PromptConfirm("Confirm this operation?", true)
		if err != nil {
			return err
		}
		if !confirmed {
			pterm.Info.Println("Operation discarded")
			return nil
		}
	}

	if err := form.Submit(ctx); err != nil {
		return err
	}

	pterm.Success.Println("Transaction submitted successfully!")
	pterm.Info.Println("See it with 'bancli transaction list'")
	return nil
}

func (r *newRunner) flagsMode(userID int64, accounts []model.Account, beneficiaries []model.Beneficiary) (*txform.Controller, error) {
	kind, err := parseKind(r.flags.Kind)
	if err != nil {
		return nil, err
	}

	form := txform.NewController(r.app.Gateway, userID, kind, accounts, beneficiaries)

	if r.flags.From != "" {
		form.SetSourceAccount(r.flags.From)
	}
	if r.flags.To != "" {
		form.SetTargetAccount(r.flags.To)
	}
	form.SetAmount(r.flags.Amount)

	currency := r.flags.Currency
	if currency == "" {
		currency = r.cfg.Defaults.Currency
	}
	form.SetCurrency(currency)
	form.SetDescription(r.flags.Desc)

	if r.flags.ServiceName != "" || r.flags.SupplyCode != "" {
		form.SetServiceDetails(r.flags.ServiceName, r.flags.SupplyCode)
	}

	if _, err := form.Validate(); err != nil {
		return nil, err
	}

	return form, nil
}

func (r *newRunner) interactiveMode(userID int64, accounts []model.Account, beneficiaries []model.Beneficiary) (*txform.Controller, error) {
	kind, err := prompts.PromptTransactionKind()
	if err != nil {
		return nil, err
	}

	form := txform.NewController(r.app.Gateway, userID, kind, accounts, beneficiaries)

	// Source account: everything but deposits draws from one of our own.
	if kind != txform.KindDeposit {
		source, err := prompts.PromptOwnAccount(accounts, sourcePromptFor(kind))
		if err != nil {
			return nil, err
		}
		form.SetSourceAccount(source)
	}

	switch kind {
	case txform.KindTransfer:
		target, err := prompts.PromptTargetAccount(beneficiaries, nil)
		if err != nil {
			return nil, err
		}
		form.SetTargetAccount(target)
	case txform.KindDeposit:
		target, err := prompts.PromptTargetAccount(beneficiaries, accounts)
		if err != nil {
			return nil, err
		}
		form.SetTargetAccount(target)
	case txform.KindPayment:
		serviceName, supplyCode, err := prompts.PromptServiceDetails()
		if err != nil {
			return nil, err
		}
		form.SetServiceDetails(serviceName, supplyCode)
	}

	currency, err := prompts.PromptCurrency(constants.SupportedCurrencies, r.cfg.Defaults.Currency)
	if err != nil {
		return nil, err
	}
	form.SetCurrency(currency)

	amount, err := prompts.PromptAmount(currency)
	if err != nil {
		return nil, err
	}
	form.SetAmount(amount)

	description, err := prompts.PromptInput("Description / reference:", "", validation.ValidateRequired("description"))
	if err != nil {
		return nil, err
	}
	form.SetDescription(description)

	return form, nil
}

func sourcePromptFor(kind txform.Kind) string {
	switch kind {
	case txform.KindWithdraw:
		return "Withdraw from:"
	case txform.KindPayment:
		return "Pay from:"
	default:
		return "Source account (charged):"
	}
}

func parseKind(raw string) (txform.Kind, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "TRANSFER", "":
		return txform.KindTransfer, nil
	case "DEPOSIT":
		return txform.KindDeposit, nil
	case "WITHDRAW", "WITHDRAWAL":
		return txform.KindWithdraw, nil
	case "PAYMENT", "PAY":
		return txform.KindPayment, nil
	default:
		return "", fmt.Errorf("unknown transaction type '%s' (use TRANSFER, DEPOSIT, WITHDRAW or PAYMENT)", raw)
	}
}
