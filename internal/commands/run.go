package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/auditlog"
	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/config"
	"github.com/awesomegic/gicbank/internal/console"
	"github.com/awesomegic/gicbank/internal/importer"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/request"
	"github.com/awesomegic/gicbank/internal/rules"
)

func newRunCommand() *cobra.Command {
	var configPath string
	var importPath string
	var auditPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the interactive banking console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConsole(cmd, configPath, importPath, auditPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to gicbank.yaml")
	cmd.Flags().StringVar(&importPath, "import", "", "CSV file of transactions to post before the console starts")
	cmd.Flags().StringVar(&auditPath, "audit-log", "", "append engine operations to this CSV file")

	return cmd
}

func runConsole(cmd *cobra.Command, configPath, importPath, auditPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if auditPath == "" {
		auditPath = cfg.AuditLog
	}

	svc := bank.NewService(ledger.NewStore(), rules.NewStore())

	for _, seed := range cfg.SeedRules {
		req, err := seedRuleRequest(seed)
		if err != nil {
			return fmt.Errorf("seed rule %q: %w", seed.RuleID, err)
		}
		if err := svc.PostInterestRule(req); err != nil {
			return fmt.Errorf("seed rule %q: %w", seed.RuleID, err)
		}
	}

	if importPath != "" {
		if err := importTransactions(cmd, svc, importPath); err != nil {
			return err
		}
	}

	ui := console.New(svc, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Bank.Name)
	if auditPath != "" {
		ui.SetAuditLog(auditlog.New(auditPath))
	}
	ui.Run()
	return nil
}

func seedRuleRequest(seed config.SeedRule) (request.InterestRule, error) {
	date, err := time.ParseInLocation("20060102", seed.Date, time.UTC)
	if err != nil {
		return request.InterestRule{}, fmt.Errorf("invalid date %q: use YYYYMMdd", seed.Date)
	}
	rate, err := decimal.NewFromString(seed.RatePercent)
	if err != nil {
		return request.InterestRule{}, fmt.Errorf("invalid rate %q", seed.RatePercent)
	}
	return request.InterestRule{Date: date, RuleID: seed.RuleID, RatePercent: rate}, nil
}

func importTransactions(cmd *cobra.Command, svc *bank.Service, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening import file: %w", err)
	}
	defer f.Close()

	rows, err := importer.DefaultRegistry().Get("simple").Parse(f)
	if err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}

	result := importer.Run(svc, rows)
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d transactions from %s\n", result.Posted, len(rows), path)
	for _, rowErr := range result.Errors {
		fmt.Fprintf(cmd.OutOrStdout(), "skipped %v\n", rowErr)
	}
	return nil
}
