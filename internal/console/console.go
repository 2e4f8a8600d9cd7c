// Package console implements the interactive text surface over the ledger
// engine: the main menu, the input prompt loops, and table rendering of
// statements and rule listings.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/awesomegic/gicbank/internal/auditlog"
	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/request"
)

// UI drives one interactive session. Input and output are plain streams so
// tests can script a session end to end.
type UI struct {
	svc      *bank.Service
	in       *bufio.Scanner
	out      io.Writer
	bankName string
	audit    *auditlog.Logger
}

// New creates a console over the engine. bankName is the display name used
// in the greeting and sign-off.
func New(svc *bank.Service, in io.Reader, out io.Writer, bankName string) *UI {
	return &UI{
		svc:      svc,
		in:       bufio.NewScanner(in),
		out:      out,
		bankName: bankName,
	}
}

// SetAuditLog attaches an operation audit trail. A nil logger is allowed
// and disables auditing.
func (u *UI) SetAuditLog(logger *auditlog.Logger) {
	u.audit = logger
}

// Run loops on the main menu until the user quits or input ends.
func (u *UI) Run() {
	for {
		fmt.Fprintf(u.out, "Welcome to %s! What would you like to do?\n", u.bankName)
		fmt.Fprintln(u.out, "[T] Input transactions")
		fmt.Fprintln(u.out, "[I] Define interest rules")
		fmt.Fprintln(u.out, "[P] Print statement")
		fmt.Fprintln(u.out, "[Q] Quit")
		fmt.Fprint(u.out, ">")

		choice, ok := u.readLine()
		if !ok {
			return
		}
		switch strings.ToUpper(strings.TrimSpace(choice)) {
		case "T":
			u.inputTransactions()
		case "I":
			u.defineInterestRules()
		case "P":
			u.printStatement()
		case "Q":
			fmt.Fprintf(u.out, "Thank you for banking with %s.\nHave a nice day!\n", u.bankName)
			return
		default:
			fmt.Fprintln(u.out, "Invalid option. Please choose again.")
		}
	}
}

func (u *UI) inputTransactions() {
	for {
		fmt.Fprintln(u.out, "Please enter transaction details in <Date(YYYYMMdd)> <Account> <Type> <Amount> format (or enter blank to go back to main menu):")
		fmt.Fprint(u.out, ">")
		line, ok := u.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		req, err := parseTransaction(line)
		if err == nil {
			err = req.Validate()
		}
		if err == nil {
			_, err = u.svc.PostTransaction(req)
		}
		u.record("post-transaction", req.AccountID, line, err)
		if err != nil {
			fmt.Fprintln(u.out, message(err))
			continue
		}

		fmt.Fprintln(u.out, "Transaction added successfully.")
		u.renderStatement(request.Statement{
			AccountID: req.AccountID,
			Year:      req.Date.Year(),
			Month:     int(req.Date.Month()),
		})
	}
}

func (u *UI) defineInterestRules() {
	for {
		fmt.Fprintln(u.out, "Please enter interest rules details in <Date(YYYYMMdd)> <RuleId> <Rate in %> format (or enter blank to go back to main menu):")
		fmt.Fprint(u.out, ">")
		line, ok := u.readLine()
		if !ok || strings.TrimSpace(line) == "" {
			return
		}

		req, err := parseInterestRule(line)
		if err == nil {
			err = req.Validate()
		}
		if err == nil {
			err = u.svc.PostInterestRule(req)
		}
		u.record("post-interest-rule", req.RuleID, line, err)
		if err != nil {
			fmt.Fprintln(u.out, message(err))
			continue
		}

		fmt.Fprintln(u.out, "Interest rule added/updated successfully.")
		u.renderRules()
	}
}

func (u *UI) printStatement() {
	fmt.Fprintln(u.out, "Please enter account and month to generate the statement <Account> <Year><Month>(YYYYMM) (or enter blank to go back to main menu):")
	fmt.Fprint(u.out, ">")
	line, ok := u.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return
	}

	req, err := parseStatement(line)
	if err != nil {
		fmt.Fprintln(u.out, message(err))
		return
	}
	u.renderStatement(req)
}

func (u *UI) renderStatement(req request.Statement) {
	rows, err := u.svc.Statement(req)
	u.record("statement", req.AccountID, fmt.Sprintf("%04d-%02d", req.Year, req.Month), err)
	if err != nil {
		fmt.Fprintln(u.out, message(err))
		return
	}

	fmt.Fprintf(u.out, "Account: %s\n", req.AccountID)
	fmt.Fprintln(u.out, "| Date     | Txn Id      | Type | Amount | Balance |")
	for _, row := range rows {
		fmt.Fprintf(u.out, "| %s | %-11s | %-4s | %s | %s |\n",
			row.Date.Format("20060102"), row.ID, row.Kind,
			row.Amount.StringFixed(2), row.Balance.StringFixed(2))
	}
}

func (u *UI) renderRules() {
	fmt.Fprintln(u.out, "Interest rules:")
	fmt.Fprintln(u.out, "| Date     | RuleId | Rate (%) |")
	for _, r := range u.svc.Rules() {
		fmt.Fprintf(u.out, "| %s | %-6s | %8s |\n",
			r.Date.Format("20060102"), r.RuleID, r.RatePercent.StringFixed(2))
	}
}

func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return u.in.Text(), true
}

func (u *UI) record(op, subject, detail string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = err.Error()
	}
	if logErr := u.audit.Record(time.Now(), op, subject, detail, outcome); logErr != nil {
		fmt.Fprintf(u.out, "warning: audit log: %v\n", logErr)
	}
}

// message renders an error the way the menus present feedback: capitalized,
// full stop.
func message(err error) string {
	s := err.Error()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:] + "."
}
