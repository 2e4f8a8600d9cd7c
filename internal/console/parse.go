package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/model"
	"github.com/awesomegic/gicbank/internal/request"
)

const (
	dateFormat  = "20060102"
	monthFormat = "200601"
)

func parseTransaction(line string) (request.Transaction, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return request.Transaction{}, fmt.Errorf("expected <Date> <Account> <Type> <Amount>, got %d fields", len(fields))
	}

	date, err := time.ParseInLocation(dateFormat, fields[0], time.UTC)
	if err != nil {
		return request.Transaction{}, fmt.Errorf("invalid date %q: use YYYYMMdd", fields[0])
	}

	amount, err := decimal.NewFromString(fields[3])
	if err != nil {
		return request.Transaction{}, fmt.Errorf("invalid amount %q", fields[3])
	}

	return request.Transaction{
		Date:      date,
		AccountID: fields[1],
		Kind:      model.TransactionKind(strings.ToUpper(fields[2])),
		Amount:    amount,
	}, nil
}

func parseInterestRule(line string) (request.InterestRule, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return request.InterestRule{}, fmt.Errorf("expected <Date> <RuleId> <Rate>, got %d fields", len(fields))
	}

	date, err := time.ParseInLocation(dateFormat, fields[0], time.UTC)
	if err != nil {
		return request.InterestRule{}, fmt.Errorf("invalid date %q: use YYYYMMdd", fields[0])
	}

	rate, err := decimal.NewFromString(fields[2])
	if err != nil {
		return request.InterestRule{}, fmt.Errorf("invalid rate %q", fields[2])
	}

	return request.InterestRule{
		Date:        date,
		RuleID:      fields[1],
		RatePercent: rate,
	}, nil
}

func parseStatement(line string) (request.Statement, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return request.Statement{}, fmt.Errorf("expected <Account> <YYYYMM>, got %d fields", len(fields))
	}

	month, err := time.ParseInLocation(monthFormat, fields[1], time.UTC)
	if err != nil {
		return request.Statement{}, fmt.Errorf("invalid month %q: use YYYYMM", fields[1])
	}

	return request.Statement{
		AccountID: fields[0],
		Year:      month.Year(),
		Month:     int(month.Month()),
	}, nil
}
