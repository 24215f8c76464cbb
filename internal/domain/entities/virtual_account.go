package entities

import (
	"fmt"
	"strings"
	"time"
)

var bankNames = map[string]string{
	"KOOKMIN": "국민은행",
	"SHINHAN": "신한은행",
	"WOORI":   "우리은행",
	"NH":      "농협은행",
}

// BankName maps a bank code to its display name, falling back to the code.
func BankName(code string) string {
	if name, ok := bankNames[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}

// VirtualAccount is an issued deposit account.
type VirtualAccount struct {
	Bank          string `json:"bank"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	AccountHolder string `json:"account_holder"`
	DueDate       string `json:"due_date,omitempty"`
	DueDateText   string `json:"due_date_text"`
}

// NewVirtualAccount fills the display fields from the raw issuance data.
func NewVirtualAccount(bank, accountNumber, accountHolder, dueDate string) VirtualAccount {
	return VirtualAccount{
		Bank:          bank,
		BankName:      BankName(bank),
		AccountNumber: accountNumber,
		AccountHolder: accountHolder,
		DueDate:       dueDate,
		DueDateText:   FormatDueDate(dueDate),
	}
}

// VirtualAccountInput is what the buyer filled in the virtual-account section.
type VirtualAccountInput struct {
	Bank          string `json:"bank,omitempty"`
	DepositorName string `json:"depositor_name,omitempty"`
}

var kst = time.FixedZone("KST", 9*60*60)

var dueDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// FormatDueDate renders a deposit deadline as "2006.01.02 15:04까지" in KST.
// Values without a zone are read as KST. An empty or unparsable value falls
// back to "24시간 내".
func FormatDueDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "24시간 내"
	}
	for _, layout := range dueDateLayouts {
		t, err := time.ParseInLocation(layout, raw, kst)
		if err != nil {
			continue
		}
		t = t.In(kst)
		return fmt.Sprintf("%04d.%02d.%02d %02d:%02d까지", t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute())
	}
	return "24시간 내"
}
