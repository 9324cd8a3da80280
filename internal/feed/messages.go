package feed

import "strings"

// Category groups canned messages for colouring in the operations log.
type Category int

const (
	CategorySystem Category = iota
	CategorySecurity
	CategoryPayment
)

func (c Category) String() string {
	switch c {
	case CategorySecurity:
		return "security"
	case CategoryPayment:
		return "payment"
	default:
		return "system"
	}
}

var messages = []string{
	"Payment Gateway: Transaction #8X92 verified ($149.00)",
	"Auth Service: New user registration from DE (Frankfurt)",
	"CRM Sync: 45 leads exported to Salesforce",
	"System: Database snapshot backed up to S3 Glacier",
	"Security: SSL Certificate auto-renewed (Let's Encrypt)",
	"API: Latency optimization detected (12ms -> 8ms)",
	"Audit: GDPR Compliance Scan passed",
	"Billing: Invoice #2024-092 generated successfully",
}

// Messages returns a copy of the canned message set.
func Messages() []string {
	out := make([]string, len(messages))
	copy(out, messages)
	return out
}

// Contains reports whether msg is one of the canned messages.
func Contains(msg string) bool {
	for _, m := range messages {
		if m == msg {
			return true
		}
	}
	return false
}

// Classify derives the category of a message. Security wins over Payment.
func Classify(msg string) Category {
	switch {
	case strings.Contains(msg, "Security"):
		return CategorySecurity
	case strings.Contains(msg, "Payment"):
		return CategoryPayment
	default:
		return CategorySystem
	}
}
