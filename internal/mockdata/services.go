package mockdata

// Service is a fake infrastructure component shown as a card.
type Service struct {
	Name   string
	Status string
	Load   int // percent
}

// Idle reports whether the service is shown with a muted status.
func (s Service) Idle() bool {
	return s.Status == "Idle"
}

var services = []Service{
	{Name: "Auth Server (OAuth2)", Status: "Active", Load: 12},
	{Name: "Payment Gateway (Stripe)", Status: "Processing", Load: 45},
	{Name: "Data Warehouse", Status: "Syncing", Load: 67},
	{Name: "Notification Engine", Status: "Idle", Load: 2},
}

// Services returns the infrastructure cards in display order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}
