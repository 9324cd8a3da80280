package viewstate

// TabID identifies a navigation item in the sidebar.
type TabID string

const (
	TabDashboard TabID = "dashboard"
	TabRevenue   TabID = "revenue"
	TabUsers     TabID = "users"
	TabSecurity  TabID = "security"
	TabSystem    TabID = "system"
)

// Tab describes one sidebar entry.
type Tab struct {
	ID     TabID
	Label  string
	Locked bool // shown with a lock marker
}

var tabs = []Tab{
	{ID: TabDashboard, Label: "Executive Overview"},
	{ID: TabRevenue, Label: "Revenue Streams", Locked: true},
	{ID: TabUsers, Label: "User Base", Locked: true},
	{ID: TabSecurity, Label: "Security & Compliance", Locked: true},
	{ID: TabSystem, Label: "System Health", Locked: true},
}

// Tabs returns the navigation items in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// IsTab reports whether id names a navigation item.
func IsTab(id string) bool {
	for _, t := range tabs {
		if string(t.ID) == id {
			return true
		}
	}
	return false
}
