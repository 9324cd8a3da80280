package viewstate

// State is the in-memory selection and visibility state of the dashboard.
type State struct {
	ActiveTab    TabID
	ModalVisible bool
}

// Controller owns a State. It is held by value inside the UI model, so every
// mutation happens on the Bubble Tea event loop.
type Controller struct {
	state   State
	trigger string
}

// New returns a controller showing the dashboard tab with the modal hidden.
func New() Controller {
	return Controller{state: State{ActiveTab: TabDashboard}}
}

// State returns a copy of the current state.
func (c Controller) State() State {
	return c.state
}

// SelectTab makes id the active tab. Unknown ids are ignored and reported
// with false.
func (c *Controller) SelectTab(id string) bool {
	if !IsTab(id) {
		return false
	}
	c.state.ActiveTab = TabID(id)
	return true
}

// Navigate handles activation of any navigation item or service card. Every
// control opens the restricted access modal; the active tab never changes.
func (c *Controller) Navigate(id string) {
	c.trigger = id
	c.OpenModal()
}

// OpenModal shows the restricted access modal.
func (c *Controller) OpenModal() {
	c.state.ModalVisible = true
}

// CloseModal hides the restricted access modal.
func (c *Controller) CloseModal() {
	c.state.ModalVisible = false
}

// ModalVisible reports whether the restricted access modal is shown.
func (c Controller) ModalVisible() bool {
	return c.state.ModalVisible
}

// Trigger returns the id of the control that last called Navigate.
func (c Controller) Trigger() string {
	return c.trigger
}
