// Package ui renders the Sentinel dashboard with Bubble Tea.
//
// # Layout
//
//	┌ header: SENTINEL / Enterprise Core ........ cluster, uptime, plan ┐
//	│ Navigation │ Revenue Trajectory (2/3)        │ Security (1/3)     │
//	│  1-5 items │─────────────────────────────────┼────────────────────│
//	│            │ Operations Log                  │ Core Infrastructure│
//	└ footer: short key help ................................ events, theme ┘
//
// # State
//
// Model is a value type. Selection and modal visibility live in a
// viewstate.Controller held by the model, so every change happens inside
// Update. Feed data arrives by polling state.Store on a tea.Tick every
// refresh interval; the model never writes to the store.
//
// Opening any navigation item or service card shows the Restricted Access
// dialog. While it is open the dialog receives every key; only the close
// bindings (esc, enter, x, q) and ctrl+c have an effect.
//
// # Themes
//
// Sentinel, Nightfox and Slate. T cycles them and the choice is saved to the
// prefs file.
package ui
