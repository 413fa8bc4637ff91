// Package ui contains the two frontends of the menu navigator and the frame
// renderer they share.
//
// Message flow (Bubble Tea frontend):
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry.
//   - Key presses are translated by the keymap (internal/ui/keymap.go) into
//     state.Event values and handed to dispatch, which applies them to the
//     navigation engine and emits trace events. Reaching the exit state
//     returns tea.Quit.
//
// Byte-level frontend:
//   - Loop clears the screen, renders the current snapshot, then blocks on an
//     EventSource (normally keys.Decoder over a raw-mode terminal) for the
//     next key, again routed through dispatch.
//
// State ownership:
//   - The menu store (internal/menu) is immutable once built.
//   - Cursor state lives in internal/ui/state.Engine; only dispatch mutates it,
//     always from the single interaction loop.
//
// Rendering:
//   - Render turns a state.Snapshot into text: banner, heading bar, the open
//     sub-menu aligned under its heading, and the narration of the previous
//     action. Styles come from internal/theme.
package ui
