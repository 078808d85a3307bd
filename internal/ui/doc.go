// Package ui implements the todo screen as a small set of composable Bubble
// Tea views.
//
// Core pieces:
//   - AppModel: root model owning the item sequence and all child views
//   - ListView: read-only projection of the sequence, one entry per item
//   - EntryForm: the single focusable input; submits through a callback
//   - View: the unit of composition (Init/Update/View, Elm-style)
//
// Data flows one way: mutations go through item.List, and the list's change
// callback rebinds the ListView before the next frame is drawn. Children
// never reach back up into the AppModel.
package ui
