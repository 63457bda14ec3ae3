// Package tui provides the interactive picker popup for colorpick.
//
// The popup is built on Bubble Tea and shows the current color together
// with its formatted value, nearest name and contrast verdicts, the recent
// history, harmonies derived from the current color, and the saved palettes.
//
// # Architecture
//
// The TUI follows a Model-View-Controller split:
//
//   - Model (internal/tui/model/): popup state, key bindings, cursor and
//     focus helpers, and the commands that run samplers in the background
//   - View (internal/tui/view/): renders the main layout and the help, log
//     and export overlays
//   - Controller (internal/tui/controller/): routes Bubble Tea messages,
//     turns key presses into session operations, and owns the program
//     lifecycle
//
// Shared building blocks live in internal/tui/components/ (panels, status
// bar, header, swatches) and internal/tui/design/ (adaptive colors and
// styles).
//
// # Message Flow
//
//  1. A key press or a finished sample arrives as a Bubble Tea message
//  2. The controller applies it to the session state in the model
//  3. Every mutation is saved through the configured store
//  4. The view renders the updated state
//
// Sampling runs outside the update loop. Each run is tagged with a sequence
// number; results of cancelled or superseded runs are dropped.
//
// # Keyboard Navigation
//
//   - p: pick a color (hex value or image@x,y[,radius])
//   - f/F: cycle the output format
//   - c: copy the current value
//   - Tab/Shift+Tab: move between history, harmonies and palettes
//   - Enter: select the focused color or activate the focused palette
//   - +/-, ]/[: adjust lightness and saturation
//   - n, a, d: new palette, add current color, delete
//   - e: export overlay, L: activity log, ?: help
//   - q/Ctrl+C: quit
//
// # Usage Example
//
//	p, err := controller.NewProgram(model.TUIConfig{
//	    State:      state,
//	    Names:      finder,
//	    Store:      fileStore,
//	    Copy:       clipboard.WriteAll,
//	    NewSampler: newSampler,
//	}, logChannel)
//	if err != nil {
//	    return err
//	}
//	if _, err := p.Run(); err != nil {
//	    return err
//	}
package tui
