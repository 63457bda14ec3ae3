// Package config provides configuration management for colorpick.
//
// Configuration is loaded and merged in the following order, later layers
// overriding earlier ones:
//
//  1. Default configuration (GetDefaultConfig)
//  2. User configuration (~/.config/colorpick/config.yaml)
//  3. Project configuration (./.colorpick/config.yaml)
//  4. Environment variables, read from the process or a ./.env file
//
// When a file is passed with --config, LoadConfigFromPath replaces layers 2
// and 3 with that single file.
//
// # Configuration Structure
//
//	defaultFormat: hsl      # hex, rgb, hsl, rgba, hsla, hex8, tailwind, cssvar
//	autoCopy: true          # copy every pick to the clipboard
//	statePath: ~/colors.yaml
//	names: tailwind         # or css
//	theme: auto             # dark, light or auto
//	sampleRadius: 2         # average a 5x5 square when sampling images
//	logLevel: info
//
// # Environment Variables
//
//	COLORPICK_FORMAT, COLORPICK_STATE, COLORPICK_NAMES, COLORPICK_AUTOCOPY,
//	COLORPICK_THEME, COLORPICK_SAMPLE_RADIUS, COLORPICK_LOG_LEVEL
package config
