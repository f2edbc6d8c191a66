// Package config loads the tabgroup demo configuration from TOML.
//
// The file lives at ~/.config/tabgroup/config.toml unless a path is given.
// A missing file is not an error: Default supplies two sample forms and
// all controller options off. Empty values fall back to defaults.
//
//	[options]
//	auto_focus = true
//	use_arrows = false
//	debug = false
//	passive_auto_focus = false
//	disable_shift_tab = false
//
//	[log]
//	path = "~/.local/state/tabgroup/tabgroup.log"
//	level = "debug"
//
//	[trace]
//	endpoint = "localhost:4318"   # OTLP/HTTP; empty disables export
//
//	[[forms]]
//	title = "Shipping"
//	[[forms.sections]]
//	title = "Recipient"
//	[[forms.sections.fields]]
//	label = "First name"
//	tabindex = "1"
//
// Field tabindex values are kept as raw strings so that "", "0", "-1" and
// non-numeric text reach the focus controller unchanged.
package config
