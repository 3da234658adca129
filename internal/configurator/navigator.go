package configurator

import "log/slog"

// SlogNavigator logs URL rewrites. The actual address-bar replacement
// happens on whatever client renders the state, which follows the url
// field of the snapshot; the log keeps the rewrite visible server-side.
type SlogNavigator struct{}

func (SlogNavigator) Replace(u URLState) {
	slog.Debug("URL rewrite", "url", u.String())
}
