package tui

import (
	"time"

	"launchpad/pkg/types"
)

// frameMsg marks one frame tick
type frameMsg time.Time

// clearColorMsg carries a clear color reloaded from the config file
type clearColorMsg struct {
	Color types.Color
}

// reloadErrMsg reports a config file that changed but could not be loaded
type reloadErrMsg struct {
	Err error
}
