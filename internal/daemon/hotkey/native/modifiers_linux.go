//go:build linux

package native

import (
	"golang.design/x/hotkey"

	hk "github.com/micmute/micmute/internal/daemon/hotkey"
)

// Mod1 is Alt and Mod4 is Super on the default X11 modifier map.
var modifiers = map[hk.Modifier]hotkey.Modifier{
	hk.ModSuper: hotkey.Mod4,
	hk.ModCtrl:  hotkey.ModCtrl,
	hk.ModAlt:   hotkey.Mod1,
	hk.ModShift: hotkey.ModShift,
}
