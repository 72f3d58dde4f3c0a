//go:build darwin

package native

import (
	"golang.design/x/hotkey"

	hk "github.com/micmute/micmute/internal/daemon/hotkey"
)

var modifiers = map[hk.Modifier]hotkey.Modifier{
	hk.ModSuper: hotkey.ModCmd,
	hk.ModCtrl:  hotkey.ModCtrl,
	hk.ModAlt:   hotkey.ModOption,
	hk.ModShift: hotkey.ModShift,
}
