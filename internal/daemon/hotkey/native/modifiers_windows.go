//go:build windows

package native

import (
	"golang.design/x/hotkey"

	hk "github.com/micmute/micmute/internal/daemon/hotkey"
)

var modifiers = map[hk.Modifier]hotkey.Modifier{
	hk.ModSuper: hotkey.ModWin,
	hk.ModCtrl:  hotkey.ModCtrl,
	hk.ModAlt:   hotkey.ModAlt,
	hk.ModShift: hotkey.ModShift,
}
