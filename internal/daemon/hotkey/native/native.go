// Package native registers shortcuts with the operating system through
// golang.design/x/hotkey.
package native

import (
	"fmt"

	"golang.design/x/hotkey"

	hk "github.com/micmute/micmute/internal/daemon/hotkey"
	"github.com/micmute/micmute/internal/models"
)

// Registrar implements hotkey.Registrar for the running platform.
type Registrar struct{}

// Register implements hotkey.Registrar.
func (Registrar) Register(s hk.Shortcut, notify func(models.HotkeyState)) (func() error, error) {
	key, ok := keys[s.Key]
	if !ok {
		return nil, fmt.Errorf("key %s is not supported on this platform", s.Key)
	}
	mods := make([]hotkey.Modifier, 0, len(s.Modifiers))
	for _, m := range s.Modifiers {
		mod, ok := modifiers[m]
		if !ok {
			return nil, fmt.Errorf("modifier %s is not supported on this platform", m)
		}
		mods = append(mods, mod)
	}

	h := hotkey.New(mods, key)
	if err := h.Register(); err != nil {
		return nil, err
	}

	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			case <-h.Keydown():
				notify(models.HotkeyPressed)
			case <-h.Keyup():
				notify(models.HotkeyReleased)
			}
		}
	}()

	return func() error {
		close(stop)
		return h.Unregister()
	}, nil
}

var keys = map[string]hotkey.Key{
	"SPACE": hotkey.KeySpace, "RETURN": hotkey.KeyReturn, "ESCAPE": hotkey.KeyEscape,
	"TAB": hotkey.KeyTab, "DELETE": hotkey.KeyDelete,
	"LEFT": hotkey.KeyLeft, "RIGHT": hotkey.KeyRight, "UP": hotkey.KeyUp, "DOWN": hotkey.KeyDown,

	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3, "4": hotkey.Key4,
	"5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7, "8": hotkey.Key8, "9": hotkey.Key9,

	"A": hotkey.KeyA, "B": hotkey.KeyB, "C": hotkey.KeyC, "D": hotkey.KeyD, "E": hotkey.KeyE,
	"F": hotkey.KeyF, "G": hotkey.KeyG, "H": hotkey.KeyH, "I": hotkey.KeyI, "J": hotkey.KeyJ,
	"K": hotkey.KeyK, "L": hotkey.KeyL, "M": hotkey.KeyM, "N": hotkey.KeyN, "O": hotkey.KeyO,
	"P": hotkey.KeyP, "Q": hotkey.KeyQ, "R": hotkey.KeyR, "S": hotkey.KeyS, "T": hotkey.KeyT,
	"U": hotkey.KeyU, "V": hotkey.KeyV, "W": hotkey.KeyW, "X": hotkey.KeyX, "Y": hotkey.KeyY,
	"Z": hotkey.KeyZ,

	"F1": hotkey.KeyF1, "F2": hotkey.KeyF2, "F3": hotkey.KeyF3, "F4": hotkey.KeyF4,
	"F5": hotkey.KeyF5, "F6": hotkey.KeyF6, "F7": hotkey.KeyF7, "F8": hotkey.KeyF8,
	"F9": hotkey.KeyF9, "F10": hotkey.KeyF10, "F11": hotkey.KeyF11, "F12": hotkey.KeyF12,
}
