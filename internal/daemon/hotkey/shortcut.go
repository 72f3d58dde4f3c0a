// Package hotkey parses the toggle shortcut and keeps it registered with
// the operating system.
package hotkey

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidShortcut is wrapped by every Parse failure.
var ErrInvalidShortcut = errors.New("invalid shortcut")

// Modifier is a platform-neutral shortcut modifier.
type Modifier int

// Modifiers in canonical order.
const (
	ModSuper Modifier = iota // Cmd on macOS, Win on Windows, Super on Linux
	ModCtrl
	ModAlt // Option on macOS
	ModShift
)

func (m Modifier) String() string {
	switch m {
	case ModSuper:
		return "CMD"
	case ModCtrl:
		return "CTRL"
	case ModAlt:
		return "ALT"
	case ModShift:
		return "SHIFT"
	default:
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
}

var modifierNames = map[string]Modifier{
	"CMD":     ModSuper,
	"COMMAND": ModSuper,
	"SUPER":   ModSuper,
	"META":    ModSuper,
	"WIN":     ModSuper,
	"CTRL":    ModCtrl,
	"CONTROL": ModCtrl,
	"ALT":     ModAlt,
	"OPTION":  ModAlt,
	"OPT":     ModAlt,
	"SHIFT":   ModShift,
}

// keyAliases maps accepted spellings onto canonical key names.
var keyAliases = map[string]string{
	"ENTER": "RETURN",
	"ESC":   "ESCAPE",
	"DEL":   "DELETE",
}

// Keys lists the canonical key names a shortcut may use.
var Keys = func() map[string]bool {
	keys := map[string]bool{
		"SPACE": true, "RETURN": true, "ESCAPE": true, "TAB": true, "DELETE": true,
		"LEFT": true, "RIGHT": true, "UP": true, "DOWN": true,
	}
	for c := 'A'; c <= 'Z'; c++ {
		keys[string(c)] = true
	}
	for c := '0'; c <= '9'; c++ {
		keys[string(c)] = true
	}
	for i := 1; i <= 12; i++ {
		keys[fmt.Sprintf("F%d", i)] = true
	}
	return keys
}()

// Shortcut is a parsed key combination.
type Shortcut struct {
	Modifiers []Modifier
	Key       string
}

// Parse parses a combination such as "CMD+SHIFT+M". Tokens are
// case-insensitive and modifiers may appear in any order.
func Parse(s string) (Shortcut, error) {
	if strings.TrimSpace(s) == "" {
		return Shortcut{}, fmt.Errorf("%w: empty", ErrInvalidShortcut)
	}

	var sc Shortcut
	seen := map[Modifier]bool{}
	for _, raw := range strings.Split(s, "+") {
		token := strings.ToUpper(strings.TrimSpace(raw))
		if token == "" {
			return Shortcut{}, fmt.Errorf("%w: %q has an empty key", ErrInvalidShortcut, s)
		}
		if mod, ok := modifierNames[token]; ok {
			if !seen[mod] {
				seen[mod] = true
				sc.Modifiers = append(sc.Modifiers, mod)
			}
			continue
		}
		if alias, ok := keyAliases[token]; ok {
			token = alias
		}
		if !Keys[token] {
			return Shortcut{}, fmt.Errorf("%w: unknown key %q in %q", ErrInvalidShortcut, raw, s)
		}
		if sc.Key != "" {
			return Shortcut{}, fmt.Errorf("%w: %q has more than one key", ErrInvalidShortcut, s)
		}
		sc.Key = token
	}

	if sc.Key == "" {
		return Shortcut{}, fmt.Errorf("%w: %q has no key", ErrInvalidShortcut, s)
	}
	sort.Slice(sc.Modifiers, func(i, j int) bool { return sc.Modifiers[i] < sc.Modifiers[j] })
	return sc, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Shortcut {
	sc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return sc
}

// String returns the canonical form, e.g. "CMD+SHIFT+M".
func (s Shortcut) String() string {
	parts := make([]string, 0, len(s.Modifiers)+1)
	for _, m := range s.Modifiers {
		parts = append(parts, m.String())
	}
	return strings.Join(append(parts, s.Key), "+")
}

// Equal reports whether both shortcuts are the same combination.
func (s Shortcut) Equal(other Shortcut) bool {
	return s.String() == other.String()
}

// IsZero reports whether s is the zero Shortcut.
func (s Shortcut) IsZero() bool {
	return s.Key == ""
}
