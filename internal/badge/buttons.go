//go:build ebiten

package badge

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Button is one of the badge's three buttons, mapped to the keyboard
// keys of the same name.
type Button int

// Badge buttons.
const (
	ButtonA Button = iota
	ButtonB
	ButtonC
)

func (b Button) key() ebiten.Key {
	switch b {
	case ButtonA:
		return ebiten.KeyA
	case ButtonB:
		return ebiten.KeyB
	default:
		return ebiten.KeyC
	}
}

// Pressed reports whether the button went down this frame. The badge
// used debounce sleeps for the same purpose: a held button must not
// re-trigger the action it just performed.
func (b Button) Pressed() bool { return inpututil.IsKeyJustPressed(b.key()) }
