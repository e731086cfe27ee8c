package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"cloudview/internal/input"
)

var keyMap = map[glfw.Key]input.Key{
	glfw.KeyBackspace:    input.KeyBackspace,
	glfw.KeyTab:          input.KeyTab,
	glfw.KeyEnter:        input.KeyEnter,
	glfw.KeyKPEnter:      input.KeyEnter,
	glfw.KeyLeftShift:    input.KeyShift,
	glfw.KeyRightShift:   input.KeyShift,
	glfw.KeyLeftControl:  input.KeyControl,
	glfw.KeyRightControl: input.KeyControl,
	glfw.KeyLeftAlt:      input.KeyAlt,
	glfw.KeyRightAlt:     input.KeyAlt,
	glfw.KeyPause:        input.KeyPause,
	glfw.KeyCapsLock:     input.KeyCapsLock,
	glfw.KeyEscape:       input.KeyEsc,
	glfw.KeySpace:        input.KeySpace,
	glfw.KeyPageUp:       input.KeyPgUp,
	glfw.KeyPageDown:     input.KeyPgDn,
	glfw.KeyEnd:          input.KeyEnd,
	glfw.KeyHome:         input.KeyHome,
	glfw.KeyLeft:         input.KeyLeft,
	glfw.KeyUp:           input.KeyUp,
	glfw.KeyRight:        input.KeyRight,
	glfw.KeyDown:         input.KeyDown,
	glfw.KeyInsert:       input.KeyInsert,
	glfw.KeyDelete:       input.KeyDel,
	glfw.KeyMenu:         input.KeyMenu,

	glfw.KeyKP0:        input.Key0Pad,
	glfw.KeyKP1:        input.Key1Pad,
	glfw.KeyKP2:        input.Key2Pad,
	glfw.KeyKP3:        input.Key3Pad,
	glfw.KeyKP4:        input.Key4Pad,
	glfw.KeyKP5:        input.Key5Pad,
	glfw.KeyKP6:        input.Key6Pad,
	glfw.KeyKP7:        input.Key7Pad,
	glfw.KeyKP8:        input.Key8Pad,
	glfw.KeyKP9:        input.Key9Pad,
	glfw.KeyKPMultiply: input.KeyAsterisk,
	glfw.KeyKPAdd:      input.KeyPlusPad,
	glfw.KeyKPSubtract: input.KeyMinusPad,
	glfw.KeyKPDecimal:  input.KeyDelPad,
	glfw.KeyKPDivide:   input.KeySlashPad,

	glfw.KeyF1:  input.KeyF1,
	glfw.KeyF2:  input.KeyF2,
	glfw.KeyF3:  input.KeyF3,
	glfw.KeyF4:  input.KeyF4,
	glfw.KeyF5:  input.KeyF5,
	glfw.KeyF6:  input.KeyF6,
	glfw.KeyF7:  input.KeyF7,
	glfw.KeyF8:  input.KeyF8,
	glfw.KeyF9:  input.KeyF9,
	glfw.KeyF10: input.KeyF10,
	glfw.KeyF11: input.KeyF11,
	glfw.KeyF12: input.KeyF12,

	glfw.KeyNumLock:      input.KeyNumLock,
	glfw.KeyScrollLock:   input.KeyScrLock,
	glfw.KeySemicolon:    input.KeyColon,
	glfw.KeyEqual:        input.KeyEquals,
	glfw.KeyComma:        input.KeyComma,
	glfw.KeyMinus:        input.KeyMinus,
	glfw.KeyPeriod:       input.KeyStop,
	glfw.KeySlash:        input.KeySlash,
	glfw.KeyApostrophe:   input.KeyQuote,
	glfw.KeyLeftBracket:  input.KeyOpenBrace,
	glfw.KeyBackslash:    input.KeyBackslash,
	glfw.KeyRightBracket: input.KeyCloseBrace,
	glfw.KeyGraveAccent:  input.KeyTilde,
}

// virtualKey translates a GLFW key to its virtual-key code.
func virtualKey(k glfw.Key) (input.Key, bool) {
	if k >= glfw.KeyA && k <= glfw.KeyZ || k >= glfw.Key0 && k <= glfw.Key9 {
		// GLFW uses ASCII for these, as do virtual keys
		return input.Key(k), true
	}
	vk, ok := keyMap[k]
	return vk, ok
}

func mouseButton(b glfw.MouseButton) (input.Button, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return input.ButtonLeft, true
	case glfw.MouseButtonRight:
		return input.ButtonRight, true
	case glfw.MouseButtonMiddle:
		return input.ButtonMiddle, true
	}
	return 0, false
}
