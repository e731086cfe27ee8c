package input

// Key is a platform virtual-key code, usable as an index into State.Keys.
// 'A' to 'Z' and '0' to '9' are their own codes.
type Key uint8

const (
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyShift     Key = 16
	KeyControl   Key = 17
	KeyAlt       Key = 18
	KeyPause     Key = 19
	KeyCapsLock  Key = 20
	KeyEsc       Key = 27
	KeySpace     Key = 32
	KeyPgUp      Key = 33
	KeyPgDn      Key = 34
	KeyEnd       Key = 35
	KeyHome      Key = 36
	KeyLeft      Key = 37
	KeyUp        Key = 38
	KeyRight     Key = 39
	KeyDown      Key = 40
	KeyInsert    Key = 45
	KeyDel       Key = 46
	KeyMenu      Key = 93

	Key0Pad     Key = 96
	Key1Pad     Key = 97
	Key2Pad     Key = 98
	Key3Pad     Key = 99
	Key4Pad     Key = 100
	Key5Pad     Key = 101
	Key6Pad     Key = 102
	Key7Pad     Key = 103
	Key8Pad     Key = 104
	Key9Pad     Key = 105
	KeyAsterisk Key = 106
	KeyPlusPad  Key = 107
	KeyMinusPad Key = 109
	KeyDelPad   Key = 110
	KeySlashPad Key = 111

	KeyF1  Key = 112
	KeyF2  Key = 113
	KeyF3  Key = 114
	KeyF4  Key = 115
	KeyF5  Key = 116
	KeyF6  Key = 117
	KeyF7  Key = 118
	KeyF8  Key = 119
	KeyF9  Key = 120
	KeyF10 Key = 121
	KeyF11 Key = 122
	KeyF12 Key = 123

	KeyNumLock    Key = 144
	KeyScrLock    Key = 145
	KeyColon      Key = 186
	KeyEquals     Key = 187
	KeyComma      Key = 188
	KeyMinus      Key = 189
	KeyStop       Key = 190
	KeySlash      Key = 191
	KeyQuote      Key = 192
	KeyOpenBrace  Key = 219
	KeyBackslash  Key = 220
	KeyCloseBrace Key = 221
	KeyTilde      Key = 223
)

// Letter returns the key code for an ASCII letter or digit, or false.
func Letter(r rune) (Key, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Key(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return Key(r), true
	}
	return 0, false
}
