package key

import (
	"fmt"
	"strings"
)

// Code identifies a physical key, independent of modifier state.
// Codes name positions on the keyboard, not characters: the active keymap
// profile decides which rune a code resolves to.
type Code uint16

const (
	// CodeUnknown represents an unrecognized key.
	CodeUnknown Code = iota

	// Letter keys
	CodeA
	CodeB
	CodeC
	CodeD
	CodeE
	CodeF
	CodeG
	CodeH
	CodeI
	CodeJ
	CodeK
	CodeL
	CodeM
	CodeN
	CodeO
	CodeP
	CodeQ
	CodeR
	CodeS
	CodeT
	CodeU
	CodeV
	CodeW
	CodeX
	CodeY
	CodeZ

	// Digit keys
	Code0
	Code1
	Code2
	Code3
	Code4
	Code5
	Code6
	Code7
	Code8
	Code9

	// Whitespace and editing keys
	CodeSpace
	CodeTab
	CodeEnter
	CodeDel

	// Punctuation keys
	CodeComma
	CodePeriod
	CodeSlash
	CodeBackslash
	CodeSemicolon
	CodeApostrophe
	CodeGrave
	CodeMinus
	CodeEquals
	CodeLeftBracket
	CodeRightBracket

	// Modifier keys
	CodeShiftLeft
	CodeShiftRight
	CodeAltLeft
	CodeAltRight
	CodeCtrlLeft
	CodeCtrlRight

	// Directional pad
	CodeDPadUp
	CodeDPadDown
	CodeDPadLeft
	CodeDPadRight
	CodeDPadCenter

	// Device keys
	CodeVolumeUp
	CodeVolumeDown
	CodeCamera
	CodeSearch
)

// codeNames maps codes to canonical lowercase names.
var codeNames = map[Code]string{
	CodeUnknown:      "unknown",
	CodeA:            "a",
	CodeB:            "b",
	CodeC:            "c",
	CodeD:            "d",
	CodeE:            "e",
	CodeF:            "f",
	CodeG:            "g",
	CodeH:            "h",
	CodeI:            "i",
	CodeJ:            "j",
	CodeK:            "k",
	CodeL:            "l",
	CodeM:            "m",
	CodeN:            "n",
	CodeO:            "o",
	CodeP:            "p",
	CodeQ:            "q",
	CodeR:            "r",
	CodeS:            "s",
	CodeT:            "t",
	CodeU:            "u",
	CodeV:            "v",
	CodeW:            "w",
	CodeX:            "x",
	CodeY:            "y",
	CodeZ:            "z",
	Code0:            "0",
	Code1:            "1",
	Code2:            "2",
	Code3:            "3",
	Code4:            "4",
	Code5:            "5",
	Code6:            "6",
	Code7:            "7",
	Code8:            "8",
	Code9:            "9",
	CodeSpace:        "space",
	CodeTab:          "tab",
	CodeEnter:        "enter",
	CodeDel:          "del",
	CodeComma:        "comma",
	CodePeriod:       "period",
	CodeSlash:        "slash",
	CodeBackslash:    "backslash",
	CodeSemicolon:    "semicolon",
	CodeApostrophe:   "apostrophe",
	CodeGrave:        "grave",
	CodeMinus:        "minus",
	CodeEquals:       "equals",
	CodeLeftBracket:  "leftbracket",
	CodeRightBracket: "rightbracket",
	CodeShiftLeft:    "shiftleft",
	CodeShiftRight:   "shiftright",
	CodeAltLeft:      "altleft",
	CodeAltRight:     "altright",
	CodeCtrlLeft:     "ctrlleft",
	CodeCtrlRight:    "ctrlright",
	CodeDPadUp:       "dpadup",
	CodeDPadDown:     "dpaddown",
	CodeDPadLeft:     "dpadleft",
	CodeDPadRight:    "dpadright",
	CodeDPadCenter:   "dpadcenter",
	CodeVolumeUp:     "volumeup",
	CodeVolumeDown:   "volumedown",
	CodeCamera:       "camera",
	CodeSearch:       "search",
}

// String returns the canonical name for the code.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint16(c))
}

// codeNameMap is the reverse of codeNames, built at init.
var codeNameMap = func() map[string]Code {
	m := make(map[string]Code, len(codeNames))
	for c, name := range codeNames {
		m[name] = c
	}
	return m
}()

// CodeFromName returns the Code for a canonical name (case-insensitive).
// Returns CodeUnknown if the name is not recognized.
func CodeFromName(name string) Code {
	if c, ok := codeNameMap[strings.ToLower(strings.TrimSpace(name))]; ok {
		return c
	}
	return CodeUnknown
}

// IsLetter returns true for the letter keys a-z.
func (c Code) IsLetter() bool {
	return c >= CodeA && c <= CodeZ
}

// IsDigit returns true for the digit keys 0-9.
func (c Code) IsDigit() bool {
	return c >= Code0 && c <= Code9
}

// IsModifier returns true for Shift, Alt, and Ctrl keys on either side.
func (c Code) IsModifier() bool {
	return c >= CodeShiftLeft && c <= CodeCtrlRight
}

// IsDPad returns true for the directional pad keys, including center.
func (c Code) IsDPad() bool {
	return c >= CodeDPadUp && c <= CodeDPadCenter
}

// IsDirectional returns true for the four directional pad keys.
func (c Code) IsDirectional() bool {
	return c >= CodeDPadUp && c <= CodeDPadRight
}
