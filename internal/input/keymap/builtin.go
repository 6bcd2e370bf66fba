package keymap

import (
	"github.com/dshills/keybridge/internal/input/key"
)

// US returns the built-in US QWERTY layout.
func US() *Layout {
	l := NewLayout("us")

	letters := []struct {
		code key.Code
		r    rune
	}{
		{key.CodeA, 'a'}, {key.CodeB, 'b'}, {key.CodeC, 'c'}, {key.CodeD, 'd'},
		{key.CodeE, 'e'}, {key.CodeF, 'f'}, {key.CodeG, 'g'}, {key.CodeH, 'h'},
		{key.CodeI, 'i'}, {key.CodeJ, 'j'}, {key.CodeK, 'k'}, {key.CodeL, 'l'},
		{key.CodeM, 'm'}, {key.CodeN, 'n'}, {key.CodeO, 'o'}, {key.CodeP, 'p'},
		{key.CodeQ, 'q'}, {key.CodeR, 'r'}, {key.CodeS, 's'}, {key.CodeT, 't'},
		{key.CodeU, 'u'}, {key.CodeV, 'v'}, {key.CodeW, 'w'}, {key.CodeX, 'x'},
		{key.CodeY, 'y'}, {key.CodeZ, 'z'},
	}
	for _, lt := range letters {
		l.Bind(lt.code, lt.r, lt.r-('a'-'A'))
	}

	digits := []struct {
		code    key.Code
		base    rune
		shifted rune
	}{
		{key.Code1, '1', '!'}, {key.Code2, '2', '@'}, {key.Code3, '3', '#'},
		{key.Code4, '4', '$'}, {key.Code5, '5', '%'}, {key.Code6, '6', '^'},
		{key.Code7, '7', '&'}, {key.Code8, '8', '*'}, {key.Code9, '9', '('},
		{key.Code0, '0', ')'},
	}
	for _, d := range digits {
		l.Bind(d.code, d.base, d.shifted)
	}

	l.Bind(key.CodeSpace, ' ', 0)
	l.Bind(key.CodeTab, '\t', 0)
	l.Bind(key.CodeComma, ',', '<')
	l.Bind(key.CodePeriod, '.', '>')
	l.Bind(key.CodeSlash, '/', '?')
	l.Bind(key.CodeBackslash, '\\', '|')
	l.Bind(key.CodeSemicolon, ';', ':')
	l.Bind(key.CodeApostrophe, '\'', '"')
	l.Bind(key.CodeGrave, '`', '~')
	l.Bind(key.CodeMinus, '-', '_')
	l.Bind(key.CodeEquals, '=', '+')
	l.Bind(key.CodeLeftBracket, '[', '{')
	l.Bind(key.CodeRightBracket, ']', '}')

	return l
}
