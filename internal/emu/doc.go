// Package emu encodes named terminal keys as VT escape sequences.
package emu
