package utils

import (
	"fmt"
	"strings"
	"unicode"
)

func CombineStringsWithNewline(strs []string) string {
	return strings.Join(strs, "\n")
}

func CombineStringsWithComma(strs []string) string {
	return strings.Join(strs, ", ")
}

// SplitArgs splits a command line into arguments,
// treating single or double quoted sections as a single argument.
//
// Returns an error if the line contains an unterminated quote.
func SplitArgs(line string) ([]string, error) {
	var args []string
	var current strings.Builder
	var quote rune
	inToken := false

	for _, char := range line {
		switch {
		case quote != 0:
			if char == quote {
				quote = 0
			} else {
				current.WriteRune(char)
			}
		case char == '"' || char == '\'':
			quote = char
			inToken = true
		case unicode.IsSpace(char):
			if inToken {
				args = append(args, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(char)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf(
			"error %d: unterminated quote in %q",
			INPUT_ERROR,
			line,
		)
	}
	if inToken {
		args = append(args, current.String())
	}
	return args, nil
}
