package execshell

import (
	"strings"
	"unicode"
)

const (
	argumentLineUnterminatedQuoteReasonConstant = "unterminated quote"
	singleQuoteRune                             = '\''
	doubleQuoteRune                             = '"'
	backslashRune                               = '\\'
)

// decodeArgumentLine splits a raw argument line into argv. Whitespace separates words,
// single and double quotes group them, and backslashes escape the next character.
// Every other character, including $ | ; # > ~ and =, is literal.
func decodeArgumentLine(argumentLine string) ([]string, error) {
	var (
		decodedArguments []string
		currentWord      strings.Builder
		wordStarted      bool
		activeQuote      rune
		escapePending    bool
	)

	finishWord := func() {
		if wordStarted {
			decodedArguments = append(decodedArguments, currentWord.String())
		}
		currentWord.Reset()
		wordStarted = false
	}

	for _, character := range argumentLine {
		switch {
		case escapePending:
			escapePending = false
			if activeQuote == doubleQuoteRune && !escapableInDoubleQuotes(character) {
				currentWord.WriteRune(backslashRune)
			}
			currentWord.WriteRune(character)
		case activeQuote == singleQuoteRune:
			if character == singleQuoteRune {
				activeQuote = 0
				continue
			}
			currentWord.WriteRune(character)
		case activeQuote == doubleQuoteRune:
			switch character {
			case doubleQuoteRune:
				activeQuote = 0
			case backslashRune:
				escapePending = true
			default:
				currentWord.WriteRune(character)
			}
		case character == backslashRune:
			escapePending = true
			wordStarted = true
		case character == singleQuoteRune || character == doubleQuoteRune:
			activeQuote = character
			wordStarted = true
		case unicode.IsSpace(character):
			finishWord()
		default:
			currentWord.WriteRune(character)
			wordStarted = true
		}
	}

	if activeQuote != 0 {
		return nil, ArgumentLineError{ArgumentLine: argumentLine, Reason: argumentLineUnterminatedQuoteReasonConstant}
	}
	if escapePending {
		currentWord.WriteRune(backslashRune)
	}
	finishWord()

	return decodedArguments, nil
}

func escapableInDoubleQuotes(character rune) bool {
	switch character {
	case doubleQuoteRune, backslashRune, '$', '`':
		return true
	default:
		return false
	}
}
