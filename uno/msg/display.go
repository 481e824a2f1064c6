package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
)

func Sprintfln(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...) + "\n"
}

func Sprintln(args ...interface{}) string {
	return fmt.Sprintln(args...)
}

// Numbered renders options the way a person picks them, counting from 1.
func Numbered(labels []string) string {
	options := make([]string, 0, len(labels))
	for index, label := range labels {
		options = append(options, fmt.Sprintf("%d. %s", index+1, label))
	}
	return strings.Join(options, " ")
}

func NumberedCards(cards []*card.Card) string {
	labels := make([]string, 0, len(cards))
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	return Numbered(labels)
}
