package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
)

func PromptString(port Port, message string) (string, error) {
	port.Println(message)
	input, err := port.ReadLine()
	if err != nil {
		return "", err
	}
	if strings.EqualFold(input, "exit") {
		return "", consts.ErrorsExist
	}
	return input, nil
}

// retry asks again after each invalid answer, at most consts.MaxPromptAttempts times.
func retry(port Port, message string, parse func(string) (interface{}, bool)) (interface{}, error) {
	for attempt := 1; attempt <= consts.MaxPromptAttempts; attempt++ {
		input, err := PromptString(port, message)
		if err != nil {
			return nil, err
		}
		if value, ok := parse(input); ok {
			return value, nil
		}
		Printfln(port, "Invalid input '%s' (%d/%d)", input, attempt, consts.MaxPromptAttempts)
	}
	return nil, consts.ErrorsRetriesExhausted
}

func PromptIntegerInRange(port Port, minimum int, maximum int, message string) (int, error) {
	value, err := retry(port, message, func(input string) (interface{}, bool) {
		number, err := strconv.Atoi(input)
		if err != nil || number < minimum || number > maximum {
			return nil, false
		}
		return number, true
	})
	if err != nil {
		return 0, err
	}
	return value.(int), nil
}

// PromptColor accepts a color name or its position in the list.
func PromptColor(port Port) (color.Color, error) {
	names := make([]string, 0, len(color.Playable))
	for _, c := range color.Playable {
		names = append(names, c.String())
	}
	message := fmt.Sprintf("Select a color: %s", msg.Numbered(names))

	value, err := retry(port, message, func(input string) (interface{}, bool) {
		if number, err := strconv.Atoi(input); err == nil {
			if number < 1 || number > len(color.Playable) {
				return nil, false
			}
			return color.Playable[number-1], true
		}
		chosen, err := color.ByName(input)
		return chosen, err == nil
	})
	if err != nil {
		return nil, err
	}
	return value.(color.Color), nil
}

func PromptYesNo(port Port, message string) (bool, error) {
	value, err := retry(port, message+" (y/n)", func(input string) (interface{}, bool) {
		switch strings.ToLower(input) {
		case "y", "yes":
			return true, true
		case "n", "no":
			return false, true
		}
		return nil, false
	})
	if err != nil {
		return false, err
	}
	return value.(bool), nil
}
