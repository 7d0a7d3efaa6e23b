package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd      Type = "add"
	TypeView     Type = "view"
	TypeComplete Type = "complete"
	TypeDelete   Type = "delete"
	TypeSave     Type = "save"
	TypeLoad     Type = "load"
	TypeExit     Type = "exit"
)

type ErrorCode string

const (
	ErrCodeInvalidChoice  ErrorCode = "invalid_choice"
	ErrCodeInvalidNumber  ErrorCode = "invalid_number"
	ErrCodeOutOfRange     ErrorCode = "out_of_range"
	ErrCodeHandlerMissing ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MenuItem binds a menu token to the operation it selects.
type MenuItem struct {
	Token string
	Type  Type
	Label string
}

// Menu is the single token-to-operation table, in display order.
var Menu = []MenuItem{
	{Token: "1", Type: TypeAdd, Label: "Add Task"},
	{Token: "2", Type: TypeView, Label: "View Tasks"},
	{Token: "3", Type: TypeComplete, Label: "Mark Task as Complete"},
	{Token: "4", Type: TypeDelete, Label: "Delete Task"},
	{Token: "5", Type: TypeSave, Label: "Save Tasks to File"},
	{Token: "6", Type: TypeLoad, Label: "Load Tasks from File"},
	{Token: "7", Type: TypeExit, Label: "Exit"},
}

type Command struct {
	Type Type
	Raw  string
}

// Parse maps one line of input to a menu command. Only the exact tokens in
// Menu are accepted, after trimming surrounding whitespace.
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	for _, item := range Menu {
		if raw == item.Token {
			return Command{Type: item.Type, Raw: input}, nil
		}
	}
	return Command{}, &CommandError{Code: ErrCodeInvalidChoice, Message: fmt.Sprintf("unsupported choice: %q", raw)}
}

// ChoiceRange describes the valid tokens, e.g. "1-7".
func ChoiceRange() string {
	return Menu[0].Token + "-" + Menu[len(Menu)-1].Token
}

// ParseTaskNumber reads a 1-based task number and checks it against count.
func ParseTaskNumber(input string, count int) (int, error) {
	raw := strings.TrimSpace(input)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &CommandError{Code: ErrCodeInvalidNumber, Message: fmt.Sprintf("not a number: %q", raw)}
	}
	if n < 1 || n > count {
		return 0, &CommandError{Code: ErrCodeOutOfRange, Message: fmt.Sprintf("task number %d outside 1-%d", n, count)}
	}
	return n, nil
}
