package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeGenerate Type = "generate"
	TypeRegen    Type = "regen"
	TypeUndo     Type = "undo"
	TypeRefresh  Type = "refresh"
	TypeNewWeek  Type = "newweek"
	TypeReset    Type = "reset"
	TypeShow     Type = "show"
	TypeAdd      Type = "add"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type ShowArgs struct {
	Panel string
}

// AddArgs is a quick task line: `add <day 1-7> <start>-<end> <name...>`.
type AddArgs struct {
	DayIndex  int
	TimeStart string
	TimeEnd   string
	Name      string
}

type Command struct {
	Type Type
	Raw  string
	Show *ShowArgs
	Add  *AddArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeGenerate, TypeRegen, TypeUndo, TypeRefresh, TypeNewWeek, TypeReset:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", head)}
		}
		return Command{Type: Type(head), Raw: input}, nil
	case TypeShow:
		return parseShow(input, args)
	case TypeAdd:
		return parseAdd(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

var knownPanels = map[string]bool{
	"setup":     true,
	"calendar":  true,
	"dashboard": true,
	"archive":   true,
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a panel name"}
	}
	panel := strings.ToLower(args[0])
	if !knownPanels[panel] {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown panel: %s", panel)}
	}
	return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Panel: panel}}, nil
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) < 3 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires day, time range, and name"}
	}
	day, err := strconv.Atoi(args[0])
	if err != nil || day < 1 || day > 7 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("day must be 1-7, got %q", args[0])}
	}
	span := strings.SplitN(args[1], "-", 2)
	if len(span) != 2 || span[0] == "" || span[1] == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("time range must look like 09:00-10:00, got %q", args[1])}
	}
	name := strings.TrimSpace(strings.Join(args[2:], " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{
		DayIndex:  day - 1,
		TimeStart: span[0],
		TimeEnd:   span[1],
		Name:      name,
	}}, nil
}
