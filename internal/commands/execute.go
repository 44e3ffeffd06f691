package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Generate func() (Result, error)
	Regen    func() (Result, error)
	Undo     func() (Result, error)
	Refresh  func() (Result, error)
	NewWeek  func() (Result, error)
	Reset    func() (Result, error)
	Show     func(ShowArgs) (Result, error)
	Add      func(AddArgs) (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	missing := func(name string) (Result, error) {
		return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", name)}
	}
	switch cmd.Type {
	case TypeGenerate:
		if handlers.Generate == nil {
			return missing("generate")
		}
		return handlers.Generate()
	case TypeRegen:
		if handlers.Regen == nil {
			return missing("regen")
		}
		return handlers.Regen()
	case TypeUndo:
		if handlers.Undo == nil {
			return missing("undo")
		}
		return handlers.Undo()
	case TypeRefresh:
		if handlers.Refresh == nil {
			return missing("refresh")
		}
		return handlers.Refresh()
	case TypeNewWeek:
		if handlers.NewWeek == nil {
			return missing("newweek")
		}
		return handlers.NewWeek()
	case TypeReset:
		if handlers.Reset == nil {
			return missing("reset")
		}
		return handlers.Reset()
	case TypeShow:
		if handlers.Show == nil {
			return missing("show")
		}
		return handlers.Show(*cmd.Show)
	case TypeAdd:
		if handlers.Add == nil {
			return missing("add")
		}
		return handlers.Add(*cmd.Add)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
