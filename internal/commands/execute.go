package commands

import "fmt"

type Handlers struct {
	Add      func() error
	View     func() error
	Complete func() error
	Delete   func() error
	Save     func() error
	Load     func() error
	Exit     func() error
}

func (h Handlers) lookup(t Type) (func() error, bool) {
	switch t {
	case TypeAdd:
		return h.Add, true
	case TypeView:
		return h.View, true
	case TypeComplete:
		return h.Complete, true
	case TypeDelete:
		return h.Delete, true
	case TypeSave:
		return h.Save, true
	case TypeLoad:
		return h.Load, true
	case TypeExit:
		return h.Exit, true
	default:
		return nil, false
	}
}

func Execute(cmd Command, handlers Handlers) error {
	fn, known := handlers.lookup(cmd.Type)
	if !known {
		return &CommandError{Code: ErrCodeInvalidChoice, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
	if fn == nil {
		return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", cmd.Type)}
	}
	return fn()
}
