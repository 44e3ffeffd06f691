package commands

import (
	"errors"
	"testing"
)

func TestParseBareCommands(t *testing.T) {
	for _, raw := range []string{"generate", "/undo", "  newweek  ", "/RESET", "refresh", "regen"} {
		cmd, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q): %v", raw, err)
		}
		if cmd.Type == "" {
			t.Fatalf("Parse(%q): empty type", raw)
		}
	}

	cmd, err := Parse("/undo")
	if err != nil {
		t.Fatalf("parse undo: %v", err)
	}
	if cmd.Type != TypeUndo {
		t.Fatalf("expected undo, got %q", cmd.Type)
	}
}

func TestParseRejectsArgumentsOnBareCommands(t *testing.T) {
	_, err := Parse("undo everything")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{"", "   ", "/", "/   "} {
		_, err := Parse(raw)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeEmptyInput {
			t.Fatalf("Parse(%q): expected empty_input, got %v", raw, err)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("/frobnicate")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeUnknownCommand {
		t.Fatalf("expected unknown_command, got %v", err)
	}
}

func TestParseShow(t *testing.T) {
	cmd, err := Parse("show Dashboard")
	if err != nil {
		t.Fatalf("parse show: %v", err)
	}
	if cmd.Type != TypeShow || cmd.Show == nil || cmd.Show.Panel != "dashboard" {
		t.Fatalf("unexpected command: %+v", cmd)
	}

	if _, err := Parse("show kitchen"); err == nil {
		t.Fatal("expected error for unknown panel")
	}
	if _, err := Parse("show"); err == nil {
		t.Fatal("expected error for missing panel")
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("add 3 09:00-10:30 Deep work on thesis")
	if err != nil {
		t.Fatalf("parse add: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.Add.DayIndex != 2 {
		t.Fatalf("expected day index 2, got %d", cmd.Add.DayIndex)
	}
	if cmd.Add.TimeStart != "09:00" || cmd.Add.TimeEnd != "10:30" {
		t.Fatalf("unexpected time range: %s-%s", cmd.Add.TimeStart, cmd.Add.TimeEnd)
	}
	if cmd.Add.Name != "Deep work on thesis" {
		t.Fatalf("unexpected name: %q", cmd.Add.Name)
	}
}

func TestParseAddInvalid(t *testing.T) {
	cases := []string{
		"add",
		"add 0 09:00-10:00 X",
		"add 8 09:00-10:00 X",
		"add two 09:00-10:00 X",
		"add 3 09:00 X",
		"add 3 -10:00 X",
	}
	for _, raw := range cases {
		_, err := Parse(raw)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
			t.Fatalf("Parse(%q): expected invalid_argument, got %v", raw, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	called := ""
	handlers := Handlers{
		Undo: func() (Result, error) {
			called = "undo"
			return Result{Message: "restored"}, nil
		},
		Add: func(args AddArgs) (Result, error) {
			called = "add:" + args.Name
			return Result{}, nil
		},
	}

	cmd, _ := Parse("undo")
	res, err := Execute(cmd, handlers)
	if err != nil || res.Message != "restored" || called != "undo" {
		t.Fatalf("unexpected dispatch: res=%+v err=%v called=%q", res, err, called)
	}

	cmd, _ = Parse("add 1 09:00-10:00 Laundry")
	if _, err := Execute(cmd, handlers); err != nil || called != "add:Laundry" {
		t.Fatalf("unexpected add dispatch: err=%v called=%q", err, called)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, _ := Parse("generate")
	_, err := Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
