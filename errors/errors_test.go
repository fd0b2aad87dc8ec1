package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseParse,
				Kind:    KindParameterConvert,
				Message: "ClientPoke",
				Field:   "invokerid",
				Detail:  "cannot convert",
			},
			contains: []string{"[parse]", "parameter_convert", "ClientPoke.invokerid", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDispatch,
				Kind:  KindCommandNotFound,
			},
			contains: []string{"[dispatch]", "command_not_found"},
		},
		{
			name: "field only",
			err: &Error{
				Phase: PhaseGenerate,
				Kind:  KindUnresolvedField,
				Field: "cid",
			},
			contains: []string{"[generate]", "unresolved_field", "at cid"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "bad declarations",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "bad declarations", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseParse,
		Kind:  KindParameterConvert,
		Cause: cause,
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	a := ParameterConvert("TextMessage", "targetmode", "9", nil)
	b := &Error{Phase: PhaseParse, Kind: KindParameterConvert}
	c := &Error{Phase: PhaseParse, Kind: KindParameterNotFound}

	if !errors.Is(a, b) {
		t.Error("same phase and kind should match")
	}
	if errors.Is(a, c) {
		t.Error("different kind should not match")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseGenerate, KindTypeMismatch).
		Message("ChannelCreated").
		Field("channel_codec").
		Value(uint32(7)).
		Detail("no variant for code %d", 7).
		Build()

	if err.Message != "ChannelCreated" || err.Field != "channel_codec" {
		t.Errorf("builder context not applied: %+v", err)
	}
	if err.Detail != "no variant for code 7" {
		t.Errorf("Detail = %q", err.Detail)
	}
	if err.Value != uint32(7) {
		t.Errorf("Value = %v", err.Value)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("parameter_not_found", func(t *testing.T) {
		err := ParameterNotFound("ClientMoved", "ctid")
		if err.Phase != PhaseParse || err.Kind != KindParameterNotFound {
			t.Errorf("wrong phase/kind: %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Error(), "ctid") {
			t.Errorf("message should name the field: %s", err.Error())
		}
	})

	t.Run("command_not_found", func(t *testing.T) {
		err := CommandNotFound("notifyunknown")
		if err.Phase != PhaseDispatch || err.Kind != KindCommandNotFound {
			t.Errorf("wrong phase/kind: %v/%v", err.Phase, err.Kind)
		}
	})

	t.Run("duplicate_notify", func(t *testing.T) {
		err := DuplicateNotify("notifytextmessage")
		if err.Phase != PhaseGenerate || err.Kind != KindDuplicateNotify {
			t.Errorf("wrong phase/kind: %v/%v", err.Phase, err.Kind)
		}
	})
}
