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
		excludes []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindUnexpectedEOF,
				Path:   []string{"Level", "Sections", "3"},
				Offset: 128,
				Detail: "need 4 bytes, 1 remaining",
			},
			contains: []string{"[decode]", "unexpected_eof", "Level.Sections.3", "offset 128", "need 4 bytes"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Offset: NoOffset,
			},
			contains: []string{"[load]", "invalid_data"},
			excludes: []string{"offset"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseExport,
				Kind:   KindUnsupported,
				Offset: NoOffset,
				Detail: "format xml",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[export]", "unsupported", "format xml", "caused by", "underlying error"},
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
			for _, s := range tt.excludes {
				if strings.Contains(msg, s) {
					t.Errorf("error message %q should not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseLoad,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindUnknownTag,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindUnknownTag}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseLoad, Kind: KindUnknownTag}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindUnexpectedEOF}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindUnknownTag}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidData).
		Path("Level", "Entities").
		Offset(42).
		Value(7).
		Cause(cause).
		Detail("expected %s, got %s", "list", "int").
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidData {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
	}
	if len(err.Path) != 2 || err.Path[0] != "Level" || err.Path[1] != "Entities" {
		t.Errorf("Path = %v, want [Level Entities]", err.Path)
	}
	if err.Offset != 42 {
		t.Errorf("Offset = %d, want 42", err.Offset)
	}
	if err.Value != 7 {
		t.Errorf("Value = %v, want 7", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected list, got int" {
		t.Errorf("Detail = %v, want 'expected list, got int'", err.Detail)
	}
}

func TestBuilderDefaultsToNoOffset(t *testing.T) {
	err := New(PhaseConfig, KindInvalidInput).Build()
	if err.Offset != NoOffset {
		t.Errorf("Offset = %d, want NoOffset", err.Offset)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnexpectedEOF", func(t *testing.T) {
		err := UnexpectedEOF([]string{"a"}, 10, 4, 1)
		if err.Kind != KindUnexpectedEOF || err.Phase != PhaseDecode {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if err.Offset != 10 {
			t.Errorf("Offset = %d, want 10", err.Offset)
		}
		if !strings.Contains(err.Detail, "4") {
			t.Errorf("Detail = %v, should contain width", err.Detail)
		}
	})

	t.Run("UnknownTag", func(t *testing.T) {
		err := UnknownTag(nil, 0, 0xff)
		if err.Kind != KindUnknownTag {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnknownTag)
		}
		if err.Value != byte(0xff) {
			t.Errorf("Value = %v, want 0xff", err.Value)
		}
		if !strings.Contains(err.Detail, "0xff") {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseDecode, []string{"field"}, "compound", "int")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseExport, "xml")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseDecode, []string{"Data"}, "entry", "Data")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if len(err.Path) != 1 || err.Path[0] != "Data" || err.Value != "Data" {
			t.Errorf("Path = %v, Value = %v", err.Path, err.Value)
		}
		if !strings.Contains(err.Detail, `"Data"`) {
			t.Errorf("Detail = %v", err.Detail)
		}
	})

	t.Run("Load", func(t *testing.T) {
		cause := errors.New("disk")
		err := Load("read level.dat", cause)
		if err.Phase != PhaseLoad || !errors.Is(err, cause) {
			t.Errorf("Load = %v", err)
		}
	})
}

func TestPathIsCopied(t *testing.T) {
	path := []string{"a", "b"}
	err := UnknownTag(path, 3, 0x20)
	path[0] = "mutated"
	if err.Path[0] != "a" {
		t.Errorf("Path aliased caller slice: %v", err.Path)
	}
}
