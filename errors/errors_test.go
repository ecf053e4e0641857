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
				Phase:   PhaseEncode,
				Kind:    KindTypeMismatch,
				Path:    []string{"order", "items", "[2]", "owner"},
				GoType:  "string",
				AbiType: "address",
				Detail:  "cannot convert",
			},
			contains: []string{"[encode]", "type_mismatch", "order.items[2].owner", "string", "address", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindInvalidLength,
			},
			contains: []string{"[decode]", "invalid_length"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseEncode,
				Kind:   KindExternal,
				Detail: "pack failed",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[encode]", "external", "pack failed", "caused by", "underlying error"},
		},
		{
			name:     "sentinel",
			err:      ErrOverflow,
			contains: []string{"overflow"},
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
		Phase: PhaseEncode,
		Kind:  KindExternal,
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
		Phase: PhaseEncode,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseEncode, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseDecode, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidLength}) {
		t.Error("Is should not match different kind")
	}

	if !errors.Is(err, ErrTypeMismatch) {
		t.Error("errors.Is should match phase-less sentinel")
	}

	if errors.Is(err, ErrInvalidLength) {
		t.Error("errors.Is should not match a sentinel of another kind")
	}

	if err.Is(errors.New("type_mismatch")) {
		t.Error("Is should not match a foreign error")
	}
}

func TestJoinPath(t *testing.T) {
	tests := []struct {
		want string
		path []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a.b", []string{"a", "b"}},
		{"items[3]", []string{"items", "[3]"}},
		{"[0][1].x", []string{"[0]", "[1]", "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := JoinPath(tc.path); got != tc.want {
				t.Errorf("JoinPath(%v) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseEncode, KindTypeMismatch).
		Path("user", "name").
		GoType("string").
		AbiType("uint32").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "uint32", "string").
		Build()

	if err.Phase != PhaseEncode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseEncode)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "user" || err.Path[1] != "name" {
		t.Errorf("Path = %v, want [user name]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.AbiType != "uint32" {
		t.Errorf("AbiType = %v, want 'uint32'", err.AbiType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected uint32, got string" {
		t.Errorf("Detail = %v, want 'expected uint32, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("UnrecognizedType", func(t *testing.T) {
		err := UnrecognizedType(PhaseEncode, []string{"field"}, "complex128")
		if err.Kind != KindUnrecognizedType {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnrecognizedType)
		}
		if err.GoType != "complex128" {
			t.Errorf("GoType = %v, want complex128", err.GoType)
		}
	})

	t.Run("ValueTooLarge", func(t *testing.T) {
		err := ValueTooLarge(PhaseEncode, nil, 33, 32)
		if err.Kind != KindValueTooLarge {
			t.Errorf("Kind = %v, want %v", err.Kind, KindValueTooLarge)
		}
		if !strings.Contains(err.Detail, "32") || !strings.Contains(err.Detail, "33") {
			t.Errorf("Detail = %v, should contain both sizes", err.Detail)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseEncode, []string{"field"}, "int", "uint8[]")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.AbiType != "uint8[]" {
			t.Errorf("GoType=%v AbiType=%v", err.GoType, err.AbiType)
		}
	})

	t.Run("FieldMissing", func(t *testing.T) {
		err := FieldMissing(PhaseEncode, []string{"record"}, "name")
		if err.Kind != KindFieldMissing {
			t.Errorf("Kind = %v, want %v", err.Kind, KindFieldMissing)
		}
	})

	t.Run("InvalidLength", func(t *testing.T) {
		err := InvalidLength(PhaseDecode, nil, 31, 32)
		if err.Kind != KindInvalidLength {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidLength)
		}
		if err.Value != 31 {
			t.Errorf("Value = %v, want 31", err.Value)
		}
	})

	t.Run("UnsupportedStructLayout", func(t *testing.T) {
		err := UnsupportedStructLayout(PhaseDecode, nil, "Order")
		if !errors.Is(err, ErrUnsupportedStructLayout) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedStructLayout)
		}
	})

	t.Run("UnsupportedArrayLayout", func(t *testing.T) {
		err := UnsupportedArrayLayout(PhaseDecode, nil, "bytes[]")
		if !errors.Is(err, ErrUnsupportedArrayLayout) {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupportedArrayLayout)
		}
	})

	t.Run("InvalidEnum", func(t *testing.T) {
		err := InvalidEnum(PhaseDecode, []string{"status"}, 5, "Status", 3)
		if err.Kind != KindInvalidEnum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidEnum)
		}
	})

	t.Run("InvalidDescriptor", func(t *testing.T) {
		err := InvalidDescriptor(nil, "bad size")
		if err.Phase != PhaseCompile {
			t.Errorf("Phase = %v, want %v", err.Phase, PhaseCompile)
		}
	})

	t.Run("External", func(t *testing.T) {
		cause := errors.New("abi: cannot use string as type ptr")
		err := External(PhaseEncode, "uint256", cause)
		if !errors.Is(err, cause) {
			t.Error("External should wrap its cause")
		}
	})
}

func TestIsAsForwarders(t *testing.T) {
	inner := InvalidLength(PhaseDecode, []string{"items", "[0]"}, 3, 4)
	wrapped := Wrap(PhaseDecode, KindExternal, inner, "outer")

	if !Is(wrapped, ErrInvalidLength) {
		t.Error("Is should find the wrapped kind")
	}
	if !Is(wrapped, ErrExternal) {
		t.Error("Is should match the outer kind")
	}

	var e *Error
	if !As(wrapped, &e) {
		t.Fatal("As should find *Error")
	}
	if e.Kind != KindExternal {
		t.Errorf("As should return the outermost *Error, got kind %s", e.Kind)
	}
}
