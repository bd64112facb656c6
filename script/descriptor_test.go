package script

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateDescriptor(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		wantMsg string // "" means valid
	}{
		{
			"read only",
			`({name: "A", extension: "a", read: function() {}})`,
			"",
		},
		{
			"write only",
			`({name: "A", extension: "a", write: function() {}})`,
			"",
		},
		{
			"read and write",
			`({name: "A", extension: "a", read: function() {}, write: function() {}})`,
			"",
		},
		{
			"missing name",
			`({extension: "a", read: function() {}})`,
			"requires string 'name' property",
		},
		{
			"numeric name",
			`({name: 7, extension: "a", read: function() {}})`,
			"requires string 'name' property",
		},
		{
			"missing extension",
			`({name: "A", read: function() {}})`,
			"requires string 'extension' property",
		},
		{
			"read not callable",
			`({name: "A", extension: "a", read: "not a function"})`,
			"requires a 'write' and/or 'read' function property",
		},
		{
			"null",
			`null`,
			"object expected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := NewEnv()
			v, err := env.RunScript("test.js", tt.expr)
			if err != nil {
				t.Fatalf("RunScript() error = %v", err)
			}

			err = env.ValidateDescriptor(v)
			if tt.wantMsg == "" {
				if err != nil {
					t.Errorf("ValidateDescriptor() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateDescriptor() should fail")
			}
			if !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("ValidateDescriptor() error = %v, want ErrInvalidDescriptor", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want substring %q", err.Error(), tt.wantMsg)
			}
		})
	}
}
