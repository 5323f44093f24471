package protocol

import (
	"errors"
	"testing"
)

func mustParse(t *testing.T, text string) any {
	t.Helper()
	root, err := ParseResponse(text)
	if err != nil {
		t.Fatalf("ParseResponse(%q) error = %v", text, err)
	}
	return root
}

func TestExtractResolvesPath(t *testing.T) {
	root := mustParse(t, `{"system":{"get_sysinfo":{"led_off":0}}}`)

	got, err := Extract(root, "system", "get_sysinfo", "led_off")
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	n, err := AsInt64(got)
	if err != nil {
		t.Fatalf("AsInt64() error = %v", err)
	}
	if n != 0 {
		t.Errorf("led_off = %d, want 0", n)
	}
}

func TestExtractMissingKey(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		path    []string
		wantKey string
	}{
		{
			name:    "missing leaf",
			text:    `{"system":{"get_sysinfo":{"led_off":0}}}`,
			path:    []string{"system", "get_sysinfo", "missing"},
			wantKey: "missing",
		},
		{
			name:    "missing module",
			text:    `{"system":{"get_sysinfo":{}}}`,
			path:    []string{"emeter", "get_realtime"},
			wantKey: "emeter",
		},
		{
			name:    "path descends through non-object",
			text:    `{"system":{"get_sysinfo":0}}`,
			path:    []string{"system", "get_sysinfo", "led_off"},
			wantKey: "led_off",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := mustParse(t, tt.text)

			_, err := Extract(root, tt.path...)

			var keyErr *KeyNotAvailableError
			if !errors.As(err, &keyErr) {
				t.Fatalf("Extract() error = %v, want KeyNotAvailableError", err)
			}
			if keyErr.Key != tt.wantKey {
				t.Errorf("missing key = %q, want %q", keyErr.Key, tt.wantKey)
			}
			if keyErr.Response == nil {
				t.Error("error does not carry the original response")
			}
		})
	}
}

func TestExtractEmptyPathReturnsRoot(t *testing.T) {
	root := mustParse(t, `{"a":1}`)

	got, err := Extract(root)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if _, ok := got.(map[string]any); !ok {
		t.Errorf("Extract() with empty path = %T, want the root object", got)
	}
}

func TestCoercions(t *testing.T) {
	tests := []struct {
		name    string
		coerce  func() error
		wantErr bool
	}{
		{
			name: "integer from whole number",
			coerce: func() error {
				_, err := AsInt64(float64(42))
				return err
			},
		},
		{
			name: "integer from fractional number fails",
			coerce: func() error {
				_, err := AsInt64(float64(1.5))
				return err
			},
			wantErr: true,
		},
		{
			name: "integer from string fails",
			coerce: func() error {
				_, err := AsInt64("42")
				return err
			},
			wantErr: true,
		},
		{
			name: "float from number",
			coerce: func() error {
				_, err := AsFloat64(float64(228.603726))
				return err
			},
		},
		{
			name: "string from string",
			coerce: func() error {
				_, err := AsString("1.0")
				return err
			},
		},
		{
			name: "array from array",
			coerce: func() error {
				_, err := AsArray([]any{})
				return err
			},
		},
		{
			name: "array from object fails",
			coerce: func() error {
				_, err := AsArray(map[string]any{})
				return err
			},
			wantErr: true,
		},
		{
			name: "object from object",
			coerce: func() error {
				_, err := AsObject(map[string]any{})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coerce()
			if (err != nil) != tt.wantErr {
				t.Errorf("coercion error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var shapeErr *ValueShapeError
				if !errors.As(err, &shapeErr) {
					t.Errorf("error = %v, want ValueShapeError", err)
				}
			}
		})
	}
}
