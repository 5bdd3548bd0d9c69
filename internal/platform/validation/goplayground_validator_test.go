package validation_test

import (
	"reflect"
	"testing"

	"github.com/lumyn/showdown/internal/platform/validation"
)

func TestPlaygroundValidator_ValidateStruct(t *testing.T) {
	t.Parallel()

	type joinRequest struct {
		Room     string `json:"room" validate:"required,min=1,max=64"`
		Passcode string `json:"passcode" validate:"omitempty,min=4,max=64"`
	}

	tests := []struct {
		name  string
		input joinRequest
		want  map[string]string
	}{
		{
			name:  "valid input",
			input: joinRequest{Room: "room1"},
			want:  nil,
		},
		{
			name:  "valid input with passcode",
			input: joinRequest{Room: "room1", Passcode: "hunter2"},
			want:  nil,
		},
		{
			name:  "missing room",
			input: joinRequest{},
			want:  map[string]string{"room": "room is required"},
		},
		{
			name:  "passcode too short",
			input: joinRequest{Room: "room1", Passcode: "abc"},
			want:  map[string]string{"passcode": "passcode must be at least 4 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			valdtr := validation.NewPlaygroundValidator()
			got := valdtr.ValidateStruct(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("valdtr.ValidateStruct() = %v, want: %v", got, tt.want)
			}
		})
	}
}
