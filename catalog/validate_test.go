package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCategoryName(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr string
	}{
		{in: "Docker", want: "Docker"},
		{in: "  Git  ", want: "Git"},
		{in: "my-tools_2 x", want: "my-tools_2 x"},
		{in: "", wantErr: "cannot be empty"},
		{in: "   ", wantErr: "cannot be empty"},
		{in: "X", wantErr: "at least 2"},
		{in: strings.Repeat("a", 51), wantErr: "cannot exceed 50"},
		{in: "a&b", wantErr: "can only contain"},
		{in: "Ünïcode", wantErr: "can only contain"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ValidateCategoryName(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var verr *ValidationError
			if assert.True(t, errors.As(err, &verr)) {
				assert.Contains(t, verr.Reason, tt.wantErr)
			}
		})
	}
}

func TestValidateCommandText(t *testing.T) {
	got, err := ValidateCommandText("  ls  ")
	assert.NoError(t, err)
	assert.Equal(t, "ls", got)

	_, err = ValidateCommandText("x")
	assert.ErrorContains(t, err, "at least 2")

	_, err = ValidateCommandText("\t\n")
	assert.ErrorContains(t, err, "cannot be empty")
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, `command "c1" not found`, (&NotFoundError{Kind: "command", ID: "c1"}).Error())
	assert.Equal(t, "invalid name: too short", (&ValidationError{Field: "name", Reason: "too short"}).Error())
}
