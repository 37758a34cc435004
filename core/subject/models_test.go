package subject

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nkminh14/uniconsole/core"
)

func TestForm_Validate(t *testing.T) {
	validate, translator := core.NewValidator()

	tests := []struct {
		name    string
		credits string
		wantErr string
	}{
		{name: "whole number", credits: "3"},
		{name: "zero", credits: "0"},
		{name: "missing", credits: "", wantErr: "Số tín chỉ không được để trống"},
		{name: "negative", credits: "-2", wantErr: "Số tín chỉ phải là số nguyên không âm"},
		{name: "decimal", credits: "2.5", wantErr: "Số tín chỉ phải là số nguyên không âm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Form{SubjectName: "Cấu trúc dữ liệu", Credits: tt.credits, FacultyID: "1"}
			err := f.Validate(validate, translator)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			vErr, ok := err.(*core.ValidationError)
			if assert.True(t, ok, "got %T", err) {
				assert.Equal(t, map[string]string{"credits": tt.wantErr}, vErr.Map())
			}
		})
	}
}

func TestForm_Payload(t *testing.T) {
	f := FormFrom(Subject{SubjectID: 5, SubjectName: "Giải tích", Credits: 4, FacultyID: 2, FacultyName: "Toán"})
	assert.Equal(t, "4", f.Credits)
	assert.Equal(t, Subject{SubjectID: 5, SubjectName: "Giải tích", Credits: 4, FacultyID: 2}, f.Payload(), "read-only fields are not sent back")
}
