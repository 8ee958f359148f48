package validator_test

import (
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"beautyhub/shared/failure"
	"beautyhub/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceRequest struct {
	Name     string `json:"name"     validate:"required,max=20"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Duration int    `json:"duration" validate:"gt=0,lte=480"`
	Color    string `json:"color"    validate:"omitempty,hexcolor"`
}

type slotRequest struct {
	Date string `json:"date" validate:"required,isodate"`
	Time string `json:"time" validate:"required,clock"`
}

type logoRequest struct {
	Logo *multipart.FileHeader `json:"logo" validate:"required,mimetypes=image/png image/webp,maxfilesize=1"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		data      serviceRequest
		wantField string
		wantMsg   string
	}{
		{name: "valid", data: serviceRequest{Name: "Corte", Duration: 30}},
		{name: "missing name", data: serviceRequest{Duration: 30}, wantField: "name", wantMsg: "name is required"},
		{name: "name too long", data: serviceRequest{Name: strings.Repeat("x", 21), Duration: 30}, wantField: "name", wantMsg: "name must be at most 20"},
		{name: "bad email", data: serviceRequest{Name: "Corte", Email: "ana@", Duration: 30}, wantField: "email", wantMsg: "email must be a valid email address"},
		{name: "zero duration", data: serviceRequest{Name: "Corte"}, wantField: "duration", wantMsg: "duration must be greater than 0"},
		{name: "bad color", data: serviceRequest{Name: "Corte", Duration: 30, Color: "red"}, wantField: "color", wantMsg: "color must be a hex color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)
			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			f, ok := failure.Get(err)
			require.True(t, ok)
			assert.Equal(t, failure.ReasonInvalidInput, f.Reason)
			assert.Equal(t, tt.wantField, f.Field)
			assert.Equal(t, tt.wantMsg, f.Message)
		})
	}
}

func TestValidate(t *testing.T) {
	var req serviceRequest
	assert.NoError(t, validator.Validate(strings.NewReader(`{"name":"Barba","duration":20}`), &req))
	assert.Equal(t, "Barba", req.Name)

	err := validator.Validate(strings.NewReader(`{"name":`), &req)
	f, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, 400, f.Code)
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		value   string
		tag     string
		wantErr bool
	}{
		{value: "09:30", tag: "clock"},
		{value: "24:10", tag: "clock", wantErr: true},
		{value: "2025-01-06", tag: "isodate"},
		{value: "06-01-2025", tag: "isodate", wantErr: true},
		{value: "", tag: "required", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := validator.ValidateVar(tt.value, tt.tag)

			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateStruct_SlotMessages(t *testing.T) {
	err := validator.ValidateStruct(&slotRequest{Date: "2025-01-06", Time: "9am"})

	f, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "time", f.Field)
	assert.Contains(t, f.Message, "HH:MM")
}

func TestValidateStruct_Upload(t *testing.T) {
	upload := func(contentType string, size int64) *logoRequest {
		return &logoRequest{Logo: &multipart.FileHeader{
			Filename: "logo",
			Size:     size,
			Header:   textproto.MIMEHeader{"Content-Type": {contentType}},
		}}
	}

	assert.NoError(t, validator.ValidateStruct(upload("image/png", 512<<10)))
	assert.NoError(t, validator.ValidateStruct(upload("image/webp; charset=binary", 1<<20)))

	err := validator.ValidateStruct(upload("image/gif", 512<<10))
	f, ok := failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "logo must be one of image/png image/webp", f.Message)

	err = validator.ValidateStruct(upload("image/png", 2<<20))
	f, ok = failure.Get(err)
	require.True(t, ok)
	assert.Equal(t, "logo must be at most 1 MB", f.Message)

	assert.Error(t, validator.ValidateStruct(&logoRequest{}))
}
