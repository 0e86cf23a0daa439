package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRSVPForm(t *testing.T) {
	tests := []struct {
		name      string
		values    url.Values
		wantErr   bool
		wantParty int
		wantAtt   string
	}{
		{
			name: "attending with party size",
			values: url.Values{
				"name":              {"Ana Putri"},
				"attendance_status": {"attending"},
				"number_of_guests":  {"3"},
			},
			wantParty: 3,
			wantAtt:   "attending",
		},
		{
			name: "party size clamped to the enumerated maximum",
			values: url.Values{
				"name":              {"Ana Putri"},
				"attendance_status": {"attending"},
				"number_of_guests":  {"12"},
			},
			wantParty: 5,
			wantAtt:   "attending",
		},
		{
			name: "not attending ignores party size",
			values: url.Values{
				"name":              {"Joko"},
				"attendance_status": {"not_attending"},
				"number_of_guests":  {"4"},
			},
			wantParty: 1,
			wantAtt:   "not_attending",
		},
		{
			name: "missing attendance defaults to pending",
			values: url.Values{
				"name": {"Joko"},
			},
			wantParty: 1,
			wantAtt:   "pending",
		},
		{
			name: "missing name is a validation error",
			values: url.Values{
				"attendance_status": {"attending"},
			},
			wantErr: true,
		},
		{
			name: "unknown attendance is a validation error",
			values: url.Values{
				"name":              {"Joko"},
				"attendance_status": {"maybe"},
			},
			wantErr: true,
		},
		{
			name: "bad email is a validation error",
			values: url.Values{
				"name":              {"Joko"},
				"email":             {"not-an-email"},
				"attendance_status": {"attending"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("POST", "/invitation/budi-sari/rsvp", strings.NewReader(tt.values.Encode()))
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			form, err := parseRSVPForm(r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantParty, form.NumberOfGuests)
			assert.Equal(t, tt.wantAtt, form.Attendance)
		})
	}
}
