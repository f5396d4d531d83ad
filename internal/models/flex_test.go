// internal/models/flex_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_LegacyShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `120`, 120},
		{"decimal", `87.5`, 87.5},
		{"numeric string", `"120"`, 120},
		{"string with thousands separator", `"1,200"`, 1200},
		{"padded string", `" 95 "`, 95},
		{"empty string", `""`, 0},
		{"null", `null`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tc.in), &f))
			assert.Equal(t, tc.want, f.Float64())
		})
	}

	var f FlexFloat
	assert.Error(t, json.Unmarshal([]byte(`"not a wage"`), &f))
	assert.Error(t, json.Unmarshal([]byte(`true`), &f))
}

func TestSkillList_LegacyShapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SkillList
	}{
		{"explicit list", `["cashier","thai"]`, SkillList{"cashier", "thai"}},
		{"delimited string kept whole", `"cashier, english"`, SkillList{"cashier, english"}},
		{"empty string", `""`, nil},
		{"null", `null`, nil},
		{"empty list", `[]`, SkillList{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s SkillList
			require.NoError(t, json.Unmarshal([]byte(tc.in), &s))
			assert.Equal(t, tc.want, s)
		})
	}

	var s SkillList
	assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
}

func TestFlexDate_LegacyShapes(t *testing.T) {
	var d FlexDate
	require.NoError(t, json.Unmarshal([]byte(`"2025-02-01"`), &d))
	assert.Equal(t, 2025, d.Year())

	require.NoError(t, json.Unmarshal([]byte(`"2025-02-01T09:30:00Z"`), &d))
	assert.Equal(t, 9, d.Hour())

	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"02/01/2025"`), &d))
}

func TestFlexDate_MarshalRoundTrip(t *testing.T) {
	d := NewDate("2025-02-01")
	require.NotNil(t, d)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-02-01"`, string(data))

	var back FlexDate
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, d.Equal(back.Time))
}

func TestNewDate_Invalid(t *testing.T) {
	assert.Nil(t, NewDate("not a date"))
}

func TestGeoPoint_Valid(t *testing.T) {
	assert.True(t, (&GeoPoint{Lat: 13.75, Lng: 100.50}).Valid())
	assert.True(t, (&GeoPoint{Lat: 0, Lng: 0}).Valid())

	var nilPin *GeoPoint
	assert.False(t, nilPin.Valid())
	assert.False(t, (&GeoPoint{Lat: 91, Lng: 0}).Valid())
	assert.False(t, (&GeoPoint{Lat: 0, Lng: 181}).Valid())
}

func TestApplication_Active(t *testing.T) {
	app := &Application{Status: StatusInvited}
	assert.True(t, app.Active())

	app.Status = StatusApproved
	assert.True(t, app.Active())

	app.Status = StatusCancelled
	assert.False(t, app.Active())

	var nilApp *Application
	assert.False(t, nilApp.Active())
}
