package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesLocation(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		country string
		region  string
		want    bool
	}{
		{"country any always matches", "Unrelated page", "Any", "Any", true},
		{"country any ignores region", "Unrelated page", "Any", "Melbourne", true},
		{"country present", "Programs across Australia", "Australia", "Any", true},
		{"country absent", "Programs in New Zealand", "Australia", "Any", false},
		{"both present", "Melbourne Australia program", "Australia", "Melbourne", true},
		{"country only is enough", "Sydney, Australia program", "Australia", "Melbourne", true},
		{"other region without country", "Sydney program", "Australia", "Melbourne", false},
		{"region only is enough", "Melbourne makers club course", "Australia", "Melbourne", true},
		{"neither present", "Unrelated page", "Australia", "Melbourne", false},
		{"case insensitive", "study in AUSTRALIA", "Australia", "Any", true},
		{"empty text", "", "Australia", "Melbourne", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesLocation(tt.text, tt.country, tt.region))
		})
	}
}
