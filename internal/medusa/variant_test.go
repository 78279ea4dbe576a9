package medusa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVariantTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		options []string
		want    map[string]string
	}{
		{
			name:    "two options",
			title:   "M - Black",
			options: []string{"Size", "Color"},
			want:    map[string]string{"Size": "M", "Color": "Black"},
		},
		{
			name:    "no declared options",
			title:   "Default",
			options: nil,
			want:    map[string]string{},
		},
		{
			name:    "single option",
			title:   "256GB",
			options: []string{"Storage"},
			want:    map[string]string{"Storage": "256GB"},
		},
		{
			name:    "value containing separator folds into last option",
			title:   "256GB - Natural - Titanium",
			options: []string{"Storage", "Color"},
			want:    map[string]string{"Storage": "256GB", "Color": "Natural - Titanium"},
		},
		{
			name:    "fewer segments than options",
			title:   "256GB",
			options: []string{"Storage", "Color"},
			want:    map[string]string{"Storage": "256GB"},
		},
		{
			name:    "whitespace trimmed",
			title:   " 41mm  -  Aluminum ",
			options: []string{"Size", "Case"},
			want:    map[string]string{"Size": "41mm", "Case": "Aluminum"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVariantTitle(tt.title, tt.options))
		})
	}
}
