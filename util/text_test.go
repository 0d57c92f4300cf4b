package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Coffee", Capitalize("coffee"))
	assert.Equal(t, "Coffee", Capitalize("Coffee"))
	assert.Equal(t, "", Capitalize(""))
	assert.Equal(t, "Ü", Capitalize("ü"))
}

func TestBuildName(t *testing.T) {
	assert.Equal(t, "Jane Doe", BuildName("Jane", "Doe"))
	assert.Equal(t, "Jane", BuildName("Jane", ""))
	assert.Equal(t, "Doe", BuildName("", "Doe"))
	assert.Equal(t, "", BuildName("", ""))
}

func TestTimeAgo(t *testing.T) {
	now := time.Date(2018, 3, 19, 13, 40, 0, 0, time.UTC)

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds collapse to just now", now.Add(-30 * time.Second), "just now"},
		{"future collapses to just now", now.Add(5 * time.Minute), "just now"},
		{"one minute", now.Add(-1 * time.Minute), "1 minute ago"},
		{"minutes", now.Add(-5 * time.Minute), "5 minutes ago"},
		{"hours", now.Add(-3 * time.Hour), "3 hours ago"},
		{"days", now.Add(-48 * time.Hour), "2 days ago"},
		{"months", now.Add(-65 * 24 * time.Hour), "2 months ago"},
		{"years", now.Add(-800 * 24 * time.Hour), "2 years ago"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TimeAgo(tc.t, now))
		})
	}
}
