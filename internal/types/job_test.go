package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Region
		wantError bool
	}{
		{name: "All", input: "ALL", want: RegionAll},
		{name: "GCC", input: "GCC", want: RegionGCC},
		{name: "Europe", input: "EUROPE", want: RegionEurope},
		{name: "Unknown value", input: "ASIA", wantError: true},
		{name: "Wrong case", input: "gcc", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region, err := ParseRegion(tt.input)
			if tt.wantError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, region)
		})
	}
}

func TestParseJobType(t *testing.T) {
	jobType, err := ParseJobType("blue-collar")
	require.NoError(t, err)
	assert.Equal(t, TypeBlueCollar, jobType)

	jobType, err = ParseJobType("professional")
	require.NoError(t, err)
	assert.Equal(t, TypeProfessional, jobType)

	_, err = ParseJobType("freelance")
	assert.Error(t, err)
}

func TestJobOverview_FallsBackToDescription(t *testing.T) {
	job := Job{Description: "short teaser"}
	assert.Equal(t, "short teaser", job.Overview())

	job.FullDescription = "the long form"
	assert.Equal(t, "the long form", job.Overview())
}
