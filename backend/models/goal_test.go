package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapDigest(t *testing.T) {
	roadmap := RoadmapDocument{Weeks: []RoadmapWeek{
		{
			Week:  1,
			Theme: "Foundations",
			Tasks: []RoadmapTask{
				{Description: "Install the toolchain"},
				{Description: "Read the language tour"},
			},
		},
		{
			Week:  2,
			Theme: "Practice",
			Tasks: []RoadmapTask{{Description: "Write a small CLI"}},
		},
	}}

	digest := roadmap.Digest()
	assert.Equal(t,
		"Week 1 – Foundations: Install the toolchain; Read the language tour\n"+
			"Week 2 – Practice: Write a small CLI",
		digest)
}

func TestRoadmapDigestEmpty(t *testing.T) {
	assert.Equal(t, "", RoadmapDocument{}.Digest())
}

func TestRoadmapDocumentRoundTrip(t *testing.T) {
	roadmap := RoadmapDocument{Weeks: []RoadmapWeek{
		{
			Week:   1,
			Theme:  "Foundations",
			Tasks:  []RoadmapTask{{Description: "Install the toolchain", Quadrant: "Q1"}},
			Videos: []string{"https://youtube.com/watch?v=a"},
		},
	}}

	value, err := roadmap.Value()
	require.NoError(t, err)

	var scanned RoadmapDocument
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, roadmap, scanned)
}

func TestRoadmapDocumentScanNull(t *testing.T) {
	var scanned RoadmapDocument
	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned.Weeks)

	require.NoError(t, scanned.Scan("null"))
	assert.Empty(t, scanned.Weeks)
}

func TestRoadmapDocumentScanBadType(t *testing.T) {
	var scanned RoadmapDocument
	assert.Error(t, scanned.Scan(42))
}
