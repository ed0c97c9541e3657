package progress

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalRoundTrip(t *testing.T) {
	in := Normalize(Record{
		MissionID:        "dax-basics",
		CompletedLessons: []int{1, 2, 4},
		TotalXP:          230,
		StreakDays:       6,
		LastActivity:     at("2025-11-27T10:30:00.5Z"),
	})

	data, err := Marshal(in)
	require.NoError(t, err)

	out, err := Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, Equal(in, out), "round trip: got %+v, want %+v", out, in)
}

func TestMarshalFieldNames(t *testing.T) {
	data, err := Marshal(Defaults(""))
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"currentMission", "completedLessons", "currentLesson", "totalXP", "streakDays", "lastActivity"} {
		assert.Contains(t, fields, key)
	}
	assert.Nil(t, fields["lastActivity"])
	assert.Equal(t, []any{}, fields["completedLessons"])
}

func TestUnmarshalNormalizes(t *testing.T) {
	r, err := Unmarshal([]byte(`{"currentMission":"dax-basics","completedLessons":[3,1,1],"currentLesson":1,"totalXP":-5,"streakDays":0,"lastActivity":null}`))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, r.CompletedLessons)
	assert.Equal(t, 4, r.CurrentLesson)
	assert.Equal(t, 0, r.TotalXP)
	assert.Equal(t, 1, r.StreakDays)
	assert.NoError(t, r.Validate())
}

func TestUnmarshalMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"currentMission":`},
		{"not an object", `[1,2,3]`},
		{"missing mission", `{"completedLessons":[],"totalXP":0}`},
		{"empty mission", `{"currentMission":"","completedLessons":[],"totalXP":0}`},
		{"lessons not array", `{"currentMission":"m","completedLessons":"1,2","totalXP":0}`},
		{"fractional lesson", `{"currentMission":"m","completedLessons":[1.5],"totalXP":0}`},
		{"xp string", `{"currentMission":"m","completedLessons":[],"totalXP":"10"}`},
		{"bad timestamp", `{"currentMission":"m","completedLessons":[],"totalXP":0,"lastActivity":"yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord), "got %v", err)
		})
	}
}
