package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustVideo(t *testing.T, date string, views int64) VideoRecord {
	t.Helper()
	video, err := NewVideoRecord("Video "+date, views, date, "", "https://www.youtube.com/watch?v="+date)
	require.NoError(t, err)
	return video
}

func TestNewVideoRecord(t *testing.T) {
	tests := []struct {
		name     string
		views    int64
		date     string
		hasError bool
	}{
		{name: "Registro válido", views: 3130, date: "11/27/2021"},
		{name: "Views negativas", views: -1, date: "11/27/2021", hasError: true},
		{name: "Data fora do formato canônico", views: 10, date: "Nov 27, 2021", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video, err := NewVideoRecord("Title", tt.views, tt.date, "Description", "http://video1")

			if tt.hasError {
				assert.ErrorIs(t, err, ErrInvalidVideoRecord)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "2021", video.Year())
			assert.Equal(t, "11", video.MonthKey())
		})
	}
}

func TestNewChannelSnapshot_YearsActive(t *testing.T) {
	videos := []VideoRecord{
		mustVideo(t, "04/04/2023", 10),
		mustVideo(t, "01/01/2022", 20),
		mustVideo(t, "03/03/2023", 30),
		mustVideo(t, "02/02/2022", 40),
	}

	snapshot := NewChannelSnapshot("abc", "@MariusCiurea1", nil, videos, time.Now())

	assert.Equal(t, "MariusCiurea1", snapshot.ChannelName)
	assert.Equal(t, []string{"2022", "2023"}, snapshot.YearsActive)
	assert.Len(t, snapshot.Videos, 4)
	assert.False(t, snapshot.IsEmpty())

	// O snapshot não compartilha o slice recebido
	videos[0] = mustVideo(t, "01/01/1999", 1)
	assert.Equal(t, "04/04/2023", snapshot.Videos[0].PostedOn)
}

func TestNewChannelSnapshot_Empty(t *testing.T) {
	snapshot := NewChannelSnapshot("abc", "@canal", nil, nil, time.Now())

	assert.NotNil(t, snapshot.Videos)
	assert.Empty(t, snapshot.Videos)
	assert.NotNil(t, snapshot.YearsActive)
	assert.Empty(t, snapshot.YearsActive)
	assert.True(t, snapshot.IsEmpty())
}

func TestYearMonthHistogram_Add(t *testing.T) {
	histogram := YearMonthHistogram{}
	histogram.Add("2022", 0, 2)
	histogram.Add("2022", 11, 5)

	require.Contains(t, histogram, "2022")
	assert.Equal(t, int64(2), histogram["2022"].Get("January"))
	assert.Equal(t, int64(5), histogram["2022"].Get("December"))
	assert.Equal(t, int64(0), histogram["2022"].Get("June"))
	assert.Equal(t, int64(7), histogram["2022"].Total())
	assert.Equal(t, int64(5), histogram["2022"].Max())
}

func TestMonthlyValues_MarshalJSON(t *testing.T) {
	values := MonthlyValues{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 12}

	data, err := json.Marshal(values)
	require.NoError(t, err)

	expected := `{"January":1,"February":0,"March":0,"April":0,"May":0,"June":0,` +
		`"July":0,"August":0,"September":0,"October":0,"November":0,"December":12}`
	assert.Equal(t, expected, string(data))
}

func TestMonthName(t *testing.T) {
	name, ok := MonthName("11")
	assert.True(t, ok)
	assert.Equal(t, "November", name)

	_, ok = MonthName("13")
	assert.False(t, ok)
}

func TestParseMetric(t *testing.T) {
	metric, ok := ParseMetric("")
	assert.True(t, ok)
	assert.Equal(t, MetricPosts, metric)

	metric, ok = ParseMetric("views")
	assert.True(t, ok)
	assert.Equal(t, MetricViews, metric)

	_, ok = ParseMetric("likes")
	assert.False(t, ok)
}
