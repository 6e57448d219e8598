package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/termkit/internal/model"
)

func maxTemps(values ...int64) []model.WeatherRecord {
	out := make([]model.WeatherRecord, 0, len(values))
	for i, v := range values {
		out = append(out, model.WeatherRecord{Date: "2023-01-" + string(rune('1'+i)), MaxTemp: present(v)})
	}
	return out
}

func TestAverageFloors(t *testing.T) {
	avg, err := Average(maxTemps(10, 20, 30), MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, int64(20), avg)

	avg, err = Average(maxTemps(10, 11), MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, int64(10), avg)

	avg, err = Average(maxTemps(-3, -4), MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, int64(-4), avg)
}

func TestAverageSkipsAbsentKeepsZero(t *testing.T) {
	records := []model.WeatherRecord{
		{MaxTemp: present(0)},
		{},
		{MaxTemp: present(9)},
	}
	avg, err := Average(records, MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, int64(4), avg)
}

func TestAverageEmpty(t *testing.T) {
	_, err := Average([]model.WeatherRecord{{}}, MeanHumidity)
	require.ErrorIs(t, err, ErrEmptyAggregationSet)
	_, err = Average(nil, MaxTemp)
	require.ErrorIs(t, err, ErrEmptyAggregationSet)
}

func TestMaxMinBy(t *testing.T) {
	records := []model.WeatherRecord{
		{Date: "2023-01-1", MinTemp: present(3)},
		{Date: "2023-01-2"},
		{Date: "2023-01-3", MinTemp: present(0)},
		{Date: "2023-01-4", MinTemp: present(8)},
	}
	lo, err := MinBy(records, MinTemp)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-3", lo.Date)

	hi, err := MaxBy(records, MinTemp)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-4", hi.Date)

	for _, r := range records {
		if !r.MinTemp.Valid {
			continue
		}
		assert.LessOrEqual(t, lo.MinTemp.Int64, r.MinTemp.Int64)
		assert.GreaterOrEqual(t, hi.MinTemp.Int64, r.MinTemp.Int64)
	}
}

func TestMaxByTieKeepsFirst(t *testing.T) {
	hi, err := MaxBy(maxTemps(5, 9, 9, 1), MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-2", hi.Date)

	lo, err := MinBy(maxTemps(5, 1, 9, 1), MaxTemp)
	require.NoError(t, err)
	assert.Equal(t, "2023-01-2", lo.Date)
}

func TestMaxByEmpty(t *testing.T) {
	_, err := MaxBy([]model.WeatherRecord{{Date: "2023-01-01"}}, MaxHumidity)
	require.ErrorIs(t, err, ErrEmptyAggregationSet)
}

func TestDailySeriesDropsIncompleteDays(t *testing.T) {
	records := []model.WeatherRecord{
		{Date: "2023-06-1", MaxTemp: present(30), MinTemp: present(20)},
		{Date: "2023-06-2", MaxTemp: present(31)},
		{Date: "2023-06-3", MinTemp: present(19)},
		{MaxTemp: present(1), MinTemp: present(1)},
		{Date: "2023-06-5", MaxTemp: present(0), MinTemp: present(-2)},
	}
	s := DailySeries(records)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"2023-06-1", "2023-06-5"}, s.Dates)
	assert.Equal(t, []int64{30, 0}, s.MaxTemps)
	assert.Equal(t, []int64{20, -2}, s.MinTemps)
}

func TestComputeYearly(t *testing.T) {
	records := []model.WeatherRecord{
		{Date: "2023-3-4", MaxTemp: present(20), MinTemp: present(5), MaxHumidity: present(70)},
		{Date: "2023-7-9", MaxTemp: present(41), MinTemp: present(25), MaxHumidity: present(95)},
		{Date: "2023-12-21", MaxTemp: present(8), MinTemp: present(-3), MaxHumidity: present(60)},
	}
	m, err := ComputeYearly(records)
	require.NoError(t, err)
	assert.Equal(t, YearlyMetrics{
		MaxTemp: 41, MaxTempDate: "2023-7-9",
		MinTemp: -3, MinTempDate: "2023-12-21",
		MaxHumidity: 95, MaxHumidityDate: "2023-7-9",
	}, m)
}

func TestComputeMonthly(t *testing.T) {
	records := []model.WeatherRecord{
		{MaxTemp: present(30), MinTemp: present(20), MeanHumidity: present(61)},
		{MaxTemp: present(33), MinTemp: present(21), MeanHumidity: present(70)},
	}
	m, err := ComputeMonthly(records)
	require.NoError(t, err)
	assert.Equal(t, MonthlyMetrics{AvgMaxTemp: 31, AvgMinTemp: 20, AvgMeanHumidity: 65}, m)

	_, err = ComputeMonthly([]model.WeatherRecord{{MaxTemp: present(1), MinTemp: present(1)}})
	require.ErrorIs(t, err, ErrEmptyAggregationSet)
}
