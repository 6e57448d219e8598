package weather

import (
	"fmt"

	"github.com/verte-zerg/termkit/internal/model"
)

// MaxBy returns the record with the highest present value of f.
// Ties keep the earliest record.
func MaxBy(records []model.WeatherRecord, f Field) (model.WeatherRecord, error) {
	return extremeBy(records, f, func(v, best int64) bool { return v > best })
}

// MinBy returns the record with the lowest present value of f.
// Ties keep the earliest record.
func MinBy(records []model.WeatherRecord, f Field) (model.WeatherRecord, error) {
	return extremeBy(records, f, func(v, best int64) bool { return v < best })
}

func extremeBy(records []model.WeatherRecord, f Field, better func(v, best int64) bool) (model.WeatherRecord, error) {
	var (
		best  model.WeatherRecord
		found bool
	)
	for _, r := range records {
		v := f.Value(r)
		if !v.Valid {
			continue
		}
		if !found || better(v.Int64, f.Value(best).Int64) {
			best = r
			found = true
		}
	}
	if !found {
		return model.WeatherRecord{}, fmt.Errorf("%w: %s", ErrEmptyAggregationSet, f)
	}
	return best, nil
}

// Average returns the floor of the mean of the present values of f.
func Average(records []model.WeatherRecord, f Field) (int64, error) {
	var sum, count int64
	for _, r := range records {
		v := f.Value(r)
		if !v.Valid {
			continue
		}
		sum += v.Int64
		count++
	}
	if count == 0 {
		return 0, fmt.Errorf("%w: %s", ErrEmptyAggregationSet, f)
	}
	return floorDiv(sum, count), nil
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Series holds aligned per-day temperatures for graphing.
type Series struct {
	Dates    []string
	MaxTemps []int64
	MinTemps []int64
}

// Len returns the number of days in the series.
func (s Series) Len() int {
	return len(s.Dates)
}

// DailySeries keeps the records that have a date and both temperatures,
// in input order.
func DailySeries(records []model.WeatherRecord) Series {
	var s Series
	for _, r := range records {
		if r.Date == "" || !r.MaxTemp.Valid || !r.MinTemp.Valid {
			continue
		}
		s.Dates = append(s.Dates, r.Date)
		s.MaxTemps = append(s.MaxTemps, r.MaxTemp.Int64)
		s.MinTemps = append(s.MinTemps, r.MinTemp.Int64)
	}
	return s
}

// YearlyMetrics holds the extremes shown in a yearly report.
type YearlyMetrics struct {
	MaxTemp         int64
	MaxTempDate     string
	MinTemp         int64
	MinTempDate     string
	MaxHumidity     int64
	MaxHumidityDate string
}

// MonthlyMetrics holds the averages shown in a monthly report.
type MonthlyMetrics struct {
	AvgMaxTemp      int64
	AvgMinTemp      int64
	AvgMeanHumidity int64
}

// ComputeYearly finds the yearly extremes.
func ComputeYearly(records []model.WeatherRecord) (YearlyMetrics, error) {
	hottest, err := MaxBy(records, MaxTemp)
	if err != nil {
		return YearlyMetrics{}, err
	}
	coldest, err := MinBy(records, MinTemp)
	if err != nil {
		return YearlyMetrics{}, err
	}
	humid, err := MaxBy(records, MaxHumidity)
	if err != nil {
		return YearlyMetrics{}, err
	}
	return YearlyMetrics{
		MaxTemp:         hottest.MaxTemp.Int64,
		MaxTempDate:     hottest.Date,
		MinTemp:         coldest.MinTemp.Int64,
		MinTempDate:     coldest.Date,
		MaxHumidity:     humid.MaxHumidity.Int64,
		MaxHumidityDate: humid.Date,
	}, nil
}

// ComputeMonthly averages the monthly readings.
func ComputeMonthly(records []model.WeatherRecord) (MonthlyMetrics, error) {
	avgMax, err := Average(records, MaxTemp)
	if err != nil {
		return MonthlyMetrics{}, err
	}
	avgMin, err := Average(records, MinTemp)
	if err != nil {
		return MonthlyMetrics{}, err
	}
	avgHumidity, err := Average(records, MeanHumidity)
	if err != nil {
		return MonthlyMetrics{}, err
	}
	return MonthlyMetrics{
		AvgMaxTemp:      avgMax,
		AvgMinTemp:      avgMin,
		AvgMeanHumidity: avgHumidity,
	}, nil
}
