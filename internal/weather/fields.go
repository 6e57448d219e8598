package weather

import (
	"database/sql"

	"github.com/verte-zerg/termkit/internal/model"
)

// Field names one numeric column of a weather record.
type Field int

// Numeric fields of a weather record.
const (
	MaxTemp Field = iota
	MinTemp
	MaxHumidity
	MeanHumidity
)

var fieldColumns = map[Field]string{
	MaxTemp:      "Max TemperatureC",
	MinTemp:      "Min TemperatureC",
	MaxHumidity:  "Max Humidity",
	MeanHumidity: "Mean Humidity",
}

var numericFields = []Field{MaxTemp, MinTemp, MaxHumidity, MeanHumidity}

// Column returns the header name of the field.
func (f Field) Column() string {
	return fieldColumns[f]
}

func (f Field) String() string {
	return f.Column()
}

// Value returns the field's reading from a record.
func (f Field) Value(r model.WeatherRecord) sql.NullInt64 {
	switch f {
	case MaxTemp:
		return r.MaxTemp
	case MinTemp:
		return r.MinTemp
	case MaxHumidity:
		return r.MaxHumidity
	case MeanHumidity:
		return r.MeanHumidity
	default:
		return sql.NullInt64{}
	}
}

func (f Field) set(r *model.WeatherRecord, v sql.NullInt64) {
	switch f {
	case MaxTemp:
		r.MaxTemp = v
	case MinTemp:
		r.MinTemp = v
	case MaxHumidity:
		r.MaxHumidity = v
	case MeanHumidity:
		r.MeanHumidity = v
	}
}
