package model

import (
	"encoding/json"
	"time"
)

// DateTime uses RFC3339 format. The time zone offset is kept in time.Time.
type DateTime struct {
	timeVal time.Time
}

func (dt DateTime) Unix() int64 {
	return dt.timeVal.Unix()
}

func (dt DateTime) GetTime() time.Time {
	return dt.timeVal
}

func (dt DateTime) IsZero() bool {
	return dt.timeVal.IsZero()
}

func (dt *DateTime) UnmarshalJSON(b []byte) error {
	var s string
	err := json.Unmarshal(b, &s)
	if err != nil {
		return err
	}

	newDt, err := NewDateTimeFromString(s)
	if err != nil {
		return err
	}
	*dt = newDt
	return nil
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	strVal := dt.timeVal.Format(time.RFC3339)
	return json.Marshal(strVal)
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{
		timeVal: t,
	}
}

func NewDateTimeFromUnix(t int64) DateTime {
	return DateTime{
		timeVal: time.Unix(t, 0).UTC(),
	}
}

func NewDateTimeFromString(t string) (DateTime, error) {
	ts, err := time.Parse(time.RFC3339, t)
	if err != nil {
		return DateTime{}, err
	}
	return DateTime{
		timeVal: ts,
	}, nil
}
