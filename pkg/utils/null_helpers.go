package utils

import (
	"database/sql"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"
const dateLayout = "2006-01-02"

func NullStringToPtr(v sql.NullString) *string {
	if v.Valid {
		return &v.String
	}
	return nil
}

func NullInt64ToPtr(v sql.NullInt64) *uint64 {
	if v.Valid {
		u := uint64(v.Int64)
		return &u
	}
	return nil
}

func NullTimeToEmptyString(v sql.NullTime) string {
	if v.Valid {
		return v.Time.Local().Format(timeLayout)
	}
	return ""
}

func NullTimeToDatePtr(v sql.NullTime) *string {
	if v.Valid {
		s := v.Time.Format(dateLayout)
		return &s
	}
	return nil
}

func FormatTime(t time.Time) string {
	return t.Local().Format(timeLayout)
}

func SafeDeref[T any](ptr *T) T {
	if ptr == nil {
		var zero T
		return zero
	}
	return *ptr
}
