package report

import "time"

type ReportQuery struct {
	At time.Time `form:"at" time_format:"2006-01-02T15:04:05Z07:00" time_utc:"1"`
}
