package v4

import (
	"time"

	"github.com/staffing-budget/backend/internal/types"
	sb_uuid "github.com/staffing-budget/backend/internal/uuid"
)

type URIID struct {
	ID sb_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIMonth struct {
	URIID
	Month time.Time `uri:"month" time_format:"2006-01" time_utc:"1" example:"2025-03" binding:"required"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// QueryMonth is a month in the query string.
//
// It is either given in YYYY-MM format or as three letter abbreviation
// together with the year, e.g. month=Mar&year=2025.
type QueryMonth struct {
	Month string `form:"month" example:"2025-03"` // Year and month in YYYY-MM format, or the month abbreviation if year is set
	Year  string `form:"year" example:"2025"`     // Four digit year, only used together with a month abbreviation
}

// parse returns the month. If required is false and no month is set, the zero month is returned.
func (q QueryMonth) parse(required bool) (types.Month, error) {
	if q.Month == "" {
		if required {
			return types.Month{}, errMonthNotSetInQuery
		}
		return types.Month{}, nil
	}

	if q.Year != "" {
		return types.ParseMonthYear(q.Month, q.Year)
	}

	return types.ParseMonth(q.Month)
}
