package v4_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	v4 "github.com/staffing-budget/backend/internal/controllers/v4"
	"github.com/staffing-budget/backend/internal/report"
	"github.com/staffing-budget/backend/internal/types"
	"github.com/staffing-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// monthFixture sets up two projects in March 2025.
//
// Apollo has a budget of 2 with Ada at 0.5 and Grace at 0.3,
// Gemini has a budget of 1 with Ada at 0.4 and an intern.
func monthFixture(t *testing.T) (apollo, gemini v4.ProjectResponse) {
	ada := createTestEmployee(t, v4.EmployeeEditable{Name: "Ada"})
	grace := createTestEmployee(t, v4.EmployeeEditable{Name: "Grace"})
	intern := createTestEmployee(t, v4.EmployeeEditable{Name: "Ivy"})

	apollo = createTestProject(t, v4.ProjectCreate{ProjectEditable: v4.ProjectEditable{Name: "Apollo"}})
	gemini = createTestProject(t, v4.ProjectCreate{ProjectEditable: v4.ProjectEditable{Name: "Gemini"}})

	a := setTestBudget(t, apollo.Data.ID, march2025, "2", http.StatusCreated)
	g := setTestBudget(t, gemini.Data.ID, march2025, "1", http.StatusCreated)

	_ = createTestAllocation(t, ada.Data.ID, a.Data.ID, "0.5")
	_ = createTestAllocation(t, grace.Data.ID, a.Data.ID, "0.3")
	_ = createTestAllocation(t, ada.Data.ID, g.Data.ID, "0.4")
	_ = createTestAllocation(t, intern.Data.ID, g.Data.ID, "intern")

	// April must not show up in March
	april := setTestBudget(t, apollo.Data.ID, types.NewMonth(2025, time.April), "5", http.StatusCreated)
	_ = createTestAllocation(t, grace.Data.ID, april.Data.ID, "1")

	return apollo, gemini
}

func (suite *TestSuiteStandard) TestMonthsGet() {
	apollo, gemini := monthFixture(suite.T())

	for _, query := range []string{"month=2025-03", "month=Mar&year=2025"} {
		suite.T().Run(query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/months?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v4.MonthResponse
			test.DecodeResponse(t, &r, &response)

			m := response.Data
			assert.Equal(t, "Mar 2025", m.Period)
			assert.True(t, m.Budgeted.Equal(decimal.NewFromInt(3)), "budgeted is %s", m.Budgeted)
			assert.True(t, m.Actual.Equal(decimal.RequireFromString("1.2")), "actual is %s", m.Actual)
			assert.True(t, m.ProfitRating.Equal(decimal.RequireFromString("1.8")), "profit rating is %s", m.ProfitRating)
			assert.Equal(t, "http://example.com/v4/months/commitments?month=2025-03", m.Links.Commitments)
			assert.Equal(t, "http://example.com/v4/months/export?month=2025-03", m.Links.Export)

			require.Len(t, m.Projects, 2)
			assert.Equal(t, apollo.Data.ID, m.Projects[0].ProjectID)
			assert.Equal(t, "Apollo", m.Projects[0].Project)
			assert.True(t, m.Projects[0].Actual.Equal(decimal.RequireFromString("0.8")))
			assert.Equal(t, gemini.Data.ID, m.Projects[1].ProjectID)
			assert.True(t, m.Projects[1].ProfitRating.Equal(decimal.RequireFromString("0.6")))
			assert.Equal(t, 1, m.Projects[1].Interns)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsGetEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/months?month=2030-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v4.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Projects, 0)
	assert.True(suite.T(), response.Data.Budgeted.IsZero())
	assert.True(suite.T(), response.Data.ProfitRating.IsZero())
}

func (suite *TestSuiteStandard) TestMonthsInvalidQuery() {
	tests := []struct {
		name string
		path string
		err  string
	}{
		{"Month missing", "http://example.com/v4/months", "the month query parameter must be set"},
		{"Commitments month missing", "http://example.com/v4/months/commitments", "the month query parameter must be set"},
		{"Export month missing", "http://example.com/v4/months/export", "the month query parameter must be set"},
		{"Invalid month", "http://example.com/v4/months?month=2025-13", ""},
		{"Invalid abbreviation", "http://example.com/v4/months?month=Mrz&year=2025", "the month must be one of"},
		{"Invalid year", "http://example.com/v4/months?month=Mar&year=25", "the year must have four digits"},
		{"Invalid project", "http://example.com/v4/months/commitments?month=2025-03&project=notaUUID", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			if tt.err != "" {
				assert.Contains(t, test.DecodeError(t, &r), tt.err)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMonthsCommitments() {
	apollo, gemini := monthFixture(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/months/commitments?month=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v4.CommitmentListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "Ada", response.Data[0].Employee)
	assert.True(suite.T(), response.Data[0].Total.Equal(decimal.RequireFromString("0.9")), "total is %s", response.Data[0].Total)
	require.Len(suite.T(), response.Data[0].Allocations, 2)
	assert.Equal(suite.T(), "Apollo", response.Data[0].Allocations[0].Project)
	assert.Equal(suite.T(), "Gemini", response.Data[0].Allocations[1].Project)

	assert.Equal(suite.T(), "Grace", response.Data[1].Employee)
	assert.True(suite.T(), response.Data[1].Total.Equal(decimal.RequireFromString("0.3")), "April must not be counted")

	assert.Equal(suite.T(), "Ivy", response.Data[2].Employee)
	assert.True(suite.T(), response.Data[2].Total.IsZero(), "Interns must not be counted")
	assert.True(suite.T(), response.Data[2].Allocations[0].Value.IsIntern())

	// Filtering by project keeps the full commitment of the employees
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v4/months/commitments?month=2025-03&project=%s", gemini.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Ada", response.Data[0].Employee)
	assert.True(suite.T(), response.Data[0].Total.Equal(decimal.RequireFromString("0.9")))
	assert.Equal(suite.T(), "Ivy", response.Data[1].Employee)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v4/months/commitments?month=Apr&year=2025&project=%s", apollo.Data.ID), "")
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Grace", response.Data[0].Employee)
}

func (suite *TestSuiteStandard) TestMonthsExport() {
	_, _ = monthFixture(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/months/export?month=2025-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), report.ContentType, r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="staffing-2025-03.xlsx"`, r.Header().Get("Content-Disposition"))

	f, err := excelize.OpenReader(r.Body)
	require.Nil(suite.T(), err)
	defer f.Close()

	assert.Equal(suite.T(), []string{report.SheetProjects, report.SheetEmployees}, f.GetSheetList())

	projects, err := f.GetRows(report.SheetProjects)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), projects, 5, "Title, header, two projects and total")
	assert.Equal(suite.T(), "Staffing Mar 2025", projects[0][0])
	assert.Equal(suite.T(), "Apollo", projects[2][0])
	assert.Equal(suite.T(), "Gemini", projects[3][0])
	assert.Equal(suite.T(), "Total", projects[4][0])

	employees, err := f.GetRows(report.SheetEmployees)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), employees, 5, "Header and four allocations")
	assert.Equal(suite.T(), "Ada", employees[1][0])
	assert.Equal(suite.T(), "intern", employees[4][2])
}

func (suite *TestSuiteStandard) TestMonthsDBClosed() {
	suite.CloseDB()

	for _, path := range []string{"", "/commitments", "/export"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/months%s?month=2025-03", path), "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
