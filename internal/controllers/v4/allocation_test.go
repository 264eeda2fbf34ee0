package v4_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	v4 "github.com/staffing-budget/backend/internal/controllers/v4"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/internal/types"
	"github.com/staffing-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAllocation(t *testing.T, employeeID, budgetPeriodID uuid.UUID, value string, expectedStatus ...int) v4.AllocationResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []map[string]any{{
		"employeeId":     employeeID,
		"budgetPeriodId": budgetPeriodID,
		"value":          value,
	}}

	r := test.Request(t, http.MethodPost, "http://example.com/v4/allocations", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var allocation v4.AllocationCreateResponse
	test.DecodeResponse(t, &r, &allocation)

	require.Len(t, allocation.Data, 1)
	return allocation.Data[0]
}

// allocationFixture creates an employee and a budget period in March 2025.
func allocationFixture(t *testing.T) (v4.EmployeeResponse, v4.BudgetPeriodResponse) {
	e := createTestEmployee(t, v4.EmployeeEditable{})
	p := createTestProject(t, v4.ProjectCreate{})
	period := setTestBudget(t, p.Data.ID, march2025, "2", http.StatusCreated)

	return e, period
}

func (suite *TestSuiteStandard) TestAllocationsCreate() {
	e, period := allocationFixture(suite.T())

	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.504")
	assert.Equal(suite.T(), "0.50", a.Data.Value.String(), "Value must be rounded to two decimal places")
	assert.Equal(suite.T(), e.Data.ID, a.Data.EmployeeID)
	assert.Equal(suite.T(), period.Data.Links.Self, a.Data.Links.BudgetPeriod)
	assert.Equal(suite.T(), e.Data.Links.Self, a.Data.Links.Employee)

	// Same employee, same period
	r := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.1", http.StatusBadRequest)
	assert.Equal(suite.T(), models.ErrAllocationDuplicate.Error(), *r.Error)

	other := createTestProject(suite.T(), v4.ProjectCreate{})
	otherPeriod := setTestBudget(suite.T(), other.Data.ID, march2025, "1", http.StatusCreated)

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{"Employee missing", []map[string]any{{"budgetPeriodId": otherPeriod.Data.ID, "value": "0.5"}}, http.StatusBadRequest, "the employeeId field must be set"},
		{"Budget period missing", []map[string]any{{"employeeId": e.Data.ID, "value": "0.5"}}, http.StatusBadRequest, "the budgetPeriodId field must be set"},
		{"Value missing", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": otherPeriod.Data.ID}}, http.StatusBadRequest, "the value field must be set"},
		{"Value too small", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": otherPeriod.Data.ID, "value": "0.09"}}, http.StatusBadRequest, "is not between 0.10 and 1.00"},
		{"Value too large", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": otherPeriod.Data.ID, "value": 1.01}}, http.StatusBadRequest, "is not between 0.10 and 1.00"},
		{"Exceeds commitment", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": otherPeriod.Data.ID, "value": "0.6"}}, http.StatusBadRequest, models.ErrAllocationExceeded.Error()},
		{"Employee does not exist", []map[string]any{{"employeeId": uuid.New(), "budgetPeriodId": otherPeriod.Data.ID, "value": "0.5"}}, http.StatusNotFound, "there is no employee"},
		{"Budget period does not exist", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": uuid.New(), "value": "0.5"}}, http.StatusNotFound, "there is no budget period"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v4/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v4.AllocationCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			assert.Contains(t, *response.Data[0].Error, tt.err)
		})
	}

	// Filling up to exactly 1 is allowed, interns never count
	_ = createTestAllocation(suite.T(), e.Data.ID, otherPeriod.Data.ID, "0.5")

	third := createTestProject(suite.T(), v4.ProjectCreate{})
	thirdPeriod := setTestBudget(suite.T(), third.Data.ID, march2025, "1", http.StatusCreated)
	intern := createTestAllocation(suite.T(), e.Data.ID, thirdPeriod.Data.ID, "Intern")
	assert.True(suite.T(), intern.Data.Value.IsIntern())

	// Other months are independent
	april := setTestBudget(suite.T(), third.Data.ID, types.NewMonth(2025, time.April), "1", http.StatusCreated)
	_ = createTestAllocation(suite.T(), e.Data.ID, april.Data.ID, "1")
}

func (suite *TestSuiteStandard) TestAllocationsCreateInvalidBody() {
	tests := []struct {
		name string
		body string
	}{
		{"Empty", ""},
		{"Not JSON", "allocation"},
		{"Not an array", `{ "value": "0.5" }`},
		{"Value not a number", `[{ "value": "lots" }]`},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v4/allocations", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsDBClosed() {
	e, period := allocationFixture(suite.T())
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.5")

	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodGet, "http://example.com/v4/allocations", ""},
		{http.MethodGet, a.Data.Links.Self, ""},
		{http.MethodPatch, a.Data.Links.Self, map[string]any{"value": "0.75"}},
		{http.MethodDelete, a.Data.Links.Self, ""},
		{http.MethodPost, "http://example.com/v4/allocations", []map[string]any{{"employeeId": e.Data.ID, "budgetPeriodId": period.Data.ID, "value": "0.5"}}},
	}

	for _, tt := range tests {
		suite.T().Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsOptions() {
	e, period := allocationFixture(suite.T())
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.5")

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"No allocation with this ID", fmt.Sprintf("http://example.com/v4/allocations/%s", uuid.New()), http.StatusNotFound},
		{"Not a valid UUID", "http://example.com/v4/allocations/NotParseableAsUUID", http.StatusBadRequest},
		{"Allocation exists", a.Data.Links.Self, http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsGetSingle() {
	e, period := allocationFixture(suite.T())
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.5")

	r := test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v4.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), a.Data.ID, response.Data.ID)
	assert.Equal(suite.T(), "0.50", response.Data.Value.String())

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v4/allocations/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v4/allocations/notaUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAllocationsGetFilter() {
	ada := createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Ada"})
	grace := createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Grace"})

	apollo := createTestProject(suite.T(), v4.ProjectCreate{ProjectEditable: v4.ProjectEditable{Name: "Apollo"}})
	gemini := createTestProject(suite.T(), v4.ProjectCreate{ProjectEditable: v4.ProjectEditable{Name: "Gemini"}})

	apolloMarch := setTestBudget(suite.T(), apollo.Data.ID, march2025, "2", http.StatusCreated)
	apolloApril := setTestBudget(suite.T(), apollo.Data.ID, types.NewMonth(2025, time.April), "2", http.StatusCreated)
	geminiMarch := setTestBudget(suite.T(), gemini.Data.ID, march2025, "1", http.StatusCreated)

	_ = createTestAllocation(suite.T(), grace.Data.ID, apolloMarch.Data.ID, "0.5")
	_ = createTestAllocation(suite.T(), ada.Data.ID, apolloMarch.Data.ID, "0.5")
	_ = createTestAllocation(suite.T(), ada.Data.ID, apolloApril.Data.ID, "1")
	_ = createTestAllocation(suite.T(), ada.Data.ID, geminiMarch.Data.ID, "intern")

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Employee", fmt.Sprintf("employee=%s", ada.Data.ID), 3},
		{"Budget period", fmt.Sprintf("budgetPeriod=%s", apolloMarch.Data.ID), 2},
		{"Project", fmt.Sprintf("project=%s", gemini.Data.ID), 1},
		{"Month", "month=2025-03", 3},
		{"Month abbreviation", "month=Apr&year=2025", 1},
		{"Employee and month", fmt.Sprintf("employee=%s&month=2025-03", ada.Data.ID), 2},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v4.AllocationListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	// Ordered by month, project and employee
	var re v4.AllocationListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/allocations", "")
	test.DecodeResponse(suite.T(), &r, &re)
	require.Len(suite.T(), re.Data, 4)
	assert.Equal(suite.T(), ada.Data.ID, re.Data[0].EmployeeID)
	assert.Equal(suite.T(), apolloMarch.Data.ID, re.Data[0].BudgetPeriodID)
	assert.Equal(suite.T(), grace.Data.ID, re.Data[1].EmployeeID)
	assert.Equal(suite.T(), geminiMarch.Data.ID, re.Data[2].BudgetPeriodID)
	assert.Equal(suite.T(), apolloApril.Data.ID, re.Data[3].BudgetPeriodID)

	errorTests := []struct {
		name  string
		query string
	}{
		{"Invalid employee ID", "employee=notaUUID"},
		{"Invalid month", "month=2025-3"},
		{"Invalid abbreviation", "month=March&year=2025"},
	}

	for _, tt := range errorTests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/allocations?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationsUpdate() {
	e, period := allocationFixture(suite.T())
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "0.5")

	other := createTestProject(suite.T(), v4.ProjectCreate{})
	otherPeriod := setTestBudget(suite.T(), other.Data.ID, march2025, "1", http.StatusCreated)
	_ = createTestAllocation(suite.T(), e.Data.ID, otherPeriod.Data.ID, "0.3")

	tests := []struct {
		name   string
		body   any
		status int
		value  string
	}{
		{"Pick list value", `{ "value": "0.7" }`, http.StatusOK, "0.70"},
		{"Pick list value as number", `{ "value": 0.25 }`, http.StatusOK, "0.25"},
		{"Intern", `{ "value": "intern" }`, http.StatusOK, "intern"},
		{"Not on pick list", `{ "value": "0.55" }`, http.StatusBadRequest, ""},
		{"Not rounded", `{ "value": "0.701" }`, http.StatusBadRequest, ""},
		{"Exceeds commitment", `{ "value": "0.75" }`, http.StatusBadRequest, ""},
		{"Value missing", `{}`, http.StatusBadRequest, ""},
		{"Not a value", `{ "value": "lots" }`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, a.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v4.AllocationResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.value, response.Data.Value.String())
			}
		})
	}

	// The value of the failed updates was not persisted
	r := test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	var response v4.AllocationResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Value.IsIntern())

	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v4/allocations/%s", uuid.New()), `{ "value": "0.5" }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestAllocationsDelete() {
	e, period := allocationFixture(suite.T())
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "1")

	r := test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v4/allocations/notaUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The commitment is free again
	_ = createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "1")
}
