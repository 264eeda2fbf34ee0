package v4_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v4 "github.com/staffing-budget/backend/internal/controllers/v4"
	"github.com/staffing-budget/backend/internal/models"
	"github.com/staffing-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEmployee(t *testing.T, e v4.EmployeeEditable, expectedStatus ...int) v4.EmployeeResponse {
	if e.Name == "" {
		e.Name = "Test Employee"
	}

	if e.Email == "" {
		e.Email = fmt.Sprintf("%s@example.com", uuid.NewString())
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v4.EmployeeEditable{e}

	r := test.Request(t, http.MethodPost, "http://example.com/v4/employees", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var employee v4.EmployeeCreateResponse
	test.DecodeResponse(t, &r, &employee)

	if r.Code == http.StatusCreated {
		return employee.Data[0]
	}

	return v4.EmployeeResponse{}
}

func (suite *TestSuiteStandard) TestEmployeesCreate() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{Name: " Ada Lovelace ", Email: "ada@example.com"})
	assert.Equal(suite.T(), "Ada Lovelace", e.Data.Name, "Name must be trimmed")
	assert.Equal(suite.T(), models.RoleEmployee, e.Data.Role, "Role must default to Employee")
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v4/employees/%s/conflict", e.Data.ID), e.Data.Links.Conflict)

	tests := []struct {
		name   string
		body   any
		status int
		err    error
	}{
		{"Duplicate email", []v4.EmployeeEditable{{Name: "Ada", Email: "ada@example.com"}}, http.StatusBadRequest, models.ErrEmployeeEmailNotUnique},
		{"Empty name", []v4.EmployeeEditable{{Email: "grace@example.com"}}, http.StatusBadRequest, models.ErrEmployeeNameEmpty},
		{"Empty email", []v4.EmployeeEditable{{Name: "Grace Hopper"}}, http.StatusBadRequest, models.ErrEmployeeEmailEmpty},
		{"Invalid role", []v4.EmployeeEditable{{Name: "Grace Hopper", Email: "grace@example.com", Role: "Intern"}}, http.StatusBadRequest, models.ErrEmployeeRoleInvalid},
		{"Team lead", []v4.EmployeeEditable{{Name: "Grace Hopper", Email: "grace@example.com", Role: models.RoleTeamLead}}, http.StatusCreated, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v4/employees", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v4.EmployeeCreateResponse
			test.DecodeResponse(t, &r, &response)

			if tt.err != nil {
				require.Len(t, response.Data, 1)
				assert.Contains(t, *response.Data[0].Error, tt.err.Error())
			}
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v4/employees", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestEmployeesDBClosed() {
	suite.CloseDB()

	createTestEmployee(suite.T(), v4.EmployeeEditable{}, http.StatusInternalServerError)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/employees", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestEmployeesOptions() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{})

	tests := []struct {
		name   string
		path   string
		status int
		allow  string
	}{
		{"No employee with this ID", uuid.New().String(), http.StatusNotFound, ""},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest, ""},
		{"Employee exists", e.Data.ID.String(), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Conflict", e.Data.ID.String() + "/conflict", http.StatusNoContent, "OPTIONS, GET"},
		{"Conflict for missing employee", uuid.New().String() + "/conflict", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v4/employees/%s", tt.path), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.allow, r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesGetSingle() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Employee", e.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No Employee with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"PATCH No Employee with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"DELETE Invalid ID", "notaUUID", http.StatusBadRequest, http.MethodDelete},
		{"DELETE No Employee with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v4/employees/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesGetFilter() {
	_ = createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Ada Lovelace", Email: "ada@example.com", Role: models.RoleManager})
	_ = createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Grace Hopper", Email: "grace@navy.mil", Role: models.RoleTeamLead})
	_ = createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Alan Turing", Email: "alan@example.com"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Fuzzy name", "name=a", 3},
		{"Name", "name=hopper", 1},
		{"Email domain", "email=example.com", 2},
		{"Role Manager", "role=Manager", 1},
		{"Role Team Lead", fmt.Sprintf("role=%s", url.QueryEscape("Team Lead")), 1},
		{"Role Employee", "role=Employee", 1},
		{"Search in email", "search=navy", 1},
		{"Search in name", "search=turing", 1},
		{"Offset", "offset=1", 2},
		{"Limit", "limit=1", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v4.EmployeeListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v4/employees?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}

	var re v4.EmployeeListResponse
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v4/employees", "")
	test.DecodeResponse(suite.T(), &r, &re)
	require.Len(suite.T(), re.Data, 3)
	assert.Equal(suite.T(), "Ada Lovelace", re.Data[0].Name)
	assert.Equal(suite.T(), "Alan Turing", re.Data[1].Name)
	assert.Equal(suite.T(), "Grace Hopper", re.Data[2].Name)
}

func (suite *TestSuiteStandard) TestEmployeesUpdate() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Ada", Email: "ada@example.com"})
	_ = createTestEmployee(suite.T(), v4.EmployeeEditable{Email: "grace@example.com"})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, e v4.Employee)
	}{
		{"Promote", map[string]any{"role": "Team Lead"}, http.StatusOK, func(t *testing.T, e v4.Employee) {
			assert.Equal(t, models.RoleTeamLead, e.Role)
			assert.Equal(t, "Ada", e.Name)
		}},
		{"Rename", map[string]any{"name": "Ada Lovelace"}, http.StatusOK, func(t *testing.T, e v4.Employee) {
			assert.Equal(t, "Ada Lovelace", e.Name)
			assert.Equal(t, models.RoleTeamLead, e.Role)
		}},
		{"Invalid role", map[string]any{"role": "CEO"}, http.StatusBadRequest, nil},
		{"Empty email", map[string]any{"email": ""}, http.StatusBadRequest, nil},
		{"Duplicate email", map[string]any{"email": "grace@example.com"}, http.StatusBadRequest, nil},
		{"Broken body", `{ "name": 2 }`, http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, e.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.check != nil {
				var response v4.EmployeeResponse
				test.DecodeResponse(t, &r, &response)
				tt.check(t, *response.Data)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEmployeesDelete() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{})
	p := createTestProject(suite.T(), v4.ProjectCreate{
		InitialBudget: &v4.InitialBudget{Month: march2025, BudgetedResources: decimal.NewFromInt(1)},
	})
	period := setTestBudget(suite.T(), p.Data.ID, march2025, "1", http.StatusOK)
	a := createTestAllocation(suite.T(), e.Data.ID, period.Data.ID, "1")

	r := test.Request(suite.T(), http.MethodDelete, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, e.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, a.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The budget period is kept
	r = test.Request(suite.T(), http.MethodGet, period.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestEmployeesConflict() {
	e := createTestEmployee(suite.T(), v4.EmployeeEditable{Name: "Ada Lovelace"})
	apollo := createTestProject(suite.T(), v4.ProjectCreate{})
	gemini := createTestProject(suite.T(), v4.ProjectCreate{})

	a := setTestBudget(suite.T(), apollo.Data.ID, march2025, "2", http.StatusCreated)
	g := setTestBudget(suite.T(), gemini.Data.ID, march2025, "1", http.StatusCreated)
	_ = createTestAllocation(suite.T(), e.Data.ID, a.Data.ID, "0.5")
	_ = createTestAllocation(suite.T(), e.Data.ID, g.Data.ID, "intern")

	tests := []struct {
		name      string
		query     string
		conflict  bool
		committed string
		total     string
	}{
		{"Fits", "month=2025-03&value=0.5", false, "0.5", "1"},
		{"Exceeds", "month=2025-03&value=0.6", true, "0.5", "1.1"},
		{"Month abbreviation", "month=Mar&year=2025&value=0.6", true, "0.5", "1.1"},
		{"Intern", "month=2025-03&value=intern", false, "0.5", "0.5"},
		{"Other month", "month=2025-04&value=1", false, "0", "1"},
		{"Rounded", "month=2025-03&value=0.504", false, "0.5", "1"},
		{"Below minimum", "month=2025-03&value=0.05", true, "0.5", "0.5"},
		{"Not a number", "month=2025-03&value=lots", true, "0.5", "0.5"},
		{"Empty value", "month=2025-03&value=", true, "0.5", "0.5"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?%s", e.Data.Links.Conflict, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v4.EmployeeConflictResponse
			test.DecodeResponse(t, &r, &response)

			assert.Equal(t, tt.conflict, response.Data.Conflict)
			assert.True(t, response.Data.Committed.Equal(decimal.RequireFromString(tt.committed)), "committed is %s", response.Data.Committed)
			assert.True(t, response.Data.Total.Equal(decimal.RequireFromString(tt.total)), "total is %s", response.Data.Total)

			if tt.conflict {
				require.NotNil(t, response.Data.Reason)
			} else {
				assert.Nil(t, response.Data.Reason)
			}
		})
	}

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("%s?month=2025-03&value=0.6", e.Data.Links.Conflict), "")
	var response v4.EmployeeConflictResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data.Reason, "Ada Lovelace")
	assert.Contains(suite.T(), *response.Data.Reason, "1.10")

	inputTests := []struct {
		name   string
		query  string
		reason string
	}{
		{"Month missing", "value=0.5", "the month query parameter must be set"},
		{"Month invalid", "month=2025-13&value=0.5", ""},
		{"Month abbreviation invalid", "month=Foo&year=2025&value=0.5", ""},
		{"Year invalid", "month=Mar&year=25&value=0.5", ""},
		{"Value missing", "month=2025-03", "the value query parameter must be set"},
	}

	for _, tt := range inputTests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("%s?%s", e.Data.Links.Conflict, tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v4.EmployeeConflictResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Data)
			assert.Nil(t, response.Error)
			assert.True(t, response.Data.Conflict)
			require.NotNil(t, response.Data.Reason)
			assert.NotEmpty(t, *response.Data.Reason)

			if tt.reason != "" {
				assert.Equal(t, tt.reason, *response.Data.Reason)
			}
		})
	}

	errorTests := []struct {
		name   string
		path   string
		status int
	}{
		{"Employee missing", fmt.Sprintf("http://example.com/v4/employees/%s/conflict?month=2025-03&value=0.5", uuid.New()), http.StatusNotFound},
		{"Employee missing with malformed month", fmt.Sprintf("http://example.com/v4/employees/%s/conflict?month=Foo&value=0.5", uuid.New()), http.StatusNotFound},
		{"Invalid ID", "http://example.com/v4/employees/notaUUID/conflict?month=2025-03&value=0.5", http.StatusBadRequest},
	}

	for _, tt := range errorTests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.NotEmpty(t, test.DecodeError(t, &r))
		})
	}
}
