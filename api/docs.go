// Package api contains the OpenAPI documentation of the backend.
//
// Regenerate with "swag init" after changing the annotations of the handlers.
package api

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "API root",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/version": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "API version",
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/healthz": {
			"get": {
				"tags": [
					"General"
				],
				"summary": "Get health",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4": {
			"get": {
				"tags": [
					"v4"
				],
				"summary": "v4 API",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			},
			"delete": {
				"tags": [
					"v4"
				],
				"summary": "Delete everything",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/projects": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "Get projects",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			},
			"post": {
				"tags": [
					"Projects"
				],
				"summary": "Create projects",
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/projects/{id}": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "Get project",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Projects"
				],
				"summary": "Update project",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Projects"
				],
				"summary": "Delete project",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/projects/{id}/periods": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "Get project periods",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/projects/{id}/{month}": {
			"get": {
				"tags": [
					"Projects"
				],
				"summary": "Get budget for a month",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "The month in YYYY-MM format",
						"name": "month",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Projects"
				],
				"summary": "Set budget for a month",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					},
					{
						"type": "string",
						"description": "The month in YYYY-MM format",
						"name": "month",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/employees": {
			"get": {
				"tags": [
					"Employees"
				],
				"summary": "Get employees",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			},
			"post": {
				"tags": [
					"Employees"
				],
				"summary": "Create employees",
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/employees/{id}": {
			"get": {
				"tags": [
					"Employees"
				],
				"summary": "Get employee",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Employees"
				],
				"summary": "Update employee",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Employees"
				],
				"summary": "Delete employee",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/employees/{id}/conflict": {
			"get": {
				"tags": [
					"Employees"
				],
				"summary": "Check allocation conflict",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/budget-periods": {
			"get": {
				"tags": [
					"Budget Periods"
				],
				"summary": "Get budget periods",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/budget-periods/{id}": {
			"get": {
				"tags": [
					"Budget Periods"
				],
				"summary": "Get budget period",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Budget Periods"
				],
				"summary": "Delete budget period",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/budget-periods/{id}/variance": {
			"get": {
				"tags": [
					"Budget Periods"
				],
				"summary": "Get budget period variance",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/allocations": {
			"get": {
				"tags": [
					"Allocations"
				],
				"summary": "Get allocations",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			},
			"post": {
				"tags": [
					"Allocations"
				],
				"summary": "Create allocations",
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/allocations/{id}": {
			"get": {
				"tags": [
					"Allocations"
				],
				"summary": "Get allocation",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"patch": {
				"tags": [
					"Allocations"
				],
				"summary": "Update allocation",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			},
			"delete": {
				"tags": [
					"Allocations"
				],
				"summary": "Delete allocation",
				"responses": {
					"204": {
						"description": "No Content"
					},
					"400": {
						"description": "Bad Request"
					},
					"404": {
						"description": "Not Found"
					},
					"500": {
						"description": "Internal Server Error"
					}
				},
				"parameters": [
					{
						"type": "string",
						"description": "ID of the resource",
						"name": "id",
						"in": "path",
						"required": true
					}
				]
			}
		},
		"/v4/months": {
			"get": {
				"tags": [
					"Months"
				],
				"summary": "Get month",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/months/commitments": {
			"get": {
				"tags": [
					"Months"
				],
				"summary": "Get commitments",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		},
		"/v4/months/export": {
			"get": {
				"tags": [
					"Months"
				],
				"summary": "Export month",
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"500": {
						"description": "Internal Server Error"
					}
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
