// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/dates/today": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dates"],
                "summary": "Today's date, ISO week and weekday",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/backlog": {
            "get": {
                "produces": ["application/json"],
                "tags": ["backlog"],
                "summary": "List backlog tasks",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["backlog"],
                "summary": "Create a backlog task",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/calendar": {
            "get": {
                "produces": ["application/json"],
                "tags": ["calendar"],
                "summary": "List calendar events",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/routines": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["routines"],
                "summary": "Record a daily routine",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/lists": {
            "get": {
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "List all lists",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Create a list",
                "responses": {"201": {"description": "Created"}, "409": {"description": "Conflict"}}
            }
        },
        "/lists/items": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Add items to a list",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/lists/items/update": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["lists"],
                "summary": "Update one list item by id, name or index",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/achievements": {
            "get": {
                "produces": ["application/json"],
                "tags": ["achievements"],
                "summary": "List achievements",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/workouts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["workouts"],
                "summary": "List workouts",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/projects": {
            "get": {
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List projects",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/kpis": {
            "get": {
                "produces": ["application/json"],
                "tags": ["kpis"],
                "summary": "Aggregated progress indicators",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Personal Lambda API",
	Description:      "Backlog, calendar, routines, lists, achievements, workouts, projects and KPIs.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
