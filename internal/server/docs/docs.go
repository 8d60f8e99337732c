// Package docs contains the generated swagger documentation.
// Run `swag init -g internal/server/api.go -o internal/server/docs` to regenerate.
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
        "/next": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Next Suhoor and Iftar",
                "parameters": [
                    {"type": "string", "description": "Language label, English name or BCP 47 tag", "name": "lang", "in": "query"},
                    {"type": "string", "description": "upcoming or absolute", "name": "policy", "in": "query"},
                    {"type": "string", "description": "Reference instant (RFC 3339), default now", "name": "at", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/report.Next"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/schedule": {
            "get": {
                "produces": ["application/json"],
                "tags": ["schedule"],
                "summary": "Full timetable",
                "parameters": [
                    {"type": "string", "description": "suhoor or iftar (default both)", "name": "kind", "in": "query"},
                    {"type": "string", "description": "Language", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.ScheduleResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        },
        "/languages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "Supported languages",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.LanguagesResponse"}}
                }
            }
        },
        "/phrases": {
            "get": {
                "produces": ["application/json"],
                "tags": ["i18n"],
                "summary": "Phrase catalog",
                "parameters": [
                    {"type": "string", "description": "Language", "name": "lang", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/server.PhrasesResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/server.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "report.Event": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "label": {"type": "string"},
                "at": {"type": "string", "format": "date-time"},
                "display": {"type": "string"},
                "countdown": {"type": "string"},
                "same_day": {"type": "array", "items": {"type": "string"}}
            }
        },
        "report.Next": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "policy": {"type": "string"},
                "now": {"type": "string", "format": "date-time"},
                "status": {"type": "string", "enum": ["before", "active", "ended"]},
                "notice": {"type": "string"},
                "detail": {"type": "string"},
                "events": {"type": "array", "items": {"$ref": "#/definitions/report.Event"}}
            }
        },
        "report.Entry": {
            "type": "object",
            "properties": {
                "kind": {"type": "string"},
                "label": {"type": "string"},
                "at": {"type": "string", "format": "date-time"},
                "date": {"type": "string"},
                "time": {"type": "string"}
            }
        },
        "server.ScheduleResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "language": {"type": "string"},
                "entries": {"type": "array", "items": {"$ref": "#/definitions/report.Entry"}}
            }
        },
        "server.LanguagesResponse": {
            "type": "object",
            "properties": {
                "languages": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "tag": {"type": "string"},
                            "name": {"type": "string"},
                            "english_name": {"type": "string"},
                            "rtl": {"type": "boolean"},
                            "active": {"type": "boolean"}
                        }
                    }
                }
            }
        },
        "server.PhrasesResponse": {
            "type": "object",
            "properties": {
                "language": {"type": "string"},
                "phrases": {"type": "object", "additionalProperties": {"type": "string"}},
                "months": {"type": "array", "items": {"type": "string"}},
                "digits": {"type": "array", "items": {"type": "string"}}
            }
        },
        "server.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Suhoor API",
	Description:      "Next Suhoor and Iftar times, localized into six languages.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
