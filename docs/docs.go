// Package docs registers the OpenAPI document served under /api/swagger. It
// mirrors the godoc annotations on the handlers in internal/api.
package docs

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
        "/v1/chats": {
            "get": {
                "description": "Refreshes the chat directory from the analytics backend, newest first.",
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "List chats",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.ChatEntry"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}": {
            "delete": {
                "description": "Deletes the chat on the analytics backend and removes it from the directory once acknowledged.",
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Delete a chat",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/chats/{chatID}/title": {
            "put": {
                "description": "Retitles the chat on the analytics backend; the directory shows the new title once acknowledged.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chats"],
                "summary": "Rename a chat",
                "parameters": [
                    {"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true},
                    {"description": "New title", "name": "title", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.UpdateTitleRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.StatusResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/dashboards": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboards"],
                "summary": "List dashboards",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Dashboard"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/dashboards/{dashboardID}/charts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboards"],
                "summary": "List the charts of a dashboard",
                "parameters": [{"type": "string", "description": "Dashboard ID", "name": "dashboardID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.DashboardChart"}}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/events": {
            "get": {
                "description": "WebSocket feed. Sends the full workspace snapshot on connect and after every change.",
                "tags": ["Session"],
                "summary": "Workspace events",
                "responses": {
                    "101": {"description": "Switching Protocols", "schema": {"$ref": "#/definitions/workspace.Snapshot"}}
                }
            }
        },
        "/v1/modal": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Modal"],
                "summary": "Get modal state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/modal.State"}}
                }
            },
            "delete": {
                "description": "Discards the open modal. Refused while a submit is in flight.",
                "produces": ["application/json"],
                "tags": ["Modal"],
                "summary": "Close the modal",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/modal.State"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/modal/{kind}": {
            "post": {
                "description": "Opens the modal of the given kind, replacing any other open modal.",
                "produces": ["application/json"],
                "tags": ["Modal"],
                "summary": "Open a modal",
                "parameters": [{"enum": ["createReport", "createDashboard", "addChartToDashboard"], "type": "string", "description": "Modal kind", "name": "kind", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/modal.State"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/modal/{kind}/submit": {
            "post": {
                "description": "Sends the modal's payload to the analytics backend. Success closes the modal; failure keeps it open with a message.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Modal"],
                "summary": "Submit the modal",
                "parameters": [
                    {"enum": ["createReport", "createDashboard", "addChartToDashboard"], "type": "string", "description": "Modal kind", "name": "kind", "in": "path", "required": true},
                    {"description": "modal.ReportInput, modal.DashboardInput or modal.ChartInput", "name": "payload", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.ModalSubmitResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/api.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ModalSubmitResponse"}}
                }
            }
        },
        "/v1/queries": {
            "post": {
                "description": "Appends the question and a pending answer to the conversation and sends it to the analytics backend. The answer arrives on the events feed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Ask a question",
                "parameters": [{"description": "Question", "name": "query", "in": "body", "required": true, "schema": {"$ref": "#/definitions/api.SubmitQueryRequest"}}],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/api.SubmitQueryResponse"}},
                    "204": {"description": "Blank question, nothing submitted"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        },
        "/v1/session": {
            "get": {
                "description": "Returns the session id, the conversation with table views, the chat directory and the modal state.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Get the current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workspace.Snapshot"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Start a new chat",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workspace.Snapshot"}}
                }
            }
        },
        "/v1/session/{chatID}": {
            "put": {
                "description": "Makes the given chat the current session and loads its transcript.",
                "produces": ["application/json"],
                "tags": ["Session"],
                "summary": "Navigate to a session",
                "parameters": [{"type": "string", "description": "Chat ID", "name": "chatID", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/workspace.Snapshot"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "api.ModalSubmitResponse": {
            "type": "object",
            "properties": {"data": {}, "message": {"type": "string"}, "success": {"type": "boolean"}}
        },
        "api.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "api.SubmitQueryRequest": {
            "type": "object",
            "required": ["query"],
            "properties": {"query": {"type": "string", "maxLength": 4000, "example": "How many payments failed today?"}}
        },
        "api.SubmitQueryResponse": {
            "type": "object",
            "properties": {"bot_message_id": {"type": "string"}, "session_id": {"type": "string"}, "user_message_id": {"type": "string"}}
        },
        "api.UpdateTitleRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {"title": {"type": "string", "maxLength": 200, "example": "Failed payments"}}
        },
        "modal.State": {
            "type": "object",
            "properties": {"in_flight": {"type": "boolean"}, "kind": {"type": "string"}, "last_error": {"type": "string"}, "open": {"type": "boolean"}}
        },
        "model.ChatEntry": {
            "type": "object",
            "properties": {"chat_id": {"type": "string"}, "query": {"type": "string"}, "timestamp": {"type": "string"}, "title": {"type": "string"}}
        },
        "model.Dashboard": {
            "type": "object",
            "properties": {"charts_count": {"type": "integer"}, "created_at": {"type": "string"}, "dashboard_id": {"type": "string"}, "title": {"type": "string"}, "updated_at": {"type": "string"}}
        },
        "model.DashboardChart": {
            "type": "object",
            "properties": {"chart_data": {"type": "object"}, "chart_id": {"type": "string"}, "chart_title": {"type": "string"}, "created_at": {"type": "string"}, "dashboard_id": {"type": "string"}}
        },
        "model.Message": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "string"},
                "pending": {"type": "boolean"},
                "query": {"type": "string"},
                "response": {"type": "object"},
                "role": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "render.TableView": {
            "type": "object",
            "properties": {
                "cells": {"type": "array", "items": {"type": "array", "items": {"type": "string"}}},
                "columns": {"type": "array", "items": {"type": "string"}}
            }
        },
        "workspace.MessageView": {
            "type": "object",
            "properties": {
                "chart_points": {"type": "array", "items": {"type": "object"}},
                "content": {"type": "string"},
                "id": {"type": "string"},
                "pending": {"type": "boolean"},
                "query": {"type": "string"},
                "response": {"type": "object"},
                "role": {"type": "string"},
                "table": {"$ref": "#/definitions/render.TableView"},
                "timestamp": {"type": "string"}
            }
        },
        "workspace.Snapshot": {
            "type": "object",
            "properties": {
                "chats": {"type": "array", "items": {"$ref": "#/definitions/model.ChatEntry"}},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/workspace.MessageView"}},
                "modal": {"$ref": "#/definitions/modal.State"},
                "notice": {"type": "string"},
                "session_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Insight Chat API",
	Description:      "Conversational analytics front-end: ask questions, browse chat history and create reports and dashboards.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
