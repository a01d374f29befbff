// Package docs holds the OpenAPI document served under /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/auth/signup": {
            "post": {
                "tags": ["auth"], "summary": "Register an account",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/signupRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Exchange credentials for a bearer token",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.Token"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/upload": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Upload a PDF",
                "consumes": ["multipart/form-data"], "produces": ["application/json"],
                "parameters": [{"type": "file", "name": "file", "in": "formData", "required": true}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/uploadResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/list": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "List documents owned by or shared with the caller",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.DocumentSummary"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/comment": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Comment on a readable document",
                "consumes": ["application/x-www-form-urlencoded"], "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "file_id", "in": "formData", "required": true},
                    {"type": "string", "name": "text", "in": "formData", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Comment"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/comments/{file_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "List the comments of a readable document, oldest first",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "file_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Comment"}}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/share": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Grant another user read access",
                "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/shareRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/link/{file_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Get the shareable link of an owned document",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "file_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/service.ShareLink"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/view/{file_id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Stream a readable document",
                "produces": ["application/pdf"],
                "parameters": [{"type": "string", "name": "file_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/shared/{file_id}": {
            "get": {
                "tags": ["pdf"], "summary": "Stream a document through its shared link",
                "description": "Authorization depends on SHARED_LINK_MODE: authenticated, public or disabled.",
                "produces": ["application/pdf"],
                "parameters": [{"type": "string", "name": "file_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/pdf/delete/{file_id}": {
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["pdf"], "summary": "Delete an owned document with its content and comments",
                "produces": ["application/json"],
                "parameters": [{"type": "string", "name": "file_id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/messageResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/health": {
            "get": {
                "tags": ["ops"], "summary": "Readiness probe", "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/healthz": {
            "get": {"tags": ["ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "errorEnvelope": {
            "type": "object",
            "properties": {"code": {"type": "string"}, "message": {"type": "string"}}
        },
        "errorPayload": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/errorEnvelope"}, "request_id": {"type": "string"}}
        },
        "messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "uploadResponse": {
            "type": "object",
            "properties": {"file_id": {"type": "string"}, "message": {"type": "string"}}
        },
        "signupRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "name": {"type": "string"}, "password": {"type": "string"}}
        },
        "loginRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "shareRequest": {
            "type": "object",
            "properties": {"file_id": {"type": "string"}, "share_with": {"type": "string"}}
        },
        "model.DocumentSummary": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"}, "file_id": {"type": "string"}, "filename": {"type": "string"},
                "is_owner": {"type": "boolean"}, "owner": {"type": "string"}
            }
        },
        "model.Comment": {
            "type": "object",
            "properties": {
                "file_id": {"type": "string"}, "id": {"type": "string"}, "text": {"type": "string"},
                "timestamp": {"type": "string"}, "user_email": {"type": "string"}
            }
        },
        "service.Token": {
            "type": "object",
            "properties": {"access_token": {"type": "string"}, "expires_at": {"type": "string"}, "token_type": {"type": "string"}}
        },
        "service.ShareLink": {
            "type": "object",
            "properties": {"expires_at": {"type": "string"}, "presigned_url": {"type": "string"}, "share_url": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "PDF Share API",
	Description:      "Upload, list, view, comment on and share PDF documents.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
