// Package docs registers the OpenAPI document served at /swagger.
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
        "/generate-questions": {
            "post": {
                "description": "Picks a theme and a concept (or uses the ones supplied), generates questions with the model and stores the valid ones. An empty or unreadable body runs in automatic mode.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Generate a batch of questions",
                "parameters": [
                    {
                        "description": "Optional overrides",
                        "name": "request",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/dto.GenerateQuestionsRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.GenerateQuestionsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.DuplicateConceptResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/generation/last": {
            "get": {
                "produces": ["application/json"],
                "tags": ["generation"],
                "summary": "Last generation run of a theme",
                "parameters": [
                    {"type": "string", "description": "Theme ID", "name": "theme_id", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.LastRunResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/notifications/send": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Push a notification to a user",
                "parameters": [
                    {
                        "description": "Recipient and message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/dto.SendNotificationRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.SendNotificationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/notifications/streak-reminders": {
            "post": {
                "description": "Reminds users whose local time is the reminder hour and whose streak ends at midnight.",
                "produces": ["application/json"],
                "tags": ["notifications"],
                "summary": "Send streak reminders",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.StreakRemindersResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.DifficultyDistribution": {
            "type": "object",
            "properties": {
                "easy": {"type": "integer"},
                "medium": {"type": "integer"},
                "hard": {"type": "integer"}
            }
        },
        "dto.DuplicateConceptResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "theme": {"type": "string"},
                "concept": {"type": "string"},
                "existing_concepts": {"type": "array", "items": {"type": "string"}}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "dto.GenerateQuestionsRequest": {
            "description": "Operator overrides; every field is optional",
            "type": "object",
            "properties": {
                "concept": {"type": "string"},
                "concept_fr": {"type": "string"},
                "theme_id": {"type": "string"}
            }
        },
        "dto.GenerateQuestionsResponse": {
            "description": "Summary of a successful generation run",
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "mode": {"type": "string"},
                "theme": {"type": "string"},
                "theme_icon": {"type": "string"},
                "concept": {"type": "string"},
                "questions_generated": {"type": "integer"},
                "difficulty_distribution": {"$ref": "#/definitions/dto.DifficultyDistribution"},
                "total_concepts_for_theme": {"type": "integer"}
            }
        },
        "dto.LastRunResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "run": {"$ref": "#/definitions/dto.GenerateQuestionsResponse"}
            }
        },
        "dto.SendNotificationRequest": {
            "type": "object",
            "properties": {
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "body": {"type": "string"}
            }
        },
        "dto.SendNotificationResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "sent": {"type": "integer"},
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.TokenResult"}}
            }
        },
        "dto.StreakRemindersResponse": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "message": {"type": "string"},
                "sent": {"type": "integer"}
            }
        },
        "dto.TokenResult": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "status": {"type": "integer"},
                "result": {"type": "object", "additionalProperties": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8090",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "Quiz Forge API",
	Description:      "Question generation and player notification API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
