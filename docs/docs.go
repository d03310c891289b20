// Package docs holds the Swagger document served at /swagger. Keep it in
// step with the @ annotations on the controllers.
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
        "/forms": {
            "get": {
                "description": "All forms, newest first, with their response counts",
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "List forms",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.FormSummary"}}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Generates the slug and any missing question ids",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Create a form",
                "parameters": [
                    {"description": "Form", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateFormRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/forms/slug/{slug}": {
            "get": {
                "description": "Only published forms are returned",
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Get a published form by slug",
                "parameters": [
                    {"type": "string", "description": "Form slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/forms/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Get a form by ID",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Only the fields present in the body are changed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Update a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.UpdateFormRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Form"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes the form and all of its responses",
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Delete a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/forms/{id}/publish": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "Publish or unpublish a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"description": "Publish state", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.PublishRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PublishResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/forms/{id}/qrcode": {
            "get": {
                "produces": ["image/png"],
                "tags": ["forms"],
                "summary": "QR code of a form's share link",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true},
                    {"type": "integer", "description": "Image size in pixels (128-1024)", "name": "size", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/forms/{id}/responses": {
            "get": {
                "produces": ["application/json"],
                "tags": ["forms"],
                "summary": "List the responses of a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Response"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/responses": {
            "post": {
                "description": "Scores the answers and stores the response",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Submit answers to a published form",
                "parameters": [
                    {"description": "Answers", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SubmitResponseRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.SubmitResult"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/responses/analytics/{formId}": {
            "get": {
                "description": "Recomputed from the current responses on every call",
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Analytics of a form",
                "parameters": [
                    {"type": "string", "description": "Form ID", "name": "formId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.FormAnalytics"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/responses/form/{slug}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "List the responses submitted under a slug",
                "parameters": [
                    {"type": "string", "description": "Form slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Response"}}}
                }
            }
        },
        "/responses/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Get a response by ID",
                "parameters": [
                    {"type": "string", "description": "Response ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["responses"],
                "summary": "Delete a response",
                "parameters": [
                    {"type": "string", "description": "Response ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.Answer": {
            "type": "object",
            "properties": {
                "questionId": {"type": "string"},
                "questionType": {"type": "string"},
                "categorizedItems": {"type": "array", "items": {"type": "object", "properties": {"itemId": {"type": "string"}, "categoryId": {"type": "string"}}}},
                "blankAnswers": {"type": "array", "items": {"type": "object", "properties": {"blankId": {"type": "string"}, "answer": {"type": "string"}}}},
                "subAnswers": {"type": "array", "items": {"type": "object", "properties": {"subQuestionId": {"type": "string"}, "answer": {"type": "string"}}}}
            }
        },
        "models.CreateFormRequest": {
            "type": "object",
            "required": ["title"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "headerImage": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "settings": {"$ref": "#/definitions/models.SettingsPatch"},
                "createdBy": {"type": "string"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "models.FieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "tag": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "models.Form": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "headerImage": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "settings": {"$ref": "#/definitions/models.FormSettings"},
                "isPublished": {"type": "boolean"},
                "createdBy": {"type": "string"},
                "slug": {"type": "string"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.FormAnalytics": {
            "type": "object",
            "properties": {
                "totalResponses": {"type": "integer"},
                "averageScore": {"type": "number"},
                "averageCompletionTime": {"type": "number"},
                "responsesByDay": {"type": "object", "additionalProperties": {"type": "integer"}},
                "scoreDistribution": {"$ref": "#/definitions/models.ScoreDistribution"}
            }
        },
        "models.FormSettings": {
            "type": "object",
            "properties": {
                "allowMultipleSubmissions": {"type": "boolean"},
                "showProgressBar": {"type": "boolean"},
                "thankYouMessage": {"type": "string"},
                "redirectUrl": {"type": "string"}
            }
        },
        "models.FormSummary": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "headerImage": {"type": "string"},
                "isPublished": {"type": "boolean"},
                "slug": {"type": "string"},
                "createdAt": {"type": "string"},
                "responseCount": {"type": "integer"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "models.PublishRequest": {
            "type": "object",
            "required": ["isPublished"],
            "properties": {
                "isPublished": {"type": "boolean"}
            }
        },
        "models.PublishResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "form": {"$ref": "#/definitions/models.Form"}
            }
        },
        "models.Question": {
            "type": "object",
            "required": ["title", "type"],
            "properties": {
                "id": {"type": "string"},
                "type": {"type": "string", "enum": ["categorize", "cloze", "comprehension"]},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "required": {"type": "boolean"},
                "categories": {"type": "array", "items": {"type": "object"}},
                "items": {"type": "array", "items": {"type": "object"}},
                "sentence": {"type": "string"},
                "blanks": {"type": "array", "items": {"type": "object"}},
                "passage": {"type": "string"},
                "subQuestions": {"type": "array", "items": {"type": "object"}}
            }
        },
        "models.Response": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "formId": {"type": "string"},
                "formSlug": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/models.Answer"}},
                "submittedAt": {"type": "string"},
                "submitterInfo": {"type": "object"},
                "score": {"type": "integer"},
                "maxScore": {"type": "integer"},
                "completionTime": {"type": "number"},
                "isComplete": {"type": "boolean"},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.ScoreDistribution": {
            "type": "object",
            "properties": {
                "excellent": {"type": "integer"},
                "good": {"type": "integer"},
                "average": {"type": "integer"},
                "poor": {"type": "integer"}
            }
        },
        "models.SubmitResponseRequest": {
            "type": "object",
            "required": ["answers", "formSlug"],
            "properties": {
                "formSlug": {"type": "string"},
                "answers": {"type": "array", "items": {"$ref": "#/definitions/models.Answer"}},
                "completionTime": {"type": "number"},
                "sessionId": {"type": "string"}
            }
        },
        "models.SubmitResult": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "responseId": {"type": "string"},
                "score": {"type": "integer"},
                "maxScore": {"type": "integer"},
                "thankYouMessage": {"type": "string"}
            }
        },
        "models.SettingsPatch": {
            "type": "object",
            "description": "Only the fields sent are applied; the rest keep their defaults or stored values.",
            "properties": {
                "allowMultipleSubmissions": {"type": "boolean"},
                "showProgressBar": {"type": "boolean"},
                "thankYouMessage": {"type": "string"},
                "redirectUrl": {"type": "string"}
            }
        },
        "models.UpdateFormRequest": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "headerImage": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/models.Question"}},
                "settings": {"$ref": "#/definitions/models.SettingsPatch"},
                "isPublished": {"type": "boolean"},
                "createdBy": {"type": "string"}
            }
        },
        "models.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "errors": {"type": "array", "items": {"$ref": "#/definitions/models.FieldError"}}
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
	Title:            "Form Builder API",
	Description:      "Forms with categorize, cloze and comprehension questions, scored submissions and analytics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
