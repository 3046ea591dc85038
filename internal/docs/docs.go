// Package docs registra la especificación OpenAPI servida en /swagger.
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
        "/health": {
            "get": {"tags": ["health"], "summary": "Liveness", "produces": ["text/plain"], "responses": {"200": {"description": "ok"}}}
        },
        "/nav": {
            "get": {"tags": ["nav"], "summary": "Destinos de navegación", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/dogs": {
            "get": {"tags": ["dogs"], "summary": "Lista perros propios y candidatos", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/dogs/{dogID}": {
            "get": {
                "tags": ["dogs"],
                "summary": "Perfil de un perro",
                "produces": ["application/json"],
                "parameters": [{"type": "integer", "description": "dog id", "name": "dogID", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/profile/dogs": {
            "get": {"tags": ["profile"], "summary": "Mis perros y el activo", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/profile/active": {
            "put": {
                "tags": ["profile"],
                "summary": "Selecciona el perro activo",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/setActiveRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/swipe": {
            "get": {"tags": ["swipe"], "summary": "Perro activo y candidato actual", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/swipe/like": {
            "post": {"tags": ["swipe"], "summary": "Like al candidato actual", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/swipe/skip": {
            "post": {"tags": ["swipe"], "summary": "Skip del candidato actual", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/swipe/drag": {
            "post": {
                "tags": ["swipe"],
                "summary": "Resuelve el gesto al soltar la tarjeta",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dragRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/matches": {
            "get": {"tags": ["matches"], "summary": "Matches en orden de creación", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/recipe": {
            "get": {"tags": ["recipe"], "summary": "Batch de 30 días para el perro activo", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity"}}},
            "post": {
                "tags": ["recipe"],
                "summary": "Batch de 30 días para un perfil ad-hoc",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/planRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "422": {"description": "Unprocessable Entity"}}
            }
        },
        "/learn": {
            "get": {"tags": ["learn"], "summary": "Pregunta actual del quiz", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/learn/select": {
            "post": {
                "tags": ["learn"],
                "summary": "Elige una opción",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/selectRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "409": {"description": "Conflict"}}
            }
        },
        "/learn/next": {
            "post": {"tags": ["learn"], "summary": "Avanza a la siguiente pregunta", "produces": ["application/json"], "responses": {"200": {"description": "OK"}, "409": {"description": "Conflict"}}}
        },
        "/learn/reset": {
            "post": {"tags": ["learn"], "summary": "Reinicia el quiz", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        },
        "/chat": {
            "get": {"tags": ["chat"], "summary": "Transcript guionado", "produces": ["application/json"], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "setActiveRequest": {
            "type": "object",
            "properties": {"dog_id": {"type": "integer"}}
        },
        "dragRequest": {
            "type": "object",
            "properties": {"offset_x": {"type": "number"}}
        },
        "selectRequest": {
            "type": "object",
            "properties": {"option": {"type": "integer"}}
        },
        "planRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age_years": {"type": "integer", "minimum": 0},
                "weight_lb": {"type": "number", "exclusiveMinimum": true, "minimum": 0, "maximum": 1000},
                "activities": {"type": "array", "items": {"type": "string", "enum": ["RUNNING", "BEACH", "HIKING", "PARK", "AGILITY"]}},
                "allergies": {"type": "array", "items": {"type": "string", "enum": ["turkey", "sweet_potato", "carrot", "broccoli"]}}
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
	Title:            "PawConnects API",
	Description:      "Swipe de perfiles, matches por actividades, batch de comida de 30 días, quiz y chat de demo.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
