// Package docs registra el OpenAPI que sirve /swagger.
// Se mantiene a mano: al cambiar una ruta hay que actualizar docTemplate
// junto con las anotaciones godoc del handler.
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
        "/chat/messages": {
            "get": {
                "description": "busy=true mientras el asistente está respondiendo.",
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Historial del chat",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/chat.listResponse"}}
                }
            },
            "post": {
                "description": "Guarda el mensaje del usuario; la respuesta llega después (consultar GET).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["chat"],
                "summary": "Enviar mensaje al asistente",
                "parameters": [
                    {"description": "Mensaje", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/chat.submitRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/chat.Message"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["chat"],
                "summary": "Borrar historial",
                "parameters": [
                    {"type": "boolean", "description": "Confirmación", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/feeding": {
            "get": {
                "produces": ["application/json"],
                "tags": ["feeding"],
                "summary": "Listar comidas",
                "parameters": [
                    {"type": "string", "description": "Mascota", "name": "petId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/feeding.Record"}}}
                }
            },
            "post": {
                "description": "Agrega el registro al principio de la colección. Sin petId usa la mascota seleccionada (o la primera).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feeding"],
                "summary": "Registrar comida",
                "parameters": [
                    {"description": "Registro de comida", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/feeding.recordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/feeding.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/feeding/recent": {
            "get": {
                "description": "Últimas 7 comidas de la mascota por fecha y hora descendente.",
                "produces": ["application/json"],
                "tags": ["feeding"],
                "summary": "Comidas recientes",
                "parameters": [
                    {"type": "string", "description": "Mascota (default: la seleccionada)", "name": "petId", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/feeding.Record"}}}
                }
            }
        },
        "/feeding/{recordID}": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["feeding"],
                "summary": "Editar registro de comida",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true},
                    {"description": "Datos del registro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/feeding.recordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/feeding.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["feeding"],
                "summary": "Borrar registro de comida",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Confirmación del usuario", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/health-records": {
            "get": {
                "description": "Ordenados por fecha descendente. Permite filtrar por tipos, rango de fechas y texto.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Listar registros de salud de una mascota",
                "parameters": [
                    {"type": "string", "description": "Mascota (default: la seleccionada)", "name": "petId", "in": "query"},
                    {"type": "string", "description": "CSV de tipos (ej: Vaccination,Vet Visit)", "name": "types", "in": "query"},
                    {"type": "string", "description": "Fecha mínima YYYY-MM-DD", "name": "from", "in": "query"},
                    {"type": "string", "description": "Fecha máxima YYYY-MM-DD", "name": "to", "in": "query"},
                    {"type": "string", "description": "Texto en título/notas", "name": "q", "in": "query"},
                    {"type": "integer", "description": "Máximo a devolver (1-200)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/health.Record"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "post": {
                "description": "Vacuna, medicación o visita al veterinario. Se agrega al principio.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Crear registro de salud",
                "parameters": [
                    {"description": "Registro de salud", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/health.recordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/health.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/health-records/{recordID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Obtener registro de salud",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Record"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Editar registro de salud",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true},
                    {"description": "Datos del registro", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/health.recordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/health.Record"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["health"],
                "summary": "Borrar registro de salud",
                "parameters": [
                    {"type": "string", "description": "ID del registro", "name": "recordID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Confirmación del usuario", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/pets": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Listar mascotas",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/pets.Pet"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Crear mascota",
                "parameters": [
                    {"description": "Mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.petRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/pets/{petID}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Obtener mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "put": {
                "description": "Reemplaza los datos de la mascota. El id no cambia.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Editar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"description": "Datos de la mascota", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/pets.petRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.Pet"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            },
            "delete": {
                "description": "Borra la mascota y sus registros de alimentación y salud. Sin confirm=true responde 409 con el texto a confirmar.",
                "tags": ["pets"],
                "summary": "Borrar mascota",
                "parameters": [
                    {"type": "string", "description": "ID de la mascota", "name": "petID", "in": "path", "required": true},
                    {"type": "boolean", "description": "Confirmación del usuario", "name": "confirm", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/pets/{petID}/age": {
            "get": {
                "produces": ["application/json"],
                "tags": ["pets"],
                "summary": "Edad en años",
                "parameters": [
                    {"type": "string", "description": "Pet ID", "name": "petID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/pets.ageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/settings/password": {
            "post": {
                "description": "No persiste nada. La contraseña actual aceptada es \"password\".",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Cambiar contraseña (mock)",
                "parameters": [
                    {"description": "Contraseñas", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/settings.changePasswordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/settings.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/respond.ErrorBody"}}
                }
            }
        },
        "/settings/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Perfil del usuario (mock)",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/settings.Profile"}}
                }
            }
        }
    },
    "definitions": {
        "chat.Message": {
            "type": "object",
            "properties": {
                "content": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string", "enum": ["user", "assistant"]},
                "timestamp": {"type": "string"}
            }
        },
        "chat.listResponse": {
            "type": "object",
            "properties": {
                "busy": {"type": "boolean"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/chat.Message"}}
            }
        },
        "chat.submitRequest": {
            "type": "object",
            "properties": {
                "content": {"type": "string"}
            }
        },
        "feeding.Record": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "foodType": {"type": "string"},
                "id": {"type": "string"},
                "notes": {"type": "string"},
                "petId": {"type": "string"},
                "quantity": {"type": "string"},
                "repeat": {"type": "string", "enum": ["none", "daily", "weekly"]},
                "time": {"type": "string"}
            }
        },
        "feeding.recordRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "foodType": {"type": "string"},
                "notes": {"type": "string"},
                "petId": {"type": "string"},
                "quantity": {"type": "string"},
                "repeat": {"type": "string", "enum": ["none", "daily", "weekly"]},
                "time": {"type": "string"}
            }
        },
        "health.Record": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "id": {"type": "string"},
                "notes": {"type": "string"},
                "petId": {"type": "string"},
                "repeat": {"type": "string", "enum": ["none", "daily", "weekly", "monthly"]},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["Vaccination", "Medication", "Vet Visit"]}
            }
        },
        "health.recordRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string"},
                "notes": {"type": "string"},
                "petId": {"type": "string"},
                "repeat": {"type": "string", "enum": ["none", "daily", "weekly", "monthly"]},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["Vaccination", "Medication", "Vet Visit"]}
            }
        },
        "pets.Pet": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "gender": {"type": "string", "enum": ["Male", "Female"]},
                "id": {"type": "string"},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "species": {"type": "string", "enum": ["Cat", "Dog", "Hamster"]},
                "weight": {"type": "number"}
            }
        },
        "pets.ageResponse": {
            "type": "object",
            "properties": {
                "petId": {"type": "string"},
                "years": {"type": "integer"}
            }
        },
        "pets.petRequest": {
            "type": "object",
            "properties": {
                "breed": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "gender": {"type": "string", "enum": ["Male", "Female"]},
                "name": {"type": "string"},
                "notes": {"type": "string"},
                "species": {"type": "string", "enum": ["Cat", "Dog", "Hamster"]},
                "weight": {"type": "number"}
            }
        },
        "respond.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "message": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "settings.Profile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "settings.changePasswordRequest": {
            "type": "object",
            "properties": {
                "confirmPassword": {"type": "string"},
                "currentPassword": {"type": "string"},
                "newPassword": {"type": "string"}
            }
        },
        "settings.messageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo se puede ajustar en main (host, basePath) antes de servir.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Companion API",
	Description:      "Estado local de la app: mascotas, comidas, salud, chat y ajustes.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
