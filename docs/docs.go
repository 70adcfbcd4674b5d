// Package docs registra a especificação Swagger da API GoCrane.
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
        "/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["operators"],
                "summary": "Autentica um operador",
                "parameters": [
                    {"description": "Email e senha", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/operator.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/operator.LoginResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["operators"],
                "summary": "Registra um novo operador",
                "parameters": [
                    {"description": "Email e senha", "name": "registration", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.OperatorRegistration"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Operator"}},
                    "409": {"description": "Email já em uso", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/layouts": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["layouts"],
                "summary": "Lista todos os layouts",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Layout"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["layouts"],
                "summary": "Cria um novo layout",
                "parameters": [
                    {"description": "Nome e diagrama", "name": "layout", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Layout"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Layout"}},
                    "400": {"description": "Payload ou diagrama inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/layouts/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["layouts"],
                "summary": "Obtém um layout por ID",
                "parameters": [{"type": "string", "description": "ID do Layout", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Layout"}},
                    "404": {"description": "Layout não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "security": [{"ApiKeyAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["layouts"],
                "summary": "Atualiza um layout",
                "parameters": [
                    {"type": "string", "description": "ID do Layout", "name": "id", "in": "path", "required": true},
                    {"description": "Nome e diagrama", "name": "layout", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.Layout"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Layout"}},
                    "404": {"description": "Layout não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"ApiKeyAuth": []}],
                "tags": ["layouts"],
                "summary": "Deleta um layout",
                "parameters": [{"type": "string", "description": "ID do Layout", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "Nenhum conteúdo"},
                    "404": {"description": "Layout não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/simulations": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Lista as execuções mais recentes",
                "parameters": [{"type": "integer", "description": "Quantidade máxima (1..100)", "name": "limit", "in": "query"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Run"}}}
                }
            },
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "description": "Aplica as instruções ao diagrama e devolve o topo de cada pilha.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Executa uma simulação",
                "parameters": [
                    {"description": "Entrada completa ou layout + instruções", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SimulationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/domain.Run"}},
                    "400": {"description": "Entrada malformada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "422": {"description": "Instrução impossível no estado atual", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/simulations/{id}": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["simulations"],
                "summary": "Obtém uma execução",
                "parameters": [{"type": "string", "description": "ID da execução", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Run"}},
                    "404": {"description": "Execução não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ErrorResponse": {
            "description": "Estrutura padronizada para respostas de erro na API.",
            "type": "object",
            "properties": {
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "code": {"type": "integer", "example": 400},
                "message": {"type": "string", "example": "O nome do layout não pode ser vazio."}
            }
        },
        "domain.Layout": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "diagram": {"type": "string"},
                "pile_count": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Operator": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "role": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.OperatorRegistration": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "domain.Run": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "layout_id": {"type": "string"},
                "mode": {"type": "string"},
                "move_count": {"type": "integer"},
                "top_labels": {"type": "string", "example": "CMZ"},
                "final_state": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "domain.SimulationRequest": {
            "type": "object",
            "properties": {
                "input": {"type": "string"},
                "layout_id": {"type": "string"},
                "moves": {"type": "array", "items": {"type": "string"}},
                "mode": {"type": "string", "example": "single"}
            }
        },
        "operator.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "operator.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo guarda as informações exportadas da especificação.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{"http"},
	Title:            "GoCrane API",
	Description:      "Simulador de guindaste para pilhas de caixas em armazém.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
