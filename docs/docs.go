// Package docs holds the swagger document served under /swagger.
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
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "用户注册",
                "parameters": [
                    {"description": "注册参数", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controller.AuthResponse"}},
                    "400": {"description": "参数错误或用户已存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "用户登录",
                "parameters": [
                    {"description": "登录参数", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.AuthResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "401": {"description": "账号或密码错误", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/auth/verify": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "校验 Token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.VerifyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Users"],
                "summary": "已登录过的用户及其登录历史",
                "parameters": [
                    {"type": "string", "description": "all 表示全部用户", "name": "scope", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.UserListResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/students": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "学生列表",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Student"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "创建学生",
                "parameters": [
                    {"description": "学生信息", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/model.Student"}},
                    "400": {"description": "参数错误或邮箱已存在", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/students/search/{query}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "按姓名或邮箱搜索学生",
                "parameters": [
                    {"type": "string", "description": "关键词", "name": "query", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/model.Student"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "学生详情",
                "parameters": [
                    {"type": "string", "description": "学生 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Student"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "更新学生",
                "parameters": [
                    {"type": "string", "description": "学生 ID", "name": "id", "in": "path", "required": true},
                    {"description": "需要修改的字段", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controller.UpdateStudentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Student"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Students"],
                "summary": "删除学生",
                "parameters": [
                    {"type": "string", "description": "学生 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.MessageBody"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/statistics": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Statistics"],
                "summary": "学生统计",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/model.Statistics"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "controller.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/model.User"}
            }
        },
        "controller.CreateStudentRequest": {
            "type": "object",
            "required": ["email", "firstName", "lastName"],
            "properties": {
                "dateOfBirth": {"type": "string"},
                "email": {"type": "string"},
                "enrollmentDate": {"type": "string"},
                "firstName": {"type": "string", "maxLength": 100},
                "gpa": {"type": "number"},
                "lastName": {"type": "string", "maxLength": 100},
                "phone": {"type": "string", "maxLength": 50},
                "status": {"type": "string"}
            }
        },
        "controller.LoginRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "controller.RegisterRequest": {
            "type": "object",
            "required": ["email", "password", "username"],
            "properties": {
                "email": {"type": "string"},
                "fullName": {"type": "string", "maxLength": 255},
                "password": {"type": "string"},
                "username": {"type": "string", "maxLength": 100}
            }
        },
        "controller.UpdateStudentRequest": {
            "type": "object",
            "properties": {
                "dateOfBirth": {"type": "string"},
                "email": {"type": "string"},
                "enrollmentDate": {"type": "string"},
                "firstName": {"type": "string", "maxLength": 100},
                "gpa": {"type": "number"},
                "lastName": {"type": "string", "maxLength": 100},
                "phone": {"type": "string", "maxLength": 50},
                "status": {"type": "string"}
            }
        },
        "controller.UserListResponse": {
            "type": "object",
            "properties": {
                "users": {"type": "array", "items": {"$ref": "#/definitions/model.User"}}
            }
        },
        "controller.VerifyResponse": {
            "type": "object",
            "properties": {
                "valid": {"type": "boolean"},
                "user": {"$ref": "#/definitions/model.AuthClaims"}
            }
        },
        "model.AuthClaims": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "model.AverageStat": {
            "type": "object",
            "properties": {
                "avg": {"type": "number"}
            }
        },
        "model.CountStat": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"}
            }
        },
        "model.LoginEvent": {
            "type": "object",
            "properties": {
                "at": {"type": "string"},
                "ip": {"type": "string"}
            }
        },
        "model.Statistics": {
            "type": "object",
            "properties": {
                "activeStudents": {"$ref": "#/definitions/model.CountStat"},
                "averageGPA": {"$ref": "#/definitions/model.AverageStat"},
                "inactiveStudents": {"$ref": "#/definitions/model.CountStat"},
                "totalStudents": {"$ref": "#/definitions/model.CountStat"}
            }
        },
        "model.Student": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "email": {"type": "string"},
                "enrollmentDate": {"type": "string"},
                "firstName": {"type": "string"},
                "gpa": {"type": "number"},
                "id": {"type": "string"},
                "lastName": {"type": "string"},
                "phone": {"type": "string"},
                "status": {"type": "string", "enum": ["Active", "Inactive", "On Leave"]},
                "updatedAt": {"type": "string"}
            }
        },
        "model.User": {
            "type": "object",
            "properties": {
                "createdAt": {"type": "string"},
                "email": {"type": "string"},
                "fullName": {"type": "string"},
                "id": {"type": "string"},
                "lastLogin": {"type": "string"},
                "loginCount": {"type": "integer"},
                "loginHistory": {"type": "array", "items": {"$ref": "#/definitions/model.LoginEvent"}},
                "username": {"type": "string"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "response.MessageBody": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "请在输入框中输入 \"Bearer <token>\"",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "StudentHub API",
	Description:      "学生信息管理系统：JWT 认证、学生 CRUD、搜索与统计",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
