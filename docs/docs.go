// Package docs registers the console's OpenAPI document with swag so that
// echo-swagger can serve it. Keep the paths in step with the @Router
// annotations on the handlers; the router tests check every route is listed.
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
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                },
                "summary": "Liveness probe",
                "tags": [
                    "health"
                ]
            }
        },
        "/health/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/handler.readinessResponse"
                        }
                    }
                },
                "summary": "Readiness probe",
                "tags": [
                    "health"
                ]
            }
        },
        "/v1/admin/reset": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                },
                "summary": "Reset console data",
                "tags": [
                    "settings"
                ]
            }
        },
        "/v1/analytics/dashboard": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.DashboardStats"
                        }
                    }
                },
                "summary": "Dashboard counters",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/v1/analytics/stats": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.Stats"
                        }
                    }
                },
                "summary": "Descriptive statistics",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/v1/analytics/top-content": {
            "get": {
                "parameters": [
                    {
                        "description": "Maximum items (default 5)",
                        "in": "query",
                        "name": "limit",
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/ports.ContentPerformance"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Most viewed content",
                "tags": [
                    "analytics"
                ]
            }
        },
        "/v1/audit": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.AuditEntry"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Moderation audit trail, newest first",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/blacklist": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.BlacklistEntry"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List blacklist entries",
                "tags": [
                    "moderation"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Entry",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createBlacklistRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.BlacklistEntry"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Add a blacklist entry",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/blacklist/reconcile": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.messageResponse"
                        }
                    }
                },
                "summary": "Blacklist every banned user that has no entry",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/blacklist/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Entry id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Remove a blacklist entry",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/comments": {
            "get": {
                "parameters": [
                    {
                        "description": "approved, pending or spam",
                        "in": "query",
                        "name": "status",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Comment"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List comments",
                "tags": [
                    "comments"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Comment",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createCommentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Comment"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Create a comment",
                "tags": [
                    "comments"
                ]
            }
        },
        "/v1/comments/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Comment id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Delete a comment",
                "tags": [
                    "comments"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Comment id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateCommentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Comment"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Update a comment",
                "tags": [
                    "comments"
                ]
            }
        },
        "/v1/content": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Content"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List content",
                "tags": [
                    "content"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Content item",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createContentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Content"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Create content",
                "tags": [
                    "content"
                ]
            }
        },
        "/v1/content/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Content id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Delete content",
                "tags": [
                    "content"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Content id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateContentRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Content"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Update content",
                "tags": [
                    "content"
                ]
            }
        },
        "/v1/export": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.DataExport"
                        }
                    }
                },
                "summary": "Export all data",
                "tags": [
                    "export"
                ]
            }
        },
        "/v1/export/analytics": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ports.AnalyticsExport"
                        }
                    }
                },
                "summary": "Export analytics",
                "tags": [
                    "export"
                ]
            }
        },
        "/v1/profile": {
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Delete own account",
                "tags": [
                    "settings"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Profile",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.profileRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Update own profile",
                "tags": [
                    "settings"
                ]
            }
        },
        "/v1/reports": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Report"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List reports",
                "tags": [
                    "moderation"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Report",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createReportRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Report"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "File a report",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/reports/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Report id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Dismiss a report",
                "tags": [
                    "moderation"
                ]
            }
        },
        "/v1/roles": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.Role"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List roles",
                "tags": [
                    "roles"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Role",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createRoleRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.Role"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Create a role",
                "tags": [
                    "roles"
                ]
            }
        },
        "/v1/roles/usage": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/ports.RoleUsage"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "Live role usage",
                "tags": [
                    "roles"
                ]
            }
        },
        "/v1/roles/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "Role id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Delete a role",
                "tags": [
                    "roles"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Role id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateRoleRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Role"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Update a role",
                "tags": [
                    "roles"
                ]
            }
        },
        "/v1/session": {
            "delete": {
                "responses": {
                    "204": {
                        "description": "No Content"
                    }
                },
                "summary": "End the session",
                "tags": [
                    "session"
                ]
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Current session",
                "tags": [
                    "session"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Account to sign in as",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.loginRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Start a session",
                "tags": [
                    "session"
                ]
            }
        },
        "/v1/users": {
            "get": {
                "parameters": [
                    {
                        "description": "Search name, username or email",
                        "in": "query",
                        "name": "q",
                        "type": "string"
                    },
                    {
                        "description": "Role filter",
                        "in": "query",
                        "name": "role",
                        "type": "string"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "items": {
                                "$ref": "#/definitions/domain.User"
                            },
                            "type": "array"
                        }
                    }
                },
                "summary": "List users",
                "tags": [
                    "users"
                ]
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.createUserRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Create a user",
                "tags": [
                    "users"
                ]
            }
        },
        "/v1/users/{id}": {
            "delete": {
                "parameters": [
                    {
                        "description": "User id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Delete a user",
                "tags": [
                    "users"
                ]
            },
            "get": {
                "parameters": [
                    {
                        "description": "User id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Get a user",
                "tags": [
                    "users"
                ]
            },
            "patch": {
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "User id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "description": "Fields to change",
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.updateUserRequest"
                        }
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.User"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    },
                    "422": {
                        "description": "Unprocessable Entity",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Update a user",
                "tags": [
                    "users"
                ]
            }
        },
        "/v1/users/{id}/ban": {
            "post": {
                "parameters": [
                    {
                        "description": "User id",
                        "in": "path",
                        "name": "id",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.banResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/handler.errorResponse"
                        }
                    }
                },
                "summary": "Ban a user",
                "tags": [
                    "moderation"
                ]
            }
        }
    },
    "definitions": {
        "domain.AuditEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "action": {
                    "type": "string"
                },
                "userId": {
                    "type": "integer"
                },
                "userName": {
                    "type": "string"
                },
                "actor": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "at": {
                    "type": "string",
                    "format": "date-time"
                }
            }
        },
        "domain.BlacklistEntry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "userId": {
                    "type": "integer"
                },
                "userName": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "domain.Comment": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "userId": {
                    "type": "integer"
                },
                "userName": {
                    "type": "string"
                },
                "contentId": {
                    "type": "integer"
                },
                "contentTitle": {
                    "type": "string"
                },
                "text": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "domain.Content": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "views": {
                    "type": "integer"
                },
                "likes": {
                    "type": "integer"
                },
                "comments": {
                    "type": "integer"
                },
                "subscribers": {
                    "type": "integer"
                }
            }
        },
        "domain.Report": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "reportedUserId": {
                    "type": "integer"
                },
                "reportedUserName": {
                    "type": "string"
                },
                "reporterId": {
                    "type": "integer"
                },
                "reporterName": {
                    "type": "string"
                },
                "reason": {
                    "type": "string"
                },
                "date": {
                    "type": "string"
                }
            }
        },
        "domain.Role": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "userCount": {
                    "type": "integer"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "domain.User": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joined": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                }
            }
        },
        "handler.banResponse": {
            "type": "object",
            "properties": {
                "user": {
                    "$ref": "#/definitions/domain.User"
                },
                "entry": {
                    "$ref": "#/definitions/domain.BlacklistEntry"
                },
                "created": {
                    "type": "boolean"
                }
            }
        },
        "handler.createBlacklistRequest": {
            "type": "object",
            "required": [
                "userId",
                "reason"
            ],
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "handler.createCommentRequest": {
            "type": "object",
            "required": [
                "userId",
                "contentId",
                "text"
            ],
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "contentId": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.createContentRequest": {
            "type": "object",
            "required": [
                "title"
            ],
            "properties": {
                "title": {
                    "type": "string"
                },
                "views": {
                    "type": "integer"
                },
                "likes": {
                    "type": "integer"
                },
                "comments": {
                    "type": "integer"
                },
                "subscribers": {
                    "type": "integer"
                }
            }
        },
        "handler.createReportRequest": {
            "type": "object",
            "required": [
                "reportedUserId",
                "reporterId",
                "reason"
            ],
            "properties": {
                "reportedUserId": {
                    "type": "integer"
                },
                "reporterId": {
                    "type": "integer"
                },
                "reason": {
                    "type": "string"
                }
            }
        },
        "handler.createRoleRequest": {
            "type": "object",
            "required": [
                "name"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "userCount": {
                    "type": "integer"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.createUserRequest": {
            "type": "object",
            "required": [
                "name",
                "username",
                "email",
                "role"
            ],
            "properties": {
                "name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                }
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": [
                "username"
            ],
            "properties": {
                "username": {
                    "type": "string"
                }
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "count": {
                    "type": "integer"
                }
            }
        },
        "handler.profileRequest": {
            "type": "object",
            "required": [
                "firstName",
                "email"
            ],
            "properties": {
                "firstName": {
                    "type": "string"
                },
                "lastName": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                }
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string"
                },
                "dependencies": {
                    "type": "object",
                    "additionalProperties": {
                        "$ref": "#/definitions/handler.dependencyStatus"
                    }
                }
            }
        },
        "handler.updateCommentRequest": {
            "type": "object",
            "properties": {
                "userId": {
                    "type": "integer"
                },
                "contentId": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "handler.updateContentRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string"
                },
                "views": {
                    "type": "integer"
                },
                "likes": {
                    "type": "integer"
                },
                "comments": {
                    "type": "integer"
                },
                "subscribers": {
                    "type": "integer"
                }
            }
        },
        "handler.updateRoleRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "userCount": {
                    "type": "integer"
                },
                "permissions": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.updateUserRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "username": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "bio": {
                    "type": "string"
                }
            }
        },
        "ports.AnalyticsExport": {
            "type": "object",
            "properties": {
                "timestamp": {
                    "type": "string",
                    "format": "date-time"
                },
                "stats": {
                    "$ref": "#/definitions/ports.AnalyticsSummary"
                },
                "content": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Content"
                    }
                },
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/ports.UserSummary"
                    }
                }
            }
        },
        "ports.AnalyticsSummary": {
            "type": "object",
            "properties": {
                "totalUsers": {
                    "type": "integer"
                },
                "totalViews": {
                    "type": "integer"
                },
                "totalLikes": {
                    "type": "integer"
                },
                "totalComments": {
                    "type": "integer"
                }
            }
        },
        "ports.ContentPerformance": {
            "type": "object",
            "properties": {
                "content": {
                    "$ref": "#/definitions/domain.Content"
                },
                "rank": {
                    "type": "integer"
                },
                "engagementRate": {
                    "type": "integer"
                }
            }
        },
        "ports.DashboardStats": {
            "type": "object",
            "properties": {
                "totalUsers": {
                    "type": "integer"
                },
                "subscribers": {
                    "type": "integer"
                },
                "contributors": {
                    "type": "integer"
                },
                "totalRoles": {
                    "type": "integer"
                }
            }
        },
        "ports.DataExport": {
            "type": "object",
            "properties": {
                "users": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.User"
                    }
                },
                "roles": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Role"
                    }
                },
                "comments": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Comment"
                    }
                },
                "blacklist": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.BlacklistEntry"
                    }
                },
                "reports": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Report"
                    }
                },
                "content": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.Content"
                    }
                }
            }
        },
        "ports.RoleUsage": {
            "type": "object",
            "properties": {
                "role": {
                    "$ref": "#/definitions/domain.Role"
                },
                "liveCount": {
                    "type": "integer"
                }
            }
        },
        "ports.Stats": {
            "type": "object",
            "properties": {
                "totalUsers": {
                    "type": "integer"
                },
                "activeUsers": {
                    "type": "integer"
                },
                "newUsers": {
                    "type": "integer"
                },
                "totalViews": {
                    "type": "integer"
                },
                "avgViews": {
                    "type": "integer"
                },
                "topViews": {
                    "type": "integer"
                },
                "totalLikes": {
                    "type": "integer"
                },
                "engagementRate": {
                    "type": "integer"
                },
                "avgLikesPerUser": {
                    "type": "integer"
                },
                "totalComments": {
                    "type": "integer"
                },
                "approvedComments": {
                    "type": "integer"
                },
                "pendingComments": {
                    "type": "integer"
                },
                "spamComments": {
                    "type": "integer"
                }
            }
        },
        "ports.UserSummary": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "role": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "joined": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "CMS Console API",
	Description:      "Admin console over users, roles, comments, moderation and content.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
