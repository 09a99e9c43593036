// Package swagger serves a handwritten OpenAPI document for the portal API.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "NCTU SIS Portal API",
        "description": "Role-based student information system portal over an in-memory dataset",
        "version": "0.1.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Credential login"},
        {"name": "Students", "description": "Student profile and transcript"},
        {"name": "Admin", "description": "Registrar operations"},
        {"name": "Finance", "description": "Fee management"},
        {"name": "Professors", "description": "Course rosters and attendance"},
        {"name": "News", "description": "Announcement feed"},
        {"name": "Assistant", "description": "Conversational assistant pass-through"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate by username, password and role",
                "responses": {
                    "200": {"description": "Token, principal and initial view"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/students/me": {
            "get": {
                "tags": ["Students"],
                "summary": "Profile and fee for the authenticated student",
                "responses": {"200": {"description": "Profile"}}
            }
        },
        "/students/me/transcript": {
            "get": {
                "tags": ["Students"],
                "summary": "Enrollments with course names and grades",
                "responses": {"200": {"description": "Transcript rows"}}
            }
        },
        "/students/me/transcript/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Transcript as CSV or PDF",
                "responses": {"200": {"description": "File download"}}
            }
        },
        "/admin/students": {
            "post": {
                "tags": ["Admin"],
                "summary": "Register a student",
                "responses": {"201": {"description": "Allocated seat number"}}
            }
        },
        "/admin/professors": {
            "post": {
                "tags": ["Admin"],
                "summary": "Add a professor with one course assignment",
                "responses": {"201": {"description": "Professor"}}
            }
        },
        "/admin/users": {
            "get": {
                "tags": ["Admin"],
                "summary": "User credentials table",
                "responses": {"200": {"description": "Users sorted by role"}}
            }
        },
        "/finance/fees/{studentID}": {
            "get": {
                "tags": ["Finance"],
                "summary": "Look up a student's fee",
                "responses": {
                    "200": {"description": "Fee with student name"},
                    "404": {"description": "Student or fee missing"}
                }
            },
            "put": {
                "tags": ["Finance"],
                "summary": "Mark a fee paid or unpaid",
                "responses": {"204": {"description": "Updated (silent no-op on unknown ID)"}}
            }
        },
        "/professors/me/courses": {
            "get": {
                "tags": ["Professors"],
                "summary": "Assigned courses",
                "responses": {"200": {"description": "Assignments"}}
            }
        },
        "/professors/me/courses/{code}/roster": {
            "get": {
                "tags": ["Professors"],
                "summary": "Class roster with lecture presence",
                "responses": {"200": {"description": "Roster"}}
            }
        },
        "/professors/attendance": {
            "put": {
                "tags": ["Professors"],
                "summary": "Toggle attendance for an enrollment and lecture",
                "responses": {"204": {"description": "Updated"}}
            }
        },
        "/news": {
            "get": {
                "tags": ["News"],
                "summary": "Announcements, most recent first",
                "responses": {"200": {"description": "Feed"}}
            },
            "post": {
                "tags": ["News"],
                "summary": "Publish an announcement",
                "responses": {"201": {"description": "Announcement"}}
            }
        },
        "/assistant/chat": {
            "post": {
                "tags": ["Assistant"],
                "summary": "Ask the assistant",
                "responses": {"200": {"description": "Reply (or fixed fallback)"}}
            }
        }
    },
    "definitions": {
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
