// Package docs holds the generated swagger spec. Regenerate with
// `swag init` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "license": {
            "name": "Apache 2.0",
            "url": "http://www.apache.org/licenses/LICENSE-2.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "get": {
                "summary": "Start an Auth0 sign-in",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/auth/callback": {
            "get": {
                "summary": "Auth0 OAuth callback",
                "responses": {"302": {"description": "Found"}}
            }
        },
        "/auth/exchange-auth0": {
            "post": {
                "summary": "Exchange an Auth0 subject for an internal session token",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/auth/status": {
            "get": {
                "summary": "Report whether the authToken cookie holds a valid session",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/users": {
            "post": {
                "summary": "Record an authenticated identity for the admin audit trail",
                "responses": {"202": {"description": "Accepted"}}
            }
        },
        "/user": {
            "get": {
                "summary": "Current user",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/profile/update": {
            "post": {
                "summary": "Partial profile update",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/posts": {
            "get": {
                "summary": "List the caller's posts, newest first",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Create a post or review",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/friends": {
            "get": {
                "summary": "List the caller's friends",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "summary": "Add a friend by email",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/events/discover": {
            "get": {
                "summary": "Events within a radius of the given coordinates",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/events/{id}/join": {
            "post": {
                "summary": "Join an event",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/",
	Schemes:          []string{},
	Title:            "Loopline API",
	Description:      "Loopline services gateway",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
