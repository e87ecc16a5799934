// Package docs holds the OpenAPI document served at /swagger/.
// Keep it in step with the handler annotations, or regenerate with `swag init -g cmd/main.go`.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"termsOfService": "http://swagger.io/terms/",
		"contact": {
			"name": "API Support",
			"url": "http://www.swagger.io/support",
			"email": "support@swagger.io"
		},
		"license": {
			"name": "MIT",
			"url": "https://opensource.org/licenses/MIT"
		},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/api/auth/register": {
			"post": {
				"description": "Create a new user account with email and password",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"authentication"
				],
				"summary": "Register a new user",
				"parameters": [
					{
						"description": "User registration data",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.RegisterRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "User created successfully",
						"schema": {
							"$ref": "#/definitions/dto.AuthResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"409": {
						"description": "User already exists",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/login": {
			"post": {
				"description": "Authenticate user with email and password",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"authentication"
				],
				"summary": "Login user",
				"parameters": [
					{
						"description": "Login credentials",
						"name": "request",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.LoginRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "Login successful",
						"schema": {
							"$ref": "#/definitions/dto.AuthResponse"
						}
					},
					"400": {
						"description": "Invalid request data",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Invalid credentials",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal server error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/auth/profile": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"description": "Get the current authenticated user's profile information",
				"produces": [
					"application/json"
				],
				"tags": [
					"authentication"
				],
				"summary": "Get user profile",
				"responses": {
					"200": {
						"description": "User profile retrieved successfully",
						"schema": {
							"$ref": "#/definitions/dto.UserResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "User not found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/trips": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trips"
				],
				"summary": "List my trips",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TripListResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"description": "Signed-in users get the trip stored durably; guests get it stored under their X-Guest-Key",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trips"
				],
				"summary": "Submit a trip and get a recommendation",
				"parameters": [
					{
						"description": "Trip payload",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.SubmitTripRequest"
						}
					},
					{
						"type": "string",
						"description": "Guest storage key",
						"name": "X-Guest-Key",
						"in": "header"
					}
				],
				"responses": {
					"201": {
						"description": "Created",
						"schema": {
							"$ref": "#/definitions/dto.SubmitTripResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"502": {
						"description": "Bad Gateway",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/trips/estimate": {
			"post": {
				"description": "Rough standard-tier budget from a partially filled trip form",
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trips"
				],
				"summary": "Preview a trip budget",
				"parameters": [
					{
						"description": "Partial trip",
						"name": "payload",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.EstimateRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.EstimateResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/trips/{id}": {
			"get": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"trips"
				],
				"summary": "Get one of my trips",
				"parameters": [
					{
						"type": "string",
						"description": "Trip ID",
						"name": "id",
						"in": "path",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.TripDetailResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/recommendations": {
			"get": {
				"description": "Without trip_id, signed-in users get their latest trip and guests the trip under X-Guest-Key",
				"produces": [
					"application/json"
				],
				"tags": [
					"recommendations"
				],
				"summary": "Recommendation for the current trip",
				"parameters": [
					{
						"type": "string",
						"description": "Trip ID",
						"name": "trip_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Guest storage key",
						"name": "X-Guest-Key",
						"in": "header"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.RecommendationResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"401": {
						"description": "Unauthorized",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/recommendations/export": {
			"get": {
				"produces": [
					"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
				],
				"tags": [
					"recommendations"
				],
				"summary": "Download the recommendation as a spreadsheet",
				"parameters": [
					{
						"type": "string",
						"description": "Trip ID",
						"name": "trip_id",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Guest storage key",
						"name": "X-Guest-Key",
						"in": "header"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "file"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"404": {
						"description": "Not Found",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/api/destinations": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"destinations"
				],
				"summary": "Known destinations",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.DestinationsResponse"
						}
					}
				}
			}
		},
		"/api/destinations/suggestions": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"destinations"
				],
				"summary": "Popular places for a destination",
				"parameters": [
					{
						"type": "string",
						"description": "Destination",
						"name": "destination",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SuggestionsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				},
				"message": {
					"type": "string"
				},
				"code": {
					"type": "string"
				}
			}
		},
		"dto.RegisterRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string",
					"minLength": 6
				},
				"display_name": {
					"type": "string"
				}
			}
		},
		"dto.LoginRequest": {
			"type": "object",
			"required": [
				"email",
				"password"
			],
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"dto.UserResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"display_name": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"dto.AuthResponse": {
			"type": "object",
			"properties": {
				"user": {
					"$ref": "#/definitions/dto.UserResponse"
				},
				"token": {
					"type": "string"
				}
			}
		},
		"dto.SubmitTripRequest": {
			"type": "object",
			"properties": {
				"destination": {
					"type": "string"
				},
				"must_visit_places": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"date_from": {
					"type": "string"
				},
				"date_to": {
					"type": "string"
				},
				"max_duration_days": {
					"type": "integer"
				},
				"num_people": {
					"type": "integer"
				},
				"max_budget": {
					"type": "number"
				}
			}
		},
		"dto.TripResponse": {
			"type": "object",
			"properties": {
				"id": {
					"type": "string"
				},
				"destination": {
					"type": "string"
				},
				"must_visit_places": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"date_from": {
					"type": "string"
				},
				"date_to": {
					"type": "string"
				},
				"max_duration_days": {
					"type": "integer"
				},
				"num_people": {
					"type": "integer"
				},
				"max_budget": {
					"type": "number"
				},
				"storage_mode": {
					"type": "string"
				},
				"created_at": {
					"type": "string"
				},
				"updated_at": {
					"type": "string"
				}
			}
		},
		"dto.SubmitTripResponse": {
			"type": "object",
			"properties": {
				"storage_mode": {
					"type": "string"
				},
				"trip_id": {
					"type": "string"
				},
				"guest_key": {
					"type": "string"
				},
				"trip": {
					"$ref": "#/definitions/dto.TripResponse"
				},
				"recommendation": {
					"$ref": "#/definitions/models.Recommendation"
				}
			}
		},
		"dto.TripListResponse": {
			"type": "object",
			"properties": {
				"trips": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/dto.TripResponse"
					}
				},
				"total": {
					"type": "integer"
				}
			}
		},
		"dto.TripDetailResponse": {
			"type": "object",
			"properties": {
				"trip": {
					"$ref": "#/definitions/dto.TripResponse"
				}
			}
		},
		"dto.EstimateRequest": {
			"type": "object",
			"properties": {
				"destination": {
					"type": "string"
				},
				"max_duration_days": {
					"type": "integer"
				},
				"num_people": {
					"type": "integer"
				},
				"must_visit_places": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.EstimateResponse": {
			"type": "object",
			"properties": {
				"per_category_total": {
					"type": "object",
					"additionalProperties": {
						"type": "number",
						"format": "float64"
					}
				},
				"total": {
					"type": "number"
				}
			}
		},
		"dto.RecommendationResponse": {
			"type": "object",
			"properties": {
				"trip": {
					"$ref": "#/definitions/dto.TripResponse"
				},
				"recommendation": {
					"$ref": "#/definitions/models.Recommendation"
				}
			}
		},
		"dto.DestinationsResponse": {
			"type": "object",
			"properties": {
				"destinations": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"dto.SuggestionsResponse": {
			"type": "object",
			"properties": {
				"destination": {
					"type": "string"
				},
				"places": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.PricedOption": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"category": {
					"type": "string"
				},
				"tier": {
					"type": "string"
				},
				"unit_price": {
					"type": "number"
				},
				"total_price": {
					"type": "number"
				},
				"quality_score": {
					"type": "number"
				},
				"details": {
					"type": "array",
					"items": {
						"type": "string"
					}
				}
			}
		},
		"models.Attraction": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"price": {
					"type": "number"
				},
				"quality_score": {
					"type": "number"
				},
				"description": {
					"type": "string"
				},
				"must_visit": {
					"type": "boolean"
				}
			}
		},
		"models.Weather": {
			"type": "object",
			"properties": {
				"condition": {
					"type": "string"
				},
				"temperature": {
					"type": "integer"
				},
				"precipitation": {
					"type": "integer"
				},
				"humidity": {
					"type": "integer"
				}
			}
		},
		"models.BudgetSummary": {
			"type": "object",
			"properties": {
				"per_category_total": {
					"type": "object",
					"additionalProperties": {
						"type": "number",
						"format": "float64"
					}
				},
				"selections": {
					"type": "object",
					"additionalProperties": {
						"type": "string"
					}
				},
				"grand_total": {
					"type": "number"
				},
				"max_budget": {
					"type": "number"
				},
				"variance_from_ceiling": {
					"type": "number"
				},
				"over_budget": {
					"type": "boolean"
				}
			}
		},
		"models.Recommendation": {
			"type": "object",
			"properties": {
				"stay_nights": {
					"type": "integer"
				},
				"hotel_options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.PricedOption"
					}
				},
				"restaurant_options": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.PricedOption"
					}
				},
				"attractions": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.Attraction"
					}
				},
				"travel_modes": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/models.PricedOption"
					}
				},
				"weather": {
					"$ref": "#/definitions/models.Weather"
				},
				"budget": {
					"$ref": "#/definitions/models.BudgetSummary"
				}
			}
		}
	},
	"securityDefinitions": {
		"BearerAuth": {
			"description": "Type \"Bearer\" followed by a space and the JWT token.",
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
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Tripwise Backend API",
	Description:      "Trip intake, recommendation and budget synthesis API",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
