// Package docs holds the OpenAPI document served by swaggerkit. Keep it in
// step with the swagger annotations on the handlers
package docs

import "github.com/swaggo/swag/v2"

const docTemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "{{.Title}}",
    "description": "{{.Description}}",
    "version": "{{.Version}}"
  },
  "tags": [
    {"name": "Meta", "description": "Liveness, readiness and build info"},
    {"name": "Posts", "description": "Topic queries, stats and CSV export"}
  ],
  "paths": {
    "/meta/health": {
      "get": {
        "tags": ["Meta"],
        "summary": "Health check",
        "operationId": "metaHealth",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/HealthResponse"}}}}}
      }
    },
    "/meta/ready": {
      "get": {
        "tags": ["Meta"],
        "summary": "Readiness probe with dependency checks",
        "operationId": "metaReady",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ReadyResponse"}}}}}
      }
    },
    "/meta/version": {
      "get": {
        "tags": ["Meta"],
        "summary": "Build and version info",
        "operationId": "metaVersion",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/BuildInfo"}}}}}
      }
    },
    "/meta/service": {
      "get": {
        "tags": ["Meta"],
        "summary": "Service info and uptime",
        "operationId": "metaService",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ServiceResponse"}}}}}
      }
    },
    "/posts/topics": {
      "get": {
        "tags": ["Posts"],
        "summary": "List selectable topics",
        "operationId": "postsTopics",
        "responses": {"200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/TopicsResult"}}}}}
      }
    },
    "/posts/query": {
      "post": {
        "tags": ["Posts"],
        "summary": "Query a topic by date range and text",
        "description": "Loads the topic, keeps posts overlapping the range, then posts matching q. Stats are computed over the date filtered set.",
        "operationId": "postsQuery",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/QueryInput"}}}},
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/QueryResult"}}}},
          "503": {"description": "query failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/posts/stats": {
      "post": {
        "tags": ["Posts"],
        "summary": "Summary stats for a topic and date range",
        "operationId": "postsStats",
        "requestBody": {"required": true, "content": {"application/json": {"schema": {"$ref": "#/components/schemas/StatsInput"}}}},
        "responses": {
          "200": {"description": "ok", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/Summary"}}}},
          "503": {"description": "query failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    },
    "/posts/export.csv": {
      "get": {
        "tags": ["Posts"],
        "summary": "Download the filtered posts as CSV",
        "operationId": "postsExport",
        "parameters": [
          {"name": "topic", "in": "query", "required": true, "schema": {"type": "string"}, "example": "topic1"},
          {"name": "from", "in": "query", "description": "2006-01-02 preferred; an unreadable date leaves the bound open", "schema": {"type": "string"}, "example": "2024-01-01"},
          {"name": "to", "in": "query", "description": "2006-01-02 preferred; an unreadable date leaves the bound open", "schema": {"type": "string"}, "example": "2024-01-31"},
          {"name": "q", "in": "query", "schema": {"type": "string"}, "example": "flood"}
        ],
        "responses": {
          "200": {
            "description": "csv",
            "headers": {"X-Total-Count": {"schema": {"type": "integer"}}},
            "content": {"text/csv": {"schema": {"type": "string"}}}
          },
          "503": {"description": "query failed", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/ErrorResponse"}}}}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "HealthResponse": {
        "type": "object",
        "properties": {
          "ok": {"type": "boolean", "example": true},
          "service": {"type": "string", "example": "narrativedesk-api"},
          "started": {"type": "string", "example": "2026-01-05T09:00:00Z"},
          "now": {"type": "string", "example": "2026-01-05T09:05:00Z"}
        }
      },
      "ReadyCheck": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "store"},
          "status": {"type": "string", "enum": ["ok", "fail", "skipped"]},
          "error": {"type": "string"}
        }
      },
      "ReadyResponse": {
        "type": "object",
        "properties": {
          "status": {"type": "string", "enum": ["ok", "degraded", "fail"]},
          "checks": {"type": "array", "items": {"$ref": "#/components/schemas/ReadyCheck"}},
          "now": {"type": "string"}
        }
      },
      "ServiceResponse": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "narrativedesk-api"},
          "started": {"type": "string"},
          "uptime": {"type": "integer", "example": 300}
        }
      },
      "BuildInfo": {
        "type": "object",
        "properties": {
          "service": {"type": "string"},
          "version": {"type": "string"},
          "commit": {"type": "string"},
          "date": {"type": "string"}
        }
      },
      "Topic": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "example": "topic1"},
          "name": {"type": "string", "example": "Floods"},
          "source": {"type": "string", "example": "FM"}
        }
      },
      "TopicsResult": {
        "type": "object",
        "properties": {"topics": {"type": "array", "items": {"$ref": "#/components/schemas/Topic"}}}
      },
      "QueryInput": {
        "type": "object",
        "required": ["topic"],
        "properties": {
          "topic": {"type": "string", "maxLength": 64, "example": "topic1"},
          "from": {"type": "string", "example": "2024-01-01"},
          "to": {"type": "string", "example": "2024-01-31"},
          "q": {"type": "string", "maxLength": 200, "example": "flood"},
          "limit": {"type": "integer", "minimum": 1, "maximum": 5000, "example": 100}
        }
      },
      "StatsInput": {
        "type": "object",
        "required": ["topic"],
        "properties": {
          "topic": {"type": "string", "maxLength": 64, "example": "topic1"},
          "from": {"type": "string", "example": "2024-01-01"},
          "to": {"type": "string", "example": "2024-01-31"},
          "top_n": {"type": "integer", "minimum": 1, "maximum": 100, "example": 10}
        }
      },
      "Post": {
        "type": "object",
        "properties": {
          "id": {"type": "string", "example": "FM-12"},
          "account_name": {"type": "string", "example": "City Desk"},
          "handle": {"type": "string", "example": "@citydesk"},
          "platform": {"type": "string", "enum": ["Twitter", "Facebook", "Instagram", "LinkedIn", "Unknown"]},
          "location": {"type": "string", "example": "Unknown"},
          "geo_coordinates": {"type": "string"},
          "engagements": {"type": "integer", "format": "int64", "example": 1200},
          "narrative": {"type": "string"},
          "valid_from": {"type": "string", "format": "date"},
          "valid_to": {"type": "string", "format": "date"}
        }
      },
      "TrendPoint": {
        "type": "object",
        "properties": {
          "day": {"type": "string", "format": "date"},
          "total_engagement": {"type": "integer", "format": "int64"},
          "posts": {"type": "integer"}
        }
      },
      "Entity": {
        "type": "object",
        "properties": {
          "name": {"type": "string", "example": "@citydesk"},
          "count": {"type": "integer", "example": 12}
        }
      },
      "PlatformShare": {
        "type": "object",
        "properties": {
          "platform": {"type": "string", "example": "Twitter"},
          "posts": {"type": "integer"},
          "engagements": {"type": "integer", "format": "int64"}
        }
      },
      "Summary": {
        "type": "object",
        "properties": {
          "posts": {"type": "integer", "example": 120},
          "total_engagements": {"type": "integer", "format": "int64", "example": 45210},
          "unique_accounts": {"type": "integer", "example": 37},
          "average_engagement": {"type": "integer", "format": "int64", "example": 377},
          "trend": {"type": "array", "items": {"$ref": "#/components/schemas/TrendPoint"}},
          "top_handles": {"type": "array", "items": {"$ref": "#/components/schemas/Entity"}},
          "platforms": {"type": "array", "items": {"$ref": "#/components/schemas/PlatformShare"}}
        }
      },
      "QueryResult": {
        "type": "object",
        "properties": {
          "load_id": {"type": "string"},
          "topic": {"$ref": "#/components/schemas/Topic"},
          "from": {"type": "string", "format": "date"},
          "to": {"type": "string", "format": "date"},
          "q": {"type": "string"},
          "loaded": {"type": "integer"},
          "date_filtered": {"type": "integer"},
          "matched": {"type": "integer"},
          "truncated": {"type": "boolean"},
          "posts": {"type": "array", "items": {"$ref": "#/components/schemas/Post"}},
          "summary": {"$ref": "#/components/schemas/Summary"}
        }
      }
    }
  }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	BasePath:         "/api/v1",
	Title:            "narrativedesk API",
	Description:      "Social post explorer: topic queries, engagement stats and CSV export",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
