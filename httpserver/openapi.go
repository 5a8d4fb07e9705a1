package httpserver

import (
	"encoding/json"
	"net/http"
)

const openAPISchema = `{
  "openapi": "3.0.3",
  "info": {
    "title": "PBS administrative gateway",
    "description": "Read-mostly REST façade over a subset of the PBS IFL surface. qmgr remains the complete administrative client.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/jobs": {
      "get": {
        "summary": "List jobs",
        "parameters": [
          {"name": "id", "in": "query", "schema": {"type": "string"}, "description": "job id to fetch, omit to list all"}
        ],
        "responses": {
          "200": {"description": "job list", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/JobList"}}}},
          "401": {"description": "missing or invalid bearer token"},
          "404": {"description": "job not found"}
        }
      }
    },
    "/v1/jobs/{id}/actions/{action}": {
      "post": {
        "summary": "Hold, release, or delete a job",
        "parameters": [
          {"name": "id", "in": "path", "required": true, "schema": {"type": "string"}},
          {"name": "action", "in": "path", "required": true, "schema": {"type": "string", "enum": ["hold", "release", "delete"]}}
        ],
        "responses": {
          "200": {"description": "action applied"},
          "401": {"description": "missing or invalid bearer token"},
          "404": {"description": "job not found or unknown action"}
        }
      }
    },
    "/v1/queues": {
      "get": {
        "summary": "List queues",
        "parameters": [
          {"name": "name", "in": "query", "schema": {"type": "string"}, "description": "queue name to fetch, omit to list all"}
        ],
        "responses": {
          "200": {"description": "queue list", "content": {"application/json": {"schema": {"$ref": "#/components/schemas/QueueList"}}}}
        }
      }
    },
    "/oauth2/token": {
      "post": {"summary": "Client-credentials token grant", "responses": {"200": {"description": "access token"}}}
    },
    "/oauth2/introspect": {
      "post": {"summary": "Token introspection (RFC 7662)", "responses": {"200": {"description": "introspection result"}}}
    },
    "/oauth2/revoke": {
      "post": {"summary": "Token revocation (RFC 7009)", "responses": {"200": {"description": "revoked"}}}
    },
    "/healthz": {
      "get": {"summary": "Liveness probe", "responses": {"200": {"description": "ok"}}}
    },
    "/readyz": {
      "get": {"summary": "Readiness probe (connects to PBS)", "responses": {"200": {"description": "ready"}, "503": {"description": "PBS unreachable"}}}
    }
  },
  "components": {
    "schemas": {
      "JobList": {
        "type": "object",
        "properties": {
          "jobs": {"type": "array", "items": {"$ref": "#/components/schemas/Entity"}}
        }
      },
      "QueueList": {
        "type": "object",
        "properties": {
          "queues": {"type": "array", "items": {"$ref": "#/components/schemas/Entity"}}
        }
      },
      "Entity": {
        "type": "object",
        "properties": {
          "name": {"type": "string"},
          "attributes": {"type": "object", "additionalProperties": {"type": "string"}}
        }
      },
      "Error": {
        "type": "object",
        "properties": {
          "error": {"type": "string"},
          "message": {"type": "string"},
          "code": {"type": "integer"}
        }
      }
    },
    "securitySchemes": {
      "bearerAuth": {"type": "http", "scheme": "bearer", "bearerFormat": "JWT"}
    }
  },
  "security": [{"bearerAuth": []}]
}`

// handleOpenAPISchema serves the gateway's OpenAPI schema.
func (s *Server) handleOpenAPISchema(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var schema interface{}
	if err := json.Unmarshal([]byte(openAPISchema), &schema); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to parse OpenAPI schema")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	_ = encoder.Encode(schema)
}
