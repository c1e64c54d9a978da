// Package docs 요청 포탈 서비스의 Swagger 문서 정의
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
                "produces": ["application/json"],
                "tags": ["시스템"],
                "summary": "헬스 체크",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["시스템"],
                "summary": "준비 상태 확인",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/systems": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "시스템 카탈로그 조회",
                "parameters": [{"type": "boolean", "name": "active", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/systems/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "시스템 상세 조회",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/meta/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "요청 유형 목록 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/assignees": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "담당자 명부 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/approvers": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "결재자 명부 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "액션 목록 조회",
                "parameters": [{"type": "string", "name": "system", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/meta/current-user": {
            "get": {
                "produces": ["application/json"],
                "tags": ["메타데이터"],
                "summary": "현재 사용자 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/analysis/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["분석"],
                "summary": "자연어 입력 분석",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/analysis/analyze-extended": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["분석"],
                "summary": "확장 분석",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/analysis/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["분석"],
                "summary": "액션 검색",
                "parameters": [
                    {"type": "string", "name": "query", "in": "query", "required": true},
                    {"type": "boolean", "name": "grouped", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/requests": {
            "get": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 목록 조회",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "status", "in": "query"},
                    {"type": "string", "name": "system_id", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 접수",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/requests/my": {
            "get": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "내 요청 목록 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/requests/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 통계 조회",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/requests/stats/snapshots": {
            "get": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "통계 스냅샷 조회",
                "parameters": [{"type": "integer", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/requests/find-similar": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "유사 요청 검색",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/requests/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 상세 조회",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 삭제",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/requests/{id}/status": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "요청 상태 변경",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/requests/{id}/assign": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["요청 관리"],
                "summary": "담당자 배정",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/requests/{id}/approvers": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["결재 관리"],
                "summary": "결재선 설정",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            }
        },
        "/requests/{id}/approval": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["결재 관리"],
                "summary": "결재 처리",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/sse/{user_name}": {
            "get": {
                "tags": ["이벤트 관리"],
                "summary": "SSE 연결 수립",
                "parameters": [{"type": "string", "name": "user_name", "in": "path", "required": true}],
                "responses": {"200": {"description": "SSE 이벤트 스트림"}}
            }
        },
        "/events/history": {
            "get": {
                "produces": ["application/json"],
                "tags": ["이벤트 관리"],
                "summary": "이벤트 이력 조회",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "size", "in": "query"},
                    {"type": "string", "name": "event_type", "in": "query"},
                    {"type": "string", "name": "request_id", "in": "query"}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

// SwaggerInfo Swagger 문서 기본 정보
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/swagger/request-portal-service",
	Schemes:          []string{},
	Title:            "요청 포탈 서비스 API",
	Description:      "사내 IT/시설 요청 접수 포탈 백엔드 서비스, 자연어 분석 기반 요청 접수와 결재선 관리 기능 제공",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
