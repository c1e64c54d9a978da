package controllers

import (
	"encoding/json"
	"net/http"
)

// APIResponse 통일된 API 응답 구조
type APIResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"처리 성공"`
	Data   interface{} `json:"data,omitempty"`
}

// PaginatedResponse 페이지네이션 응답 구조
type PaginatedResponse struct {
	Status int         `json:"status" example:"0"`
	Msg    string      `json:"msg" example:"처리 성공"`
	Data   interface{} `json:"data"`
	Total  int64       `json:"total" example:"100"`
	Page   int         `json:"page" example:"1"`
	Size   int         `json:"size" example:"10"`
}

// Render render.Render 인터페이스 구현
func (a *APIResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// SuccessResponse 성공 응답 생성
func SuccessResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: 0, Msg: msg, Data: data}
}

// BadRequestResponse 잘못된 요청 응답 생성
func BadRequestResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusBadRequest, Msg: msg, Data: data}
}

// NotFoundResponse 대상 없음 응답 생성
func NotFoundResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusNotFound, Msg: msg, Data: data}
}

// ConflictResponse 상태 충돌 응답 생성
func ConflictResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusConflict, Msg: msg, Data: data}
}

// InternalErrorResponse 서버 오류 응답 생성
func InternalErrorResponse(msg string, data interface{}) *APIResponse {
	return &APIResponse{Status: http.StatusInternalServerError, Msg: msg, Data: data}
}

// PagedResponse 페이지네이션 응답 생성
func PagedResponse(msg string, data interface{}, total int64, page, size int) *PaginatedResponse {
	return &PaginatedResponse{Status: 0, Msg: msg, Data: data, Total: total, Page: page, Size: size}
}

func toJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}
