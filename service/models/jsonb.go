/*
 * @module service/models/jsonb
 * @description JSON 컬럼 공용 타입 정의, postgres(jsonb)와 sqlite(text) 드라이버를 모두 지원
 * @architecture 계층형 아키텍처 - 데이터 모델 계층
 * @documentReference ai_docs/model.md
 * @stateFlow 없음
 * @rules DB 값이 nil이면 그대로 nil을 유지한다
 * @dependencies database/sql/driver, encoding/json
 * @refs service/models/request.go
 */

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONB 범용 JSON 컬럼 타입
type JSONB map[string]interface{}

// scanJSONColumn DB 값을 JSON으로 역직렬화하는 공용 헬퍼
// postgres(jsonb)와 sqlite(text) 양쪽 드라이버를 지원한다
func scanJSONColumn(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("타입 변환 실패: []byte 또는 string이 아님")
	}
	return json.Unmarshal(bytes, dest)
}

// Scanner 인터페이스 구현
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	return scanJSONColumn(value, j)
}

// Valuer 인터페이스 구현
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

