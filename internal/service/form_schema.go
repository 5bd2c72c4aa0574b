package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/maplol/adaptix-mvp/internal/dto"
	"github.com/maplol/adaptix-mvp/internal/model"
)

// ErrInvalidFormSchema 导入的表单 schema 未通过校验
var ErrInvalidFormSchema = errors.New("表单 schema 校验失败")

// SchemaValidationError 携带逐项校验错误
type SchemaValidationError struct {
	Errors []dto.SchemaError
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("%s: %d 处错误", ErrInvalidFormSchema.Error(), len(e.Errors))
}

func (e *SchemaValidationError) Unwrap() error {
	return ErrInvalidFormSchema
}

// formSchemaJSON 由组件面板生成的导入文档 schema：
// 条目数组，type 取自面板，可选键与导出格式一致，不允许多余的键。
func formSchemaJSON() ([]byte, error) {
	schema := map[string]interface{}{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type":    "array",
		"items": map[string]interface{}{
			"type":                 "object",
			"required":             []string{"type", "label"},
			"additionalProperties": false,
			"properties": map[string]interface{}{
				"type":        map[string]interface{}{"type": "string", "enum": model.WidgetTypes()},
				"label":       map[string]interface{}{"type": "string", "maxLength": 200},
				"required":    map[string]interface{}{"type": "boolean"},
				"placeholder": map[string]interface{}{"type": "string", "maxLength": 200},
				"description": map[string]interface{}{"type": "string", "maxLength": 1000},
				"options": map[string]interface{}{
					"type":     "array",
					"maxItems": 50,
					"items":    map[string]interface{}{"type": "string", "maxLength": 200},
				},
			},
		},
	}
	return json.Marshal(schema)
}

// formSchemaValidator 预编译的导入校验器
type formSchemaValidator struct {
	schema *gojsonschema.Schema
}

func newFormSchemaValidator() (*formSchemaValidator, error) {
	raw, err := formSchemaJSON()
	if err != nil {
		return nil, fmt.Errorf("生成表单 schema 失败: %w", err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("编译表单 schema 失败: %w", err)
	}
	return &formSchemaValidator{schema: schema}, nil
}

// Parse 校验并解析导入文档
func (v *formSchemaValidator) Parse(doc []byte) ([]dto.SchemaField, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		// 非法 JSON
		return nil, &SchemaValidationError{Errors: []dto.SchemaError{
			{Field: "(root)", Description: err.Error()},
		}}
	}
	if !result.Valid() {
		errs := make([]dto.SchemaError, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			errs = append(errs, dto.SchemaError{Field: re.Field(), Description: re.Description()})
		}
		return nil, &SchemaValidationError{Errors: errs}
	}

	var fields []dto.SchemaField
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, &SchemaValidationError{Errors: []dto.SchemaError{
			{Field: "(root)", Description: err.Error()},
		}}
	}
	return fields, nil
}
