package debugui

import (
	"reflect"
	"sync"
)

type FieldInfo struct {
	Name     string
	Type     reflect.Type
	Index    int
	IsStruct bool
}

// FieldCache remembers the exported fields of motion types so the inspector
// does not walk the same type every frame.
type FieldCache struct {
	mu     sync.RWMutex
	fields map[reflect.Type][]FieldInfo
}

func NewFieldCache() *FieldCache {
	return &FieldCache{
		fields: make(map[reflect.Type][]FieldInfo),
	}
}

func (fc *FieldCache) GetFields(t reflect.Type) []FieldInfo {
	fc.mu.RLock()
	cached, ok := fc.fields[t]
	fc.mu.RUnlock()
	if ok {
		return cached
	}

	fc.mu.Lock()
	defer fc.mu.Unlock()

	if cached, ok := fc.fields[t]; ok {
		return cached
	}

	var fields []FieldInfo
	if t.Kind() == reflect.Struct {
		for i := range t.NumField() {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			fields = append(fields, FieldInfo{
				Name:     field.Name,
				Type:     field.Type,
				Index:    i,
				IsStruct: field.Type.Kind() == reflect.Struct,
			})
		}
	}

	fc.fields[t] = fields
	return fields
}

// editableCopy returns an addressable copy of v. Motion values are stored by
// value inside an interface, so edits are made on the copy and written back.
func editableCopy(v any) reflect.Value {
	if v == nil {
		return reflect.Value{}
	}
	cp := reflect.New(reflect.TypeOf(v)).Elem()
	cp.Set(reflect.ValueOf(v))
	return cp
}
