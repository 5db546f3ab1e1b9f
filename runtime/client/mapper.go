package client

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// fieldKind selects the cursor accessor used for a struct field.
type fieldKind int

const (
	kindBool fieldKind = iota + 1
	kindInt8
	kindUint8
	kindInt16
	kindInt32
	kindInt64
	kindFloat32
	kindFloat64
	kindString
	kindBytes
)

// fieldPlan maps one struct field to one column.
type fieldPlan struct {
	index    []int
	column   string
	kind     fieldKind
	nullable bool
}

// structPlan is the column mapping of a record type.
type structPlan struct {
	typ    reflect.Type
	fields []fieldPlan
}

// plans caches structPlan by reflect.Type.
var plans sync.Map

// planFor returns the mapping for struct type t.
func planFor(t reflect.Type) (*structPlan, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotStruct, t)
	}
	if cached, ok := plans.Load(t); ok {
		return cached.(*structPlan), nil
	}

	plan := &structPlan{typ: t}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		column, ok := columnName(field)
		if !ok {
			continue
		}

		ft := field.Type
		nullable := false
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
			nullable = true
		}
		kind := kindOf(ft)
		if kind == 0 {
			continue
		}
		plan.fields = append(plan.fields, fieldPlan{
			index:    field.Index,
			column:   column,
			kind:     kind,
			nullable: nullable,
		})
	}

	actual, _ := plans.LoadOrStore(t, plan)
	return actual.(*structPlan), nil
}

// columnName returns the column for a field: the db tag or the field name.
func columnName(field reflect.StructField) (string, bool) {
	tag := field.Tag.Get("db")
	if tag == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(tag, ","); name != "" {
		return name, true
	}
	return field.Name, true
}

func kindOf(t reflect.Type) fieldKind {
	switch t.Kind() {
	case reflect.Bool:
		return kindBool
	case reflect.Int8:
		return kindInt8
	case reflect.Uint8:
		return kindUint8
	case reflect.Int16:
		return kindInt16
	case reflect.Int32:
		return kindInt32
	case reflect.Int, reflect.Int64:
		return kindInt64
	case reflect.Float32:
		return kindFloat32
	case reflect.Float64:
		return kindFloat64
	case reflect.String:
		return kindString
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return kindBytes
		}
	}
	return 0
}

// Columns returns the column names mapped for record type T.
func Columns[T any]() ([]string, error) {
	plan, err := planFor(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return nil, err
	}
	cols := make([]string, len(plan.fields))
	for i, f := range plan.fields {
		cols[i] = f.column
	}
	return cols, nil
}

// values extracts the column values of record in plan order. Nil pointers
// become NULL.
func (p *structPlan) values(record reflect.Value) ([]string, []any) {
	cols := make([]string, 0, len(p.fields))
	vals := make([]any, 0, len(p.fields))
	for _, f := range p.fields {
		v := record.FieldByIndex(f.index)
		cols = append(cols, f.column)
		if f.nullable {
			if v.IsNil() {
				vals = append(vals, nil)
				continue
			}
			v = v.Elem()
		}
		vals = append(vals, f.kind.value(v))
	}
	return cols, vals
}

// value converts a field to a driver friendly value.
func (k fieldKind) value(v reflect.Value) any {
	switch k {
	case kindBool:
		return v.Bool()
	case kindInt8, kindInt16, kindInt32, kindInt64:
		return v.Int()
	case kindUint8:
		return int64(v.Uint())
	case kindFloat32, kindFloat64:
		return v.Float()
	case kindString:
		return v.String()
	case kindBytes:
		return v.Bytes()
	default:
		return nil
	}
}

// scan assigns the current cursor row to record. Columns missing from the
// result leave their fields at the zero value.
func (p *structPlan) scan(cur *Cursor, record reflect.Value) {
	for _, f := range p.fields {
		i := cur.ColumnIndex(f.column)
		if i < 0 {
			continue
		}
		field := record.FieldByIndex(f.index)
		if f.nullable {
			if cur.IsNull(i) {
				continue
			}
			ptr := reflect.New(field.Type().Elem())
			f.kind.assign(cur, i, ptr.Elem())
			field.Set(ptr)
			continue
		}
		f.kind.assign(cur, i, field)
	}
}

// assign reads column i with the accessor matching the field kind.
func (k fieldKind) assign(cur *Cursor, i int, dst reflect.Value) {
	switch k {
	case kindBool:
		dst.SetBool(cur.Bool(i))
	case kindInt8:
		dst.SetInt(int64(cur.Byte(i)))
	case kindUint8:
		dst.SetUint(uint64(uint8(cur.Long(i))))
	case kindInt16:
		dst.SetInt(int64(cur.Short(i)))
	case kindInt32:
		dst.SetInt(int64(cur.Int(i)))
	case kindInt64:
		dst.SetInt(cur.Long(i))
	case kindFloat32:
		dst.SetFloat(float64(cur.Float(i)))
	case kindFloat64:
		dst.SetFloat(cur.Double(i))
	case kindString:
		dst.SetString(cur.String(i))
	case kindBytes:
		dst.SetBytes(cur.Blob(i))
	}
}
