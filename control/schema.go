package control

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// Multiplicity controls how a schema field's absence and value lines
// are handled. The zero value is required.
type Multiplicity int

const (
	Required Multiplicity = iota
	Optional
	Repeated
)

type fieldSpec struct {
	index        []int
	key          string
	multiplicity Multiplicity
	flatten      bool
}

// schema is the compiled form of a struct's `deb822:"..."` tags,
// cached per reflect.Type the first time it is seen.
type schema struct {
	fields []fieldSpec
}

var schemaCache sync.Map // reflect.Type -> *schema

// FieldError names the key whose codec failed.
type FieldError struct {
	Key string
	Err error
}

func (e *FieldError) Error() string { return fmt.Sprintf("control: field %q: %v", e.Key, e.Err) }
func (e *FieldError) Unwrap() error { return e.Err }

// MissingFieldError is returned when a required field has no matching
// entry in the paragraph.
type MissingFieldError struct {
	Key string
}

func (e *MissingFieldError) Error() string { return fmt.Sprintf("control: missing required field %q", e.Key) }

// DuplicateFieldError is returned under StrictMode when a declared
// scalar key appears more than once in the paragraph.
type DuplicateFieldError struct {
	Key string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("control: duplicate field %q", e.Key)
}

// DecodeOption configures a Decode call.
type DecodeOption func(*decodeConfig)

type decodeConfig struct {
	strict bool
}

// StrictMode makes Decode reject a paragraph in which a declared
// scalar key appears more than once, instead of applying the default
// first-wins rule.
func StrictMode() DecodeOption {
	return func(c *decodeConfig) { c.strict = true }
}

func getSchema(t reflect.Type) (*schema, error) {
	if cached, ok := schemaCache.Load(t); ok {
		return cached.(*schema), nil
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("control: %s is not a struct", t)
	}

	var s schema
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		tag, ok := sf.Tag.Lookup("deb822")
		if !ok {
			continue
		}
		parts := strings.Split(tag, ",")
		key := parts[0]
		spec := fieldSpec{index: sf.Index, key: key}
		for _, opt := range parts[1:] {
			switch opt {
			case "optional":
				spec.multiplicity = Optional
			case "repeated":
				spec.multiplicity = Repeated
			case "flatten":
				spec.flatten = true
			}
		}
		if spec.flatten && key == "" {
			// flattened fields carry no key of their own.
		} else if key == "" {
			return nil, fmt.Errorf("control: field %s has an empty deb822 key", sf.Name)
		}
		s.fields = append(s.fields, spec)
	}

	cached, _ := schemaCache.LoadOrStore(t, &s)
	return cached.(*schema), nil
}

// Decode binds raw into dst, which must be a non-nil pointer to a
// struct carrying `deb822` tags.
func Decode(raw RawParagraph, dst interface{}, opts ...DecodeOption) error {
	var cfg decodeConfig
	for _, o := range opts {
		o(&cfg)
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("control: Decode requires a non-nil pointer to a struct, got %T", dst)
	}
	return decodeStruct(raw, v.Elem(), cfg)
}

func decodeStruct(raw RawParagraph, sv reflect.Value, cfg decodeConfig) error {
	s, err := getSchema(sv.Type())
	if err != nil {
		return err
	}

	for _, spec := range s.fields {
		fv := sv.FieldByIndex(spec.index)

		if spec.flatten {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					fv.Set(reflect.New(fv.Type().Elem()))
				}
				if err := decodeStruct(raw, fv.Elem(), cfg); err != nil {
					return err
				}
				continue
			}
			if err := decodeStruct(raw, fv, cfg); err != nil {
				return err
			}
			continue
		}

		if spec.multiplicity == Repeated {
			if err := decodeRepeated(raw, spec, fv); err != nil {
				return err
			}
			continue
		}

		value, ok := raw.Get(spec.key)
		if !ok {
			if spec.multiplicity == Required {
				return &MissingFieldError{Key: spec.key}
			}
			continue // optional, absent: leave zero value
		}
		if cfg.strict && len(raw.Values(spec.key)) > 1 {
			return &DuplicateFieldError{Key: spec.key}
		}

		if err := assignScalar(fv, value); err != nil {
			return &FieldError{Key: spec.key, Err: err}
		}
	}
	return nil
}

func decodeRepeated(raw RawParagraph, spec fieldSpec, fv reflect.Value) error {
	value, ok := raw.Get(spec.key)
	if !ok {
		return nil // repeated + absent => empty vector (zero value)
	}
	elemType := fv.Type().Elem()
	slice := reflect.MakeSlice(fv.Type(), 0, 4)

	for _, line := range strings.Split(value, "\n") {
		line = strings.TrimPrefix(line, " ")
		if line == "" {
			continue
		}
		elemPtr := reflect.New(elemType)
		if err := assignScalar(elemPtr.Elem(), line); err != nil {
			return &FieldError{Key: spec.key, Err: err}
		}
		slice = reflect.Append(slice, elemPtr.Elem())
	}
	fv.Set(slice)
	return nil
}

func assignScalar(fv reflect.Value, s string) error {
	if fv.Kind() == reflect.Ptr {
		if fv.IsNil() {
			fv.Set(reflect.New(fv.Type().Elem()))
		}
		return decodeScalarValue(fv.Elem(), s)
	}
	return decodeScalarValue(fv, s)
}

func decodeScalarValue(ev reflect.Value, s string) error {
	if ev.CanAddr() {
		if tu, ok := ev.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return tu.UnmarshalText([]byte(s))
		}
	}
	switch ev.Kind() {
	case reflect.String:
		ev.SetString(s)
		return nil
	case reflect.Bool:
		switch s {
		case "yes", "true":
			ev.SetBool(true)
		case "no", "false":
			ev.SetBool(false)
		default:
			return fmt.Errorf("invalid boolean value %q", s)
		}
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer value %q: %w", s, err)
		}
		ev.SetInt(n)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value %q: %w", s, err)
		}
		ev.SetUint(n)
		return nil
	default:
		return fmt.Errorf("unsupported field kind %s for value %q", ev.Kind(), s)
	}
}

// Encode is the mirror of Decode: it renders src (a struct pointer or
// struct value carrying `deb822` tags) into a RawParagraph. Absent
// optional fields (those holding their zero value, nil for pointers)
// are omitted; repeated fields emit one value line per element.
func Encode(src interface{}) (RawParagraph, error) {
	v := reflect.ValueOf(src)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return RawParagraph{}, fmt.Errorf("control: Encode received a nil pointer")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return RawParagraph{}, fmt.Errorf("control: Encode requires a struct, got %T", src)
	}
	var para RawParagraph
	if err := encodeStruct(v, &para); err != nil {
		return RawParagraph{}, err
	}
	return para, nil
}

func encodeStruct(sv reflect.Value, para *RawParagraph) error {
	s, err := getSchema(sv.Type())
	if err != nil {
		return err
	}
	for _, spec := range s.fields {
		fv := sv.FieldByIndex(spec.index)

		if spec.flatten {
			if fv.Kind() == reflect.Ptr {
				if fv.IsNil() {
					continue
				}
				fv = fv.Elem()
			}
			if err := encodeStruct(fv, para); err != nil {
				return err
			}
			continue
		}

		if spec.multiplicity == Repeated {
			if fv.Len() == 0 {
				continue
			}
			// header with no inline value, one value line per element:
			// the same shape the tokenizer produces for "Key:\n a\n b".
			lines := make([]string, fv.Len()+1)
			for i := 0; i < fv.Len(); i++ {
				rendered, err := encodeScalarValue(fv.Index(i))
				if err != nil {
					return &FieldError{Key: spec.key, Err: err}
				}
				lines[i+1] = rendered
			}
			para.Fields = append(para.Fields, RawField{Key: spec.key, Value: strings.Join(lines, "\n")})
			continue
		}

		if spec.multiplicity == Optional && fv.IsZero() {
			continue // optional, absent: omitted
		}

		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			rendered, err := encodeScalarValue(fv.Elem())
			if err != nil {
				return &FieldError{Key: spec.key, Err: err}
			}
			para.Fields = append(para.Fields, RawField{Key: spec.key, Value: rendered})
			continue
		}

		rendered, err := encodeScalarValue(fv)
		if err != nil {
			return &FieldError{Key: spec.key, Err: err}
		}
		para.Fields = append(para.Fields, RawField{Key: spec.key, Value: rendered})
	}
	return nil
}

func encodeScalarValue(ev reflect.Value) (string, error) {
	if ev.CanAddr() {
		if tm, ok := ev.Addr().Interface().(encoding.TextMarshaler); ok {
			b, err := tm.MarshalText()
			return string(b), err
		}
	}
	if tm, ok := ev.Interface().(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		return string(b), err
	}
	switch ev.Kind() {
	case reflect.String:
		return ev.String(), nil
	case reflect.Bool:
		if ev.Bool() {
			return "yes", nil
		}
		return "no", nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(ev.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(ev.Uint(), 10), nil
	default:
		return "", fmt.Errorf("unsupported field kind %s", ev.Kind())
	}
}
