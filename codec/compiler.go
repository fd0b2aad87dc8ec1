package codec

import (
	"reflect"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	"github.com/relayspeak/tscommands/errors"
	"github.com/relayspeak/tscommands/schema"
)

// Compiler binds message declarations to Go record types, producing
// CompiledMessages that parse and serialize without consulting the schema
// again. Compilation is cached; a Compiler is safe for concurrent use.
type Compiler struct {
	reg   *schema.Registry
	cache sync.Map // cacheKey -> *CompiledMessage
}

type cacheKey struct {
	message string
	goType  reflect.Type
}

func NewCompiler(reg *schema.Registry) *Compiler {
	return &Compiler{reg: reg}
}

// Registry returns the declaration tables this compiler binds against.
func (c *Compiler) Registry() *schema.Registry {
	return c.reg
}

// Compile binds the named message declaration to a Go record type. Every
// defect it can report is a generation-time failure: unresolved params,
// unknown semantic types, unit-less durations, and record members that
// cannot hold their field's values.
func (c *Compiler) Compile(name string, goType reflect.Type) (*CompiledMessage, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindTypeMismatch).
			Message(name).
			Detail("record type cannot be nil").
			Build()
	}
	if goType.Kind() == reflect.Ptr {
		goType = goType.Elem()
	}

	key := cacheKey{message: name, goType: goType}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*CompiledMessage), nil
	}

	cm, err := c.compile(name, goType)
	if err != nil {
		return nil, err
	}

	c.cache.Store(key, cm)
	return cm, nil
}

func (c *Compiler) compile(name string, goType reflect.Type) (*CompiledMessage, error) {
	msg, ok := c.reg.Message(name)
	if !ok {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidData).
			Message(name).
			Detail("message %q not declared", name).
			Build()
	}

	if goType.Kind() != reflect.Struct {
		return nil, errors.TypeMismatch(name, "", goType.String(), "struct")
	}

	params, err := c.reg.Resolve(msg)
	if err != nil {
		return nil, err
	}

	cm := &CompiledMessage{
		name:     msg.Name,
		notify:   msg.Notify,
		response: msg.Response,
		goType:   goType,
		fields:   make([]compiledField, 0, len(params)),
	}

	if msg.Response {
		rc, ok := goType.FieldByName("ReturnCode")
		if !ok || rc.Type.Kind() != reflect.String {
			return nil, errors.TypeMismatch(name, "return_code", goType.String(), "string ReturnCode member")
		}
		cm.returnIndex = rc.Index
	}

	for _, f := range params {
		kind, ok := kindOf(f.Type)
		if !ok {
			return nil, errors.UnknownType(name, f.Wire, f.Type)
		}

		unit := unitNone
		if kind == KindDuration {
			switch f.Orig {
			case annotationDurationSeconds:
				unit = unitSeconds
			case annotationDurationMilliseconds:
				unit = unitMilliseconds
			default:
				return nil, errors.MissingUnit(name, f.Wire)
			}
		}

		goField, ok := findGoField(goType, f)
		if !ok {
			return nil, errors.New(errors.PhaseGenerate, errors.KindTypeMismatch).
				Message(name).
				Field(f.Wire).
				Detail("record %s has no member for %q", goType.String(), f.Wire).
				Build()
		}

		fieldType := goField.Type
		if f.List {
			if fieldType.Kind() != reflect.Slice {
				return nil, errors.TypeMismatch(name, f.Wire, fieldType.String(), "slice")
			}
			fieldType = fieldType.Elem()
		}
		if ok, want := validateGoField(kind, fieldType); !ok {
			return nil, errors.TypeMismatch(name, f.Wire, goField.Type.String(), want)
		}

		cm.fields = append(cm.fields, compiledField{
			schema: f,
			kind:   kind,
			unit:   unit,
			index:  goField.Index,
		})
	}

	Logger().Debug("compiled message",
		zap.String("message", cm.name),
		zap.String("record", goType.String()),
		zap.Int("fields", len(cm.fields)))

	return cm, nil
}

// findGoField matches by: 1) ts:"wire" tag, 2) declared member name,
// 3) wire name converted snake-to-camel.
func findGoField(goType reflect.Type, f *schema.Field) (reflect.StructField, bool) {
	for i := 0; i < goType.NumField(); i++ {
		field := goType.Field(i)
		if !field.IsExported() {
			continue
		}

		if tag := field.Tag.Get("ts"); tag != "" {
			if tag == "-" {
				continue
			}
			if tag == f.Wire {
				return field, true
			}
		}

		if strings.EqualFold(field.Name, f.Name) {
			return field, true
		}

		if strings.EqualFold(field.Name, snakeToCamel(f.Wire)) {
			return field, true
		}
	}
	return reflect.StructField{}, false
}

func snakeToCamel(s string) string {
	var result strings.Builder
	upper := true
	for _, r := range s {
		if r == '_' {
			upper = true
			continue
		}
		if upper {
			result.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
