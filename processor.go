package recode

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// TagName is the struct tag read by Processor: `recode:"<from>,<to>"`.
const TagName = "recode"

// ErrMissingCodec indicates a Processor has no codec configured.
var ErrMissingCodec = errors.New("missing codec")

func init() {
	sentinel.Tag(TagName)
}

// direction selects which way a field plan is applied.
type direction int

const (
	egress  direction = iota // from -> to, before marshal
	ingress                  // to -> from, after unmarshal
)

// Processor marshals structs through a Codec, converting every field tagged
// `recode:"<from>,<to>"` between encodings on the way.
//
// Write converts tagged fields from their source to their destination
// encoding and marshals the result. Read unmarshals and converts them back.
// String fields (including []string and map values) use the text form of
// Convert, []byte fields the binary form:
//
//	type Credential struct {
//	    ID     string `json:"id"`
//	    Secret string `json:"secret" recode:"hex,base64"`     // stored as Base64
//	    Label  []byte `json:"label" recode:"utf8,windows1252"` // stored as cp1252 bytes
//	}
//
// Processors are safe for concurrent use. SetCodec may be called at any time.
type Processor[T Cloner[T]] struct {
	mu    sync.RWMutex
	codec Codec

	// Field plans (immutable after construction)
	plans    []fieldPlan
	typeName string
}

// fieldPlan describes how to convert a single field.
type fieldPlan struct {
	index      []int    // reflect.Value.FieldByIndex access path
	name       string   // field name for error messages
	tag        string   // raw tag value
	from       Encoding // source encoding
	to         Encoding // destination encoding
	isBytes    bool     // true if field is []byte, false if string
	ptrIndices []int    // indices where pointer dereference is needed
	isSlice    bool     // true if field is []string
	isMap      bool     // true if field is map[K]string
}

// typePlans holds the cached plans for one struct type.
type typePlans struct {
	typeName string
	fields   []fieldPlan
}

var planCache sync.Map // reflect.Type -> *typePlans

// NewProcessor creates a Processor for type T using the given codec.
// Tags are scanned once per type; an unknown encoding label, a malformed tag
// or a tag on an unsupported field type fails with ErrInvalidTag.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:    codec,
		plans:    plans.fields,
		typeName: plans.typeName,
	}

	emitProcessorCreated(context.Background(), p.ContentType(), plans.typeName, len(plans.fields))
	return p, nil
}

// SetCodec replaces the codec. Returns the processor for chaining.
// Safe for concurrent use.
func (p *Processor[T]) SetCodec(codec Codec) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.codec = codec
	return p
}

// ContentType returns the content type of the current codec, or "" if none
// is set.
func (p *Processor[T]) ContentType() string {
	c := p.currentCodec()
	if c == nil {
		return ""
	}
	return c.ContentType()
}

// Validate checks that a codec is configured.
func (p *Processor[T]) Validate() error {
	if p.currentCodec() == nil {
		return ErrMissingCodec
	}
	return nil
}

func (p *Processor[T]) currentCodec() Codec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.codec
}

// getOrBuildPlans returns the cached plans for T, building them on first use.
func getOrBuildPlans[T Cloner[T]]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := planCache.Load(typ); ok {
		return cached.(*typePlans), nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	actual, _ := planCache.LoadOrStore(typ, plans)
	return actual.(*typePlans), nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typePlans, error) {
	meta := sentinel.Scan[T]()
	plans := &typePlans{
		typeName: meta.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, meta, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive processes fields and nested structs.
func buildFieldPlansRecursive(plans *typePlans, meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if nested := scanNestedType(field.ReflectType); nested != nil {
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nested := scanNestedType(field.ReflectType.Elem()); nested != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nested, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		val, ok := field.Tags[TagName]
		if !ok {
			continue
		}

		from, to, err := parseTag(val)
		if err != nil {
			return newFieldError(ErrInvalidTag, fullName, val, err)
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			return newFieldError(ErrInvalidTag, fullName, val,
				fmt.Errorf("unsupported field type %s", rt))
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:      fullIndex,
			name:       fullName,
			tag:        val,
			from:       from,
			to:         to,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		})
	}

	return nil
}

// parseTag splits "<from>,<to>" and checks both labels.
func parseTag(val string) (Encoding, Encoding, error) {
	parts := strings.Split(val, ",")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("want \"<from>,<to>\", got %q", val)
	}
	from := Encoding(strings.TrimSpace(parts[0]))
	to := Encoding(strings.TrimSpace(parts[1]))
	if _, err := resolve(from); err != nil {
		return "", "", err
	}
	if _, err := resolve(to); err != nil {
		return "", "", err
	}
	return from, to, nil
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        map[string]string{},
		}
		if val, ok := sf.Tag.Lookup(TagName); ok {
			fm.Tags[TagName] = val
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// Write converts tagged fields on a clone of obj and marshals the result.
// Use for data leaving the process (storage, API responses, events).
func (p *Processor[T]) Write(ctx context.Context, obj *T) ([]byte, error) {
	codec := p.currentCodec()
	if codec == nil {
		return nil, ErrMissingCodec
	}

	start := time.Now()
	emitWriteStart(ctx, codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitWriteComplete(ctx, codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.plans), retErr)
	}()

	if obj == nil {
		retData, retErr = marshal(codec, nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	if r, ok := any(&clone).(EgressRecoder); ok {
		if err := r.RecodeEgress(); err != nil {
			retErr = fmt.Errorf("recode: %w", err)
			return nil, retErr
		}
	} else if err := p.apply(&clone, egress); err != nil {
		retErr = fmt.Errorf("recode: %w", err)
		return nil, retErr
	}

	retData, retErr = marshal(codec, &clone)
	if retErr != nil {
		return nil, retErr
	}
	return retData, nil
}

// Read unmarshals data and converts tagged fields back to their source
// encoding. Use for data entering the process.
func (p *Processor[T]) Read(ctx context.Context, data []byte) (*T, error) {
	codec := p.currentCodec()
	if codec == nil {
		return nil, ErrMissingCodec
	}

	start := time.Now()
	emitReadStart(ctx, codec.ContentType(), p.typeName, len(data))

	var retErr error
	defer func() {
		emitReadComplete(ctx, codec.ContentType(), p.typeName,
			time.Since(start), len(p.plans), retErr)
	}()

	var obj T
	if err := codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	if r, ok := any(&obj).(IngressRecoder); ok {
		if err := r.RecodeIngress(); err != nil {
			retErr = fmt.Errorf("recode: %w", err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.apply(&obj, ingress); err != nil {
		retErr = fmt.Errorf("recode: %w", err)
		return nil, retErr
	}

	return &obj, nil
}

func marshal(codec Codec, v any) ([]byte, error) {
	data, err := codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// apply runs every field plan in the given direction via reflection.
func (p *Processor[T]) apply(obj *T, dir direction) error {
	rv := reflect.ValueOf(obj).Elem()

	for _, plan := range p.plans {
		from, to := plan.from, plan.to
		if dir == ingress {
			from, to = to, from
		}

		field, ok := getField(rv, plan)
		if !ok {
			continue
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := ConvertString(elem.String(), from, to)
				if err != nil {
					return fieldFailure(fmt.Sprintf("%s[%d]", plan.name, i), plan.tag, err)
				}
				elem.SetString(out)
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := ConvertString(v.String(), from, to)
				if err != nil {
					return fieldFailure(fmt.Sprintf("%s[%v]", plan.name, k.Interface()), plan.tag, err)
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		if plan.isBytes {
			if field.IsNil() {
				continue
			}
			out, err := ConvertBytes(field.Bytes(), from, to)
			if err != nil {
				return fieldFailure(plan.name, plan.tag, err)
			}
			field.SetBytes(out)
			continue
		}

		out, err := ConvertString(field.String(), from, to)
		if err != nil {
			return fieldFailure(plan.name, plan.tag, err)
		}
		field.SetString(out)
	}

	return nil
}

// fieldFailure wraps a conversion error, keeping its sentinel reachable.
func fieldFailure(field, tag string, err error) error {
	sentinelErr := ErrInvalidInput
	if errors.Is(err, ErrUnsupportedEncoding) {
		sentinelErr = ErrUnsupportedEncoding
	}
	return newFieldError(sentinelErr, field, tag, err)
}

// getField navigates a field path, dereferencing pointers as needed.
func getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
