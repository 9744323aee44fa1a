package devkit

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Field transformation tags, applied in this order.
const (
	tagCase   = "case"
	tagEncode = "encode"
	tagDigest = "digest"
)

func init() {
	// Register transformation tags with sentinel
	sentinel.Tag(tagCase)
	sentinel.Tag(tagEncode)
	sentinel.Tag(tagDigest)
}

// Processor applies tag-declared text transformations to struct fields.
//
//	type Record struct {
//	    Key      string `json:"key" case:"snake"`
//	    Payload  []byte `json:"payload" encode:"base64"`
//	    Checksum string `json:"checksum" digest:"sha256"`
//	}
//
// Each field runs case, then encode, then digest. Tagged fields may be
// string, []byte, []string or map[K]string, and may sit in nested structs
// or non-nil struct pointers. The processor always works on a clone.
//
// Processors are safe for concurrent use.
type Processor[T Cloner[T]] struct {
	codec Codec

	digestFormat    DigestFormat
	digestUppercase bool

	plans    *typeFieldPlans
	typeName string
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	digestFormat    DigestFormat
	digestUppercase bool
}

func resolveProcessorConfig(opts []ProcessorOption) processorConfig {
	cfg := processorConfig{digestFormat: DigestHex}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithDigestFormat sets the rendering of digest-tagged fields (default hex).
func WithDigestFormat(format DigestFormat) ProcessorOption {
	return func(c *processorConfig) {
		c.digestFormat = format
	}
}

// WithDigestUppercase renders hex digests in upper case.
func WithDigestUppercase() ProcessorOption {
	return func(c *processorConfig) {
		c.digestUppercase = true
	}
}

// typeFieldPlans holds the field plans for one type, grouped by action.
type typeFieldPlans struct {
	typeName     string
	caseFields   []processorFieldPlan
	encodeFields []processorFieldPlan
	digestFields []processorFieldPlan
}

func (p *typeFieldPlans) fieldCount() int {
	return len(p.caseFields) + len(p.encodeFields) + len(p.digestFields)
}

// processorFieldPlan describes how to transform a single field.
type processorFieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	tagVal     string // tag value (e.g., "snake", "base64", "sha256")
	isBytes    bool   // true if field is []byte, false if string
	ptrIndices []int  // indices where pointer dereference is needed
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
}

var plansCache sync.Map // reflect.Type -> *typeFieldPlans

// getOrBuildPlans returns cached field plans for T, scanning tags on first use.
func getOrBuildPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	typ := reflect.TypeFor[T]()
	if cached, ok := plansCache.Load(typ); ok {
		return cached.(*typeFieldPlans), nil
	}
	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}
	actual, _ := plansCache.LoadOrStore(typ, plans)
	return actual.(*typeFieldPlans), nil
}

// NewProcessor creates a Processor for type T.
// Unknown tag values fail here with ErrInvalidFormat.
func NewProcessor[T Cloner[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	cfg := resolveProcessorConfig(opts)
	if !IsValidDigestFormat(cfg.digestFormat) {
		return nil, newConversionError(ErrInvalidFormat, "processor.new",
			fmt.Errorf("unknown digest format %q", cfg.digestFormat))
	}

	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:           codec,
		digestFormat:    cfg.digestFormat,
		digestUppercase: cfg.digestUppercase,
		plans:           plans,
		typeName:        plans.typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typeFieldPlans, error) {
	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	if err := buildFieldPlansRecursive(plans, spec, nil, nil, ""); err != nil {
		return nil, err
	}

	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
func buildFieldPlansRecursive(plans *typeFieldPlans, spec sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string) error {
	for _, field := range spec.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		// Handle nested structs
		if field.Kind == sentinel.KindStruct {
			if nestedSpec := scanNestedType(field.ReflectType); nestedSpec != nil {
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, ptrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		// Handle pointer to struct
		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			if nestedSpec := scanNestedType(field.ReflectType.Elem()); nestedSpec != nil {
				newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
				if err := buildFieldPlansRecursive(plans, *nestedSpec, fullIndex, newPtrIndices, fullName); err != nil {
					return err
				}
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			if hasTransformTag(field.Tags) {
				return newConversionError(ErrInvalidFormat, "processor.plan",
					fmt.Errorf("field %s has type %s; tags apply to string, []byte, []string and map[K]string", fullName, rt))
			}
			continue
		}

		basePlan := processorFieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		}

		if val, ok := field.Tags[tagCase]; ok {
			if !IsValidCaseStyle(CaseStyle(val)) {
				return invalidTag("case style", val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.caseFields = append(plans.caseFields, plan)
		}

		if val, ok := field.Tags[tagEncode]; ok {
			if !IsValidEncodeType(EncodeType(val)) {
				return invalidTag("encoding", val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.encodeFields = append(plans.encodeFields, plan)
		}

		if val, ok := field.Tags[tagDigest]; ok {
			if !IsValidDigestAlgo(DigestAlgo(val)) {
				return invalidTag("digest algorithm", val, fullName)
			}
			plan := basePlan
			plan.tagVal = val
			plans.digestFields = append(plans.digestFields, plan)
		}
	}

	return nil
}

func invalidTag(what, val, field string) error {
	return newConversionError(ErrInvalidFormat, "processor.plan",
		fmt.Errorf("invalid %s %q for field %s", what, val, field))
}

func hasTransformTag(tags map[string]string) bool {
	for _, t := range []string{tagCase, tagEncode, tagDigest} {
		if _, ok := tags[t]; ok {
			return true
		}
	}
	return false
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if spec, ok := sentinel.Lookup(rt.String()); ok {
		return &spec
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	spec := sentinel.Metadata{
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
			Tags:        parseTransformTags(sf.Tag),
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

		spec.Fields = append(spec.Fields, fm)
	}

	return &spec
}

// parseTransformTags extracts transformation tags from a struct tag.
func parseTransformTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range []string{tagCase, tagEncode, tagDigest} {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// Apply transforms a clone of obj and returns it. obj is never modified.
// A nil obj returns nil.
func (p *Processor[T]) Apply(ctx context.Context, obj *T) (*T, error) {
	start := time.Now()

	var retErr error
	defer func() {
		emitApplyComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), p.plans.fieldCount(), retErr)
	}()

	if obj == nil {
		return nil, nil
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()
	if err := p.transform(&clone); err != nil {
		retErr = err
		return nil, err
	}
	return &clone, nil
}

// Render applies the transformations to a clone of obj and marshals it.
func (p *Processor[T]) Render(ctx context.Context, obj *T) ([]byte, error) {
	if obj == nil {
		return p.codec.Marshal(nil)
	}
	out, err := p.Apply(ctx, obj)
	if err != nil {
		return nil, err
	}
	data, err := p.codec.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	return data, nil
}

// Receive unmarshals data and applies the transformations to the result.
func (p *Processor[T]) Receive(ctx context.Context, data []byte) (*T, error) {
	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		return nil, newConversionError(ErrInvalidFormat, "processor.receive", fmt.Errorf("unmarshal: %w", err))
	}
	return p.Apply(ctx, &obj)
}

// transform applies every action to obj, honoring the Transformable override.
func (p *Processor[T]) transform(obj *T) error {
	if t, ok := any(obj).(Transformable); ok {
		if err := t.Transform(); err != nil {
			return fmt.Errorf("transform: %w", err)
		}
		return nil
	}

	rv := reflect.ValueOf(obj).Elem()
	for _, plan := range p.plans.caseFields {
		if err := p.applyField(rv, plan, p.caseTransform(plan.tagVal)); err != nil {
			return err
		}
	}
	for _, plan := range p.plans.encodeFields {
		if err := p.applyField(rv, plan, p.encodeTransform(plan.tagVal)); err != nil {
			return err
		}
	}
	for _, plan := range p.plans.digestFields {
		if err := p.applyField(rv, plan, p.digestTransform(plan.tagVal)); err != nil {
			return err
		}
	}
	return nil
}

// fieldTransform rewrites text values and, where bytes need different
// handling than text, raw byte values.
type fieldTransform struct {
	text  func(string) (string, error)
	bytes func([]byte) ([]byte, error) // nil means run text on string(b)
}

func (p *Processor[T]) caseTransform(style string) fieldTransform {
	return fieldTransform{
		text: func(s string) (string, error) { return ConvertCase(s, CaseStyle(style)) },
	}
}

func (p *Processor[T]) encodeTransform(et string) fieldTransform {
	switch EncodeType(et) {
	case EncodeURL:
		return fieldTransform{text: EncodeURIComponent}
	default:
		return fieldTransform{
			text: EncodeText,
			bytes: func(b []byte) ([]byte, error) {
				return []byte(EncodeBinary(b)), nil
			},
		}
	}
}

func (p *Processor[T]) digestTransform(algo string) fieldTransform {
	sum := func(b []byte) (string, error) {
		raw, err := Digest(DigestAlgo(algo), b)
		if err != nil {
			return "", err
		}
		return FormatDigest(raw, p.digestFormat, p.digestUppercase)
	}
	return fieldTransform{
		text: func(s string) (string, error) { return sum([]byte(s)) },
		bytes: func(b []byte) ([]byte, error) {
			out, err := sum(b)
			return []byte(out), err
		},
	}
}

// applyField runs ft over one planned field.
func (p *Processor[T]) applyField(rv reflect.Value, plan processorFieldPlan, ft fieldTransform) error {
	field, ok := p.getField(rv, plan)
	if !ok {
		return nil
	}

	// Handle slice of strings
	if plan.isSlice {
		for i := 0; i < field.Len(); i++ {
			elem := field.Index(i)
			if !elem.CanSet() {
				continue
			}
			out, err := ft.text(elem.String())
			if err != nil {
				return fmt.Errorf("field %s[%d]: %w", plan.name, i, err)
			}
			elem.SetString(out)
		}
		return nil
	}

	// Handle map of strings
	if plan.isMap {
		iter := field.MapRange()
		for iter.Next() {
			k, v := iter.Key(), iter.Value()
			out, err := ft.text(v.String())
			if err != nil {
				return fmt.Errorf("field %s[%v]: %w", plan.name, k.Interface(), err)
			}
			field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
		}
		return nil
	}

	// Handle scalar string or []byte
	if !field.CanSet() {
		return nil
	}

	if plan.isBytes {
		var out []byte
		var err error
		if ft.bytes != nil {
			out, err = ft.bytes(field.Bytes())
		} else {
			var s string
			s, err = ft.text(string(field.Bytes()))
			out = []byte(s)
		}
		if err != nil {
			return fmt.Errorf("field %s: %w", plan.name, err)
		}
		field.SetBytes(out)
		return nil
	}

	out, err := ft.text(field.String())
	if err != nil {
		return fmt.Errorf("field %s: %w", plan.name, err)
	}
	field.SetString(out)
	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan processorFieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

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
