package devkit

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for transformation events.
var (
	SignalBase64           = capitan.NewSignal("devkit.base64", "Base64 or data URL conversion finished")
	SignalColor            = capitan.NewSignal("devkit.color", "Color conversion finished")
	SignalCase             = capitan.NewSignal("devkit.case", "Case conversion finished")
	SignalRegex            = capitan.NewSignal("devkit.regex", "Regex evaluation finished")
	SignalDigest           = capitan.NewSignal("devkit.digest", "Digest computation or formatting finished")
	SignalToken            = capitan.NewSignal("devkit.token", "Token or UUID generated")
	SignalURL              = capitan.NewSignal("devkit.url", "URI component conversion finished")
	SignalDocument         = capitan.NewSignal("devkit.document", "Document formatting or conversion finished")
	SignalProcessorCreated = capitan.NewSignal("devkit.processor.created", "Processor instantiated")
	SignalProcessorApply   = capitan.NewSignal("devkit.processor.apply", "Processor apply finished")
)

// Keys for typed event data.
var (
	KeyOperation   = capitan.NewStringKey("operation")
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyInputSize   = capitan.NewIntKey("input_size")
	KeyOutputSize  = capitan.NewIntKey("output_size")
	KeyFieldCount  = capitan.NewIntKey("field_count")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitTransform emits a completion event for a single tool operation.
func emitTransform(ctx context.Context, signal capitan.Signal, op string, in, out int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyOperation.Field(op),
		KeyInputSize.Field(in),
		KeyOutputSize.Field(out),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, signal, fields...)
	} else {
		capitan.Emit(ctx, signal, fields...)
	}
}

// observe emits a completion event for an operation that started at start.
func observe(signal capitan.Signal, op string, in, out int, start time.Time, err error) {
	emitTransform(context.Background(), signal, op, in, out, time.Since(start), err)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitApplyComplete emits an event when a processor finishes applying field transforms.
func emitApplyComplete(ctx context.Context, contentType, typeName string, duration time.Duration, fields int, err error) {
	data := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyFieldCount.Field(fields),
	}
	if err != nil {
		data = append(data, KeyError.Field(err))
		capitan.Error(ctx, SignalProcessorApply, data...)
	} else {
		capitan.Emit(ctx, SignalProcessorApply, data...)
	}
}
