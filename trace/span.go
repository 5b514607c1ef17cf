package trace

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

// Tracer returns a tracer of the global provider, named under the module.
func Tracer(name string) trace.Tracer {
	return otel.Tracer(types.ModuleName + "/" + name)
}

// EndSpanErr ends span, marking it failed when err is set. Registered errors
// also record their codespace and code.
func EndSpanErr(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if codespace, code, _ := errorsmod.ABCIInfo(err, false); codespace != errorsmod.UndefinedCodespace {
			span.SetAttributes(
				attribute.String("error.codespace", codespace),
				attribute.Int64("error.code", int64(code)),
			)
		}
	}
	span.End()
}
