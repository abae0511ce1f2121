package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"image-insights-srv/internal/model"
	"image-insights-srv/internal/structured"
)

// Emit maps a payload into the fixed schema shape for the requested kind
// and hands the document to the page injector over the broker. Broker
// failures are reported but never fail the emission itself.
func (uc *implUseCase) Emit(ctx context.Context, sc model.Scope, input structured.EmitInput) (structured.Document, error) {
	builder, ok := builders[input.Kind]
	if !ok {
		uc.l.Warnf(ctx, "structured.usecase.Emit: unknown kind %q", input.Kind)
		return structured.Document{}, structured.ErrUnknownKind
	}

	if err := requireFields(input.Kind, input.Payload, requiredFields[input.Kind]); err != nil {
		uc.l.Warnf(ctx, "structured.usecase.Emit: %v", err)
		return structured.Document{}, err
	}

	doc := structured.Document{
		Kind: input.Kind,
		Data: builder(input.Payload),
	}

	doc.Published = uc.publish(ctx, doc)

	uc.l.Infof(ctx, "structured.usecase.Emit: emitted %s document (published=%t)", doc.Kind, doc.Published)
	return doc, nil
}

func (uc *implUseCase) publish(ctx context.Context, doc structured.Document) bool {
	if uc.publisher == nil {
		return false
	}

	body, err := json.Marshal(doc.Data)
	if err != nil {
		uc.l.Errorf(ctx, "structured.usecase.publish: marshal failed: %v", err)
		return false
	}

	routingKey := fmt.Sprintf("%s.%s", uc.cfg.RoutingKeyPrefix, doc.Kind)
	if err := uc.publisher.Publish(ctx, routingKey, body); err != nil {
		uc.l.Errorf(ctx, "structured.usecase.publish: publish %s failed: %v", routingKey, err)
		return false
	}
	return true
}

func requireFields(kind string, payload map[string]interface{}, fields []string) error {
	for _, f := range fields {
		v, ok := payload[f]
		if !ok || v == nil || v == "" {
			return &structured.FieldError{Kind: kind, Field: f}
		}
	}
	return nil
}
