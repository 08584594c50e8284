package middleware

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent logs a structured audit event for every mutating operation.
//
// Args:
//   - action: the action performed (e.g., "create", "update", "delete")
//   - resourceType: the type of resource (e.g., "user")
//   - resourceID: the natural key of the resource
//   - result: "success" or "failure"
//   - details: optional additional details
func LogAuditEvent(
	ctx context.Context,
	action, resourceType, resourceID, result string,
	details map[string]any,
) {
	logger := LoggerFromContext(ctx)

	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("audit.details", details))
	}
	logger.Info("Audit event", fields...)
}
