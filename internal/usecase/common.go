package usecase

import (
	"context"

	"go-jobsearch-backend/internal/domain"
	"go-jobsearch-backend/pkg/apperror"
	"go-jobsearch-backend/pkg/security"
)

func ctxString(ctx context.Context, key domain.CtxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}

// denied records the refused access and returns a PermissionDenied error.
func denied(ctx context.Context, audit *security.SecurityLogger, actorType, subjectID, resource, resourceID, message string) error {
	audit.LogPermissionDenied(ctx, actorType, subjectID, resource, resourceID)
	return apperror.Forbidden(message)
}
