package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/locallinkhq/locallink-backend/api/middleware"
	"github.com/locallinkhq/locallink-backend/api/validators"
	"github.com/locallinkhq/locallink-backend/internal/vendors"
	pkgerrors "github.com/locallinkhq/locallink-backend/pkg/errors"
	"github.com/locallinkhq/locallink-backend/pkg/pagination"
)

// userIDFromRequest resolves the authenticated user id set by the auth
// middleware.
func userIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "authentication required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user identity")
	}
	return id, nil
}

// vendorIDFromRequest resolves the caller's vendor profile. Vendor routes
// never trust a client-supplied vendor id.
func vendorIDFromRequest(ctx context.Context, r *http.Request, repo vendors.Repository) (uuid.UUID, error) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return uuid.Nil, err
	}
	profile, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	return profile.ID, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid id in path").
			WithDetails(map[string]any{"param": name})
	}
	return id, nil
}

func validationError(message string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, message)
}

func parsePagination(r *http.Request) (pagination.Params, error) {
	page, err := validators.ParseQueryInt(r, "page", 1, 1, 1<<30)
	if err != nil {
		return pagination.Params{}, err
	}
	limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
	if err != nil {
		return pagination.Params{}, err
	}
	return pagination.Params{Page: page, Limit: limit}, nil
}
