package services

import (
	"context"
	"errors"

	"google.golang.org/api/idtoken"
)

// GoogleUser is the identity extracted from a verified Google ID token.
type GoogleUser struct {
	GoogleID string
	Email    string
	Name     string
}

// VerifyGoogleToken validates a Google ID token against the configured
// OAuth client ID and returns the embedded identity.
func VerifyGoogleToken(ctx context.Context, credential, clientID string) (*GoogleUser, error) {
	if clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := idtoken.Validate(ctx, credential, clientID)
	if err != nil {
		return nil, err
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		return nil, errors.New("google token carries no email claim")
	}

	return &GoogleUser{
		GoogleID: payload.Subject,
		Email:    email,
		Name:     name,
	}, nil
}
