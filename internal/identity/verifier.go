package identity

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

var ErrInvalidIDToken = errors.New("invalid or expired ID token")

// Verifier resolves an identity-provider ID token to a principal id.
type Verifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// FirebaseVerifier verifies Firebase ID tokens with the Admin SDK.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidIDToken, err)
	}
	return token.UID, nil
}

// DisabledVerifier rejects every token; it is used when no Firebase
// credentials are configured.
type DisabledVerifier struct{}

func (DisabledVerifier) VerifyIDToken(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: firebase sign-in is not configured", ErrInvalidIDToken)
}
