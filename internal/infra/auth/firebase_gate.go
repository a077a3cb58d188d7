package auth

import (
	"context"

	"geonote/internal/domain/entity"
	domainerrors "geonote/internal/domain/errors"
	"geonote/internal/domain/service"
	"geonote/internal/errors"

	firebaseauth "firebase.google.com/go/v4/auth"
)

// tokenVerifier is the slice of the Firebase Auth client the gate needs.
type tokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// firebaseGate verifies Firebase ID tokens and holds the resulting session.
type firebaseGate struct {
	*gateCore
	verifier tokenVerifier
}

// NewFirebaseGate creates a gate backed by Firebase Auth ID token verification.
func NewFirebaseGate(verifier tokenVerifier) service.SessionGate {
	return &firebaseGate{
		gateCore: newGateCore(),
		verifier: verifier,
	}
}

// SignIn verifies the ID token and installs the verified identity as the
// active session.
func (g *firebaseGate) SignIn(ctx context.Context, idToken string) (*entity.Session, error) {
	if idToken == "" {
		return nil, domainerrors.ErrSessionTokenInvalid
	}

	token, err := g.verifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionTokenInvalid, err.Error())
	}

	sess := &entity.Session{
		UserID:      token.UID,
		DisplayName: displayName(token),
	}

	g.install(sess)

	return sess, nil
}

func displayName(token *firebaseauth.Token) string {
	if name, ok := token.Claims["name"].(string); ok {
		return name
	}

	return ""
}
