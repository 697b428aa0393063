package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/community-feed/internal/domain"
	jose "gopkg.in/go-jose/go-jose.v2"
	"gopkg.in/go-jose/go-jose.v2/jwt"
)

const auth0AuthHeaderPrefix = "Bearer auth0|"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID   string
	Nickname string
	Method   domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":%q}`, err.Error())
					return
				}

				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				logger := domain.LoggerFromContext(ctx).With("user_id", result.UserID, "auth_method", result.Method)
				if result.Nickname != "" {
					logger = logger.With("user_nick", result.Nickname)
				}
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			// No validator matched - continue without auth (for public endpoints)
			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens, sent as "Bearer auth0|<token>".
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len(auth0AuthHeaderPrefix):])
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}

// communityClaims are the claims the board's own auth service puts in its tokens.
type communityClaims struct {
	UserID   string `json:"userId"`
	UserNick string `json:"userNick"`
}

// jwtAlgorithm resolves the configured HMAC algorithm. When none is configured
// it picks the strongest one the secret is long enough for, as the board's
// auth service does when signing.
func jwtAlgorithm(name string, secret []byte) (jose.SignatureAlgorithm, error) {
	switch strings.ToUpper(name) {
	case "":
		switch {
		case len(secret) >= 64:
			return jose.HS512, nil
		case len(secret) >= 48:
			return jose.HS384, nil
		default:
			return jose.HS256, nil
		}
	case string(jose.HS256):
		return jose.HS256, nil
	case string(jose.HS384):
		return jose.HS384, nil
	case string(jose.HS512):
		return jose.HS512, nil
	default:
		return "", fmt.Errorf("unsupported JWT algorithm [%s]", name)
	}
}

// NewJWTValidator creates a validator for HMAC tokens signed with a shared
// secret by the board's auth service. Issuer and audience are checked only
// when configured; the board's own tokens carry neither. The user ID is taken
// from the userId claim. The subject is used instead only when an issuer is
// configured, since the board puts the token type in it.
func NewJWTValidator(secret, algorithm, issuer, audience string) (AuthValidator, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}

	key := []byte(secret)
	alg, err := jwtAlgorithm(algorithm, key)
	if err != nil {
		return nil, err
	}

	expected := jwt.Expected{Issuer: issuer}
	if audience != "" {
		expected.Audience = jwt.Audience{audience}
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if strings.HasPrefix(authHeader, auth0AuthHeaderPrefix) {
			return nil, nil
		}
		if scheme, _, _ := strings.Cut(strings.TrimSpace(authHeader), " "); !strings.EqualFold(scheme, "bearer") {
			return nil, nil
		}

		rawToken, err := jwtmiddleware.AuthHeaderTokenExtractor(r)
		if err != nil {
			return nil, fmt.Errorf("malformed authorization header: %w", err)
		}
		if rawToken == "" {
			return nil, nil
		}

		token, err := jwt.ParseSigned(rawToken)
		if err != nil {
			return nil, errors.New("invalid JWT token")
		}
		if len(token.Headers) != 1 || token.Headers[0].Algorithm != string(alg) {
			return nil, errors.New("invalid JWT token")
		}

		var (
			registered jwt.Claims
			custom     communityClaims
		)
		if err := token.Claims(key, &registered, &custom); err != nil {
			return nil, errors.New("invalid JWT token")
		}

		validation := expected
		validation.Time = time.Now()
		if err := registered.ValidateWithLeeway(validation, time.Minute); err != nil {
			return nil, errors.New("invalid JWT token")
		}

		userID := custom.UserID
		if userID == "" && issuer != "" {
			userID = registered.Subject
		}
		if userID == "" {
			return nil, errors.New("JWT token carries no user ID")
		}

		return &AuthResult{
			UserID:   userID,
			Nickname: custom.UserNick,
			Method:   domain.AuthMethodJWT,
		}, nil
	}, nil
}
