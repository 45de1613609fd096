package auth

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyouth_backend/internals/configs"
)

const expirySkew = 30 * time.Second

var (
	errNoSecret    = errors.New("missing JWT secret")
	errParse       = errors.New("token parse error")
	errExpired     = errors.New("token expired")
	errNoUserID    = errors.New("invalid or missing user ID")
	errUserMissing = errors.New("user not found")
)

// AuthMiddleware requires a valid bearer token of an active user and stores
// user_id, userRole and user_name in Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		claims, userID, err := verifyToken(db, tokenString)
		switch {
		case err == nil:
		case errors.Is(err, errNoSecret):
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		case errors.Is(err, errUserMissing), errors.Is(err, errParse), errors.Is(err, errExpired), errors.Is(err, errNoUserID):
			log.Printf("[WARN] auth %s %s: %v", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - "+err.Error())
		case errors.Is(err, errUserInactive):
			return fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		default:
			log.Printf("[ERROR] auth %s %s: %v", c.Method(), c.Path(), err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		storeClaimsToLocals(c, userID, claims)
		return c.Next()
	}
}

// OptionalAuthMiddleware behaves like AuthMiddleware when a usable token is sent
// and otherwise lets the request through as anonymous.
func OptionalAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		claims, userID, err := verifyToken(db, tokenString)
		if err != nil {
			log.Printf("[INFO] optional auth: %v, continuing as anonymous", err)
			return c.Next()
		}
		storeClaimsToLocals(c, userID, claims)
		return c.Next()
	}
}

func verifyToken(db *gorm.DB, tokenString string) (jwt.MapClaims, uuid.UUID, error) {
	secretKey := configs.JWTSecret
	if secretKey == "" {
		return nil, uuid.Nil, errNoSecret
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errParse
		}
		return []byte(secretKey), nil
	}); err != nil {
		return nil, uuid.Nil, errParse
	}

	if err := validateTokenExpiry(claims, expirySkew); err != nil {
		return nil, uuid.Nil, errExpired
	}

	userID, err := extractUserID(claims)
	if err != nil {
		return nil, uuid.Nil, errNoUserID
	}

	if db != nil {
		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, uuid.Nil, errUserMissing
			}
			return nil, uuid.Nil, err
		}
	}
	return claims, userID, nil
}
