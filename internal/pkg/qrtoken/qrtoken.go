// Package qrtoken signs and verifies the short-lived RS256 tokens rendered as QR codes:
// check-in tokens scanned by the kiosk and redeem tokens scanned at the counter.
package qrtoken

import (
	"crypto/rsa"
	"errors"
	"strings"
	"time"

	"cozycup/internal/pkg/clock"
	"cozycup/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrKeyMissing   = errors.New("qr signing key is not configured")
	ErrInvalidToken = errors.New("invalid qr token")
	ErrExpiredToken = errors.New("qr token expired")
	ErrWrongType    = errors.New("unexpected qr token type")
)

type Type string

const (
	TypeCheckIn Type = "checkin"
	TypeRedeem  Type = "redeem"
)

type CheckInClaims struct {
	BookingID uuid.UUID `json:"bid"`
	SlotID    uuid.UUID `json:"sid"`
	Type      Type      `json:"typ"`
	jwt.RegisteredClaims
}

// CustomerID is carried in the standard sub claim.
func (c *CheckInClaims) CustomerID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type RedeemClaims struct {
	PurchaseID uuid.UUID `json:"purchaseId"`
	Type       Type      `json:"typ"`
	jwt.RegisteredClaims
}

func (c *RedeemClaims) CustomerID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type Service struct {
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	checkInTTL time.Duration
	redeemTTL  time.Duration
	issuer     string
	audience   string
	clock      clock.Clock
}

// NewService parses whatever key material is present. Absent keys are not an error here;
// they surface as ErrKeyMissing on first use so the rest of the API still boots.
func NewService(cfg config.QRConfig, clk clock.Clock) (*Service, error) {
	s := &Service{
		checkInTTL: cfg.TTL,
		redeemTTL:  cfg.RedeemTTL,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		clock:      clk,
	}
	if cfg.PrivateKeyPEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM(normalizePEM(cfg.PrivateKeyPEM))
		if err != nil {
			return nil, err
		}
		s.privateKey = key
		s.publicKey = &key.PublicKey
	}
	if cfg.PublicKeyPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM(normalizePEM(cfg.PublicKeyPEM))
		if err != nil {
			return nil, err
		}
		s.publicKey = key
	}
	return s, nil
}

// normalizePEM accepts keys pasted into a single-line env var with literal \n separators.
func normalizePEM(pem string) []byte {
	return []byte(strings.ReplaceAll(pem, `\n`, "\n"))
}

// NewServiceWithKey is used by tests and tooling that already hold a key pair.
func NewServiceWithKey(key *rsa.PrivateKey, cfg config.QRConfig, clk clock.Clock) *Service {
	return &Service{
		privateKey: key,
		publicKey:  &key.PublicKey,
		checkInTTL: cfg.TTL,
		redeemTTL:  cfg.RedeemTTL,
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
		clock:      clk,
	}
}

func (s *Service) registered(subject uuid.UUID, ttl time.Duration) (jwt.RegisteredClaims, time.Time) {
	now := s.clock.Now()
	exp := now.Add(ttl)
	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject.String(),
		Issuer:    s.issuer,
		Audience:  jwt.ClaimStrings{s.audience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}, exp
}

func (s *Service) sign(claims jwt.Claims) (string, error) {
	if s.privateKey == nil {
		return "", ErrKeyMissing
	}
	return jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.privateKey)
}

func (s *Service) MintCheckIn(bookingID, slotID, customerID uuid.UUID) (string, time.Time, error) {
	reg, exp := s.registered(customerID, s.checkInTTL)
	token, err := s.sign(&CheckInClaims{
		BookingID:        bookingID,
		SlotID:           slotID,
		Type:             TypeCheckIn,
		RegisteredClaims: reg,
	})
	return token, exp, err
}

func (s *Service) MintRedeem(purchaseID, customerID uuid.UUID) (string, time.Time, error) {
	reg, exp := s.registered(customerID, s.redeemTTL)
	token, err := s.sign(&RedeemClaims{
		PurchaseID:       purchaseID,
		Type:             TypeRedeem,
		RegisteredClaims: reg,
	})
	return token, exp, err
}

func (s *Service) parse(tokenString string, claims jwt.Claims) error {
	if s.publicKey == nil {
		return ErrKeyMissing
	}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, ErrInvalidToken
		}
		return s.publicKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrExpiredToken
		}
		return ErrInvalidToken
	}
	return nil
}

func (s *Service) VerifyCheckIn(tokenString string) (*CheckInClaims, error) {
	claims := &CheckInClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Type != TypeCheckIn {
		return nil, ErrWrongType
	}
	return claims, nil
}

func (s *Service) VerifyRedeem(tokenString string) (*RedeemClaims, error) {
	claims := &RedeemClaims{}
	if err := s.parse(tokenString, claims); err != nil {
		return nil, err
	}
	if claims.Type != TypeRedeem {
		return nil, ErrWrongType
	}
	return claims, nil
}
