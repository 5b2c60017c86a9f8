package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/form3tech-oss/jwt-go"
	"github.com/google/uuid"
)

var (
	ErrTicketInvalid  = errors.New("ticket invalid")
	ErrTicketMismatch = errors.New("ticket does not match user or match")
)

// DefaultTicketTTL bounds how long a join ticket stays usable.
const DefaultTicketTTL = 10 * time.Minute

// TicketClaims are the JWT claims of a match join ticket.
type TicketClaims struct {
	MatchID string `json:"mid"`
	jwt.StandardClaims
}

// TicketService signs and verifies HS256 join tickets.
type TicketService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTicketService returns a service signing with secret. A non-positive ttl uses DefaultTicketTTL.
func NewTicketService(secret string, ttl time.Duration) *TicketService {
	if ttl <= 0 {
		ttl = DefaultTicketTTL
	}
	return &TicketService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Enabled reports whether a signing secret is configured.
func (s *TicketService) Enabled() bool {
	return s != nil && len(s.secret) > 0
}

// Issue signs a ticket letting userID join matchID.
func (s *TicketService) Issue(userID, matchID string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("ticket service is not configured")
	}
	if userID == "" || matchID == "" {
		return "", fmt.Errorf("user and match are required")
	}

	now := s.now()
	claims := TicketClaims{
		MatchID: matchID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks the signature, expiry and that the ticket names userID and matchID.
func (s *TicketService) Verify(ticket, userID, matchID string) (*TicketClaims, error) {
	if !s.Enabled() {
		return nil, fmt.Errorf("ticket service is not configured")
	}

	claims := &TicketClaims{}
	_, err := jwt.ParseWithClaims(ticket, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTicketInvalid, err)
	}
	if claims.Subject != userID || claims.MatchID != matchID {
		return nil, ErrTicketMismatch
	}
	return claims, nil
}
