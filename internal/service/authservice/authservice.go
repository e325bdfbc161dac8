package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/pointledger/pkg/auth"
)

const DefaultTokenTTL = 15 * time.Minute

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	operatorKeyHash string
	hashService     auth.KeyHasherInterface
	jwtService      auth.JWTServiceInterface
	tokenTTL        time.Duration
	now             func() time.Time
}

func New(operatorKeyHash string, hashService auth.KeyHasherInterface, jwtService auth.JWTServiceInterface, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Service{
		operatorKeyHash: operatorKeyHash,
		hashService:     hashService,
		jwtService:      jwtService,
		tokenTTL:        tokenTTL,
		now:             time.Now,
	}
}

// IssueToken trades the operator key for a token. A positive memberID yields
// a member-scoped token, otherwise an operator token.
func (s *Service) IssueToken(ctx context.Context, key string, memberID int64) (string, error) {
	if s.operatorKeyHash == "" {
		zap.L().Warn("token requested but no operator key is configured")
		return "", ErrInvalidCredentials
	}
	if ok := s.hashService.CompareKey(s.operatorKeyHash, key); !ok {
		zap.L().Info("invalid operator key")
		return "", ErrInvalidCredentials
	}

	role := auth.RoleOperator
	if memberID > 0 {
		role = auth.RoleMember
	}
	token, err := s.jwtService.GenerateJWT(memberID, role, s.now().Add(s.tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	zap.L().Info("token issued", zap.String("role", string(role)), zap.Int64("member_id", memberID))
	return token, nil
}
