package user

import (
	"context"
	"errors"
	"strings"

	"go-assetms/internal/employee"
	"go-assetms/internal/shared/contextutil"
	"go-assetms/internal/shared/token"
	usererrors "go-assetms/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	employees employee.Repository
	tokens    *token.Manager
	logger    *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	employees employee.Repository,
	tokens *token.Manager,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		tokens:    tokens,
		logger:    l,
	}
}

// Register creates an account for an existing employee. The employee lookup,
// the duplicate check and the insert run in one transaction; the unique
// constraint on employee_id still backstops concurrent registrations.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		etx := s.employees.WithTx(tx)

		// Both email and number must match the same employee record
		empl, err := etx.FindByEmailAndNumber(ctx, req.Email, req.EmployeeNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usererrors.ErrEmployeeNotFound
			}
			return err
		}

		exists, err := qtx.ExistsForEmployee(ctx, empl.ID.String())
		if err != nil {
			return err
		}
		if exists {
			return usererrors.ErrAccountAlreadyExists
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		return qtx.Create(ctx, &User{
			ID:           uuid.New(),
			PasswordHash: string(hashed),
			Role:         RoleUser,
			EmployeeID:   empl.ID,
		})
	})
	if err != nil {
		err = mapAccountError(err)
		if errors.Is(err, usererrors.ErrEmployeeNotFound) || errors.Is(err, usererrors.ErrAccountAlreadyExists) {
			s.logger.Warn("register rejected", zap.String("request_id", rid), zap.Error(err))
		} else {
			s.logger.Error("register failed", zap.String("request_id", rid), zap.Error(err))
		}
		return RegisterResponse{}, err
	}

	s.logger.Info("register success", zap.String("request_id", rid))

	return RegisterResponse{Message: "User account created successfully"}, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the identical error value so the response never
// reveals which part was wrong.
func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	cred, err := s.repo.FindCredentialByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("login rejected", zap.String("request_id", rid))
			return LoginResponse{}, usererrors.ErrInvalidCredentials
		}
		s.logger.Error("login lookup failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, err
	}

	// A malformed stored hash also fails closed into the same error
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("login rejected", zap.String("request_id", rid))
		return LoginResponse{}, usererrors.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(token.Claims{
		UserID: cred.UserID.String(),
		Email:  cred.Email,
		Role:   cred.Role,
	})
	if err != nil {
		s.logger.Error("token issue failed", zap.String("request_id", rid), zap.Error(err))
		return LoginResponse{}, err
	}

	s.logger.Info("login success",
		zap.String("request_id", rid),
		zap.String("user_id", cred.UserID.String()),
	)

	return LoginResponse{AccessToken: accessToken}, nil
}

// mapAccountError translates a unique violation on users.employee_id (two
// registrations racing past the existence check) into the same 409.
func mapAccountError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_user_employee" {
			return usererrors.ErrAccountAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_user_employee") {
		return usererrors.ErrAccountAlreadyExists
	}

	return err
}
