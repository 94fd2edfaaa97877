package identity

import (
	"context"
	"errors"
	"time"

	"github.com/dovepeak/backend/internal/domain/identity"
	"github.com/dovepeak/backend/internal/domain/shared"
	"github.com/dovepeak/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthService authenticates admins, managers, and tenant accounts.
// Each realm has its own credential store; a login attempt never reveals
// whether the email or the password was wrong.
type AuthService struct {
	adminRepo   identity.AdminRepository
	managerRepo identity.ManagerRepository
	accountRepo identity.TenantAccountRepository
	auditRepo   identity.AuditLogRepository
	jwtService  *auth.JWTService
	logger      *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	adminRepo identity.AdminRepository,
	managerRepo identity.ManagerRepository,
	accountRepo identity.TenantAccountRepository,
	auditRepo identity.AuditLogRepository,
	jwtService *auth.JWTService,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		adminRepo:   adminRepo,
		managerRepo: managerRepo,
		accountRepo: accountRepo,
		auditRepo:   auditRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// LoginAdmin authenticates a system administrator
func (s *AuthService) LoginAdmin(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !admin.IsActive || !identity.CheckPassword(admin.PasswordHash, req.Password) {
		s.audit(ctx, admin.ID, identity.UserTypeAdmin, "login_failed", "auth", "")
		return nil, shared.ErrInvalidCredentials
	}

	now := time.Now()
	admin.RecordLogin(now)
	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      admin.ID,
		Email:       admin.Email,
		Realm:       auth.RealmAdmin,
		Permissions: admin.Permissions,
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, admin.ID, identity.UserTypeAdmin, "login", "auth", "")

	return &LoginResponse{
		Tokens: tokens,
		User: UserProfile{
			ID:        admin.ID,
			Email:     admin.Email,
			FullName:  admin.FullName(),
			Realm:     string(auth.RealmAdmin),
			Role:      string(admin.Role),
			LastLogin: admin.LastLogin,
		},
	}, nil
}

// LoginManager authenticates a property manager
func (s *AuthService) LoginManager(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	manager, err := s.managerRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !manager.IsActive || !identity.CheckPassword(manager.PasswordHash, req.Password) {
		s.audit(ctx, manager.ID, identity.UserTypeManager, "login_failed", "auth", "")
		return nil, shared.ErrInvalidCredentials
	}

	now := time.Now()
	manager.RecordLogin(now)
	if err := s.managerRepo.Update(ctx, manager); err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:      manager.ID,
		Email:       manager.Email,
		Realm:       auth.RealmManager,
		Permissions: manager.Permissions,
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, manager.ID, identity.UserTypeManager, "login", "auth", "")

	return &LoginResponse{
		Tokens: tokens,
		User: UserProfile{
			ID:        manager.ID,
			Email:     manager.Email,
			FullName:  manager.FullName(),
			Realm:     string(auth.RealmManager),
			Role:      string(manager.Role),
			LastLogin: manager.LastLogin,
		},
	}, nil
}

// LoginTenant authenticates a tenant's portal account
func (s *AuthService) LoginTenant(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	account, err := s.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}
	if !account.IsActive || !identity.CheckPassword(account.PasswordHash, req.Password) {
		s.audit(ctx, account.ID, identity.UserTypeTenant, "login_failed", "auth", "")
		return nil, shared.ErrInvalidCredentials
	}

	now := time.Now()
	account.RecordLogin(now)
	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	tokens, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID: account.ID,
		Email:  account.Email,
		Realm:  auth.RealmTenant,
	})
	if err != nil {
		return nil, err
	}

	s.audit(ctx, account.ID, identity.UserTypeTenant, "login", "auth", "")

	tenantID := account.TenantID
	return &LoginResponse{
		Tokens: tokens,
		User: UserProfile{
			ID:        account.ID,
			Email:     account.Email,
			FullName:  account.FullName(),
			Realm:     string(auth.RealmTenant),
			TenantID:  &tenantID,
			LastLogin: account.LastLogin,
		},
	}, nil
}

// Refresh issues a fresh token pair from a valid refresh token. Current
// email and permissions are reloaded from the account so revoked grants
// do not survive the refresh.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*auth.TokenPair, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	email, permissions, err := s.currentGrants(ctx, claims.Realm, userID)
	if err != nil {
		return nil, shared.ErrUnauthorized
	}

	tokens, err := s.jwtService.RefreshTokenPair(req.RefreshToken, email, permissions)
	if err != nil {
		if errors.Is(err, auth.ErrMaxRefreshExceeded) {
			return nil, shared.NewDomainError("MAX_REFRESH_EXCEEDED", "Session expired; log in again")
		}
		return nil, shared.ErrUnauthorized
	}

	return tokens, nil
}

// Profile returns the profile of the user a token was issued to,
// resolved against the realm's own store.
func (s *AuthService) Profile(ctx context.Context, realm auth.Realm, userID uuid.UUID) (*UserProfile, error) {
	switch realm {
	case auth.RealmAdmin:
		admin, err := s.adminRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &UserProfile{
			ID:        admin.ID,
			Email:     admin.Email,
			FullName:  admin.FullName(),
			Realm:     string(auth.RealmAdmin),
			Role:      string(admin.Role),
			LastLogin: admin.LastLogin,
		}, nil
	case auth.RealmManager:
		manager, err := s.managerRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		return &UserProfile{
			ID:        manager.ID,
			Email:     manager.Email,
			FullName:  manager.FullName(),
			Realm:     string(auth.RealmManager),
			Role:      string(manager.Role),
			LastLogin: manager.LastLogin,
		}, nil
	case auth.RealmTenant:
		account, err := s.accountRepo.FindByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		tenantID := account.TenantID
		return &UserProfile{
			ID:        account.ID,
			Email:     account.Email,
			FullName:  account.FullName(),
			Realm:     string(auth.RealmTenant),
			TenantID:  &tenantID,
			LastLogin: account.LastLogin,
		}, nil
	default:
		return nil, shared.ErrUnauthorized
	}
}

// currentGrants loads the live email and permissions for a realm user,
// rejecting deactivated accounts.
func (s *AuthService) currentGrants(ctx context.Context, realm auth.Realm, userID uuid.UUID) (string, []string, error) {
	switch realm {
	case auth.RealmAdmin:
		admin, err := s.adminRepo.FindByID(ctx, userID)
		if err != nil || !admin.IsActive {
			return "", nil, shared.ErrUnauthorized
		}
		return admin.Email, admin.Permissions, nil
	case auth.RealmManager:
		manager, err := s.managerRepo.FindByID(ctx, userID)
		if err != nil || !manager.IsActive {
			return "", nil, shared.ErrUnauthorized
		}
		return manager.Email, manager.Permissions, nil
	case auth.RealmTenant:
		account, err := s.accountRepo.FindByID(ctx, userID)
		if err != nil || !account.IsActive {
			return "", nil, shared.ErrUnauthorized
		}
		return account.Email, nil, nil
	default:
		return "", nil, shared.ErrUnauthorized
	}
}

// ChangePassword changes the password for the authenticated user
func (s *AuthService) ChangePassword(ctx context.Context, realm auth.Realm, userID uuid.UUID, req ChangePasswordRequest) error {
	switch realm {
	case auth.RealmAdmin:
		admin, err := s.adminRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if !identity.CheckPassword(admin.PasswordHash, req.CurrentPassword) {
			return shared.ErrInvalidCredentials
		}
		if err := admin.ChangePassword(req.NewPassword); err != nil {
			return err
		}
		if err := s.adminRepo.Update(ctx, admin); err != nil {
			return err
		}
	case auth.RealmManager:
		manager, err := s.managerRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if !identity.CheckPassword(manager.PasswordHash, req.CurrentPassword) {
			return shared.ErrInvalidCredentials
		}
		if err := manager.ChangePassword(req.NewPassword); err != nil {
			return err
		}
		if err := s.managerRepo.Update(ctx, manager); err != nil {
			return err
		}
	case auth.RealmTenant:
		account, err := s.accountRepo.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		if !identity.CheckPassword(account.PasswordHash, req.CurrentPassword) {
			return shared.ErrInvalidCredentials
		}
		if err := account.ChangePassword(req.NewPassword); err != nil {
			return err
		}
		if err := s.accountRepo.Update(ctx, account); err != nil {
			return err
		}
	default:
		return shared.ErrUnauthorized
	}

	userType := identity.UserType(realm)
	s.audit(ctx, userID, userType, "change_password", "auth", "")

	return nil
}

// audit records an audit entry; failures are logged and swallowed so a
// broken audit trail never blocks the underlying action.
func (s *AuthService) audit(ctx context.Context, userID uuid.UUID, userType identity.UserType, action, resource, resourceID string) {
	entry := identity.NewAuditLog(userID, userType, action, resource, resourceID, "")
	if err := s.auditRepo.Add(ctx, entry); err != nil {
		s.logger.Error("Failed to write audit log",
			zap.String("action", action),
			zap.Error(err))
	}
}
