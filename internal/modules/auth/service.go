package auth

import (
	"context"
	"errors"
	"strings"

	"gentlecare/internal/domain"
	"gentlecare/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users    UserRepository
	profiles ProfileRepository
	jwt      jwtService
	events   Events
}

func NewService(users UserRepository, profiles ProfileRepository, jwt jwtService, events Events) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		jwt:      jwt,
		events:   events,
	}
}

type AuthResult struct {
	User        *domain.User
	AccessToken string
	Profile     map[string]any
}

func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         domain.UserRole(req.UserType),
	}

	if err := s.users.Create(ctx, user); err != nil {
		// the unique index may beat the ExistsByEmail check under
		// concurrent signups
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if user.Role == domain.RoleElder {
		if err := s.profiles.CreateElder(ctx, &domain.ElderProfile{UserID: user.ID}); err != nil {
			return nil, err
		}
	} else {
		if err := s.profiles.CreateCaretaker(ctx, &domain.CaretakerProfile{UserID: user.ID}); err != nil {
			return nil, err
		}
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{User: user, AccessToken: token}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:        user,
		AccessToken: token,
		Profile:     s.profileSummary(ctx, user),
	}, nil
}

// profileSummary builds the role-specific payload the client shows after
// login. Lookup failures degrade to an empty summary; login must not fail
// because a profile row is missing.
func (s *Service) profileSummary(ctx context.Context, user *domain.User) map[string]any {
	summary := map[string]any{}

	if user.Role == domain.RoleElder {
		profile, err := s.profiles.GetElderByUserID(ctx, user.ID)
		if err != nil {
			return summary
		}
		summary["caretaker_id"] = profile.CaretakerID
		summary["emergency_contact"] = profile.EmergencyContact
		return summary
	}

	elders, err := s.profiles.EldersOfCaretaker(ctx, user.ID)
	if err != nil {
		return summary
	}
	list := make([]map[string]any, 0, len(elders))
	for _, e := range elders {
		name := ""
		if e.User != nil {
			name = e.User.FullName
		}
		list = append(list, map[string]any{"id": e.ID, "name": name})
	}
	summary["elder_count"] = len(elders)
	summary["elders"] = list
	return summary
}

func (s *Service) LinkCaretaker(ctx context.Context, elderUserID int64, req LinkCaretakerRequest) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, elderUserID)
	if err != nil {
		return nil, err
	}
	if user.Role != domain.RoleElder {
		return nil, ErrNotElder
	}

	caretaker, err := s.users.GetByEmail(ctx, req.CaretakerEmail)
	if err != nil || caretaker.Role != domain.RoleCaretaker {
		return nil, ErrCaretakerNotFound
	}

	profile, err := s.profiles.GetElderByUserID(ctx, elderUserID)
	if err != nil {
		return nil, err
	}

	if err := s.profiles.SetCaretaker(ctx, profile.ID, caretaker.ID); err != nil {
		return nil, err
	}

	if s.events != nil {
		s.events.ElderLinked(caretaker.ID, profile.ID, user.FullName)
	}

	return caretaker, nil
}
