package services

import (
	"supermock_backend/internal/auth"
	"supermock_backend/internal/models"
	"supermock_backend/internal/repositories"
	"supermock_backend/internal/services/dto"

	"supermock_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(actor auth.Actor) (*dto.UserProfile, error)
	UpdateProfile(actor auth.Actor, req *dto.UpdateProfileRequest) (*dto.UserProfile, error)
	GetLimits(actor auth.Actor) (*dto.InterviewLimits, error)
	ListUsers(actor auth.Actor, page, pageSize int) (*dto.UserListResponse, error)
}

type userService struct {
	userRepo      repositories.UserRepository
	pointsService PointsService
}

func NewUserService(userRepo repositories.UserRepository, pointsService PointsService) UserService {
	return &userService{
		userRepo:      userRepo,
		pointsService: pointsService,
	}
}

func (s *userService) GetProfile(actor auth.Actor) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(actor.ID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return UserToProfile(user), nil
}

func (s *userService) UpdateProfile(actor auth.Actor, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Telegram != nil {
		fields["telegram"] = *req.Telegram
	}
	if req.Discord != nil {
		fields["discord"] = *req.Discord
	}
	if req.Whatsapp != nil {
		fields["whatsapp"] = *req.Whatsapp
	}
	if req.Password != nil {
		if err := auth.ValidatePassword(*req.Password); err != nil {
			return nil, apperrors.ValidationError(err.Error())
		}
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["password_hash"] = hash
	}

	if len(fields) > 0 {
		if err := s.userRepo.UpdateProfile(actor.ID, fields); err != nil {
			if apperrors.Is(err, repositories.ErrUserNotFound) {
				return nil, apperrors.ErrUserNotFound
			}
			return nil, apperrors.InternalError(err)
		}
	}

	return s.GetProfile(actor)
}

func (s *userService) GetLimits(actor auth.Actor) (*dto.InterviewLimits, error) {
	limits, err := s.pointsService.CheckInterviewLimit(actor)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return limits, nil
}

// ListUsers возвращает админу страницу пользователей
func (s *userService) ListUsers(actor auth.Actor, page, pageSize int) (*dto.UserListResponse, error) {
	if !actor.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, err := s.userRepo.FindAll(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]dto.UserProfile, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, *UserToProfile(&users[i]))
	}
	return resp, nil
}

// UserToProfile собирает публичное представление пользователя
func UserToProfile(user *models.User) *dto.UserProfile {
	return &dto.UserProfile{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Telegram:           user.Telegram,
		Discord:            user.Discord,
		Whatsapp:           user.Whatsapp,
		Role:               string(user.Role),
		Points:             user.Points,
		FreeInterviewsUsed: user.FreeInterviewsUsed,
		CreatedAt:          user.CreatedAt,
	}
}
