package user

import (
	"context"
	"errors"
	"time"

	"foodgram/domain"
	"foodgram/entities"
	"foodgram/internal/utils"
	"foodgram/internal/utils/mailing"
	"foodgram/internal/utils/storage"
	"foodgram/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const avatarFolder = "avatars"

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
		Logout(ctx context.Context, userID string, jti string, expiresAt time.Time) error
		GetUsers(ctx context.Context, page, limit int, viewerID string) ([]domain.User, int64, error)
		GetUserByID(ctx context.Context, id string, viewerID string) (domain.User, error)
		Me(ctx context.Context, userID string) (domain.User, error)
		UpdateAvatar(ctx context.Context, req domain.AvatarRequest, userID string) (domain.AvatarResponse, error)
		DeleteAvatar(ctx context.Context, userID string) error
		SetPassword(ctx context.Context, req domain.SetPasswordRequest, userID string) error
		Subscribe(ctx context.Context, authorID string, userID string, recipesLimit int) (domain.Subscription, error)
		Unsubscribe(ctx context.Context, authorID string, userID string) error
		GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.Subscription, int64, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
		mailer         mailing.Mailer
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3, mailer mailing.Mailer) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
		mailer:         mailer,
	}
}

// ToDomainUser maps a stored user to its public representation.
func ToDomainUser(user *entities.User, isSubscribed bool) domain.User {
	return domain.User{
		ID:           user.ID.String(),
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
		Avatar:       user.AvatarURL,
	}
}

func ToRecipeShort(recipe *entities.Recipe) domain.RecipeShort {
	return domain.RecipeShort{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.ImageURL,
		CookingTime: recipe.CookingTime,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.RegisterResponse, error) {
	exists, err := s.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
	}

	exists, err = s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return domain.RegisterResponse{}, err
	}
	if exists {
		return domain.RegisterResponse{}, domain.ErrUsernameAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.RegisterResponse{}, err
	}

	user := &entities.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  string(hashed),
		Role:      domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisterResponse{}, domain.ErrEmailAlreadyExists
		}
		return domain.RegisterResponse{}, err
	}

	if s.mailer != nil && s.mailer.Enabled() {
		go func(email, username string) {
			body := mailing.WelcomeMailBody(username, utils.GetConfig("APP_URL"))
			if err := s.mailer.SendMail(email, "Welcome to Foodgram", body); err != nil {
				log.Warnf("failed to send welcome mail to %s: %v", email, err)
			}
		}(user.Email, user.Username)
	}

	return domain.RegisterResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{AuthToken: token}, nil
}

func (s *userService) Logout(ctx context.Context, userID string, jti string, expiresAt time.Time) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	if jti == "" {
		return domain.ErrTokenInvalid
	}
	return s.userRepository.RevokeToken(ctx, &entities.RevokedToken{
		JTI:       jti,
		UserID:    userUUID,
		ExpiresAt: expiresAt,
	})
}

func (s *userService) getUser(ctx context.Context, id string) (*entities.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) isSubscribed(ctx context.Context, viewerID string, authorID string) bool {
	if viewerID == "" {
		return false
	}
	following, err := s.userRepository.IsFollowing(ctx, viewerID, authorID)
	if err != nil {
		return false // not critical for the listing
	}
	return following
}

func (s *userService) GetUsers(ctx context.Context, page, limit int, viewerID string) ([]domain.User, int64, error) {
	users, count, err := s.userRepository.GetUsers(ctx, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.User, 0, len(users))
	for _, user := range users {
		result = append(result, ToDomainUser(user, s.isSubscribed(ctx, viewerID, user.ID.String())))
	}
	return result, count, nil
}

func (s *userService) GetUserByID(ctx context.Context, id string, viewerID string) (domain.User, error) {
	user, err := s.getUser(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return ToDomainUser(user, s.isSubscribed(ctx, viewerID, user.ID.String())), nil
}

func (s *userService) Me(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}
	return ToDomainUser(user, false), nil
}

func (s *userService) UpdateAvatar(ctx context.Context, req domain.AvatarRequest, userID string) (domain.AvatarResponse, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.AvatarResponse{}, err
	}

	objectKey, err := s.s3.UploadBase64Image(ctx, req.Avatar, avatarFolder)
	if err != nil {
		return domain.AvatarResponse{}, err
	}

	oldAvatar := user.AvatarURL
	user.AvatarURL = s.s3.GetPublicLinkKey(objectKey)
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		_ = s.s3.DeleteFile(ctx, objectKey)
		return domain.AvatarResponse{}, err
	}

	s.deleteImage(ctx, oldAvatar)
	return domain.AvatarResponse{Avatar: user.AvatarURL}, nil
}

func (s *userService) DeleteAvatar(ctx context.Context, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.AvatarURL == "" {
		return nil
	}

	oldAvatar := user.AvatarURL
	user.AvatarURL = ""
	if err := s.userRepository.UpdateUser(ctx, user); err != nil {
		return err
	}
	s.deleteImage(ctx, oldAvatar)
	return nil
}

func (s *userService) deleteImage(ctx context.Context, link string) {
	if link == "" {
		return
	}
	if objectKey := s.s3.GetObjectKeyFromLink(link); objectKey != "" {
		if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
			log.Warnf("failed to delete image %s: %v", objectKey, err)
		}
	}
}

func (s *userService) SetPassword(ctx context.Context, req domain.SetPasswordRequest, userID string) error {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return domain.ErrIncorrectPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)
	return s.userRepository.UpdateUser(ctx, user)
}

func (s *userService) buildSubscription(ctx context.Context, author *entities.User, recipesLimit int) (domain.Subscription, error) {
	recipes, err := s.userRepository.GetRecipesByAuthor(ctx, author.ID.String(), recipesLimit)
	if err != nil {
		return domain.Subscription{}, err
	}
	count, err := s.userRepository.CountRecipesByAuthor(ctx, author.ID.String())
	if err != nil {
		return domain.Subscription{}, err
	}

	shorts := make([]domain.RecipeShort, 0, len(recipes))
	for _, recipe := range recipes {
		shorts = append(shorts, ToRecipeShort(recipe))
	}
	return domain.Subscription{
		User:         ToDomainUser(author, true),
		Recipes:      shorts,
		RecipesCount: count,
	}, nil
}

func (s *userService) Subscribe(ctx context.Context, authorID string, userID string, recipesLimit int) (domain.Subscription, error) {
	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return domain.Subscription{}, err
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.Subscription{}, domain.ErrParseUUID
	}
	if author.ID == userUUID {
		return domain.Subscription{}, domain.ErrSelfFollow
	}

	following, err := s.userRepository.IsFollowing(ctx, userID, authorID)
	if err != nil {
		return domain.Subscription{}, err
	}
	if following {
		return domain.Subscription{}, domain.ErrAlreadyFollowing
	}

	if err := s.userRepository.CreateFollow(ctx, &entities.Follow{
		ID:          uuid.New(),
		UserID:      userUUID,
		FollowingID: author.ID,
		CreatedAt:   time.Now(),
	}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Subscription{}, domain.ErrAlreadyFollowing
		}
		return domain.Subscription{}, err
	}

	return s.buildSubscription(ctx, author, recipesLimit)
}

func (s *userService) Unsubscribe(ctx context.Context, authorID string, userID string) error {
	author, err := s.getUser(ctx, authorID)
	if err != nil {
		return err
	}

	deleted, err := s.userRepository.DeleteFollow(ctx, userID, author.ID.String())
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNotFollowing
	}
	return nil
}

func (s *userService) GetSubscriptions(ctx context.Context, userID string, page, limit, recipesLimit int) ([]domain.Subscription, int64, error) {
	authors, count, err := s.userRepository.GetFollowings(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Subscription, 0, len(authors))
	for _, author := range authors {
		subscription, err := s.buildSubscription(ctx, author, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, subscription)
	}
	return result, count, nil
}
