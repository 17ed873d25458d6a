package domain

import (
	"context"
	"errors"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error)
	ConnectProfile(ctx context.Context, req *model.ConnectProfileRequest) (*model.ConnectProfileResponse, error)
}

type userDomain struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	settingRepo     repository.SettingRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	settingRepo repository.SettingRepository,
) UserDomain {
	return &userDomain{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		settingRepo:     settingRepo,
	}
}

// Login bootstraps a Telegram identity. The identity is already verified by
// the mini-app platform; the same telegram id always maps to the same record,
// with display fields refreshed on every login.
func (d *userDomain) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	telegramID, err := strconv.ParseInt(req.TelegramID, 10, 64)
	if err != nil || telegramID <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Invalid telegram id")
	}

	user, err := d.userRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get user by telegram id: %v", err)
			return nil, errorx.Unknown
		}

		user = &entity.User{
			Base:        entity.Base{ID: uuid.NewString()},
			TelegramID:  telegramID,
			Name:        req.Name,
			Username:    req.Username,
			AvatarURL:   req.AvatarURL,
			LastLoginAt: time.Now(),
		}

		if err := d.userRepo.Create(ctx, user); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot create user: %v", err)
			return nil, errorx.Unknown
		}
	} else {
		if user.IsBlocked {
			return nil, errorx.New(errorx.PermissionDenied, "Your account has been blocked")
		}

		update := &entity.User{
			Name:        req.Name,
			Username:    req.Username,
			AvatarURL:   req.AvatarURL,
			LastLoginAt: time.Now(),
		}

		if err := d.userRepo.UpdateByID(ctx, user.ID, update); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot update user: %v", err)
			return nil, errorx.Unknown
		}

		user, err = d.userRepo.GetByID(ctx, user.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot get user after update: %v", err)
			return nil, errorx.Unknown
		}
	}

	setting, err := d.settingRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get settings: %v", err)
		return nil, errorx.Unknown
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration,
		model.AccessToken{ID: user.ID, Role: model.UserRole},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.LoginResponse{
		User:            model.ConvertUser(user),
		OnboardingBonus: setting.OnboardingBonus,
		PointName:       setting.PointName,
		AccessToken:     token,
	}, nil
}

func (d *userDomain) GetMe(ctx context.Context, req *model.GetMeRequest) (*model.GetMeResponse, error) {
	user, err := d.userRepo.GetByID(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetMeResponse(model.ConvertUser(user))
	return &resp, nil
}

// ConnectProfile stores the user's social profile link and pays the
// onboarding bonus. The bonus is strictly one-time; a second connect fails
// without touching the link or the balances.
func (d *userDomain) ConnectProfile(ctx context.Context, req *model.ConnectProfileRequest) (*model.ConnectProfileResponse, error) {
	link, err := url.ParseRequestURI(req.ProfileLink)
	if err != nil || (link.Scheme != "http" && link.Scheme != "https") {
		return nil, errorx.New(errorx.BadRequest, "Invalid profile link")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	// The conditional update is the only guard. A cached user record must
	// never decide the claim; the store does.
	if err := d.userRepo.SetProfileLink(ctx, userID, req.ProfileLink); err != nil {
		if errors.Is(err, repository.ErrBonusAlreadyReceived) {
			return nil, errorx.New(errorx.AlreadyProcessed, "You have already received the onboarding bonus")
		}

		xcontext.Logger(ctx).Errorf("Cannot set profile link: %v", err)
		return nil, errorx.Unknown
	}

	setting, err := d.settingRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get settings: %v", err)
		return nil, errorx.Unknown
	}

	bonus := setting.OnboardingBonus
	if err := d.userRepo.IncreaseBalances(ctx, userID, bonus, bonus); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot increase user balances: %v", err)
		return nil, errorx.Unknown
	}

	transaction := &entity.Transaction{
		Base:   entity.Base{ID: uuid.NewString()},
		UserID: userID,
		Type:   entity.TransactionBonus,
		Status: entity.TransactionCompleted,
		Amount: bonus,
		Reason: "Onboarding bonus",
	}

	if err := d.transactionRepo.Create(ctx, transaction); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create bonus transaction: %v", err)
		return nil, errorx.Unknown
	}

	ctx = xcontext.WithCommitDBTransaction(ctx)

	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user after bonus: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ConnectProfileResponse{
		User:  model.ConvertUser(user),
		Bonus: bonus,
	}, nil
}
