package testutil

import (
	"context"
	"reflect"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/crypto"
)

// SampleUser inserts a user with randomized identity. Non-zero fields of init
// overwrite the sample before insertion.
func SampleUser(ctx context.Context, init *entity.User) entity.User {
	userRepo := repository.NewUserRepository(&MockRedisClient{})

	sample := &entity.User{
		Base:       entity.Base{ID: uuid.NewString()},
		TelegramID: int64(crypto.RandIntn(1 << 30)),
		Name:       uuid.NewString(),
		Username:   uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func SampleCategory(ctx context.Context, init *entity.Category) entity.Category {
	categoryRepo := repository.NewCategoryRepository()

	sample := &entity.Category{
		Base:                entity.Base{ID: uuid.NewString()},
		Name:                uuid.NewString(),
		RewardPerCompletion: decimal.NewFromInt(10),
		CostPerCompletion:   decimal.NewFromInt(15),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := categoryRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func SampleTask(ctx context.Context, init *entity.Task) entity.Task {
	taskRepo := repository.NewTaskRepository(&MockRedisClient{})

	sample := &entity.Task{
		Base:       entity.Base{ID: uuid.NewString()},
		CategoryID: SampleCategory(ctx, nil).ID,
		Title:      uuid.NewString(),
		Link:       "https://example.com/post/1",
		Quantity:   10,
		Reward:     decimal.NewFromInt(10),
		Status:     entity.TaskActive,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := taskRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func SampleAdmin(ctx context.Context, password string, init *entity.Admin) entity.Admin {
	adminRepo := repository.NewAdminRepository()

	hash, err := crypto.HashPassword(password)
	if err != nil {
		panic(err)
	}

	sample := &entity.Admin{
		Base:         entity.Base{ID: uuid.NewString()},
		Username:     uuid.NewString(),
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := adminRepo.Create(ctx, sample); err != nil {
		panic(err)
	}

	return *sample
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
