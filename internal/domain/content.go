package domain

import (
	"context"

	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
)

// ContentDomain serves the public read-only surface: rules, active
// announcements, settings, and task categories. Everything here is cheap to
// read and cached where it matters.
type ContentDomain interface {
	GetRules(ctx context.Context, req *model.GetRulesRequest) (*model.GetRulesResponse, error)
	GetAnnouncements(ctx context.Context, req *model.GetAnnouncementsRequest) (*model.GetAnnouncementsResponse, error)
	GetSettings(ctx context.Context, req *model.GetSettingsRequest) (*model.GetSettingsResponse, error)
	GetCategories(ctx context.Context, req *model.GetCategoriesRequest) (*model.GetCategoriesResponse, error)
}

type contentDomain struct {
	ruleRepo         repository.RuleRepository
	announcementRepo repository.AnnouncementRepository
	settingRepo      repository.SettingRepository
	categoryRepo     repository.CategoryRepository
}

func NewContentDomain(
	ruleRepo repository.RuleRepository,
	announcementRepo repository.AnnouncementRepository,
	settingRepo repository.SettingRepository,
	categoryRepo repository.CategoryRepository,
) ContentDomain {
	return &contentDomain{
		ruleRepo:         ruleRepo,
		announcementRepo: announcementRepo,
		settingRepo:      settingRepo,
		categoryRepo:     categoryRepo,
	}
}

func (d *contentDomain) GetRules(ctx context.Context, req *model.GetRulesRequest) (*model.GetRulesResponse, error) {
	rules, err := d.ruleRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get rules: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Rule{}
	for i := range rules {
		resp = append(resp, model.ConvertRule(&rules[i]))
	}

	return &model.GetRulesResponse{Rules: resp}, nil
}

func (d *contentDomain) GetAnnouncements(ctx context.Context, req *model.GetAnnouncementsRequest) (*model.GetAnnouncementsResponse, error) {
	announcements, err := d.announcementRepo.GetActiveList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get announcements: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Announcement{}
	for i := range announcements {
		resp = append(resp, model.ConvertAnnouncement(&announcements[i]))
	}

	return &model.GetAnnouncementsResponse{Announcements: resp}, nil
}

func (d *contentDomain) GetSettings(ctx context.Context, req *model.GetSettingsRequest) (*model.GetSettingsResponse, error) {
	setting, err := d.settingRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get settings: %v", err)
		return nil, errorx.Unknown
	}

	resp := model.GetSettingsResponse(model.ConvertSetting(setting))
	return &resp, nil
}

func (d *contentDomain) GetCategories(ctx context.Context, req *model.GetCategoriesRequest) (*model.GetCategoriesResponse, error) {
	categories, err := d.categoryRepo.GetList(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get categories: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Category{}
	for i := range categories {
		resp = append(resp, model.ConvertCategory(&categories[i]))
	}

	return &model.GetCategoriesResponse{Categories: resp}, nil
}
