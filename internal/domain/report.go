package domain

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
)

type ReportDomain interface {
	Create(ctx context.Context, req *model.CreateReportRequest) (*model.CreateReportResponse, error)
}

type reportDomain struct {
	reportRepo repository.ReportRepository
}

func NewReportDomain(reportRepo repository.ReportRepository) ReportDomain {
	return &reportDomain{reportRepo: reportRepo}
}

// Create files a cheating report against a username. The accused is kept as a
// handle, not a user id; the handle may not even belong to a registered user
// at filing time.
func (d *reportDomain) Create(ctx context.Context, req *model.CreateReportRequest) (*model.CreateReportResponse, error) {
	accused := strings.TrimPrefix(strings.TrimSpace(req.AccusedUsername), "@")
	if accused == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty accused username")
	}

	if req.TaskLink == "" && req.ProfileLink == "" {
		return nil, errorx.New(errorx.BadRequest, "Require a task link or a profile link as evidence")
	}

	report := &entity.Report{
		Base:            entity.Base{ID: uuid.NewString()},
		ReporterID:      xcontext.RequestUserID(ctx),
		AccusedUsername: accused,
		TaskLink:        req.TaskLink,
		ProfileLink:     req.ProfileLink,
		Status:          entity.ReportPending,
	}

	if err := d.reportRepo.Create(ctx, report); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create report: %v", err)
		return nil, errorx.Unknown
	}

	return &model.CreateReportResponse{ID: report.ID}, nil
}
