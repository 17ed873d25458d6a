package domain

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/taskhive/backend/internal/entity"
	"github.com/taskhive/backend/internal/model"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/crypto"
	"github.com/taskhive/backend/pkg/enum"
	"github.com/taskhive/backend/pkg/errorx"
	"github.com/taskhive/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AdminDomain interface {
	Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)

	GetUsers(ctx context.Context, req *model.AdminGetUsersRequest) (*model.AdminGetUsersResponse, error)
	GetUser(ctx context.Context, req *model.AdminGetUserRequest) (*model.AdminGetUserResponse, error)
	BlockUser(ctx context.Context, req *model.AdminBlockUserRequest) (*model.AdminBlockUserResponse, error)
	UpdateUserNote(ctx context.Context, req *model.AdminUpdateUserNoteRequest) (*model.AdminUpdateUserNoteResponse, error)

	GetTasks(ctx context.Context, req *model.AdminGetTasksRequest) (*model.AdminGetTasksResponse, error)
	CreateTask(ctx context.Context, req *model.AdminCreateTaskRequest) (*model.AdminCreateTaskResponse, error)
	UpdateTaskStatus(ctx context.Context, req *model.AdminUpdateTaskStatusRequest) (*model.AdminUpdateTaskStatusResponse, error)
	DeleteTask(ctx context.Context, req *model.AdminDeleteTaskRequest) (*model.AdminDeleteTaskResponse, error)

	GetDeposits(ctx context.Context, req *model.AdminGetDepositsRequest) (*model.AdminGetDepositsResponse, error)
	ReviewDeposit(ctx context.Context, req *model.AdminReviewDepositRequest) (*model.AdminReviewDepositResponse, error)

	GetReports(ctx context.Context, req *model.AdminGetReportsRequest) (*model.AdminGetReportsResponse, error)
	ResolveReport(ctx context.Context, req *model.AdminResolveReportRequest) (*model.AdminResolveReportResponse, error)

	CreateRule(ctx context.Context, req *model.AdminCreateRuleRequest) (*model.AdminCreateRuleResponse, error)
	UpdateRule(ctx context.Context, req *model.AdminUpdateRuleRequest) (*model.AdminUpdateRuleResponse, error)
	DeleteRule(ctx context.Context, req *model.AdminDeleteRuleRequest) (*model.AdminDeleteRuleResponse, error)

	CreateAnnouncement(ctx context.Context, req *model.AdminCreateAnnouncementRequest) (*model.AdminCreateAnnouncementResponse, error)
	UpdateAnnouncement(ctx context.Context, req *model.AdminUpdateAnnouncementRequest) (*model.AdminUpdateAnnouncementResponse, error)
	DeleteAnnouncement(ctx context.Context, req *model.AdminDeleteAnnouncementRequest) (*model.AdminDeleteAnnouncementResponse, error)

	CreateCategory(ctx context.Context, req *model.AdminCreateCategoryRequest) (*model.AdminCreateCategoryResponse, error)
	UpdateCategory(ctx context.Context, req *model.AdminUpdateCategoryRequest) (*model.AdminUpdateCategoryResponse, error)
	DeleteCategory(ctx context.Context, req *model.AdminDeleteCategoryRequest) (*model.AdminDeleteCategoryResponse, error)

	UpdateSettings(ctx context.Context, req *model.AdminUpdateSettingsRequest) (*model.AdminUpdateSettingsResponse, error)
	GetLogs(ctx context.Context, req *model.AdminGetLogsRequest) (*model.AdminGetLogsResponse, error)
}

type adminDomain struct {
	adminRepo        repository.AdminRepository
	adminLogRepo     repository.AdminLogRepository
	userRepo         repository.UserRepository
	taskRepo         repository.TaskRepository
	transactionRepo  repository.TransactionRepository
	reportRepo       repository.ReportRepository
	ruleRepo         repository.RuleRepository
	announcementRepo repository.AnnouncementRepository
	categoryRepo     repository.CategoryRepository
	settingRepo      repository.SettingRepository
}

func NewAdminDomain(
	adminRepo repository.AdminRepository,
	adminLogRepo repository.AdminLogRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	transactionRepo repository.TransactionRepository,
	reportRepo repository.ReportRepository,
	ruleRepo repository.RuleRepository,
	announcementRepo repository.AnnouncementRepository,
	categoryRepo repository.CategoryRepository,
	settingRepo repository.SettingRepository,
) AdminDomain {
	return &adminDomain{
		adminRepo:        adminRepo,
		adminLogRepo:     adminLogRepo,
		userRepo:         userRepo,
		taskRepo:         taskRepo,
		transactionRepo:  transactionRepo,
		reportRepo:       reportRepo,
		ruleRepo:         ruleRepo,
		announcementRepo: announcementRepo,
		categoryRepo:     categoryRepo,
		settingRepo:      settingRepo,
	}
}

// log appends one audit entry for an admin mutation. A failed audit write
// never fails the mutation itself.
func (d *adminDomain) log(ctx context.Context, action, target string, detail entity.Map) {
	err := d.adminLogRepo.Create(ctx, &entity.AdminLog{
		Base:    entity.Base{ID: uuid.NewString()},
		AdminID: xcontext.RequestUserID(ctx),
		Action:  action,
		Target:  target,
		Detail:  detail,
	})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot write admin log: %v", err)
	}
}

func paging(ctx context.Context, offset, limit int) (int, int, error) {
	cfg := xcontext.Configs(ctx).ApiServer
	if limit == 0 {
		limit = cfg.DefaultLimit
	}

	if limit < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Limit must be positive")
	}

	if limit > cfg.MaxLimit {
		return 0, 0, errorx.New(errorx.BadRequest, "Exceed the maximum of limit (%d)", cfg.MaxLimit)
	}

	if offset < 0 {
		return 0, 0, errorx.New(errorx.BadRequest, "Offset must not be negative")
	}

	return offset, limit, nil
}

func (d *adminDomain) Login(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	admin, err := d.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get admin: %v", err)
			return nil, errorx.Unknown
		}

		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	if err := crypto.ComparePassword(admin.PasswordHash, req.Password); err != nil {
		return nil, errorx.New(errorx.Unauthenticated, "Invalid username or password")
	}

	if err := d.adminRepo.UpdateLastLogin(ctx, admin.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update admin last login: %v", err)
		return nil, errorx.Unknown
	}

	token, err := xcontext.TokenEngine(ctx).Generate(
		xcontext.Configs(ctx).Auth.AccessToken.Expiration.Duration,
		model.AccessToken{ID: admin.ID, Role: string(admin.Role)},
	)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate access token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.AdminLoginResponse{
		Admin:       model.ConvertAdmin(admin),
		AccessToken: token,
	}, nil
}

func (d *adminDomain) GetUsers(ctx context.Context, req *model.AdminGetUsersRequest) (*model.AdminGetUsersResponse, error) {
	offset, limit, err := paging(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.GetListUserFilter{
		Q:      req.Q,
		Offset: offset,
		Limit:  limit,
	}

	if req.IsBlocked != "" {
		blocked, err := strconv.ParseBool(req.IsBlocked)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid is_blocked value")
		}

		filter.IsBlocked = &blocked
	}

	users, err := d.userRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get users: %v", err)
		return nil, errorx.Unknown
	}

	total, err := d.userRepo.Count(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot count users: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.User{}
	for i := range users {
		u := model.ConvertUser(&users[i])
		u.Note = users[i].Note
		resp = append(resp, u)
	}

	return &model.AdminGetUsersResponse{Users: resp, Total: total}, nil
}

func (d *adminDomain) GetUser(ctx context.Context, req *model.AdminGetUserRequest) (*model.AdminGetUserResponse, error) {
	user, err := d.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	transactions, err := d.transactionRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get user transactions: %v", err)
		return nil, errorx.Unknown
	}

	transactionResp := []model.Transaction{}
	for i := range transactions {
		transactionResp = append(transactionResp, model.ConvertTransaction(&transactions[i], nil))
	}

	userResp := model.ConvertUser(user)
	userResp.Note = user.Note

	return &model.AdminGetUserResponse{
		User:         userResp,
		Transactions: transactionResp,
	}, nil
}

func (d *adminDomain) BlockUser(ctx context.Context, req *model.AdminBlockUserRequest) (*model.AdminBlockUserResponse, error) {
	if err := d.userRepo.SetBlocked(ctx, req.ID, req.Blocked); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot set user blocked: %v", err)
		return nil, errorx.Unknown
	}

	action := "block_user"
	if !req.Blocked {
		action = "unblock_user"
	}

	d.log(ctx, action, req.ID, nil)
	return &model.AdminBlockUserResponse{}, nil
}

func (d *adminDomain) UpdateUserNote(ctx context.Context, req *model.AdminUpdateUserNoteRequest) (*model.AdminUpdateUserNoteResponse, error) {
	if err := d.userRepo.SetNote(ctx, req.ID, req.Note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found user")
		}

		xcontext.Logger(ctx).Errorf("Cannot set user note: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_user_note", req.ID, entity.Map{"note": req.Note})
	return &model.AdminUpdateUserNoteResponse{}, nil
}

func (d *adminDomain) GetTasks(ctx context.Context, req *model.AdminGetTasksRequest) (*model.AdminGetTasksResponse, error) {
	offset, limit, err := paging(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.GetListTaskFilter{
		CategoryID: req.CategoryID,
		Offset:     offset,
		Limit:      limit,
	}

	if req.Status != "" {
		status, err := enum.ToEnum[entity.TaskStatusType](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid task status %s", req.Status)
		}

		filter.Status = status
	}

	tasks, err := d.taskRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get tasks: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Task{}
	for i := range tasks {
		resp = append(resp, model.ConvertTask(&tasks[i]))
	}

	return &model.AdminGetTasksResponse{Tasks: resp}, nil
}

// CreateTask publishes a platform task. No one is charged; the reward still
// follows the category rate table.
func (d *adminDomain) CreateTask(ctx context.Context, req *model.AdminCreateTaskRequest) (*model.AdminCreateTaskResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	if req.Link == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty link")
	}

	if req.Quantity <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Quantity must be positive")
	}

	category, err := d.categoryRepo.GetByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot get category: %v", err)
		return nil, errorx.Unknown
	}

	task := &entity.Task{
		Base:       entity.Base{ID: uuid.NewString()},
		CreatorID:  sql.NullString{},
		CategoryID: category.ID,
		Title:      req.Title,
		Link:       req.Link,
		Quantity:   req.Quantity,
		Reward:     category.RewardPerCompletion,
		Status:     entity.TaskActive,
	}

	if err := d.taskRepo.Create(ctx, task); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create task: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "create_task", task.ID, entity.Map{"title": task.Title})
	return &model.AdminCreateTaskResponse{ID: task.ID}, nil
}

func (d *adminDomain) UpdateTaskStatus(ctx context.Context, req *model.AdminUpdateTaskStatusRequest) (*model.AdminUpdateTaskStatusResponse, error) {
	status, err := enum.ToEnum[entity.TaskStatusType](req.Status)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid task status %s", req.Status)
	}

	if err := d.taskRepo.UpdateStatusByID(ctx, req.ID, status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot update task status: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_task_status", req.ID, entity.Map{"status": req.Status})
	return &model.AdminUpdateTaskStatusResponse{}, nil
}

func (d *adminDomain) DeleteTask(ctx context.Context, req *model.AdminDeleteTaskRequest) (*model.AdminDeleteTaskResponse, error) {
	if err := d.taskRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found task")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete task: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "delete_task", req.ID, nil)
	return &model.AdminDeleteTaskResponse{}, nil
}

func (d *adminDomain) GetDeposits(ctx context.Context, req *model.AdminGetDepositsRequest) (*model.AdminGetDepositsResponse, error) {
	deposits, err := d.transactionRepo.GetDeposits(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get deposits: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Transaction{}
	for i := range deposits {
		resp = append(resp, model.ConvertTransaction(&deposits[i], &deposits[i].User))
	}

	return &model.AdminGetDepositsResponse{Deposits: resp}, nil
}

// ReviewDeposit decides a pending deposit. The status flip and the balance
// credit happen in one transaction behind a pending-only conditional update,
// so a deposit can never be applied twice.
func (d *adminDomain) ReviewDeposit(ctx context.Context, req *model.AdminReviewDepositRequest) (*model.AdminReviewDepositResponse, error) {
	status, err := enum.ToEnum[entity.TransactionStatusType](req.Status)
	if err != nil || status == entity.TransactionPending {
		return nil, errorx.New(errorx.BadRequest, "Status must be completed or rejected")
	}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	transaction, err := d.transactionRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found deposit")
		}

		xcontext.Logger(ctx).Errorf("Cannot get deposit: %v", err)
		return nil, errorx.Unknown
	}

	if transaction.Type != entity.TransactionDeposit {
		return nil, errorx.New(errorx.BadRequest, "This transaction is not a deposit")
	}

	err = d.transactionRepo.Decide(ctx, req.ID, status, req.Reason, xcontext.RequestUserID(ctx))
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyDecided) {
			return nil, errorx.New(errorx.AlreadyProcessed, "This deposit has already been processed")
		}

		xcontext.Logger(ctx).Errorf("Cannot decide deposit: %v", err)
		return nil, errorx.Unknown
	}

	if status == entity.TransactionCompleted {
		err := d.userRepo.IncreaseBalances(ctx, transaction.UserID, transaction.Amount, decimal.Zero)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot credit deposit: %v", err)
			return nil, errorx.Unknown
		}
	}

	d.log(ctx, "review_deposit", req.ID, entity.Map{
		"status": req.Status,
		"amount": transaction.Amount.String(),
	})

	ctx = xcontext.WithCommitDBTransaction(ctx)
	return &model.AdminReviewDepositResponse{}, nil
}

// GetReports lists reports pending-first and enriches each with the accused
// user's current record so the reviewer sees up-to-date identity and blocked
// state.
func (d *adminDomain) GetReports(ctx context.Context, req *model.AdminGetReportsRequest) (*model.AdminGetReportsResponse, error) {
	offset, limit, err := paging(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	filter := repository.GetListReportFilter{Offset: offset, Limit: limit}
	if req.Status != "" {
		status, err := enum.ToEnum[entity.ReportStatusType](req.Status)
		if err != nil {
			return nil, errorx.New(errorx.BadRequest, "Invalid report status %s", req.Status)
		}

		filter.Status = status
	}

	reports, err := d.reportRepo.GetList(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get reports: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.Report{}
	for i := range reports {
		accused, err := d.userRepo.GetByUsername(ctx, reports[i].AccusedUsername)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Errorf("Cannot get accused user: %v", err)
			return nil, errorx.Unknown
		}

		resp = append(resp, model.ConvertReport(&reports[i], accused))
	}

	return &model.AdminGetReportsResponse{Reports: resp}, nil
}

func (d *adminDomain) ResolveReport(ctx context.Context, req *model.AdminResolveReportRequest) (*model.AdminResolveReportResponse, error) {
	status, err := enum.ToEnum[entity.ReportStatusType](req.Status)
	if err != nil || status == entity.ReportPending {
		return nil, errorx.New(errorx.BadRequest, "Status must be resolved or rejected")
	}

	if err := d.reportRepo.Resolve(ctx, req.ID, status, req.Reason); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found report")
		}

		if errors.Is(err, repository.ErrAlreadyDecided) {
			return nil, errorx.New(errorx.AlreadyProcessed, "This report has already been processed")
		}

		xcontext.Logger(ctx).Errorf("Cannot resolve report: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "resolve_report", req.ID, entity.Map{"status": req.Status})
	return &model.AdminResolveReportResponse{}, nil
}

func (d *adminDomain) CreateRule(ctx context.Context, req *model.AdminCreateRuleRequest) (*model.AdminCreateRuleResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	rule := &entity.Rule{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Index:       req.Index,
	}

	if err := d.ruleRepo.Create(ctx, rule); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create rule: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "create_rule", rule.ID, entity.Map{"title": rule.Title})
	return &model.AdminCreateRuleResponse{ID: rule.ID}, nil
}

func (d *adminDomain) UpdateRule(ctx context.Context, req *model.AdminUpdateRuleRequest) (*model.AdminUpdateRuleResponse, error) {
	update := &entity.Rule{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Index:       req.Index,
	}

	if err := d.ruleRepo.UpdateByID(ctx, req.ID, update); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found rule")
		}

		xcontext.Logger(ctx).Errorf("Cannot update rule: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_rule", req.ID, nil)
	return &model.AdminUpdateRuleResponse{}, nil
}

func (d *adminDomain) DeleteRule(ctx context.Context, req *model.AdminDeleteRuleRequest) (*model.AdminDeleteRuleResponse, error) {
	if err := d.ruleRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found rule")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete rule: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "delete_rule", req.ID, nil)
	return &model.AdminDeleteRuleResponse{}, nil
}

func (d *adminDomain) CreateAnnouncement(ctx context.Context, req *model.AdminCreateAnnouncementRequest) (*model.AdminCreateAnnouncementResponse, error) {
	if req.Title == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty title")
	}

	announcement := &entity.Announcement{
		Base:        entity.Base{ID: uuid.NewString()},
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		URL:         req.URL,
		IsActive:    req.IsActive,
	}

	if err := d.announcementRepo.Create(ctx, announcement); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create announcement: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "create_announcement", announcement.ID, entity.Map{"title": announcement.Title})
	return &model.AdminCreateAnnouncementResponse{ID: announcement.ID}, nil
}

func (d *adminDomain) UpdateAnnouncement(ctx context.Context, req *model.AdminUpdateAnnouncementRequest) (*model.AdminUpdateAnnouncementResponse, error) {
	current, err := d.announcementRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found announcement")
		}

		xcontext.Logger(ctx).Errorf("Cannot get announcement: %v", err)
		return nil, errorx.Unknown
	}

	isActive := current.IsActive
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	update := &entity.Announcement{
		Title:       req.Title,
		Description: req.Description,
		Icon:        req.Icon,
		URL:         req.URL,
		IsActive:    isActive,
	}

	if err := d.announcementRepo.UpdateByID(ctx, req.ID, update); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update announcement: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_announcement", req.ID, nil)
	return &model.AdminUpdateAnnouncementResponse{}, nil
}

func (d *adminDomain) DeleteAnnouncement(ctx context.Context, req *model.AdminDeleteAnnouncementRequest) (*model.AdminDeleteAnnouncementResponse, error) {
	if err := d.announcementRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found announcement")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete announcement: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "delete_announcement", req.ID, nil)
	return &model.AdminDeleteAnnouncementResponse{}, nil
}

func (d *adminDomain) CreateCategory(ctx context.Context, req *model.AdminCreateCategoryRequest) (*model.AdminCreateCategoryResponse, error) {
	if req.Name == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty name")
	}

	if req.RewardPerCompletion.IsNegative() || req.CostPerCompletion.IsNegative() {
		return nil, errorx.New(errorx.BadRequest, "Rates must not be negative")
	}

	if _, err := d.categoryRepo.GetByName(ctx, req.Name); err == nil {
		return nil, errorx.New(errorx.AlreadyExists, "Category %s already exists", req.Name)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		xcontext.Logger(ctx).Errorf("Cannot get category by name: %v", err)
		return nil, errorx.Unknown
	}

	category := &entity.Category{
		Base:                entity.Base{ID: uuid.NewString()},
		Name:                req.Name,
		Icon:                req.Icon,
		RewardPerCompletion: req.RewardPerCompletion,
		CostPerCompletion:   req.CostPerCompletion,
	}

	if err := d.categoryRepo.Create(ctx, category); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create category: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "create_category", category.ID, entity.Map{"name": category.Name})
	return &model.AdminCreateCategoryResponse{ID: category.ID}, nil
}

func (d *adminDomain) UpdateCategory(ctx context.Context, req *model.AdminUpdateCategoryRequest) (*model.AdminUpdateCategoryResponse, error) {
	if req.RewardPerCompletion.IsNegative() || req.CostPerCompletion.IsNegative() {
		return nil, errorx.New(errorx.BadRequest, "Rates must not be negative")
	}

	update := &entity.Category{
		Name:                req.Name,
		Icon:                req.Icon,
		RewardPerCompletion: req.RewardPerCompletion,
		CostPerCompletion:   req.CostPerCompletion,
	}

	if err := d.categoryRepo.UpdateByID(ctx, req.ID, update); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot update category: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_category", req.ID, nil)
	return &model.AdminUpdateCategoryResponse{}, nil
}

func (d *adminDomain) DeleteCategory(ctx context.Context, req *model.AdminDeleteCategoryRequest) (*model.AdminDeleteCategoryResponse, error) {
	if err := d.categoryRepo.DeleteByID(ctx, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Not found category")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete category: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "delete_category", req.ID, nil)
	return &model.AdminDeleteCategoryResponse{}, nil
}

func (d *adminDomain) UpdateSettings(ctx context.Context, req *model.AdminUpdateSettingsRequest) (*model.AdminUpdateSettingsResponse, error) {
	setting, err := d.settingRepo.Get(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get settings: %v", err)
		return nil, errorx.Unknown
	}

	if req.Maintenance != nil {
		setting.MaintenanceMode = *req.Maintenance
	}

	if req.MaintenanceMessage != nil {
		setting.MaintenanceMessage = *req.MaintenanceMessage
	}

	if req.OnboardingBonus != nil {
		if req.OnboardingBonus.IsNegative() {
			return nil, errorx.New(errorx.BadRequest, "Onboarding bonus must not be negative")
		}

		setting.OnboardingBonus = *req.OnboardingBonus
	}

	if req.PointName != nil {
		setting.PointName = *req.PointName
	}

	if req.CommunityLink != nil {
		setting.CommunityLink = *req.CommunityLink
	}

	if err := d.settingRepo.Update(ctx, setting); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot update settings: %v", err)
		return nil, errorx.Unknown
	}

	d.log(ctx, "update_settings", entity.SettingID, nil)

	resp := model.AdminUpdateSettingsResponse(model.ConvertSetting(setting))
	return &resp, nil
}

func (d *adminDomain) GetLogs(ctx context.Context, req *model.AdminGetLogsRequest) (*model.AdminGetLogsResponse, error) {
	offset, limit, err := paging(ctx, req.Offset, req.Limit)
	if err != nil {
		return nil, err
	}

	logs, err := d.adminLogRepo.GetList(ctx, offset, limit)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get admin logs: %v", err)
		return nil, errorx.Unknown
	}

	resp := []model.AdminLog{}
	for i := range logs {
		resp = append(resp, model.ConvertAdminLog(&logs[i]))
	}

	return &model.AdminGetLogsResponse{Logs: resp}, nil
}
