package main

import (
	"context"
	"net/http"

	"github.com/taskhive/backend/config"
	"github.com/taskhive/backend/internal/domain"
	"github.com/taskhive/backend/internal/repository"
	"github.com/taskhive/backend/pkg/logger"
	"github.com/taskhive/backend/pkg/router"
	"github.com/taskhive/backend/pkg/xcontext"
	"github.com/taskhive/backend/pkg/xredis"
	"github.com/urfave/cli/v2"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App
	ctx context.Context

	configs config.Configs
	logger  logger.Logger

	db          *gorm.DB
	redisClient xredis.Client

	userRepo           repository.UserRepository
	taskRepo           repository.TaskRepository
	taskCompletionRepo repository.TaskCompletionRepository
	categoryRepo       repository.CategoryRepository
	transactionRepo    repository.TransactionRepository
	reportRepo         repository.ReportRepository
	ruleRepo           repository.RuleRepository
	announcementRepo   repository.AnnouncementRepository
	settingRepo        repository.SettingRepository
	adminRepo          repository.AdminRepository
	adminLogRepo       repository.AdminLogRepository

	userDomain        domain.UserDomain
	taskDomain        domain.TaskDomain
	transactionDomain domain.TransactionDomain
	reportDomain      domain.ReportDomain
	contentDomain     domain.ContentDomain
	adminDomain       domain.AdminDomain

	router *router.Router
	server *http.Server
}

func (s *srv) loadConfig(cctx *cli.Context) {
	configs, err := config.Load(cctx.String("config"))
	if err != nil {
		panic(err)
	}

	s.configs = configs
	s.ctx = xcontext.WithConfigs(context.Background(), s.configs)
}

func (s *srv) loadLogger() {
	level := logger.INFO
	if s.configs.Env == "local" {
		level = logger.DEBUG
	}

	s.logger = logger.NewLogger(level)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	s.ctx = xcontext.WithDB(s.ctx, s.db)
}

func (s *srv) loadRedis() {
	var err error
	s.redisClient, err = xredis.NewClient(s.ctx)
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository(s.redisClient)
	s.taskRepo = repository.NewTaskRepository(s.redisClient)
	s.taskCompletionRepo = repository.NewTaskCompletionRepository()
	s.categoryRepo = repository.NewCategoryRepository()
	s.transactionRepo = repository.NewTransactionRepository()
	s.reportRepo = repository.NewReportRepository()
	s.ruleRepo = repository.NewRuleRepository()
	s.announcementRepo = repository.NewAnnouncementRepository(s.redisClient)
	s.settingRepo = repository.NewSettingRepository(s.redisClient)
	s.adminRepo = repository.NewAdminRepository()
	s.adminLogRepo = repository.NewAdminLogRepository()
}

func (s *srv) loadDomains() {
	s.userDomain = domain.NewUserDomain(s.userRepo, s.transactionRepo, s.settingRepo)
	s.taskDomain = domain.NewTaskDomain(
		s.taskRepo, s.taskCompletionRepo, s.categoryRepo, s.userRepo, s.transactionRepo)
	s.transactionDomain = domain.NewTransactionDomain(s.transactionRepo)
	s.reportDomain = domain.NewReportDomain(s.reportRepo)
	s.contentDomain = domain.NewContentDomain(
		s.ruleRepo, s.announcementRepo, s.settingRepo, s.categoryRepo)
	s.adminDomain = domain.NewAdminDomain(
		s.adminRepo, s.adminLogRepo, s.userRepo, s.taskRepo, s.transactionRepo,
		s.reportRepo, s.ruleRepo, s.announcementRepo, s.categoryRepo, s.settingRepo)
}
