package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/taskhive/backend/internal/middleware"
	"github.com/taskhive/backend/pkg/router"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(cctx *cli.Context) error {
	server.loadConfig(cctx)
	server.loadLogger()
	server.loadDatabase()
	server.loadRedis()
	server.loadRepos()
	server.loadDomains()
	server.loadRouter()

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: s.router.Handler(),
	}

	log.Printf("Starting server on port: %s\n", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}

	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, s.configs, s.logger)
	s.router.AddCloser(middleware.Logger())
	s.router.Before(middleware.WithAuthentication())

	// Public API.
	router.POST(s.router, "/login", s.userDomain.Login)
	router.GET(s.router, "/getRules", s.contentDomain.GetRules)
	router.GET(s.router, "/getAnnouncements", s.contentDomain.GetAnnouncements)
	router.GET(s.router, "/getSettings", s.contentDomain.GetSettings)
	router.GET(s.router, "/getCategories", s.contentDomain.GetCategories)

	// Authenticated user API.
	userRouter := s.router.Branch()
	userRouter.Before(middleware.NeedAuthentication())
	userRouter.Before(middleware.RejectBlockedUser(s.userRepo))
	userRouter.Before(middleware.Maintenance(s.settingRepo))
	{
		router.GET(userRouter, "/getMe", s.userDomain.GetMe)
		router.POST(userRouter, "/connectProfile", s.userDomain.ConnectProfile)

		router.GET(userRouter, "/getTasks", s.taskDomain.GetList)
		router.POST(userRouter, "/verifyTask", s.taskDomain.Verify)
		router.POST(userRouter, "/createTask", s.taskDomain.Create)
		router.GET(userRouter, "/getMyCompletions", s.taskDomain.GetMyCompletions)

		router.POST(userRouter, "/deposit", s.transactionDomain.Deposit)
		router.GET(userRouter, "/getMyTransactions", s.transactionDomain.GetMyList)

		router.POST(userRouter, "/report", s.reportDomain.Create)
	}

	// Admin login keeps a cookie session besides the token.
	adminAuthRouter := s.router.Branch()
	adminAuthRouter.After(middleware.HandleSaveSession())
	{
		router.POST(adminAuthRouter, "/admin/login", s.adminDomain.Login)
	}

	// Admin panel API.
	adminRouter := s.router.Branch()
	adminRouter.Before(middleware.NeedAuthentication())
	adminRouter.Before(middleware.NewOnlyAdmin(s.adminRepo).Middleware())
	{
		router.GET(adminRouter, "/admin/getUsers", s.adminDomain.GetUsers)
		router.GET(adminRouter, "/admin/getUser", s.adminDomain.GetUser)
		router.POST(adminRouter, "/admin/blockUser", s.adminDomain.BlockUser)
		router.POST(adminRouter, "/admin/updateUserNote", s.adminDomain.UpdateUserNote)

		router.GET(adminRouter, "/admin/getTasks", s.adminDomain.GetTasks)
		router.POST(adminRouter, "/admin/createTask", s.adminDomain.CreateTask)
		router.POST(adminRouter, "/admin/updateTaskStatus", s.adminDomain.UpdateTaskStatus)
		router.POST(adminRouter, "/admin/deleteTask", s.adminDomain.DeleteTask)

		router.GET(adminRouter, "/admin/getDeposits", s.adminDomain.GetDeposits)
		router.POST(adminRouter, "/admin/reviewDeposit", s.adminDomain.ReviewDeposit)

		router.GET(adminRouter, "/admin/getReports", s.adminDomain.GetReports)
		router.POST(adminRouter, "/admin/resolveReport", s.adminDomain.ResolveReport)

		router.POST(adminRouter, "/admin/createRule", s.adminDomain.CreateRule)
		router.POST(adminRouter, "/admin/updateRule", s.adminDomain.UpdateRule)
		router.POST(adminRouter, "/admin/deleteRule", s.adminDomain.DeleteRule)

		router.POST(adminRouter, "/admin/createAnnouncement", s.adminDomain.CreateAnnouncement)
		router.POST(adminRouter, "/admin/updateAnnouncement", s.adminDomain.UpdateAnnouncement)
		router.POST(adminRouter, "/admin/deleteAnnouncement", s.adminDomain.DeleteAnnouncement)

		router.POST(adminRouter, "/admin/createCategory", s.adminDomain.CreateCategory)
		router.POST(adminRouter, "/admin/updateCategory", s.adminDomain.UpdateCategory)
		router.POST(adminRouter, "/admin/deleteCategory", s.adminDomain.DeleteCategory)

		router.POST(adminRouter, "/admin/updateSettings", s.adminDomain.UpdateSettings)
		router.GET(adminRouter, "/admin/getLogs", s.adminDomain.GetLogs)
	}
}
