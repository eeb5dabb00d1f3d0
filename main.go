package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"smartjob-backend/config"
	apiv1 "smartjob-backend/controllers/v1"
	_ "smartjob-backend/docs"
	"smartjob-backend/fiberlog"
	"smartjob-backend/initializers"
	"smartjob-backend/lib/ws"
	connectionhub "smartjob-backend/lib/ws/hub/connection-hub"
	keepaliveworker "smartjob-backend/lib/ws/keepalive"
	"smartjob-backend/middleware"
	apimodels "smartjob-backend/models/api"
)

// @title SmartJob recruiter API
// @version 1.0
// @BasePath /
func main() {
	initializers.InitAllServices()

	bodyLimit := config.Conf.App.BodyLimitMb * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: bodyLimit,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			return ctx.Status(code).JSON(apimodels.NewError(err.Error()))
		},
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	api := fiber.New()
	api.Use(fiberlog.New(*initializers.LoggerConfig))
	api.Use(cors.New(cors.Config{
		AllowOrigins: config.Conf.App.CorsOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	api.Use(middleware.WithBodyLimit(int64(bodyLimit)))
	if config.Conf.App.ErrorWebhookUrl != "" {
		api.Use(middleware.ErrNotify(config.Conf.App.ErrorWebhookUrl))
	}
	app.Mount("/api", api)
	apiv1.InitUserApiRouters(api)
	apiv1.InitJobApiRouters(api)
	apiv1.InitApplicantApiRouters(api)
	apiv1.InitProfileApiRouters(api)
	apiv1.InitDashboardApiRouters(api)
	apiv1.InitHealthApiRouters(api)

	//websocket
	wsRouter := fiber.New()
	api.Mount("/ws", wsRouter)
	wsRouter.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsRouter)

	workersCtx, stopWorkers := context.WithCancel(context.Background())
	keepaliveworker.StartWorker(workersCtx, connectionhub.Instance)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		<-c
		log.Info("Gracefully shutting down...")
		stopWorkers()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
