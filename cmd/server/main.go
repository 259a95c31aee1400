package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/dijkstra-edu/dataforge/adapters/event"
	httpAdapter "github.com/dijkstra-edu/dataforge/adapters/http"
	"github.com/dijkstra-edu/dataforge/adapters/leetcode"
	"github.com/dijkstra-edu/dataforge/adapters/persistence"
	careerUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/career"
	leetcodeUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/leetcode"
	opportunityUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/opportunity"
	profileUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/profile"
	userUC "github.com/dijkstra-edu/dataforge/internal/application/usecase/user"
	"github.com/dijkstra-edu/dataforge/internal/config"
	"github.com/dijkstra-edu/dataforge/pkg/logger"
	"github.com/dijkstra-edu/dataforge/pkg/tracing"
)

const serviceName = "dataforge-api"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting DataForge API server", zap.String("env", cfg.App.Env))

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
		if err != nil {
			appLogger.Error("Cannot initialize tracer, continuing without tracing", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := tp.Shutdown(ctx); err != nil {
					appLogger.Error("Tracer shutdown failed", err)
				}
			}()
		}
	}

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Error("Cannot connect to Postgres", err)
		log.Fatalf("FATAL: cannot connect Postgres: %v", err)
	}
	defer dbPool.Close()

	var kafkaClient *event.KafkaProducerClient
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err = event.NewKafkaProducerClient(cfg)
		if err != nil {
			appLogger.Error("Cannot initialize Kafka producer, events disabled", err)
			kafkaClient = nil
		} else {
			defer kafkaClient.Close()
		}
	}

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	locationRepo := persistence.NewPostgresLocationRepo(dbPool, appLogger)
	linksRepo := persistence.NewPostgresLinksRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	workRepo := persistence.NewPostgresWorkExperienceRepo(dbPool, appLogger)
	certificationRepo := persistence.NewPostgresCertificationRepo(dbPool, appLogger)
	publicationRepo := persistence.NewPostgresPublicationRepo(dbPool, appLogger)
	volunteeringRepo := persistence.NewPostgresVolunteeringRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	leetcodeRepo := persistence.NewPostgresLeetcodeRepo(dbPool, appLogger)
	leetcodeBadgeRepo := persistence.NewPostgresLeetcodeBadgeRepo(dbPool, appLogger)
	leetcodeTagRepo := persistence.NewPostgresLeetcodeTagRepo(dbPool, appLogger)
	organizationRepo := persistence.NewPostgresOrganizationRepo(dbPool, appLogger)
	jobRepo := persistence.NewPostgresJobRepo(dbPool, appLogger)

	// Services
	leetcodeFetcher := leetcode.NewGraphQLClient(cfg, appLogger)

	// Use cases
	userUseCase := userUC.NewUserUseCase(userRepo, appLogger)
	resolveProfileUseCase := userUC.NewResolveProfileUseCase(userRepo, profileRepo, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, userRepo, kafkaClient, appLogger)
	fullProfileUseCase := profileUC.NewFullProfileUseCase(
		profileRepo,
		educationRepo,
		workRepo,
		certificationRepo,
		publicationRepo,
		volunteeringRepo,
		projectRepo,
		locationRepo,
		appLogger,
	)
	syncUseCase := leetcodeUC.NewSyncUseCase(leetcodeRepo, profileRepo, leetcodeFetcher, kafkaClient, appLogger)
	recordUseCase := leetcodeUC.NewRecordUseCase(leetcodeRepo, appLogger)
	badgeUseCase := leetcodeUC.NewBadgeUseCase(leetcodeBadgeRepo, leetcodeRepo, appLogger)
	tagUseCase := leetcodeUC.NewTagUseCase(leetcodeTagRepo, leetcodeRepo, appLogger)
	locationUseCase := careerUC.NewLocationUseCase(locationRepo, appLogger)
	linksUseCase := careerUC.NewLinksUseCase(linksRepo, userRepo, appLogger)
	educationUseCase := careerUC.NewEducationUseCase(educationRepo, profileRepo, locationRepo, appLogger)
	workUseCase := careerUC.NewWorkExperienceUseCase(workRepo, profileRepo, locationRepo, appLogger)
	certificationUseCase := careerUC.NewCertificationUseCase(certificationRepo, profileRepo, appLogger)
	publicationUseCase := careerUC.NewPublicationUseCase(publicationRepo, profileRepo, appLogger)
	volunteeringUseCase := careerUC.NewVolunteeringUseCase(volunteeringRepo, profileRepo, appLogger)
	projectUseCase := careerUC.NewProjectUseCase(projectRepo, profileRepo, appLogger)
	organizationUseCase := opportunityUC.NewOrganizationUseCase(organizationRepo, appLogger)
	jobUseCase := opportunityUC.NewJobUseCase(jobRepo, organizationRepo, appLogger)

	// HTTP handlers
	userHandler := httpAdapter.NewUserHandler(userUseCase, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, fullProfileUseCase, resolveProfileUseCase, appLogger)
	leetcodeHandler := httpAdapter.NewLeetcodeHandler(syncUseCase, recordUseCase, badgeUseCase, tagUseCase, appLogger)
	locationHandler := httpAdapter.NewLocationHandler(locationUseCase, appLogger)
	linksHandler := httpAdapter.NewLinksHandler(linksUseCase, appLogger)
	educationHandler := httpAdapter.NewEducationHandler(educationUseCase, appLogger)
	workHandler := httpAdapter.NewWorkExperienceHandler(workUseCase, appLogger)
	certificationHandler := httpAdapter.NewCertificationHandler(certificationUseCase, appLogger)
	publicationHandler := httpAdapter.NewPublicationHandler(publicationUseCase, appLogger)
	volunteeringHandler := httpAdapter.NewVolunteeringHandler(volunteeringUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(projectUseCase, appLogger)
	organizationHandler := httpAdapter.NewOrganizationHandler(organizationUseCase, appLogger)
	jobHandler := httpAdapter.NewJobHandler(jobUseCase, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(serviceName))
	router.Use(cors.Default())
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

	api := router.Group("/api/v1")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.GET("", userHandler.ListUsers)
			users.GET("/autocomplete", userHandler.AutocompleteUsers)
			users.GET("/github/:username", userHandler.GetUserByGithubUsername)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		profiles := api.Group("/profiles")
		{
			profiles.POST("", profileHandler.CreateProfile)
			profiles.GET("", profileHandler.ListProfiles)
			profiles.GET("/github/:username", profileHandler.GetProfileByGithubUsername)
			profiles.GET("/user/:userId", profileHandler.GetProfileByUser)
			profiles.GET("/:id", profileHandler.GetProfile)
			profiles.GET("/:id/full", profileHandler.GetFullProfile)
			profiles.DELETE("/:id", profileHandler.DeleteProfile)
		}

		leetcodeGroup := api.Group("/leetcode")
		{
			leetcodeGroup.POST("/sync/:profileId/:username", leetcodeHandler.Sync)
			leetcodeGroup.GET("", leetcodeHandler.ListRecords)
			leetcodeGroup.GET("/profile/:profileId", leetcodeHandler.GetRecordByProfile)
			leetcodeGroup.GET("/:id", leetcodeHandler.GetRecord)
			leetcodeGroup.DELETE("/:id", leetcodeHandler.DeleteRecord)

			leetcodeGroup.POST("/:id/badges", leetcodeHandler.AddBadge)
			leetcodeGroup.GET("/:id/badges", leetcodeHandler.ListBadges)
			leetcodeGroup.DELETE("/badges/:badgeId", leetcodeHandler.DeleteBadge)

			leetcodeGroup.POST("/:id/tags", leetcodeHandler.AddTag)
			leetcodeGroup.GET("/:id/tags", leetcodeHandler.ListTags)
			leetcodeGroup.DELETE("/tags/:tagId", leetcodeHandler.DeleteTag)
		}

		locations := api.Group("/locations")
		{
			locations.POST("", locationHandler.Create)
			locations.GET("", locationHandler.List)
			locations.GET("/:id", locationHandler.Get)
			locations.PUT("/:id", locationHandler.Update)
			locations.DELETE("/:id", locationHandler.Delete)
		}

		linksGroup := api.Group("/links")
		{
			linksGroup.POST("", linksHandler.Create)
			linksGroup.GET("/user/:userId", linksHandler.GetByUser)
			linksGroup.GET("/:id", linksHandler.Get)
			linksGroup.PUT("/:id", linksHandler.Update)
			linksGroup.DELETE("/:id", linksHandler.Delete)
		}

		education := api.Group("/education")
		{
			education.POST("", educationHandler.Create)
			education.GET("/profile/:profileId", educationHandler.ListByProfile)
			education.GET("/:id", educationHandler.Get)
			education.PUT("/:id", educationHandler.Update)
			education.DELETE("/:id", educationHandler.Delete)
		}

		work := api.Group("/work-experience")
		{
			work.POST("", workHandler.Create)
			work.GET("/profile/:profileId", workHandler.ListByProfile)
			work.GET("/:id", workHandler.Get)
			work.PUT("/:id", workHandler.Update)
			work.DELETE("/:id", workHandler.Delete)
		}

		certifications := api.Group("/certifications")
		{
			certifications.POST("", certificationHandler.Create)
			certifications.GET("/profile/:profileId", certificationHandler.ListByProfile)
			certifications.GET("/:id", certificationHandler.Get)
			certifications.PUT("/:id", certificationHandler.Update)
			certifications.DELETE("/:id", certificationHandler.Delete)
		}

		publications := api.Group("/publications")
		{
			publications.POST("", publicationHandler.Create)
			publications.GET("/profile/:profileId", publicationHandler.ListByProfile)
			publications.GET("/:id", publicationHandler.Get)
			publications.PUT("/:id", publicationHandler.Update)
			publications.DELETE("/:id", publicationHandler.Delete)
		}

		volunteeringGroup := api.Group("/volunteering")
		{
			volunteeringGroup.POST("", volunteeringHandler.Create)
			volunteeringGroup.GET("/profile/:profileId", volunteeringHandler.ListByProfile)
			volunteeringGroup.GET("/:id", volunteeringHandler.Get)
			volunteeringGroup.PUT("/:id", volunteeringHandler.Update)
			volunteeringGroup.DELETE("/:id", volunteeringHandler.Delete)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", projectHandler.Create)
			projects.GET("/profile/:profileId", projectHandler.ListByProfile)
			projects.GET("/:id", projectHandler.Get)
			projects.PUT("/:id", projectHandler.Update)
			projects.DELETE("/:id", projectHandler.Delete)
		}

		organizations := api.Group("/organizations")
		{
			organizations.POST("", organizationHandler.Create)
			organizations.GET("", organizationHandler.List)
			organizations.GET("/:id", organizationHandler.Get)
			organizations.PUT("/:id", organizationHandler.Update)
			organizations.DELETE("/:id", organizationHandler.Delete)
		}

		jobs := api.Group("/jobs")
		{
			jobs.POST("", jobHandler.Create)
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}
	}

	appLogger.Info("Server running", zap.String("port", cfg.App.Port))
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Cannot run server: %v", err)
	}
}
