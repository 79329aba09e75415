package bootstrap

import (
	"log"

	"emerge-career-be/internal/config"
	"emerge-career-be/internal/controller"
	"emerge-career-be/internal/pkg/logger"
	"emerge-career-be/internal/repository/unitofwork"
	"emerge-career-be/internal/service"
	"emerge-career-be/pkg/advisor"
	"emerge-career-be/pkg/content/news"
	"emerge-career-be/pkg/content/youtube"
	"emerge-career-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

const domainEventsTopic = "career.events"

type Container struct {
	// Controllers
	AuthController           controller.IAuthController
	UserController           controller.IUserController
	DashboardController      controller.IDashboardController
	GoalController           controller.IGoalController
	ActivityController       controller.IActivityController
	ChatController           controller.IChatController
	RecommendationController controller.IRecommendationController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. External Content
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	careerAdvisor := advisor.New(llmProvider, sysLogger)
	videoClient := youtube.NewClient(cfg.Keys.YouTube)
	trendClient := news.NewClient()

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, domainEventsTopic)
	authService := service.NewAuthService(uowFactory, sysLogger)
	userService := service.NewUserService(uowFactory, careerAdvisor, publisherService, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory, careerAdvisor, sysLogger)
	goalService := service.NewGoalService(uowFactory, careerAdvisor, publisherService, sysLogger)
	activityService := service.NewActivityService(uowFactory)
	chatService := service.NewChatService(uowFactory, careerAdvisor, sysLogger)
	recommendationService := service.NewRecommendationService(uowFactory, careerAdvisor, videoClient, trendClient, sysLogger)

	consumerService := service.NewConsumerService(pubSub, domainEventsTopic, uowFactory, videoClient, sysLogger)

	// 5. Controllers
	return &Container{
		AuthController:           controller.NewAuthController(authService),
		UserController:           controller.NewUserController(userService),
		DashboardController:      controller.NewDashboardController(dashboardService),
		GoalController:           controller.NewGoalController(goalService),
		ActivityController:       controller.NewActivityController(activityService),
		ChatController:           controller.NewChatController(chatService),
		RecommendationController: controller.NewRecommendationController(recommendationService),

		ConsumerService: consumerService,
	}
}
