package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	v1 "github.com/shopswift/shopswift-api/internal/api/handler/v1"
	"github.com/shopswift/shopswift-api/internal/api/middleware"
	"github.com/shopswift/shopswift-api/internal/config"
	"github.com/shopswift/shopswift-api/internal/estimator"
	"github.com/shopswift/shopswift-api/internal/repository"
	"github.com/shopswift/shopswift-api/internal/repository/store"
	"github.com/shopswift/shopswift-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, st *store.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(st)
	userHandler := s.initUserHandler(st)
	catalogHandler := s.initCatalogHandler(st)
	orderHandler := s.initOrderHandler(st)
	s.MountHandlers(authHandler, userHandler, catalogHandler, orderHandler)

	return s
}

func (s *Server) initAuthHandler(st *store.Store) *v1.AuthHandler {
	repo := repository.NewUserRepository(st)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initUserHandler(st *store.Store) *v1.UserHandler {
	repo := repository.NewUserRepository(st)
	svc := service.NewUserService(repo)
	handler := v1.NewUserHandler(svc)

	return handler
}

func (s *Server) initCatalogHandler(st *store.Store) *v1.CatalogHandler {
	repo := repository.NewCatalogRepository(st)
	svc := service.NewCatalogService(repo)
	handler := v1.NewCatalogHandler(svc)

	return handler
}

func (s *Server) initOrderHandler(st *store.Store) *v1.OrderHandler {
	catalogRepo := repository.NewCatalogRepository(st)
	orderRepo := repository.NewOrderRepository(st)
	userRepo := repository.NewUserRepository(st)

	var est estimator.Client
	if s.Config.Estimator != nil && s.Config.Estimator.Enabled {
		est = estimator.NewHTTPClient(s.Config.Estimator.BaseURL, s.Config.Estimator.Timeout)
	}

	svc := service.NewOrderService(catalogRepo, orderRepo, userRepo, est)
	handler := v1.NewOrderHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, userHandler *v1.UserHandler, catalogHandler *v1.CatalogHandler, orderHandler *v1.OrderHandler) {
	const basePath = "/api/v1"

	auth := s.Router.Group(basePath)
	{
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	users := s.Router.Group(basePath, middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		users.GET("/users/:userID", userHandler.HandleGetUser)
	}

	catalog := s.Router.Group(basePath)
	{
		catalog.GET("/shops", catalogHandler.HandleListShops)
		catalog.GET("/shops/:shopID/items", catalogHandler.HandleShopItems)
		catalog.GET("/items", catalogHandler.HandleListItems)
		catalog.GET("/items/:itemID", catalogHandler.HandleGetItem)
		catalog.POST("/items", catalogHandler.HandleSaveItem)
		catalog.DELETE("/items/:itemID", catalogHandler.HandleDeleteItem)
	}

	orders := s.Router.Group(basePath)
	{
		orders.POST("/orders", orderHandler.HandlePlaceOrder)
		orders.GET("/customers/:customerID/orders", orderHandler.HandleCustomerOrders)
		orders.GET("/shops/:shopID/orders", orderHandler.HandleShopOrders)
		orders.POST("/delivery-estimate", orderHandler.HandleDeliveryEstimate)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
