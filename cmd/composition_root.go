package cmd

import (
	"context"
	"log/slog"

	"littlelemon/api"
	httpin "littlelemon/internal/adapters/in/http"
	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/adapters/out/postgres"
	"littlelemon/internal/adapters/out/postgres/userrepo"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/jobs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	redis      *redis.Client
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	root := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB).WithHashCost(configs.BcryptCost),
		logger:     logger,
	}
	if configs.RedisAddr != "" {
		root.redis = redis.NewClient(&redis.Options{Addr: configs.RedisAddr})
	}
	return root
}

// Commands

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateAddGroupMemberCommandHandler() commands.AddGroupMemberCommandHandler {
	return commands.NewAddGroupMemberCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateRemoveGroupMemberCommandHandler() commands.RemoveGroupMemberCommandHandler {
	return commands.NewRemoveGroupMemberCommandHandler(c.identityUoWFactory())
}

func (c *CompositionRoot) CreateAddCartLineCommandHandler() commands.AddCartLineCommandHandler {
	return commands.NewAddCartLineCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateReplaceOrderCommandHandler() commands.ReplaceOrderCommandHandler {
	return commands.NewReplaceOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreatePatchOrderCommandHandler() commands.PatchOrderCommandHandler {
	return commands.NewPatchOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMenuItemCommandHandler() commands.UpdateMenuItemCommandHandler {
	return commands.NewUpdateMenuItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateDeleteMenuItemCommandHandler() commands.DeleteMenuItemCommandHandler {
	return commands.NewDeleteMenuItemCommandHandler(c.catalogUoWFactory())
}

// Queries

func (c *CompositionRoot) CreateListCartQueryHandler() queries.ListCartQueryHandler {
	return queries.NewListCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderItemsQueryHandler() queries.GetOrderItemsQueryHandler {
	return queries.NewGetOrderItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListCategoriesQueryHandler() queries.ListCategoriesQueryHandler {
	return queries.NewListCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemQueryHandler() queries.GetMenuItemQueryHandler {
	return queries.NewGetMenuItemQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListGroupMembersQueryHandler() queries.ListGroupMembersQueryHandler {
	return queries.NewListGroupMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderBacklogQueryHandler() queries.GetOrderBacklogQueryHandler {
	return queries.NewGetOrderBacklogQueryHandler(c.gormDB)
}

// HTTP

func (c *CompositionRoot) CreateHandlers() httpin.Handlers {
	return httpin.Handlers{
		RegisterUser:      c.CreateRegisterUserCommandHandler(),
		AddCartLine:       c.CreateAddCartLineCommandHandler(),
		ClearCart:         c.CreateClearCartCommandHandler(),
		PlaceOrder:        c.CreatePlaceOrderCommandHandler(),
		ReplaceOrder:      c.CreateReplaceOrderCommandHandler(),
		PatchOrder:        c.CreatePatchOrderCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		CreateCategory:    c.CreateCreateCategoryCommandHandler(),
		CreateMenuItem:    c.CreateCreateMenuItemCommandHandler(),
		UpdateMenuItem:    c.CreateUpdateMenuItemCommandHandler(),
		DeleteMenuItem:    c.CreateDeleteMenuItemCommandHandler(),
		AddGroupMember:    c.CreateAddGroupMemberCommandHandler(),
		RemoveGroupMember: c.CreateRemoveGroupMemberCommandHandler(),

		ListCart:         c.CreateListCartQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		GetOrderItems:    c.CreateGetOrderItemsQueryHandler(),
		ListCategories:   c.CreateListCategoriesQueryHandler(),
		ListMenuItems:    c.CreateListMenuItemsQueryHandler(),
		GetMenuItem:      c.CreateGetMenuItemQueryHandler(),
		ListGroupMembers: c.CreateListGroupMembersQueryHandler(),
	}
}

func (c *CompositionRoot) CreateTokens() (*auth.Tokens, error) {
	return auth.NewTokens(c.configs.JWTSecret, c.configs.JWTTTL)
}

// CreateRateLimiterStore shares counters through Redis when REDIS_ADDR is set.
func (c *CompositionRoot) CreateRateLimiterStore() middleware.RateLimiterStore {
	limits := httpin.RateLimits{
		User:      c.configs.RatePerMinuteUser,
		Anonymous: c.configs.RatePerMinuteAnon,
	}
	if c.redis != nil {
		return httpin.NewRedisRateLimiterStore(c.redis, limits, c.logger)
	}
	return httpin.NewMemoryRateLimiterStore(limits)
}

func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := api.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err = api.Register(doc); err != nil {
		return nil, err
	}

	tokens, err := c.CreateTokens()
	if err != nil {
		return nil, err
	}

	users := userrepo.NewGormUserRepository(c.gormDB)
	server := httpin.NewServer(c.CreateHandlers(), users, tokens, c.configs.PageSize)

	return httpin.NewRouter(server, httpin.RouterConfig{
		Logger:      c.logger,
		LogLevel:    c.configs.EchoLevel(),
		Document:    doc,
		Tokens:      tokens,
		Users:       users,
		RateLimiter: c.CreateRateLimiterStore(),
	})
}

// Jobs

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOrderBacklogQueryHandler(), c.configs.BacklogSchedule, c.logger)
}

// Close releases the connections held by the root.
func (c *CompositionRoot) Close() error {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return err
		}
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) identityUoWFactory() commands.IdentityUoWFactory {
	return FuncIdentityUoWFactory(func() commands.IdentityUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncIdentityUoWFactory func() commands.IdentityUoW

func (f FuncIdentityUoWFactory) Create() commands.IdentityUoW {
	return f()
}
