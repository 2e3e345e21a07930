package http

import (
	"context"
	"time"

	"littlelemon/internal/adapters/in/http/auth"
	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/generated/servers"
)

var _ servers.ServerInterface = (*Server)(nil)

// Authenticator checks login credentials.
type Authenticator interface {
	Authenticate(ctx context.Context, creds identity.Credentials) (*identity.Principal, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	RegisterUser      commands.RegisterUserCommandHandler
	AddCartLine       commands.AddCartLineCommandHandler
	ClearCart         commands.ClearCartCommandHandler
	PlaceOrder        commands.PlaceOrderCommandHandler
	ReplaceOrder      commands.ReplaceOrderCommandHandler
	PatchOrder        commands.PatchOrderCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	CreateCategory    commands.CreateCategoryCommandHandler
	CreateMenuItem    commands.CreateMenuItemCommandHandler
	UpdateMenuItem    commands.UpdateMenuItemCommandHandler
	DeleteMenuItem    commands.DeleteMenuItemCommandHandler
	AddGroupMember    commands.AddGroupMemberCommandHandler
	RemoveGroupMember commands.RemoveGroupMemberCommandHandler

	ListCart         queries.ListCartQueryHandler
	ListOrders       queries.ListOrdersQueryHandler
	GetOrderItems    queries.GetOrderItemsQueryHandler
	ListCategories   queries.ListCategoriesQueryHandler
	ListMenuItems    queries.ListMenuItemsQueryHandler
	GetMenuItem      queries.GetMenuItemQueryHandler
	ListGroupMembers queries.ListGroupMembersQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerUserHandler      commands.RegisterUserCommandHandler
	addCartLineHandler       commands.AddCartLineCommandHandler
	clearCartHandler         commands.ClearCartCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	replaceOrderHandler      commands.ReplaceOrderCommandHandler
	patchOrderHandler        commands.PatchOrderCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	createCategoryHandler    commands.CreateCategoryCommandHandler
	createMenuItemHandler    commands.CreateMenuItemCommandHandler
	updateMenuItemHandler    commands.UpdateMenuItemCommandHandler
	deleteMenuItemHandler    commands.DeleteMenuItemCommandHandler
	addGroupMemberHandler    commands.AddGroupMemberCommandHandler
	removeGroupMemberHandler commands.RemoveGroupMemberCommandHandler

	// Query handlers
	listCartHandler         queries.ListCartQueryHandler
	listOrdersHandler       queries.ListOrdersQueryHandler
	getOrderItemsHandler    queries.GetOrderItemsQueryHandler
	listCategoriesHandler   queries.ListCategoriesQueryHandler
	listMenuItemsHandler    queries.ListMenuItemsQueryHandler
	getMenuItemHandler      queries.GetMenuItemQueryHandler
	listGroupMembersHandler queries.ListGroupMembersQueryHandler

	authenticator Authenticator
	tokens        *auth.Tokens
	pageSize      int
	now           func() time.Time
}

// NewServer creates a new HTTP server. A zero pageSize falls back to the default
// page size of the queries package.
func NewServer(handlers Handlers, authenticator Authenticator, tokens *auth.Tokens, pageSize int) *Server {
	return &Server{
		registerUserHandler:      handlers.RegisterUser,
		addCartLineHandler:       handlers.AddCartLine,
		clearCartHandler:         handlers.ClearCart,
		placeOrderHandler:        handlers.PlaceOrder,
		replaceOrderHandler:      handlers.ReplaceOrder,
		patchOrderHandler:        handlers.PatchOrder,
		deleteOrderHandler:       handlers.DeleteOrder,
		createCategoryHandler:    handlers.CreateCategory,
		createMenuItemHandler:    handlers.CreateMenuItem,
		updateMenuItemHandler:    handlers.UpdateMenuItem,
		deleteMenuItemHandler:    handlers.DeleteMenuItem,
		addGroupMemberHandler:    handlers.AddGroupMember,
		removeGroupMemberHandler: handlers.RemoveGroupMember,

		listCartHandler:         handlers.ListCart,
		listOrdersHandler:       handlers.ListOrders,
		getOrderItemsHandler:    handlers.GetOrderItems,
		listCategoriesHandler:   handlers.ListCategories,
		listMenuItemsHandler:    handlers.ListMenuItems,
		getMenuItemHandler:      handlers.GetMenuItem,
		listGroupMembersHandler: handlers.ListGroupMembers,

		authenticator: authenticator,
		tokens:        tokens,
		pageSize:      pageSize,
		now:           time.Now,
	}
}

func (s *Server) page(number *int) (queries.Page, error) {
	n := 0
	if number != nil {
		n = *number
	}
	return queries.NewPage(n, s.pageSize)
}
